package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/session"
	"github.com/horizonhq/horizon-api/internal/storage"
)

var ErrEmptyLogContent = errors.New("log content cannot be empty")

// LogService provides business logic for action logs.
type LogService struct {
	store    storage.Store
	sessions *session.Manager
}

// NewLogService creates a new LogService.
func NewLogService(store storage.Store, sessions *session.Manager) *LogService {
	return &LogService{store: store, sessions: sessions}
}

// List returns the user's logs, newest date first per the gateway
// ordering contract.
func (s *LogService) List(ctx context.Context, userID string) ([]models.ActionLog, error) {
	logs, err := s.store.ListLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// CreateLogInput represents a new journal entry. Date is the
// user-intended time of the action (epoch millis) and may be in the
// past; zero means "now".
type CreateLogInput struct {
	Content string
	Date    int64
}

// Create records a journal entry. Empty content is rejected.
func (s *LogService) Create(ctx context.Context, userID string, input CreateLogInput) (*models.ActionLog, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyLogContent
	}

	log := &models.ActionLog{
		UserID:  userID,
		Content: input.Content,
		Date:    input.Date,
	}
	if _, err := s.store.CreateLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	s.sessions.ApplyLogCreated(userID, *log)
	return log, nil
}
