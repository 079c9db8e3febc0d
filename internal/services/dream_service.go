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

var (
	ErrDreamNotFound   = errors.New("dream not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidCategory = errors.New("invalid dream category")
	ErrInvalidHorizon  = errors.New("invalid time horizon")
)

// DreamService provides business logic for dreams.
type DreamService struct {
	store    storage.Store
	sessions *session.Manager
}

// NewDreamService creates a new DreamService.
func NewDreamService(store storage.Store, sessions *session.Manager) *DreamService {
	return &DreamService{store: store, sessions: sessions}
}

// List returns all of a user's dreams, archived ones included.
func (s *DreamService) List(ctx context.Context, userID string) ([]models.Dream, error) {
	dreams, err := s.store.ListDreams(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dreams: %w", err)
	}
	return dreams, nil
}

// Find returns one of the user's dreams by ID. A dream owned by another
// user is reported as not found so existence never leaks.
func (s *DreamService) Find(ctx context.Context, userID, dreamID string) (*models.Dream, error) {
	dreams, err := s.store.ListDreams(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dreams: %w", err)
	}
	for i := range dreams {
		if dreams[i].ID == dreamID {
			return &dreams[i], nil
		}
	}
	return nil, ErrDreamNotFound
}

// CreateDreamInput represents parameters to create a new dream.
type CreateDreamInput struct {
	Title       string
	Description string
	Category    models.DreamCategory
	Horizon     models.TimeHorizon
}

// Create validates and persists a new dream, then patches the session
// snapshot once the write is confirmed.
func (s *DreamService) Create(ctx context.Context, userID string, input CreateDreamInput) (*models.Dream, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if !input.Horizon.Valid() {
		return nil, ErrInvalidHorizon
	}

	dream := &models.Dream{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Horizon:     input.Horizon,
	}
	if _, err := s.store.CreateDream(ctx, dream); err != nil {
		return nil, fmt.Errorf("failed to create dream: %w", err)
	}

	s.sessions.ApplyDreamCreated(userID, *dream)
	return dream, nil
}

// UpdateDreamInput represents a partial edit of a dream. Nil fields are
// left untouched.
type UpdateDreamInput struct {
	Title       *string
	Description *string
	Category    *models.DreamCategory
	Horizon     *models.TimeHorizon
}

// Update edits a dream the user owns. The owning user never changes.
func (s *DreamService) Update(ctx context.Context, userID, dreamID string, input UpdateDreamInput) (*models.Dream, error) {
	dream, err := s.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		dream.Title = *input.Title
	}
	if input.Description != nil {
		dream.Description = *input.Description
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		dream.Category = *input.Category
	}
	if input.Horizon != nil {
		if !input.Horizon.Valid() {
			return nil, ErrInvalidHorizon
		}
		dream.Horizon = *input.Horizon
	}

	upd := storage.DreamUpdate{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Horizon:     input.Horizon,
	}
	if err := s.store.UpdateDream(ctx, dreamID, upd); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDreamNotFound
		}
		return nil, fmt.Errorf("failed to update dream: %w", err)
	}

	refreshed, err := s.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}
	s.sessions.ApplyDreamUpdated(userID, *refreshed)
	return refreshed, nil
}

// Archive marks a dream as archived. Dreams are never physically
// deleted; archiving hides them from active views.
func (s *DreamService) Archive(ctx context.Context, userID, dreamID string) (*models.Dream, error) {
	if _, err := s.Find(ctx, userID, dreamID); err != nil {
		return nil, err
	}

	archived := true
	upd := storage.DreamUpdate{IsArchived: &archived}
	if err := s.store.UpdateDream(ctx, dreamID, upd); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDreamNotFound
		}
		return nil, fmt.Errorf("failed to archive dream: %w", err)
	}

	refreshed, err := s.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}
	s.sessions.ApplyDreamUpdated(userID, *refreshed)
	return refreshed, nil
}
