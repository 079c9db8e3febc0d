package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/session"
	"github.com/horizonhq/horizon-api/internal/stats"
	"github.com/horizonhq/horizon-api/internal/storage"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalService provides business logic for goals.
type GoalService struct {
	store    storage.Store
	dreams   *DreamService
	sessions *session.Manager
}

// NewGoalService creates a new GoalService.
func NewGoalService(store storage.Store, dreams *DreamService, sessions *session.Manager) *GoalService {
	return &GoalService{store: store, dreams: dreams, sessions: sessions}
}

// List returns all of a user's goals.
func (s *GoalService) List(ctx context.Context, userID string) ([]models.Goal, error) {
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// ListForDream returns the user's goals under one dream, and the dream's
// derived progress. The dream must belong to the user.
func (s *GoalService) ListForDream(ctx context.Context, userID, dreamID string) ([]models.Goal, int, error) {
	dream, err := s.dreams.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, 0, err
	}

	all, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}

	goals := make([]models.Goal, 0)
	for _, g := range all {
		if g.DreamID == dreamID {
			goals = append(goals, g)
		}
	}
	return goals, stats.DreamProgress(*dream, all), nil
}

// CreateGoalInput represents parameters to create a goal under a dream.
type CreateGoalInput struct {
	DreamID  string
	Title    string
	Deadline *int64
}

// Create adds a goal under a dream the user owns. New goals start at
// zero progress and Not Started status.
func (s *GoalService) Create(ctx context.Context, userID string, input CreateGoalInput) (*models.Goal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if _, err := s.dreams.Find(ctx, userID, input.DreamID); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		DreamID:  input.DreamID,
		UserID:   userID,
		Title:    input.Title,
		Status:   models.GoalStatusNotStarted,
		Progress: 0,
		Deadline: input.Deadline,
	}
	if _, err := s.store.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.sessions.ApplyGoalCreated(userID, *goal)
	return goal, nil
}

// UpdateProgress sets a goal's progress, clamped to [0,100], and
// recomputes its status in the same write so the two can never disagree.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, progress int) (*models.Goal, error) {
	goal, err := s.find(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	clamped := stats.ClampProgress(progress)
	status := stats.StatusForProgress(clamped)

	upd := storage.GoalUpdate{
		Progress: &clamped,
		Status:   &status,
	}
	if err := s.store.UpdateGoal(ctx, goalID, upd); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	refreshed, err := s.find(ctx, userID, goal.ID)
	if err != nil {
		return nil, err
	}
	s.sessions.ApplyGoalUpdated(userID, *refreshed)
	return refreshed, nil
}

func (s *GoalService) find(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	for i := range goals {
		if goals[i].ID == goalID {
			return &goals[i], nil
		}
	}
	return nil, ErrGoalNotFound
}
