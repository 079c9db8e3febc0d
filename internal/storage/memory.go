package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/horizonhq/horizon-api/internal/models"
)

// MemoryStore is the in-memory backend. It exists for local development
// and tests; data lives for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]models.User
	dreams map[string]models.Dream
	goals  map[string]models.Goal
	logs   map[string]models.ActionLog
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]models.User),
		dreams: make(map[string]models.Dream),
		goals:  make(map[string]models.Goal),
		logs:   make(map[string]models.ActionLog),
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email != nil && *u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = nowMillis()
	s.users[user.ID] = *user
	return user.ID, nil
}

// ListDreams returns the user's dreams, newest first.
func (s *MemoryStore) ListDreams(_ context.Context, userID string) ([]models.Dream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dreams := make([]models.Dream, 0)
	for _, d := range s.dreams {
		if d.UserID == userID {
			dreams = append(dreams, d)
		}
	}
	sort.Slice(dreams, func(i, j int) bool {
		if dreams[i].CreatedAt != dreams[j].CreatedAt {
			return dreams[i].CreatedAt > dreams[j].CreatedAt
		}
		return dreams[i].ID < dreams[j].ID
	})
	return dreams, nil
}

func (s *MemoryStore) CreateDream(_ context.Context, dream *models.Dream) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowMillis()
	dream.ID = uuid.NewString()
	dream.CreatedAt = now
	dream.UpdatedAt = now
	s.dreams[dream.ID] = *dream
	return dream.ID, nil
}

func (s *MemoryStore) UpdateDream(_ context.Context, id string, upd DreamUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.dreams[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Description != nil {
		d.Description = *upd.Description
	}
	if upd.Category != nil {
		d.Category = *upd.Category
	}
	if upd.Horizon != nil {
		d.Horizon = *upd.Horizon
	}
	if upd.IsArchived != nil {
		d.IsArchived = *upd.IsArchived
	}
	d.UpdatedAt = nowMillis()
	s.dreams[id] = d
	return nil
}

// ListGoals returns the user's goals in creation order.
func (s *MemoryStore) ListGoals(_ context.Context, userID string) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]models.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].CreatedAt != goals[j].CreatedAt {
			return goals[i].CreatedAt < goals[j].CreatedAt
		}
		return goals[i].ID < goals[j].ID
	})
	return goals, nil
}

func (s *MemoryStore) CreateGoal(_ context.Context, goal *models.Goal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowMillis()
	goal.ID = uuid.NewString()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	s.goals[goal.ID] = *goal
	return goal.ID, nil
}

func (s *MemoryStore) UpdateGoal(_ context.Context, id string, upd GoalUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Title != nil {
		g.Title = *upd.Title
	}
	if upd.Status != nil {
		g.Status = *upd.Status
	}
	if upd.Progress != nil {
		g.Progress = *upd.Progress
	}
	if upd.ClearDeadline {
		g.Deadline = nil
	} else if upd.Deadline != nil {
		g.Deadline = upd.Deadline
	}
	g.UpdatedAt = nowMillis()
	s.goals[id] = g
	return nil
}

// ListLogs returns the user's action logs sorted by date descending.
func (s *MemoryStore) ListLogs(_ context.Context, userID string) ([]models.ActionLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]models.ActionLog, 0)
	for _, l := range s.logs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		if logs[i].Date != logs[j].Date {
			return logs[i].Date > logs[j].Date
		}
		return logs[i].ID < logs[j].ID
	})
	return logs, nil
}

func (s *MemoryStore) CreateLog(_ context.Context, log *models.ActionLog) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = uuid.NewString()
	log.CreatedAt = nowMillis()
	if log.Date == 0 {
		log.Date = log.CreatedAt
	}
	s.logs[log.ID] = *log
	return log.ID, nil
}
