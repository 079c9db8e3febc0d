package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/horizonhq/horizon-api/internal/models"
)

// Top-level keys of the file document. This layout is a preserved
// contract: a single JSON object whose keys mirror the browser
// local-storage revision of the app, each holding camelCase entity
// shapes.
const (
	FileKeyUser   = "horizon_user"
	FileKeyDreams = "horizon_dreams"
	FileKeyGoals  = "horizon_goals"
	FileKeyLogs   = "horizon_logs"
)

type fileDocument struct {
	User   *models.User       `json:"horizon_user"`
	Dreams []models.Dream     `json:"horizon_dreams"`
	Goals  []models.Goal      `json:"horizon_goals"`
	Logs   []models.ActionLog `json:"horizon_logs"`
}

// FileStore persists everything in one JSON file. Like the browser
// storage it mirrors, it holds a single user profile; creating a user
// replaces the previous one.
type FileStore struct {
	path string

	mu  sync.Mutex
	doc fileDocument
}

// OpenFileStore loads (or initializes) the JSON document at path.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	return s, nil
}

// persist writes the whole document back to disk. Caller holds s.mu.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

func (s *FileStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.User == nil || s.doc.User.ID != id {
		return nil, ErrNotFound
	}
	u := *s.doc.User
	return &u, nil
}

func (s *FileStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.doc.User
	if u == nil || u.Email == nil || *u.Email != email {
		return nil, ErrNotFound
	}
	user := *u
	return &user, nil
}

func (s *FileStore) CreateUser(_ context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = nowMillis()
	u := *user
	s.doc.User = &u
	return user.ID, s.persist()
}

func (s *FileStore) ListDreams(_ context.Context, userID string) ([]models.Dream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dreams := make([]models.Dream, 0)
	for _, d := range s.doc.Dreams {
		if d.UserID == userID {
			dreams = append(dreams, d)
		}
	}
	return dreams, nil
}

// CreateDream prepends so newly added dreams list first, matching the
// in-memory backend's newest-first order.
func (s *FileStore) CreateDream(_ context.Context, dream *models.Dream) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowMillis()
	dream.ID = uuid.NewString()
	dream.CreatedAt = now
	dream.UpdatedAt = now
	s.doc.Dreams = append([]models.Dream{*dream}, s.doc.Dreams...)
	return dream.ID, s.persist()
}

func (s *FileStore) UpdateDream(_ context.Context, id string, upd DreamUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Dreams {
		if s.doc.Dreams[i].ID != id {
			continue
		}
		d := &s.doc.Dreams[i]
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
		return s.persist()
	}
	return ErrNotFound
}

func (s *FileStore) ListGoals(_ context.Context, userID string) ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]models.Goal, 0)
	for _, g := range s.doc.Goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (s *FileStore) CreateGoal(_ context.Context, goal *models.Goal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowMillis()
	goal.ID = uuid.NewString()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	s.doc.Goals = append(s.doc.Goals, *goal)
	return goal.ID, s.persist()
}

func (s *FileStore) UpdateGoal(_ context.Context, id string, upd GoalUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Goals {
		if s.doc.Goals[i].ID != id {
			continue
		}
		g := &s.doc.Goals[i]
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
		return s.persist()
	}
	return ErrNotFound
}

// ListLogs sorts on read so back-dated entries land in the right place.
func (s *FileStore) ListLogs(_ context.Context, userID string) ([]models.ActionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]models.ActionLog, 0)
	for _, l := range s.doc.Logs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs, nil
}

func (s *FileStore) CreateLog(_ context.Context, log *models.ActionLog) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = uuid.NewString()
	log.CreatedAt = nowMillis()
	if log.Date == 0 {
		log.Date = log.CreatedAt
	}
	s.doc.Logs = append(s.doc.Logs, *log)
	return log.ID, s.persist()
}
