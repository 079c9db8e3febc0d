// Package session owns the per-user in-memory collections. All reads go
// through snapshots and all mutation is funneled through Manager methods;
// no other component holds a writable reference to the collections.
package session

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/storage"
)

// Phase is the data-loading state of an authenticated session.
type Phase string

const (
	PhaseDataLoading Phase = "DataLoading"
	PhaseDataReady   Phase = "DataReady"
)

// Snapshot is one user's in-memory view of their collections.
type Snapshot struct {
	Phase  Phase              `json:"phase"`
	Dreams []models.Dream     `json:"dreams"`
	Goals  []models.Goal      `json:"goals"`
	Logs   []models.ActionLog `json:"logs"`
}

// Manager loads and caches per-user snapshots over the persistence
// gateway. Snapshots are patched after confirmed gateway writes, so a
// failed write never leaves the snapshot ahead of the store.
type Manager struct {
	store storage.Store

	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

func NewManager(store storage.Store) *Manager {
	return &Manager{
		store:     store,
		snapshots: make(map[string]*Snapshot),
	}
}

// Load fetches the user's three collections concurrently and caches the
// result. A failed fetch is logged and leaves that collection empty; the
// snapshot still reaches DataReady once all three calls settle, so one
// bad collection never blocks the rest of the view.
func (m *Manager) Load(ctx context.Context, userID string) Snapshot {
	m.mu.Lock()
	m.snapshots[userID] = &Snapshot{
		Phase:  PhaseDataLoading,
		Dreams: []models.Dream{},
		Goals:  []models.Goal{},
		Logs:   []models.ActionLog{},
	}
	m.mu.Unlock()

	var (
		wg     sync.WaitGroup
		dreams []models.Dream
		goals  []models.Goal
		logs   []models.ActionLog
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if dreams, err = m.store.ListDreams(ctx, userID); err != nil {
			logrus.WithError(err).WithField("userId", userID).Warn("failed to load dreams")
			dreams = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if goals, err = m.store.ListGoals(ctx, userID); err != nil {
			logrus.WithError(err).WithField("userId", userID).Warn("failed to load goals")
			goals = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if logs, err = m.store.ListLogs(ctx, userID); err != nil {
			logrus.WithError(err).WithField("userId", userID).Warn("failed to load logs")
			logs = nil
		}
	}()
	wg.Wait()

	snap := &Snapshot{
		Phase:  PhaseDataReady,
		Dreams: emptyIfNil(dreams),
		Goals:  emptyIfNil(goals),
		Logs:   emptyIfNil(logs),
	}

	m.mu.Lock()
	m.snapshots[userID] = snap
	m.mu.Unlock()

	return copySnapshot(snap)
}

// Get returns the cached snapshot for a user, if one has been loaded.
func (m *Manager) Get(userID string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snapshots[userID]
	if !ok {
		return Snapshot{}, false
	}
	return copySnapshot(snap), true
}

// Invalidate drops a user's snapshot on sign-out. No gateway calls are
// made; the backend retains the records for the next session.
func (m *Manager) Invalidate(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, userID)
}

// ApplyDreamCreated prepends a confirmed new dream.
func (m *Manager) ApplyDreamCreated(userID string, dream models.Dream) {
	m.patch(userID, func(s *Snapshot) {
		s.Dreams = append([]models.Dream{dream}, s.Dreams...)
	})
}

// ApplyDreamUpdated replaces a dream in place.
func (m *Manager) ApplyDreamUpdated(userID string, dream models.Dream) {
	m.patch(userID, func(s *Snapshot) {
		for i := range s.Dreams {
			if s.Dreams[i].ID == dream.ID {
				s.Dreams[i] = dream
				return
			}
		}
	})
}

// ApplyGoalCreated appends a confirmed new goal.
func (m *Manager) ApplyGoalCreated(userID string, goal models.Goal) {
	m.patch(userID, func(s *Snapshot) {
		s.Goals = append(s.Goals, goal)
	})
}

// ApplyGoalUpdated replaces a goal in place.
func (m *Manager) ApplyGoalUpdated(userID string, goal models.Goal) {
	m.patch(userID, func(s *Snapshot) {
		for i := range s.Goals {
			if s.Goals[i].ID == goal.ID {
				s.Goals[i] = goal
				return
			}
		}
	})
}

// ApplyLogCreated inserts a confirmed log entry keeping the collection
// sorted by date descending, so back-dated entries land where a re-read
// would place them.
func (m *Manager) ApplyLogCreated(userID string, log models.ActionLog) {
	m.patch(userID, func(s *Snapshot) {
		s.Logs = append(s.Logs, log)
		sort.SliceStable(s.Logs, func(i, j int) bool {
			return s.Logs[i].Date > s.Logs[j].Date
		})
	})
}

// patch mutates a cached snapshot if one exists. Users without a loaded
// snapshot simply get fresh data on their next Load.
func (m *Manager) patch(userID string, fn func(*Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if snap, ok := m.snapshots[userID]; ok {
		fn(snap)
	}
}

func copySnapshot(s *Snapshot) Snapshot {
	out := Snapshot{
		Phase:  s.Phase,
		Dreams: make([]models.Dream, len(s.Dreams)),
		Goals:  make([]models.Goal, len(s.Goals)),
		Logs:   make([]models.ActionLog, len(s.Logs)),
	}
	copy(out.Dreams, s.Dreams)
	copy(out.Goals, s.Goals)
	copy(out.Logs, s.Logs)
	return out
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
