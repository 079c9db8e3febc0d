// Package storage is the persistence gateway: a uniform contract over
// "list all records of a type for a user" and "create/update a record",
// implemented against an in-memory store, a local JSON file, a relational
// database and a Mongo document store. Backends translate their own field
// naming and timestamp representation at this boundary so callers only
// ever see the camelCase, epoch-millis entity shapes in models.
package storage

import (
	"context"
	"errors"

	"github.com/horizonhq/horizon-api/internal/models"
)

// ErrNotFound is returned when a record does not exist in the backend.
var ErrNotFound = errors.New("storage: record not found")

// Store is the gateway contract. Every create assigns the record ID and
// stamps createdAt/updatedAt; every update stamps updatedAt. List
// operations return only records owned by the given user. The gateway
// performs no retries and no caching; concurrent writers to the same
// record are resolved last-write-wins.
type Store interface {
	// Users (session principals; created at sign-up, never mutated here).
	GetUser(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)

	// Dreams.
	ListDreams(ctx context.Context, userID string) ([]models.Dream, error)
	CreateDream(ctx context.Context, dream *models.Dream) (string, error)
	UpdateDream(ctx context.Context, id string, upd DreamUpdate) error

	// Goals.
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	CreateGoal(ctx context.Context, goal *models.Goal) (string, error)
	UpdateGoal(ctx context.Context, id string, upd GoalUpdate) error

	// Action logs, always listed sorted by date descending.
	ListLogs(ctx context.Context, userID string) ([]models.ActionLog, error)
	CreateLog(ctx context.Context, log *models.ActionLog) (string, error)
}

// DreamUpdate is a partial dream mutation. Nil fields are left untouched.
// The owning user ID is immutable and deliberately absent.
type DreamUpdate struct {
	Title       *string
	Description *string
	Category    *models.DreamCategory
	Horizon     *models.TimeHorizon
	IsArchived  *bool
}

// GoalUpdate is a partial goal mutation. Progress and Status are always
// set together by callers so the status invariant holds after the write.
type GoalUpdate struct {
	Title         *string
	Status        *models.GoalStatus
	Progress      *int
	Deadline      *int64
	ClearDeadline bool
}
