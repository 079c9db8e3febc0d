package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/session"
	"github.com/horizonhq/horizon-api/internal/storage"
)

type dreamTestEnv struct {
	store    storage.Store
	sessions *session.Manager
	dreams   *DreamService
	goals    *GoalService
}

func setupDreamTestEnv(t *testing.T) dreamTestEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	sessions := session.NewManager(store)
	dreams := NewDreamService(store, sessions)
	goals := NewGoalService(store, dreams, sessions)

	return dreamTestEnv{
		store:    store,
		sessions: sessions,
		dreams:   dreams,
		goals:    goals,
	}
}

func validDreamInput() CreateDreamInput {
	return CreateDreamInput{
		Title:    "Sail across the Atlantic",
		Category: models.CategoryPersonal,
		Horizon:  models.HorizonTenYears,
	}
}

func TestDreamService_Create(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)
	require.NotEmpty(t, dream.ID)
	require.Equal(t, "u1", dream.UserID)
	require.False(t, dream.IsArchived)
}

func TestDreamService_CreateValidation(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	input := validDreamInput()
	input.Title = "   "
	_, err := env.dreams.Create(ctx, "u1", input)
	require.ErrorIs(t, err, ErrTitleRequired)

	input = validDreamInput()
	input.Category = "Astrology"
	_, err = env.dreams.Create(ctx, "u1", input)
	require.ErrorIs(t, err, ErrInvalidCategory)

	input = validDreamInput()
	input.Horizon = "2 Weeks"
	_, err = env.dreams.Create(ctx, "u1", input)
	require.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestDreamService_CreatePatchesSnapshot(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	env.sessions.Load(ctx, "u1")

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)

	snap, ok := env.sessions.Get("u1")
	require.True(t, ok)
	require.Len(t, snap.Dreams, 1)
	require.Equal(t, dream.ID, snap.Dreams[0].ID)
}

func TestDreamService_Update(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)

	title := "Sail around the world"
	updated, err := env.dreams.Update(ctx, "u1", dream.ID, UpdateDreamInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	// unset fields are untouched
	require.Equal(t, models.CategoryPersonal, updated.Category)

	empty := " "
	_, err = env.dreams.Update(ctx, "u1", dream.ID, UpdateDreamInput{Title: &empty})
	require.ErrorIs(t, err, ErrTitleRequired)
}

func TestDreamService_ForeignDreamIsNotFound(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "owner", validDreamInput())
	require.NoError(t, err)

	_, err = env.dreams.Find(ctx, "intruder", dream.ID)
	require.ErrorIs(t, err, ErrDreamNotFound)

	title := "hijacked"
	_, err = env.dreams.Update(ctx, "intruder", dream.ID, UpdateDreamInput{Title: &title})
	require.ErrorIs(t, err, ErrDreamNotFound)

	_, err = env.dreams.Archive(ctx, "intruder", dream.ID)
	require.ErrorIs(t, err, ErrDreamNotFound)
}

func TestDreamService_Archive(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)

	archived, err := env.dreams.Archive(ctx, "u1", dream.ID)
	require.NoError(t, err)
	require.True(t, archived.IsArchived)

	// archived dreams stay listed; views filter them out
	dreams, err := env.dreams.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, dreams, 1)
}
