package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/horizonhq/horizon-api/internal/models"
)

func TestGoalService_Create(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)

	goal, err := env.goals.Create(ctx, "u1", CreateGoalInput{
		DreamID: dream.ID,
		Title:   "Get a skipper license",
	})
	require.NoError(t, err)
	require.Equal(t, models.GoalStatusNotStarted, goal.Status)
	require.Equal(t, 0, goal.Progress)

	_, err = env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: " "})
	require.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.goals.Create(ctx, "intruder", CreateGoalInput{DreamID: dream.ID, Title: "steal"})
	require.ErrorIs(t, err, ErrDreamNotFound)
}

func TestGoalService_UpdateProgress(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)
	goal, err := env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: "g"})
	require.NoError(t, err)

	updated, err := env.goals.UpdateProgress(ctx, "u1", goal.ID, 40)
	require.NoError(t, err)
	require.Equal(t, 40, updated.Progress)
	require.Equal(t, models.GoalStatusInProgress, updated.Status)

	updated, err = env.goals.UpdateProgress(ctx, "u1", goal.ID, 100)
	require.NoError(t, err)
	require.Equal(t, models.GoalStatusCompleted, updated.Status)

	updated, err = env.goals.UpdateProgress(ctx, "u1", goal.ID, 0)
	require.NoError(t, err)
	require.Equal(t, models.GoalStatusNotStarted, updated.Status)
}

func TestGoalService_UpdateProgressClamps(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)
	goal, err := env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: "g"})
	require.NoError(t, err)

	updated, err := env.goals.UpdateProgress(ctx, "u1", goal.ID, 250)
	require.NoError(t, err)
	require.Equal(t, 100, updated.Progress)
	require.Equal(t, models.GoalStatusCompleted, updated.Status)

	updated, err = env.goals.UpdateProgress(ctx, "u1", goal.ID, -5)
	require.NoError(t, err)
	require.Equal(t, 0, updated.Progress)
	require.Equal(t, models.GoalStatusNotStarted, updated.Status)
}

func TestGoalService_ForeignGoalIsNotFound(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "owner", validDreamInput())
	require.NoError(t, err)
	goal, err := env.goals.Create(ctx, "owner", CreateGoalInput{DreamID: dream.ID, Title: "g"})
	require.NoError(t, err)

	_, err = env.goals.UpdateProgress(ctx, "intruder", goal.ID, 50)
	require.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalService_ListForDream(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)
	other, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)

	g1, err := env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: "a"})
	require.NoError(t, err)
	g2, err := env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: "b"})
	require.NoError(t, err)
	_, err = env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: other.ID, Title: "elsewhere"})
	require.NoError(t, err)

	_, err = env.goals.UpdateProgress(ctx, "u1", g1.ID, 40)
	require.NoError(t, err)
	_, err = env.goals.UpdateProgress(ctx, "u1", g2.ID, 70)
	require.NoError(t, err)

	goals, progress, err := env.goals.ListForDream(ctx, "u1", dream.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, 55, progress)
}

// Completing one goal moves the whole dream forward: two goals at 40 and
// 70 average to 55, and finishing the first lifts the dream to 85.
func TestGoalService_CompletionLiftsDreamProgress(t *testing.T) {
	env := setupDreamTestEnv(t)
	ctx := context.Background()

	dream, err := env.dreams.Create(ctx, "u1", validDreamInput())
	require.NoError(t, err)
	g1, err := env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: "a"})
	require.NoError(t, err)
	g2, err := env.goals.Create(ctx, "u1", CreateGoalInput{DreamID: dream.ID, Title: "b"})
	require.NoError(t, err)

	_, err = env.goals.UpdateProgress(ctx, "u1", g1.ID, 40)
	require.NoError(t, err)
	_, err = env.goals.UpdateProgress(ctx, "u1", g2.ID, 70)
	require.NoError(t, err)

	_, progress, err := env.goals.ListForDream(ctx, "u1", dream.ID)
	require.NoError(t, err)
	require.Equal(t, 55, progress)

	_, err = env.goals.UpdateProgress(ctx, "u1", g1.ID, 100)
	require.NoError(t, err)

	_, progress, err = env.goals.ListForDream(ctx, "u1", dream.ID)
	require.NoError(t, err)
	require.Equal(t, 85, progress)
}
