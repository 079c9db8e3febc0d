package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/horizonhq/horizon-api/internal/dto"
	"github.com/horizonhq/horizon-api/internal/models"
)

func validDreamPayload() map[string]any {
	return map[string]any{
		"title":       "Open a bakery",
		"description": "A small neighborhood sourdough bakery.",
		"category":    string(models.CategoryCareer),
		"horizon":     string(models.HorizonFiveYears),
	}
}

func TestDreamHandler_CreateAndList(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPost, "/api/dreams", validDreamPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, 0, created.Progress)

	w = env.doJSON(t, http.MethodGet, "/api/dreams", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Dreams []dto.DreamDTO `json:"dreams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Dreams, 1)
	require.Equal(t, "Open a bakery", list.Dreams[0].Title)
}

func TestDreamHandler_CreateRejectsBadCategory(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	payload := validDreamPayload()
	payload["category"] = "Astrology"
	w := env.doJSON(t, http.MethodPost, "/api/dreams", payload, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDreamHandler_Update(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPost, "/api/dreams", validDreamPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.doJSON(t, http.MethodPatch, "/api/dreams/"+created.ID, map[string]any{
		"title": "Open two bakeries",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Open two bakeries", updated.Title)
	require.Equal(t, models.CategoryCareer, updated.Category)
}

func TestDreamHandler_UpdateMissingDream(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPatch, "/api/dreams/nope", map[string]any{"title": "x"}, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDreamHandler_Archive(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPost, "/api/dreams", validDreamPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.doJSON(t, http.MethodPost, "/api/dreams/"+created.ID+"/archive", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var archived dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &archived))
	require.True(t, archived.IsArchived)
}

func TestDreamHandler_ArchiveKeepsDerivedProgress(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)
	dream, goal := env.createDreamWithGoal(t, cookies)

	w := env.doJSON(t, http.MethodPatch, "/api/goals/"+goal.ID+"/progress", map[string]any{
		"progress": 50,
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/dreams/"+dream.ID+"/archive", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var archived dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &archived))
	require.True(t, archived.IsArchived)
	require.Equal(t, 50, archived.Progress)
}

func TestDreamHandler_ForeignDreamYields404(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, ownerCookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPost, "/api/dreams", validDreamPayload(), ownerCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	_, intruderCookies := env.loginAsGuest(t)

	w = env.doJSON(t, http.MethodGet, "/api/dreams/"+created.ID+"/goals", nil, intruderCookies)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodPatch, "/api/dreams/"+created.ID, map[string]any{"title": "x"}, intruderCookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDreamHandler_GoalsUnderDream(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPost, "/api/dreams", validDreamPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var dream dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dream))

	w = env.doJSON(t, http.MethodPost, "/api/dreams/"+dream.ID+"/goals", map[string]any{
		"title": "Find a storefront",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var goal models.Goal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))
	require.Equal(t, models.GoalStatusNotStarted, goal.Status)

	w = env.doJSON(t, http.MethodGet, "/api/dreams/"+dream.ID+"/goals", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Goals    []models.Goal `json:"goals"`
		Progress int           `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Goals, 1)
	require.Equal(t, 0, resp.Progress)
}

func TestDreamHandler_SuggestWithoutMentor(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.loginAsGuest(t)

	w := env.doJSON(t, http.MethodPost, "/api/dreams", validDreamPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var dream dto.DreamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dream))

	w = env.doJSON(t, http.MethodPost, "/api/dreams/"+dream.ID+"/goals/suggest", nil, cookies)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
