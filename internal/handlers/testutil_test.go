package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/horizonhq/horizon-api/internal/constants"
	"github.com/horizonhq/horizon-api/internal/middleware"
	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/services"
	"github.com/horizonhq/horizon-api/internal/session"
	"github.com/horizonhq/horizon-api/internal/storage"
)

type handlerTestEnv struct {
	store       *storage.MemoryStore
	snapshots   *session.Manager
	authService *services.AuthService
	dreams      *services.DreamService
	goals       *services.GoalService
	logs        *services.LogService
	router      *gin.Engine
}

func setupHandlerTestEnv(t *testing.T) *handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	snapshots := session.NewManager(store)
	authService := services.NewAuthService(store)
	dreamService := services.NewDreamService(store, snapshots)
	goalService := services.NewGoalService(store, dreamService, snapshots)
	logService := services.NewLogService(store, snapshots)

	authHandler := NewAuthHandler(authService, snapshots)
	dreamHandler := NewDreamHandler(dreamService, goalService, nil)
	goalHandler := NewGoalHandler(goalService)
	logHandler := NewLogHandler(logService)
	dashboardHandler := NewDashboardHandler(snapshots)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/guest", authHandler.Guest)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		api.GET("/quotes/random", RandomQuote)

		dreams := api.Group("/dreams")
		dreams.Use(middleware.RequireAuth())
		{
			dreams.GET("", dreamHandler.ListDreams)
			dreams.POST("", dreamHandler.CreateDream)
			dreams.PATCH("/:id", dreamHandler.UpdateDream)
			dreams.POST("/:id/archive", dreamHandler.ArchiveDream)
			dreams.GET("/:id/goals", middleware.RequireDreamAccess(dreamService), dreamHandler.ListDreamGoals)
			dreams.POST("/:id/goals", middleware.RequireDreamAccess(dreamService), dreamHandler.CreateDreamGoal)
			dreams.POST("/:id/goals/suggest", middleware.RequireDreamAccess(dreamService), dreamHandler.SuggestGoals)
		}

		goals := api.Group("/goals")
		goals.Use(middleware.RequireAuth())
		{
			goals.GET("", goalHandler.ListGoals)
			goals.PATCH("/:id/progress", goalHandler.UpdateGoalProgress)
		}

		logs := api.Group("/logs")
		logs.Use(middleware.RequireAuth())
		{
			logs.GET("", logHandler.ListLogs)
			logs.POST("", logHandler.CreateLog)
		}

		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.GetDashboard)
		api.GET("/session/snapshot", middleware.RequireAuth(), dashboardHandler.GetSnapshot)
	}

	return &handlerTestEnv{
		store:       store,
		snapshots:   snapshots,
		authService: authService,
		dreams:      dreamService,
		goals:       goalService,
		logs:        logService,
		router:      r,
	}
}

// doJSON performs a request against the test router, carrying the given
// session cookies.
func (env *handlerTestEnv) doJSON(t *testing.T, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// loginAsGuest creates a guest account and returns it with its session
// cookies for follow-up requests.
func (env *handlerTestEnv) loginAsGuest(t *testing.T) (*models.User, []*http.Cookie) {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/api/auth/guest", map[string]string{"displayName": "Tester"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		UID string `json:"uid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.UID)

	user, err := env.authService.GetUser(context.Background(), resp.UID)
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return user, cookies
}
