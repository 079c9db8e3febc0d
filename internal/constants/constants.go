package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "horizon_session"

	// ContextKeyUserID is the gin context / session key holding the
	// authenticated user's ID.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum password length for signup.
	MinPasswordLength = 8

	// RecentLogsLimit is how many action logs the dashboard shows.
	RecentLogsLimit = 5

	// DreamHealthLimit is how many dreams the dashboard health panel shows.
	DreamHealthLimit = 3

	// MaxSuggestedGoals caps the number of AI-suggested goals per request.
	MaxSuggestedGoals = 5

	// MaxProgress is the upper bound of a goal's progress percentage.
	MaxProgress = 100
)
