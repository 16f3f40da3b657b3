package contextkeys

type contextKey string

const (
	UserIDKey      contextKey = "UserID"
	UserProfileKey contextKey = "UserProfile"
)
