package models

// AccountType distinguishes guest sessions from registered accounts.
type AccountType string

const (
	AccountTypeGuest      AccountType = "guest"
	AccountTypeRegistered AccountType = "registered"
)

// User is the session principal. Field names follow the persisted
// camelCase entity shape; PasswordHash never leaves the server.
type User struct {
	ID           string      `json:"uid" bson:"_id"`
	Email        *string     `json:"email" bson:"email"`
	DisplayName  string      `json:"displayName" bson:"displayName"`
	PhotoURL     string      `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	AccountType  AccountType `json:"accountType" bson:"accountType"`
	PasswordHash string      `json:"-" bson:"passwordHash,omitempty"`
	CreatedAt    int64       `json:"createdAt" bson:"createdAt"`
}
