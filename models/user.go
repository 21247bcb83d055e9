package models

// User represents a task tracker account.
//
// Password is stored exactly as the user typed it unless password hashing is
// enabled in the configuration. Streak is persisted but never incremented.
type User struct {
	// UserID is the store-assigned surrogate key.
	UserID int64 `json:"user_id"`

	// Login is the globally unique username.
	Login string `json:"login"`

	// Password is the stored credential (plain text by default).
	Password string `json:"-"`

	// Streak is a counter initialized to 0 on account creation.
	Streak int64 `json:"streak"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
