package domain

// User models a registered account. Username is stored lowercased; the
// repository enforces uniqueness with a unique index.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
