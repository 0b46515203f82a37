package models

// User is one credential record in users.json. Username uniqueness is
// case-insensitive. PasswordHash is always a bcrypt hash; the "PLAINTEXT::"
// sentinel the mobile app wrote when bcrypt was missing is rejected on login.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}
