package models

// UserRecord is a registered user keyed by email. The password is held
// only as a bcrypt hash; registered users start unconfirmed until an
// external confirmation flow flips the flag.
type UserRecord struct {
	Email        string `json:"email"`
	PasswordHash []byte `json:"-"`
	Confirmed    bool   `json:"confirmed"`
}
