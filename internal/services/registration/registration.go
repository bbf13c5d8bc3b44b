package registration

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"food-ordering-system/internal/logger"
	"food-ordering-system/internal/models"
)

// Registry holds registered users keyed by email. Each registry is
// owned by one session; there is no shared package-level state.
type Registry struct {
	users map[string]models.UserRecord
	log   *logger.Logger
}

func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		users: make(map[string]models.UserRecord),
		log:   log,
	}
}

// Register runs the registration checks in order, returning on the
// first failure: email shape, password confirmation, strength,
// uniqueness. Successful registrations store a bcrypt hash, never the
// password itself, and start unconfirmed until the confirmation-email
// flow completes elsewhere.
func (r *Registry) Register(email, password, confirmPassword string) models.Result {
	if !isValidEmail(email) {
		return models.Result{Success: false, Message: "Invalid email format"}
	}
	if password != confirmPassword {
		return models.Result{Success: false, Message: "Passwords do not match"}
	}
	if !isStrongPassword(password) {
		return models.Result{Success: false, Message: "Password is not strong enough"}
	}
	if _, exists := r.users[email]; exists {
		return models.Result{Success: false, Message: "Email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		r.log.Error("password_hash_failed", "Failed to hash password", err,
			slog.String("email", email))
		return models.Result{Success: false, Message: "Registration failed"}
	}

	r.users[email] = models.UserRecord{
		Email:        email,
		PasswordHash: hash,
		Confirmed:    false,
	}
	r.log.Info("user_registered", "User registered", slog.String("email", email))

	return models.Result{Success: true, Message: "Registration successful, confirmation email sent"}
}

// Lookup returns the stored record for an email, if any.
func (r *Registry) Lookup(email string) (models.UserRecord, bool) {
	user, ok := r.users[email]
	return user, ok
}

// isValidEmail requires an "@" and a "." somewhere after the last "@".
func isValidEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// isStrongPassword requires at least 8 characters with at least one
// letter and one digit.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
