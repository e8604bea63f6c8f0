package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the catalog.
// A user owns zero or more profiles.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during signup/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Profiles       []Profile `json:"profiles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email and plaintext password.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password,
		Profiles:  []Profile{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrInvalidID)
	}
	if u.Name == "" {
		return NewValidationError("name", "is required", nil)
	}
	if u.Email == "" {
		return NewValidationError("email", "is required", nil)
	}
	if !validateEmailFormat(u.Email) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	// Stored users carry only the hash; new or updated users carry the plaintext.
	if u.Password == "" && u.HashedPassword == "" {
		return NewValidationError("password", "is required", nil)
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address so that uniqueness and
// lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmailFormat checks for a single @ with non-empty local and domain parts.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Count(email, "@") != 1 || strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	return true
}
