package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field length and format constraints for User.
const (
	MaxNameLength  = 50
	MaxEmailLength = 255

	// MinPasswordLength is the minimum accepted plaintext password length.
	MinPasswordLength = 6
	// MaxPasswordLength matches bcrypt's 72-byte input limit.
	MaxPasswordLength = 72
)

// emailPattern is a deliberately conservative email shape check. Uniqueness
// and deliverability are enforced elsewhere; this only rejects obviously
// malformed addresses.
var emailPattern = regexp.MustCompile(`^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// User represents a registered user of the Ripple application.
// It contains essential user information and authentication details.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`

	// Password holds the plaintext only transiently during registration
	// and password changes. It is never persisted or serialized.
	Password       string `json:"-"`
	HashedPassword string `json:"-"`

	// RememberDigest is the one-way digest of the most recently issued
	// remember token, or nil when no token is outstanding. The plaintext
	// token itself is never stored.
	RememberDigest *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email and password.
// It generates a new UUID for the user ID, normalizes the email, and sets
// the creation/update timestamps. Returns a ValidationError enumerating
// every violated constraint if validation fails.
//
// NOTE: The caller is responsible for hashing the password before storage.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	user.Normalize()

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail lowercases and trims an email address the same way the
// persistence path does, so lookups match stored values.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize applies canonical formatting to user fields prior to
// validation and persistence. Email comparison is case-insensitive
// everywhere, so the stored form is always lowercase.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)
}

// Validate checks if the User has valid data.
// All violated constraints are collected into a single ValidationError
// rather than returning on the first failure.
func (u *User) Validate() error {
	errs := newFieldErrors()

	if u.ID == uuid.Nil {
		errs.Add("id", "cannot be empty")
	}

	if u.Name == "" {
		errs.Add("name", "cannot be empty")
	} else if len(u.Name) > MaxNameLength {
		errs.Add("name", "must be at most 50 characters")
	}

	switch {
	case u.Email == "":
		errs.Add("email", "cannot be empty")
	case len(u.Email) > MaxEmailLength:
		errs.Add("email", "must be at most 255 characters")
	case !emailPattern.MatchString(u.Email):
		errs.Add("email", "is not a valid email address")
	}

	if u.Password != "" {
		// When a plaintext password is present, validate its length.
		if len(u.Password) < MinPasswordLength {
			errs.Add("password", "must be at least 6 characters")
		} else if len(u.Password) > MaxPasswordLength {
			errs.Add("password", "must be at most 72 characters")
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		errs.Add("password", "cannot be empty")
	}

	if len(errs.Violations) > 0 {
		return errs
	}
	return nil
}
