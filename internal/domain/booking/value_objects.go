package booking

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName   = errors.New("name must be at least 2 characters")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidPhone  = errors.New("phone number must be at least 10 characters")
	ErrInvalidStatus = errors.New("invalid booking status")
)

const (
	MinNameLength  = 2
	MinPhoneLength = 10
)

var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Status string

const (
	// StatusPending is a valid stored value but no flow creates it.
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	phone = strings.TrimSpace(phone)

	if utf8.RuneCountInString(name) < MinNameLength {
		return Contact{}, ErrInvalidName
	}
	if !EmailPattern.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}
	if utf8.RuneCountInString(phone) < MinPhoneLength {
		return Contact{}, ErrInvalidPhone
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

// ReconstructContact restores a stored contact without re-validating it.
func ReconstructContact(name, email, phone string) Contact {
	return Contact{name: name, email: email, phone: phone}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }
