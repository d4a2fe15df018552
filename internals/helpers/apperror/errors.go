package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind sentinels; cek dengan errors.Is(err, apperror.ErrNotFound).
var (
	ErrValidation          = errors.New("validation error")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidSharedSecret = errors.New("invalid shared secret")
	ErrNotFound            = errors.New("not found")
	ErrStorage             = errors.New("storage error")
	ErrPersistence         = errors.New("persistence error")
	ErrDuplicate           = errors.New("duplicate")
)

// Error membawa pesan untuk user plus cause internal yang tidak pernah dikirim ke client.
type Error struct {
	Kind    error
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// MissingFields builds the "MissingRequiredField: a, b" validation error.
func MissingFields(fields ...string) *Error {
	return &Error{
		Kind:    ErrValidation,
		Message: "MissingRequiredField: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func Validation(message string) *Error { return New(ErrValidation, message) }

func NotFound(message string) *Error { return New(ErrNotFound, message) }

func Duplicate(message string) *Error { return New(ErrDuplicate, message) }

func Storage(op string, err error) *Error {
	return Wrap(ErrStorage, fmt.Sprintf("failed to %s file", op), err)
}

func Persistence(op string, err error) *Error {
	return Wrap(ErrPersistence, fmt.Sprintf("failed to %s record", op), err)
}

// MessageOf returns the user-facing message for err.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return ""
}

// IsUniqueViolation mendeteksi 23505 dari pgx.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
