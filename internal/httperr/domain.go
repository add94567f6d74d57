package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInternal
)

// DomainError is the taxonomy every service-level failure collapses
// into: validation (400), unauthorized (401), not found (404),
// conflict (409), internal (500).
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return DomainError{Kind: KindValidation, Code: code, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return DomainError{Kind: KindUnauthorized, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return DomainError{Kind: KindConflict, Code: code, Message: message}
}

func ErrInternal(code, message string) error {
	return DomainError{Kind: KindInternal, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func (k Kind) status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders a DomainError with its mapped status. Anything
// else becomes an opaque 500 so store internals never leak to callers.
func WriteError(c *gin.Context, err error) {
	var de DomainError
	if errors.As(err, &de) {
		Write(c, de.Kind.status(), de.Code, de.Message)
		return
	}
	Internal(c, "internal_error", "Unexpected error.")
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromStore translates relational-store constraint failures into domain
// errors: unique violations become conflicts, missing rows and broken
// references become not-found. Other errors pass through untouched.
func FromStore(err error, notFoundCode, conflictCode string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound(notFoundCode, "Record not found.")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrNotFound(notFoundCode, "Referenced record not found.")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict(conflictCode, "Record already exists.")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrConflict(conflictCode, "Record already exists.")
		case pgForeignKeyViolation:
			return ErrNotFound(notFoundCode, "Referenced record not found.")
		}
	}

	return err
}
