package db

import (
	stdErrors "errors"
	"strings"

	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
	"github.com/smoralesdev/franchise-backend/pkg/resilience"
	"gorm.io/gorm"
)

// IsNotFound reports whether the error is GORM's empty-result marker. The
// shared resilience policy treats these as ignored outcomes: an absent row is
// an answer, not a sign of database trouble.
func IsNotFound(err error) bool {
	return stdErrors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether the provided error references a Postgres
// unique violation constraint. When constraintName is provided, the helper looks
// for the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value")
}

// WrapGatewayError classifies the outcome of a policy-wrapped database call
// into the failure taxonomy. Pre-flight rejections and timeouts keep their own
// codes so the boundary can render them distinctly; unique violations surface
// as conflicts (the DB constraint is the last line of defense against
// concurrent duplicate creates); anything else is a dependency failure.
func WrapGatewayError(err error, msg string) *pkgerrors.Error {
	if err == nil {
		return nil
	}
	switch {
	case stdErrors.Is(err, resilience.ErrCircuitOpen):
		return pkgerrors.Wrap(pkgerrors.CodeUnavailable, err, msg)
	case stdErrors.Is(err, resilience.ErrBulkheadFull):
		return pkgerrors.Wrap(pkgerrors.CodeOverload, err, msg)
	case stdErrors.Is(err, resilience.ErrTimeout):
		return pkgerrors.Wrap(pkgerrors.CodeTimeout, err, msg)
	case IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, msg)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, msg)
	}
}
