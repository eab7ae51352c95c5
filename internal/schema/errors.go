package schema

import (
	"errors"
	"fmt"
)

// ErrValidation is matched (via [errors.Is]) by every [*ValidationError].
var ErrValidation = errors.New("invalid configuration")

// ValidationError reports one problem found while normalizing the raw
// configuration tree. Path is the dotted location of the offending node,
// e.g. "endpoints.billing.aws.credentials.secret_key".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s at %q: %s", ErrValidation, e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Reasons used in validation errors.
const (
	reasonRequired     = "is required"
	reasonEmpty        = "cannot be empty"
	reasonNotMapping   = "must be a mapping"
	reasonNotScalar    = "must be a scalar value"
	reasonNotBool      = "must be a boolean"
	reasonUnrecognized = "unrecognized option"
	reasonDuplicate    = "duplicate endpoint name"
	reasonNoEndpoints  = "at least one endpoint must be configured"
	reasonConflict     = "cannot be combined with"
)
