package constant

import "github.com/pkg/errors"

const (
	ValidationErrMsg  = "validation failed"
	NotFoundErrMsg    = "entry not found"
	ConflictErrMsg    = "transition not permitted"
	PersistenceErrMsg = "persistence failure"
)

var (
	// ValidationErr marks malformed or missing required input.
	ValidationErr = errors.New(ValidationErrMsg)
	// NotFoundErr marks an unknown token.
	NotFoundErr = errors.New(NotFoundErrMsg)
	// ConflictErr marks a lifecycle transition rejected from the current state.
	ConflictErr = errors.New(ConflictErrMsg)
	// PersistenceErr marks an external storage failure; surfaced, never retried here.
	PersistenceErr = errors.New(PersistenceErrMsg)

	InvalidCredentialsErr = errors.New("invalid credentials")
)
