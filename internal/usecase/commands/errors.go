package commands

import (
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/errs"
)

var (
	ErrSkillNotFound          = errs.New("skill not found")
	ErrSessionNotFound        = errs.New("session not found")
	ErrUserNotFound           = errs.New("user not found")
	ErrNotRegistered          = errs.New("caller is not a registered user")
	ErrAlreadyRegistered      = errs.New("identity is already registered")
	ErrSlotConflict           = errs.New("slot is no longer available")
	ErrDuplicateRequest       = errs.New("idempotency key reused with a different request")
	ErrRequestInProgress      = errs.New("request with this idempotency key is still in progress")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrStoreFailure           = errs.New("local store operation failed")
	ErrRegistryFailure        = errs.New("registry call failed")
)

// validation marks err as a caller input problem.
func validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func notFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Mark(err, sentinel), errs.ErrNotFound)
	}
	return errs.Mark(err, ErrStoreFailure)
}
