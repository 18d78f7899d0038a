package session

import "skill-swap-core/internal/pkg/errs"

var (
	ErrNotTeacher       = errs.New("only the teacher of record may complete the session")
	ErrNotStudent       = errs.New("only the student of record may cancel the session")
	ErrAlreadyCompleted = errs.New("session already completed")
	ErrAlreadyCancelled = errs.New("session already cancelled")
	ErrSessionCancelled = errs.New("session was cancelled")
	ErrAwardNotAwaited  = errs.New("session is not awaiting an award")
	ErrAlreadyAwarded   = errs.New("session award already issued")
	ErrEmptyAssetID     = errs.New("awarded asset id must not be empty")
)

// AwardStatus tracks the single asset award of a session.
type AwardStatus string

const (
	AwardNone    AwardStatus = "none"
	AwardMinting AwardStatus = "minting"
	AwardIssued  AwardStatus = "issued"
	AwardPending AwardStatus = "pending"
)

func (s AwardStatus) String() string { return string(s) }

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)
