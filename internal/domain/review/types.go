package review

import "skill-swap-core/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyComment   = errs.New("comment cannot be empty")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
	ErrNotEligible    = errs.New("student is not eligible to review this skill")
	ErrSelfReview     = errs.New("owners cannot review their own skill")
)
