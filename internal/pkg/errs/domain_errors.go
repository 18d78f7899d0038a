package errs

// Cross-layer categories. Concrete errors are marked with one of these so
// handlers can branch on errors.Is without knowing the origin package.
var (
	ErrValidation    = New("validation error")
	ErrUnauthorized  = New("caller not authorized")
	ErrNotFound      = New("not found")
	ErrConflict      = New("conflict")
	ErrPaymentFailed = New("payment failed")
	ErrAwardPending  = New("award pending")
	ErrUpstream      = New("upstream collaborator failure")
)
