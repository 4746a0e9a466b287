package ports

import "context"

type Mailer interface {
	// SendResetCode delivers the one-time code. Callers treat a failure as
	// fatal to the reset request.
	SendResetCode(ctx context.Context, email, code string) error
	// SendAccountDeleted notifies the owner of a removed account.
	// Best-effort; callers log and ignore failures.
	SendAccountDeleted(ctx context.Context, email, fullName, reason string) error
}
