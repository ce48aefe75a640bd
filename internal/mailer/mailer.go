package mailer

import "context"

// Mailer delivers a single HTML email. Implementations are external
// collaborators; callers treat any error as a failed dispatch and never
// retry here.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
