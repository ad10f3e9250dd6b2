package port

import "context"

// EmailSender delivers outbound mail. Implementations: SES, noop.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}
