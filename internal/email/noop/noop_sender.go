package noop

import (
	"context"
	"log"

	"gstbilling/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs outbound mail to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) Send(_ context.Context, to, subject, _, textBody string) error {
	log.Printf("[NOOP EMAIL] To %s: %s\n%s", to, subject, textBody)
	return nil
}
