package notify

import "context"

// Sender delivers a notification to a recipient. Implementations are
// collaborators; callers treat failures as non-fatal.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
