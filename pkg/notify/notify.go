// Package notify delivers the rendered report.
package notify

import "context"

// Notifier sends one report body to its destination.
type Notifier interface {
	Send(ctx context.Context, body string) error
}
