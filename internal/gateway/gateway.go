// Package gateway abstracts the outbound messaging transport. The contact
// address format is transport-specific; send failures are expected and left
// to callers to log and skip.
package gateway

import "context"

// Sender delivers one text part to a contact address.
type Sender interface {
	Send(ctx context.Context, to, text string) error
}
