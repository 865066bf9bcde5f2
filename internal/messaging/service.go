// Package messaging provides the pluggable message transport abstraction
// and the response routing for the coldcalc bot.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Constants for service configuration.
const (
	// DefaultChannelBufferSize is the buffer size for receipt and response channels.
	DefaultChannelBufferSize = 100
	// DefaultChannelTimeout bounds non-blocking channel sends.
	DefaultChannelTimeout = 1 * time.Second
)

// phoneNumberRegex strips everything but digits during canonicalization.
var phoneNumberRegex = regexp.MustCompile(`[^0-9]`)

// Service defines a pluggable message delivery abstraction. It supports
// sending messages and provides channels for receipt and response events.
type Service interface {
	// ValidateAndCanonicalizeRecipient validates and canonicalizes a
	// recipient identifier, returning the canonical form.
	ValidateAndCanonicalizeRecipient(recipient string) (string, error)

	// SendMessage sends a message to a recipient.
	SendMessage(ctx context.Context, to string, body string) error

	// Start begins any background processing (e.g. event polling).
	Start(ctx context.Context) error

	// Stop stops background processing and cleans up resources.
	Stop() error

	// Receipts returns a channel of delivery status events.
	Receipts() <-chan models.Receipt

	// Responses returns a channel of incoming user messages.
	Responses() <-chan models.Response
}

// canonicalizePhoneNumber removes all non-numeric characters and validates
// the result has at least 6 digits.
func canonicalizePhoneNumber(recipient string) (string, error) {
	if recipient == "" {
		return "", models.ErrEmptyRecipient
	}
	canonical := phoneNumberRegex.ReplaceAllString(recipient, "")
	if canonical == "" {
		return "", fmt.Errorf("invalid phone number: no digits found in %q", recipient)
	}
	if len(canonical) < 6 {
		return "", fmt.Errorf("invalid phone number: %q is too short (minimum 6 digits)", canonical)
	}
	if canonical != recipient {
		slog.Debug("Canonicalized recipient", "original", recipient, "canonical", canonical)
	}
	return canonical, nil
}
