package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/twiliowhatsapp"
)

// TwilioService implements Service over the Twilio REST API. Incoming
// messages arrive through Twilio webhooks, which the HTTP API feeds into
// this service via InjectResponse.
type TwilioService struct {
	client    twiliowhatsapp.Sender
	receipts  chan models.Receipt
	responses chan models.Response
	done      chan struct{}
	mu        sync.RWMutex
	stopped   bool
}

// NewTwilioService creates a TwilioService wrapping the given sender.
func NewTwilioService(client twiliowhatsapp.Sender) *TwilioService {
	return &TwilioService{
		client:    client,
		receipts:  make(chan models.Receipt, DefaultChannelBufferSize),
		responses: make(chan models.Response, DefaultChannelBufferSize),
		done:      make(chan struct{}),
	}
}

// ValidateAndCanonicalizeRecipient canonicalizes a WhatsApp phone number.
func (s *TwilioService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	return canonicalizePhoneNumber(recipient)
}

// Start is a no-op: Twilio delivers inbound messages via webhook.
func (s *TwilioService) Start(ctx context.Context) error {
	return nil
}

// Stop closes channels and stops the service.
func (s *TwilioService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.done)

	go func() {
		// Give in-flight InjectResponse calls a moment to finish.
		time.Sleep(50 * time.Millisecond)
		close(s.receipts)
		close(s.responses)
	}()
	return nil
}

// SendMessage sends a message via Twilio and emits a sent receipt.
func (s *TwilioService) SendMessage(ctx context.Context, to string, body string) error {
	s.mu.RLock()
	if s.stopped {
		s.mu.RUnlock()
		return models.ErrServiceStopped
	}
	s.mu.RUnlock()

	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		return err
	}
	if err := s.client.SendMessage(ctx, "+"+canonicalTo, body); err != nil {
		slog.Error("TwilioService SendMessage error", "error", err, "to", canonicalTo)
		return err
	}
	s.receipts <- models.Receipt{To: canonicalTo, Status: models.MessageStatusSent, Time: time.Now().Unix()}
	return nil
}

// InjectResponse feeds an inbound webhook message into the responses channel.
func (s *TwilioService) InjectResponse(response models.Response) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		slog.Warn("TwilioService InjectResponse after stop, dropping", "from", response.From)
		return
	}
	select {
	case s.responses <- response:
		slog.Debug("TwilioService inbound message forwarded", "from", response.From)
	case <-time.After(DefaultChannelTimeout):
		slog.Warn("TwilioService responses channel blocked, dropping message", "from", response.From)
	}
}

// Receipts returns the channel of delivery status events.
func (s *TwilioService) Receipts() <-chan models.Receipt {
	return s.receipts
}

// Responses returns the channel of incoming user messages.
func (s *TwilioService) Responses() <-chan models.Response {
	return s.responses
}
