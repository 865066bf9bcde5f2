package messaging

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/whatsapp"
	"go.mau.fi/whatsmeow/types/events"
)

// WhatsAppService implements Service using the whatsmeow-based client.
type WhatsAppService struct {
	client    whatsapp.Sender
	waClient  *whatsapp.Client // full client for event handling, nil for mocks
	receipts  chan models.Receipt
	responses chan models.Response
	done      chan struct{}
}

// NewWhatsAppService creates a WhatsAppService wrapping the given sender.
// When the sender is a full client, incoming events are translated into
// Response and Receipt values.
func NewWhatsAppService(client whatsapp.Sender) *WhatsAppService {
	service := &WhatsAppService{
		client:    client,
		receipts:  make(chan models.Receipt, DefaultChannelBufferSize),
		responses: make(chan models.Response, DefaultChannelBufferSize),
		done:      make(chan struct{}),
	}
	if waClient, ok := client.(*whatsapp.Client); ok {
		service.waClient = waClient
		slog.Debug("WhatsAppService created with full client for event handling")
	} else {
		slog.Debug("WhatsAppService created with interface client (likely mock)")
	}
	return service
}

// ValidateAndCanonicalizeRecipient canonicalizes a WhatsApp phone number.
func (s *WhatsAppService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	return canonicalizePhoneNumber(recipient)
}

// Start begins event handling when a full client is available.
func (s *WhatsAppService) Start(ctx context.Context) error {
	slog.Debug("WhatsAppService Start invoked")
	if s.waClient != nil {
		go s.handleEvents(ctx)
	}
	return nil
}

// Stop stops background processing and closes the event channels.
func (s *WhatsAppService) Stop() error {
	slog.Info("WhatsAppService stopping")
	close(s.done)
	close(s.receipts)
	close(s.responses)
	return nil
}

// SendMessage sends a message and emits a sent receipt.
func (s *WhatsAppService) SendMessage(ctx context.Context, to string, body string) error {
	slog.Debug("WhatsAppService SendMessage invoked", "to", to, "body_length", len(body))
	if err := s.client.SendMessage(ctx, to, body); err != nil {
		slog.Error("WhatsAppService SendMessage error", "error", err, "to", to)
		return err
	}
	s.receipts <- models.Receipt{To: to, Status: models.MessageStatusSent, Time: time.Now().Unix()}
	return nil
}

// Receipts returns the channel of delivery status events.
func (s *WhatsAppService) Receipts() <-chan models.Receipt {
	return s.receipts
}

// Responses returns the channel of incoming user messages.
func (s *WhatsAppService) Responses() <-chan models.Response {
	return s.responses
}

func (s *WhatsAppService) handleEvents(ctx context.Context) {
	if s.waClient == nil || s.waClient.GetClient() == nil {
		slog.Error("WhatsAppService handleEvents: no client available")
		return
	}

	s.waClient.GetClient().AddEventHandler(func(evt interface{}) {
		switch v := evt.(type) {
		case *events.Message:
			s.handleIncomingMessage(v)
		case *events.Receipt:
			s.handleMessageReceipt(v)
		}
	})
	slog.Debug("WhatsAppService event handler registered")

	<-ctx.Done()
	slog.Debug("WhatsAppService event handling stopped")
}

func (s *WhatsAppService) handleIncomingMessage(evt *events.Message) {
	if evt.Message == nil {
		return
	}

	var messageText string
	if evt.Message.Conversation != nil {
		messageText = *evt.Message.Conversation
	} else if evt.Message.ExtendedTextMessage != nil && evt.Message.ExtendedTextMessage.Text != nil {
		messageText = *evt.Message.ExtendedTextMessage.Text
	} else {
		// Non-text messages (images, audio) are not part of the consultation.
		slog.Debug("WhatsAppService ignoring non-text message", "from", evt.Info.Sender.String())
		return
	}

	response := models.Response{
		From: e164(evt.Info.Sender.User),
		Body: messageText,
		Time: evt.Info.Timestamp.Unix(),
	}

	select {
	case s.responses <- response:
		slog.Debug("WhatsAppService incoming message forwarded", "from", response.From)
	case <-time.After(DefaultChannelTimeout):
		slog.Warn("WhatsAppService responses channel blocked, dropping message", "from", response.From)
	}
}

func (s *WhatsAppService) handleMessageReceipt(evt *events.Receipt) {
	var status models.MessageStatus
	switch evt.Type {
	case events.ReceiptTypeDelivered:
		status = models.MessageStatusDelivered
	case events.ReceiptTypeRead:
		status = models.MessageStatusRead
	default:
		return
	}

	receipt := models.Receipt{
		To:     e164(evt.MessageSource.Sender.User),
		Status: status,
		Time:   evt.Timestamp.Unix(),
	}

	select {
	case s.receipts <- receipt:
	case <-time.After(DefaultChannelTimeout):
		slog.Warn("WhatsAppService receipts channel blocked, dropping receipt", "to", receipt.To)
	}
}

func e164(user string) string {
	if !strings.HasPrefix(user, "+") {
		return "+" + user
	}
	return user
}
