// Package messaging provides response routing for the consultation bot.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frigosoft/coldcalc/internal/flow"
	"github.com/frigosoft/coldcalc/internal/genai"
	"github.com/frigosoft/coldcalc/internal/i18n"
	"github.com/frigosoft/coldcalc/internal/models"
)

// ResponseHandler routes every incoming message: to the flow coordinator
// when the sender has an active consultation or sends a start keyword,
// otherwise to the GenAI fallback (or a static hint when GenAI is not
// configured).
//
// The handler consumes the transport's response channel on a single
// goroutine, which serializes all session mutations and upholds the
// at-most-one-concurrent-edit contract the flow coordinator requires.
type ResponseHandler struct {
	msgService   Service
	coordinator  *flow.Coordinator
	genaiClient  genai.ClientInterface
	systemPrompt string
}

// NewResponseHandler creates a handler over the given transport and flow
// coordinator. genaiClient may be nil; the fallback hint is used instead.
func NewResponseHandler(msgService Service, coordinator *flow.Coordinator, genaiClient genai.ClientInterface) *ResponseHandler {
	return &ResponseHandler{
		msgService:   msgService,
		coordinator:  coordinator,
		genaiClient:  genaiClient,
		systemPrompt: genai.DefaultSystemPrompt,
	}
}

// SetSystemPrompt overrides the fallback chat system prompt.
func (rh *ResponseHandler) SetSystemPrompt(prompt string) {
	rh.systemPrompt = prompt
}

// Run consumes responses and receipts until the context is cancelled or
// the transport channels close.
func (rh *ResponseHandler) Run(ctx context.Context) {
	slog.Info("ResponseHandler running")
	responses := rh.msgService.Responses()
	receipts := rh.msgService.Receipts()
	for {
		select {
		case <-ctx.Done():
			slog.Info("ResponseHandler stopping", "reason", ctx.Err())
			return
		case receipt, ok := <-receipts:
			if !ok {
				receipts = nil
				continue
			}
			slog.Debug("ResponseHandler receipt", "to", receipt.To, "status", receipt.Status)
		case response, ok := <-responses:
			if !ok {
				slog.Info("ResponseHandler responses channel closed")
				return
			}
			if err := rh.ProcessResponse(ctx, response); err != nil {
				slog.Error("ResponseHandler processing failed", "error", err, "from", response.From)
			}
		}
	}
}

// ProcessResponse handles a single incoming message end to end.
func (rh *ResponseHandler) ProcessResponse(ctx context.Context, response models.Response) error {
	from, err := rh.msgService.ValidateAndCanonicalizeRecipient(response.From)
	if err != nil {
		slog.Error("ResponseHandler sender validation failed", "error", err, "from", response.From)
		return fmt.Errorf("invalid sender: %w", err)
	}
	slog.Debug("ResponseHandler processing", "from", from, "body_length", len(response.Body))

	reply, err := rh.routeMessage(ctx, from, response)
	if err != nil {
		return err
	}
	if reply == "" {
		return nil
	}
	if err := rh.msgService.SendMessage(ctx, from, reply); err != nil {
		slog.Error("ResponseHandler failed to send reply", "error", err, "from", from)
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

func (rh *ResponseHandler) routeMessage(ctx context.Context, from string, response models.Response) (string, error) {
	active, err := rh.coordinator.HasActiveSession(ctx, from)
	if err != nil {
		return "", fmt.Errorf("session lookup failed: %w", err)
	}
	if active {
		reply, err := rh.coordinator.HandleUtterance(ctx, from, response.Body, time.Unix(response.Time, 0))
		if err != nil {
			return "", fmt.Errorf("flow handling failed: %w", err)
		}
		return reply, nil
	}

	if lang, ok := flow.DetectStart(response.Body); ok {
		reply, err := rh.coordinator.StartFlow(ctx, from, lang)
		if err != nil {
			return "", fmt.Errorf("flow start failed: %w", err)
		}
		return reply, nil
	}

	return rh.fallbackReply(ctx, from, response.Body), nil
}

// fallbackReply answers non-calculation chit-chat. GenAI errors degrade to
// the static hint rather than surfacing to the user.
func (rh *ResponseHandler) fallbackReply(ctx context.Context, from, body string) string {
	if rh.genaiClient == nil {
		return i18n.T(models.LanguageEnglish, i18n.KeyFallbackHint)
	}
	reply, err := rh.genaiClient.GenerateReply(ctx, rh.systemPrompt, body)
	if err != nil {
		slog.Error("ResponseHandler GenAI fallback failed", "error", err, "from", from)
		return i18n.T(models.LanguageEnglish, i18n.KeyFallbackHint)
	}
	return reply
}
