package messaging

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/frigosoft/coldcalc/internal/flow"
	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/store"
)

type sentMessage struct {
	to   string
	body string
}

// mockMessagingService records outgoing messages and exposes channels for
// incoming events, without any real transport.
type mockMessagingService struct {
	receipts  chan models.Receipt
	responses chan models.Response

	mu   sync.Mutex
	sent []sentMessage
}

func newMockMessagingService() *mockMessagingService {
	return &mockMessagingService{
		receipts:  make(chan models.Receipt, 10),
		responses: make(chan models.Response, 10),
	}
}

func (m *mockMessagingService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	return canonicalizePhoneNumber(recipient)
}

func (m *mockMessagingService) SendMessage(ctx context.Context, to, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMessage{to: to, body: body})
	return nil
}

func (m *mockMessagingService) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *mockMessagingService) Start(ctx context.Context) error { return nil }
func (m *mockMessagingService) Stop() error                     { return nil }

func (m *mockMessagingService) Receipts() <-chan models.Receipt   { return m.receipts }
func (m *mockMessagingService) Responses() <-chan models.Response { return m.responses }

func (m *mockMessagingService) lastSent(t *testing.T) sentMessage {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no message was sent")
	}
	return m.sent[len(m.sent)-1]
}

// stubGenAI returns a fixed reply for every request.
type stubGenAI struct {
	reply string
}

func (s *stubGenAI) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.reply, nil
}

func newHandlerUnderTest(genaiClient *stubGenAI) (*ResponseHandler, *mockMessagingService) {
	svc := newMockMessagingService()
	coordinator := flow.NewCoordinator(store.NewInMemoryStore(), flow.StandardCatalog)
	if genaiClient != nil {
		return NewResponseHandler(svc, coordinator, genaiClient), svc
	}
	return NewResponseHandler(svc, coordinator, nil), svc
}

func TestProcessResponseStartsFlow(t *testing.T) {
	handler, svc := newHandlerUnderTest(nil)

	err := handler.ProcessResponse(context.Background(), models.Response{
		From: "+1 (555) 123-4567",
		Body: "calculate",
		Time: time.Now().Unix(),
	})
	if err != nil {
		t.Fatalf("ProcessResponse failed: %v", err)
	}

	msg := svc.lastSent(t)
	if msg.to != "15551234567" {
		t.Errorf("reply recipient = %q, want canonical number", msg.to)
	}
	if !strings.Contains(msg.body, "Question 1 of 8") {
		t.Errorf("start reply = %q", msg.body)
	}
}

func TestProcessResponseRoutesActiveSession(t *testing.T) {
	handler, svc := newHandlerUnderTest(nil)
	ctx := context.Background()

	if err := handler.ProcessResponse(ctx, models.Response{From: "+15551234567", Body: "calculate"}); err != nil {
		t.Fatalf("ProcessResponse (start) failed: %v", err)
	}
	if err := handler.ProcessResponse(ctx, models.Response{From: "+15551234567", Body: "5x4x3"}); err != nil {
		t.Fatalf("ProcessResponse (answer) failed: %v", err)
	}

	msg := svc.lastSent(t)
	if !strings.Contains(msg.body, "Question 2 of 8") {
		t.Errorf("answer reply = %q", msg.body)
	}
}

func TestProcessResponseTurkishStart(t *testing.T) {
	handler, svc := newHandlerUnderTest(nil)

	if err := handler.ProcessResponse(context.Background(), models.Response{From: "+905551234567", Body: "hesapla"}); err != nil {
		t.Fatalf("ProcessResponse failed: %v", err)
	}
	msg := svc.lastSent(t)
	if !strings.Contains(msg.body, "Soru 1 / 8") {
		t.Errorf("Turkish start reply = %q", msg.body)
	}
}

func TestProcessResponseFallbackWithGenAI(t *testing.T) {
	handler, svc := newHandlerUnderTest(&stubGenAI{reply: "Hello from the assistant."})

	if err := handler.ProcessResponse(context.Background(), models.Response{From: "+15551234567", Body: "do you sell spare parts?"}); err != nil {
		t.Fatalf("ProcessResponse failed: %v", err)
	}
	msg := svc.lastSent(t)
	if msg.body != "Hello from the assistant." {
		t.Errorf("fallback reply = %q", msg.body)
	}
}

func TestProcessResponseFallbackWithoutGenAI(t *testing.T) {
	handler, svc := newHandlerUnderTest(nil)

	if err := handler.ProcessResponse(context.Background(), models.Response{From: "+15551234567", Body: "hello"}); err != nil {
		t.Fatalf("ProcessResponse failed: %v", err)
	}
	msg := svc.lastSent(t)
	if !strings.Contains(msg.body, "calculate") {
		t.Errorf("static hint reply = %q", msg.body)
	}
}

func TestProcessResponseInvalidSender(t *testing.T) {
	handler, _ := newHandlerUnderTest(nil)

	err := handler.ProcessResponse(context.Background(), models.Response{From: "", Body: "calculate"})
	if err == nil {
		t.Error("empty sender accepted")
	}
}

func TestRunConsumesResponses(t *testing.T) {
	handler, svc := newHandlerUnderTest(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		handler.Run(ctx)
		close(done)
	}()

	svc.responses <- models.Response{From: "+15551234567", Body: "calculate"}

	deadline := time.After(2 * time.Second)
	for svc.sentCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("Run did not process the queued response")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
