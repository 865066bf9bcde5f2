package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/twiliowhatsapp"
)

func TestTwilioServiceSendMessage(t *testing.T) {
	client := twiliowhatsapp.NewMockClient()
	svc := NewTwilioService(client)

	err := svc.SendMessage(context.Background(), "+1 (555) 123-4567", "hello")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if len(client.SentMessages) != 1 {
		t.Fatalf("sent %d messages, want 1", len(client.SentMessages))
	}
	if client.SentMessages[0].To != "+15551234567" {
		t.Errorf("recipient = %q, want +15551234567", client.SentMessages[0].To)
	}

	select {
	case receipt := <-svc.Receipts():
		if receipt.Status != models.MessageStatusSent {
			t.Errorf("receipt status = %s, want sent", receipt.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("no receipt emitted")
	}
}

func TestTwilioServiceInjectResponse(t *testing.T) {
	svc := NewTwilioService(twiliowhatsapp.NewMockClient())

	svc.InjectResponse(models.Response{From: "+15551234567", Body: "hesapla", Time: time.Now().Unix()})

	select {
	case resp := <-svc.Responses():
		if resp.Body != "hesapla" {
			t.Errorf("injected body = %q", resp.Body)
		}
	case <-time.After(time.Second):
		t.Fatal("injected response never arrived")
	}
}

func TestTwilioServiceStop(t *testing.T) {
	svc := NewTwilioService(twiliowhatsapp.NewMockClient())
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	// Stop is idempotent.
	if err := svc.Stop(); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
	if err := svc.SendMessage(context.Background(), "+15551234567", "late"); !errors.Is(err, models.ErrServiceStopped) {
		t.Errorf("send after stop error = %v, want ErrServiceStopped", err)
	}
}

func TestCanonicalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"+15551234567", "15551234567", false},
		{"whatsapp:+1 (555) 123-4567", "15551234567", false},
		{"", "", true},
		{"abc", "", true},
		{"123", "", true},
	}
	for _, tc := range cases {
		got, err := canonicalizePhoneNumber(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("canonicalizePhoneNumber(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("canonicalizePhoneNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
