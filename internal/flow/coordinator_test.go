package flow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/store"
)

const testUser = "+15551234567"

func newTestCoordinator() (*Coordinator, *store.InMemoryStore) {
	st := store.NewInMemoryStore()
	return NewCoordinator(st, StandardCatalog), st
}

func startFlow(t *testing.T, c *Coordinator) string {
	t.Helper()
	reply, err := c.StartFlow(context.Background(), testUser, models.LanguageEnglish)
	if err != nil {
		t.Fatalf("StartFlow failed: %v", err)
	}
	return reply
}

func utter(t *testing.T, c *Coordinator, text string) string {
	t.Helper()
	reply, err := c.HandleUtterance(context.Background(), testUser, text, time.Now())
	if err != nil {
		t.Fatalf("HandleUtterance(%q) failed: %v", text, err)
	}
	return reply
}

func mustGetSession(t *testing.T, st *store.InMemoryStore) *models.Session {
	t.Helper()
	session, err := st.GetSession(testUser)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	return session
}

// assertInvariant verifies no answer exists at or beyond the current step.
func assertInvariant(t *testing.T, c *Coordinator, st *store.InMemoryStore) {
	t.Helper()
	session := mustGetSession(t, st)
	if session == nil {
		return
	}
	for i := session.CurrentStep; i < c.catalog.Len(); i++ {
		id := string(c.catalog.Question(i).ID)
		if _, ok := session.Answers[id]; ok {
			t.Errorf("answer for field %s exists at step %d with current step %d", id, i, session.CurrentStep)
		}
	}
}

func TestStartFlow(t *testing.T) {
	c, st := newTestCoordinator()
	reply := startFlow(t, c)
	if !strings.Contains(reply, "Question 1 of 8") {
		t.Errorf("welcome reply missing first prompt: %q", reply)
	}
	session := mustGetSession(t, st)
	if session == nil || !session.Active || session.CurrentStep != 0 {
		t.Errorf("session after start = %+v, want active at step 0", session)
	}
}

func TestHandleUtteranceWithoutSession(t *testing.T) {
	c, _ := newTestCoordinator()
	_, err := c.HandleUtterance(context.Background(), testUser, "hello", time.Now())
	if !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestFullFlowCompletes(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	answers := []string{"5x4x3", "-18", "meat", "1000 kg", "25", "35", "100 mm", "30"}
	var reply string
	for _, a := range answers {
		reply = utter(t, c, a)
	}

	if !strings.Contains(reply, "❄️") {
		t.Errorf("final reply is not a report: %q", reply)
	}
	if !strings.Contains(reply, "R404A") {
		t.Errorf("report missing refrigerant suggestion: %q", reply)
	}
	if session := mustGetSession(t, st); session != nil {
		t.Errorf("session still present after completion: %+v", session)
	}
}

func TestRejectedAnswerRepeatsPrompt(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	reply := utter(t, c, "a fairly big room")
	if !strings.Contains(reply, "Question 1 of 8") {
		t.Errorf("rejection reply does not repeat the prompt: %q", reply)
	}
	session := mustGetSession(t, st)
	if session.CurrentStep != 0 {
		t.Errorf("step advanced to %d on rejected answer", session.CurrentStep)
	}
	if len(session.Answers) != 0 {
		t.Errorf("rejected answer was stored: %v", session.Answers)
	}
}

func TestAcceptedAnswerAdvances(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	reply := utter(t, c, "5x4x3")
	if !strings.Contains(reply, "Question 2 of 8") {
		t.Errorf("reply after answer is not the next prompt: %q", reply)
	}
	session := mustGetSession(t, st)
	if session.CurrentStep != 1 {
		t.Errorf("step = %d, want 1", session.CurrentStep)
	}
	if _, ok := session.Answers[string(FieldDimensions)]; !ok {
		t.Error("accepted answer not stored")
	}
}

func TestHelpRepeatsWithoutAdvancing(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	reply := utter(t, c, "help")
	if !strings.Contains(reply, "Commands:") {
		t.Errorf("help reply = %q", reply)
	}
	if session := mustGetSession(t, st); session.CurrentStep != 0 {
		t.Errorf("help advanced the step to %d", session.CurrentStep)
	}
}

func TestBackAtFirstQuestion(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	reply := utter(t, c, "back")
	if !strings.Contains(reply, "already at the first question") {
		t.Errorf("boundary reply = %q", reply)
	}
	if session := mustGetSession(t, st); session.CurrentStep != 0 {
		t.Errorf("step = %d, want 0", session.CurrentStep)
	}
}

func TestBackDropsAnswer(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)
	utter(t, c, "5x4x3")

	reply := utter(t, c, "back")
	if !strings.Contains(reply, "Question 1 of 8") {
		t.Errorf("back reply = %q", reply)
	}
	session := mustGetSession(t, st)
	if session.CurrentStep != 0 || len(session.Answers) != 0 {
		t.Errorf("after back: step=%d answers=%v", session.CurrentStep, session.Answers)
	}
	assertInvariant(t, c, st)
}

func TestEditJumpsAndDropsForward(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)
	utter(t, c, "5x4x3")
	utter(t, c, "-18")
	utter(t, c, "meat")

	reply := utter(t, c, "edit 2")
	if !strings.Contains(reply, "Question 2 of 8") {
		t.Errorf("edit reply = %q", reply)
	}
	session := mustGetSession(t, st)
	if session.CurrentStep != 1 {
		t.Errorf("step after edit 2 = %d, want 1", session.CurrentStep)
	}
	if _, ok := session.Answers[string(FieldDimensions)]; !ok {
		t.Error("answer before the edited question was dropped")
	}
	assertInvariant(t, c, st)
}

func TestEditInvalidTarget(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)
	utter(t, c, "5x4x3")

	for _, text := range []string{"edit 5", "edit 0", "edit"} {
		reply := utter(t, c, text)
		if !strings.Contains(reply, "only edit a question") {
			t.Errorf("reply to %q = %q, want edit rejection", text, reply)
		}
	}
	if session := mustGetSession(t, st); session.CurrentStep != 1 {
		t.Errorf("invalid edit moved the step to %d", session.CurrentStep)
	}
}

func TestShowAnswers(t *testing.T) {
	c, _ := newTestCoordinator()
	startFlow(t, c)

	reply := utter(t, c, "show")
	if !strings.Contains(reply, "No answers yet") {
		t.Errorf("empty show reply = %q", reply)
	}

	utter(t, c, "5x4x3")
	reply = utter(t, c, "show")
	if !strings.Contains(reply, "1. 5x4x3") {
		t.Errorf("show reply = %q", reply)
	}
}

func TestRestart(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)
	utter(t, c, "5x4x3")
	utter(t, c, "-18")

	reply := utter(t, c, "restart")
	if !strings.Contains(reply, "Starting over") || !strings.Contains(reply, "Question 1 of 8") {
		t.Errorf("restart reply = %q", reply)
	}
	session := mustGetSession(t, st)
	if !session.Active || session.CurrentStep != 0 || len(session.Answers) != 0 {
		t.Errorf("after restart: %+v", session)
	}
}

func TestCancel(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)
	utter(t, c, "5x4x3")

	reply := utter(t, c, "cancel")
	if !strings.Contains(reply, "cancelled") {
		t.Errorf("cancel reply = %q", reply)
	}
	if session := mustGetSession(t, st); session != nil {
		t.Errorf("session still present after cancel: %+v", session)
	}
}

func TestSkipUsesDefault(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	reply := utter(t, c, "skip")
	if !strings.Contains(reply, "Question 2 of 8") {
		t.Errorf("skip reply = %q", reply)
	}
	session := mustGetSession(t, st)
	a, ok := session.Answers[string(FieldDimensions)]
	if !ok {
		t.Fatal("skip did not store a default answer")
	}
	if a.Raw != DefaultAnswer(FieldDimensions) {
		t.Errorf("stored raw = %q, want default %q", a.Raw, DefaultAnswer(FieldDimensions))
	}
}

func TestSkipThroughEntireFlow(t *testing.T) {
	c, st := newTestCoordinator()
	startFlow(t, c)

	var reply string
	for i := 0; i < StandardCatalog.Len(); i++ {
		reply = utter(t, c, "skip")
	}
	if !strings.Contains(reply, "❄️") {
		t.Errorf("all-skip flow did not complete with a report: %q", reply)
	}
	if session := mustGetSession(t, st); session != nil {
		t.Errorf("session still present after all-skip completion: %+v", session)
	}
}

func TestTurkishFlow(t *testing.T) {
	st := store.NewInMemoryStore()
	c := NewCoordinator(st, StandardCatalog)
	reply, err := c.StartFlow(context.Background(), testUser, models.LanguageTurkish)
	if err != nil {
		t.Fatalf("StartFlow failed: %v", err)
	}
	if !strings.Contains(reply, "Soru 1 / 8") {
		t.Errorf("Turkish welcome = %q", reply)
	}
	reply = utter(t, c, "yardım")
	if !strings.Contains(reply, "Komutlar:") {
		t.Errorf("Turkish help = %q", reply)
	}
}
