package flow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frigosoft/coldcalc/internal/calc"
	"github.com/frigosoft/coldcalc/internal/i18n"
	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/report"
	"github.com/frigosoft/coldcalc/internal/store"
)

// Coordinator is the flow controller: it owns per-user progress through the
// question catalog, interprets every utterance as a navigation command or
// an answer, and runs the calculation pipeline on completion.
//
// It performs no I/O besides the injected session store and never spawns
// background work; the caller must serialize utterances per user.
type Coordinator struct {
	store   store.Store
	catalog *Catalog
}

// NewCoordinator creates a flow coordinator over the given session store
// and question catalog.
func NewCoordinator(st store.Store, catalog *Catalog) *Coordinator {
	slog.Debug("Creating flow Coordinator", "catalog", catalog.Name, "questions", catalog.Len())
	return &Coordinator{store: st, catalog: catalog}
}

// HasActiveSession reports whether a consultation is in progress for the user.
func (c *Coordinator) HasActiveSession(ctx context.Context, userID string) (bool, error) {
	session, err := c.store.GetSession(userID)
	if err != nil {
		return false, err
	}
	return session != nil && session.Active, nil
}

// StartFlow opens a fresh consultation and returns the welcome text plus
// the first prompt. Any previous session for the user is replaced.
func (c *Coordinator) StartFlow(ctx context.Context, userID string, lang models.Language) (string, error) {
	if !models.IsValidLanguage(lang) {
		lang = models.LanguageEnglish
	}
	now := time.Now()
	session := models.Session{
		UserID:      userID,
		Language:    lang,
		Active:      true,
		CatalogName: c.catalog.Name,
		CurrentStep: 0,
		Answers:     make(map[string]models.Answer),
		StartedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.store.SaveSession(session); err != nil {
		slog.Error("Coordinator StartFlow save failed", "error", err, "userID", userID)
		return "", fmt.Errorf("failed to start flow for %s: %w", userID, err)
	}
	slog.Info("Coordinator flow started", "userID", userID, "language", lang, "catalog", c.catalog.Name)
	return i18n.T(lang, i18n.KeyWelcome) + "\n\n" + c.prompt(&session), nil
}

// HandleUtterance processes one incoming message for an active session.
// Priority order: navigation command, then answer processing, then the
// completion check. The returned string is the outgoing reply.
func (c *Coordinator) HandleUtterance(ctx context.Context, userID, text string, timestamp time.Time) (string, error) {
	session, err := c.store.GetSession(userID)
	if err != nil {
		slog.Error("Coordinator HandleUtterance session load failed", "error", err, "userID", userID)
		return "", fmt.Errorf("failed to load session for %s: %w", userID, err)
	}
	if session == nil || !session.Active {
		return "", models.ErrSessionNotFound
	}
	if session.Answers == nil {
		session.Answers = make(map[string]models.Answer)
	}

	if cmd, ok := DetectCommand(session.Language, text); ok {
		return c.handleCommand(session, cmd)
	}
	return c.handleAnswer(session, text, timestamp)
}

func (c *Coordinator) handleCommand(session *models.Session, cmd Command) (string, error) {
	lang := session.Language
	slog.Debug("Coordinator handling command", "userID", session.UserID, "kind", cmd.Kind, "arg", cmd.Arg)

	switch cmd.Kind {
	case CommandHelp:
		return i18n.T(lang, i18n.KeyHelp), nil

	case CommandBack:
		if session.CurrentStep == 0 {
			return i18n.T(lang, i18n.KeyBackAtStart) + "\n\n" + c.prompt(session), nil
		}
		session.CurrentStep--
		c.dropAnswersFrom(session, session.CurrentStep)
		if err := c.save(session); err != nil {
			return "", err
		}
		return c.prompt(session), nil

	case CommandEdit:
		step := cmd.Arg - 1 // user-facing question numbers are 1-indexed
		if cmd.Arg == 0 || step < 0 || step >= session.CurrentStep {
			return i18n.T(lang, i18n.KeyEditInvalid), nil
		}
		session.CurrentStep = step
		c.dropAnswersFrom(session, step)
		if err := c.save(session); err != nil {
			return "", err
		}
		return c.prompt(session), nil

	case CommandShow:
		return c.renderAnswers(session), nil

	case CommandRestart:
		session.CurrentStep = 0
		session.Answers = make(map[string]models.Answer)
		if err := c.save(session); err != nil {
			return "", err
		}
		return i18n.T(lang, i18n.KeyRestarted) + "\n\n" + c.prompt(session), nil

	case CommandCancel:
		if err := c.teardown(session); err != nil {
			return "", err
		}
		slog.Info("Coordinator flow cancelled", "userID", session.UserID)
		return i18n.T(lang, i18n.KeyCancelled), nil

	case CommandSkip:
		// A skipped question goes through the identical answer pipeline
		// with the field's canonical default text.
		def := DefaultAnswer(c.catalog.Question(session.CurrentStep).ID)
		return c.handleAnswer(session, def, time.Now())

	default:
		return c.prompt(session), nil
	}
}

func (c *Coordinator) handleAnswer(session *models.Session, text string, timestamp time.Time) (string, error) {
	question := c.catalog.Question(session.CurrentStep)
	outcome := question.Answer(session.Language, text)
	if !outcome.Valid {
		slog.Debug("Coordinator answer rejected", "userID", session.UserID, "field", question.ID)
		return i18n.T(session.Language, outcome.Reason) + "\n\n" + c.prompt(session), nil
	}

	session.Answers[string(question.ID)] = models.Answer{
		Raw:       strings.TrimSpace(text),
		Value:     outcome.Value,
		Timestamp: timestamp,
	}
	session.CurrentStep++

	if session.CurrentStep >= c.catalog.Len() {
		return c.complete(session)
	}

	if err := c.save(session); err != nil {
		return "", err
	}
	return c.prompt(session), nil
}

// complete compiles the parameter set, runs the engines, renders the
// report, and tears the flow down. Any failure during compilation or
// calculation is logged and surfaced as a single generic localized error;
// the flow is torn down exactly as on cancel. No partial result is ever
// returned.
func (c *Coordinator) complete(session *models.Session) (string, error) {
	params, err := CompileParameters(session, c.catalog)
	if err != nil {
		return c.failCompletion(session, err)
	}
	result, err := calc.Calculate(params)
	if err != nil {
		return c.failCompletion(session, err)
	}

	if err := c.teardown(session); err != nil {
		return "", err
	}
	slog.Info("Coordinator flow completed",
		"userID", session.UserID,
		"capacity_w", result.TotalCapacityWatts,
		"system_class", result.Recommendation.SystemClass)
	return report.Render(session.Language, result), nil
}

func (c *Coordinator) failCompletion(session *models.Session, cause error) (string, error) {
	slog.Error("Coordinator calculation failed", "error", cause, "userID", session.UserID, "catalog", c.catalog.Name)
	if err := c.teardown(session); err != nil {
		return "", err
	}
	return i18n.T(session.Language, i18n.KeyCalcFailed), nil
}

// dropAnswersFrom removes every stored answer at or after the given step,
// keeping the invariant that answers exist only for indices below
// CurrentStep.
func (c *Coordinator) dropAnswersFrom(session *models.Session, step int) {
	for i := step; i < c.catalog.Len(); i++ {
		delete(session.Answers, string(c.catalog.Question(i).ID))
	}
}

func (c *Coordinator) renderAnswers(session *models.Session) string {
	lang := session.Language
	var b strings.Builder
	answered := 0
	for i := 0; i < session.CurrentStep; i++ {
		q := c.catalog.Question(i)
		if a, ok := session.Answers[string(q.ID)]; ok {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a.Raw)
			answered++
		}
	}
	if answered == 0 {
		return i18n.T(lang, i18n.KeyShowEmpty)
	}
	return i18n.T(lang, i18n.KeyShowHeader) + "\n" + strings.TrimRight(b.String(), "\n")
}

// prompt renders the current question decorated with a progress indicator.
func (c *Coordinator) prompt(session *models.Session) string {
	q := c.catalog.Question(session.CurrentStep)
	progress := i18n.Tf(session.Language, i18n.KeyProgress, session.CurrentStep+1, c.catalog.Len())
	return progress + "\n" + q.Prompt(session.Language)
}

func (c *Coordinator) save(session *models.Session) error {
	session.UpdatedAt = time.Now()
	if err := c.store.SaveSession(*session); err != nil {
		slog.Error("Coordinator save failed", "error", err, "userID", session.UserID)
		return fmt.Errorf("failed to save session for %s: %w", session.UserID, err)
	}
	return nil
}

func (c *Coordinator) teardown(session *models.Session) error {
	if err := c.store.DeleteSession(session.UserID); err != nil {
		slog.Error("Coordinator teardown failed", "error", err, "userID", session.UserID)
		return fmt.Errorf("failed to clear session for %s: %w", session.UserID, err)
	}
	session.Active = false
	return nil
}
