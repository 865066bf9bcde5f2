// Package api provides the HTTP surface of the coldcalc service: a direct
// calculation endpoint for integrations, session inspection for support,
// the Twilio inbound webhook, and a health check.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/frigosoft/coldcalc/internal/calc"
	"github.com/frigosoft/coldcalc/internal/messaging"
	"github.com/frigosoft/coldcalc/internal/models"
	"github.com/frigosoft/coldcalc/internal/store"
)

// DefaultAddr is the default API listen address.
const DefaultAddr = ":8080"

// Server hosts the HTTP endpoints.
type Server struct {
	addr       string
	store      store.Store
	twilioSvc  *messaging.TwilioService // nil unless the Twilio transport is active
	httpServer *http.Server
}

// Option configures the Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithTwilioService enables the inbound webhook for the Twilio transport.
func WithTwilioService(svc *messaging.TwilioService) Option {
	return func(s *Server) { s.twilioSvc = svc }
}

// NewServer creates the API server over the given session store.
func NewServer(st store.Store, opts ...Option) *Server {
	s := &Server{addr: DefaultAddr, store: st}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calculate", s.calculateHandler)
	mux.HandleFunc("/v1/sessions", s.sessionsHandler)
	mux.HandleFunc("/v1/twilio/inbound", s.twilioInboundHandler)
	mux.HandleFunc("/healthz", s.healthHandler)

	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}
	slog.Info("API server starting", "addr", s.addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("API server failed", "error", err)
		}
	}()
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	slog.Info("API server stopping")
	return s.httpServer.Shutdown(ctx)
}

// calculateHandler runs the pure calculation pipeline on a posted
// parameter set. It bypasses the conversational flow entirely.
func (s *Server) calculateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var params models.RoomParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter JSON: "+err.Error())
		return
	}
	applyParameterDefaults(&params)

	result, err := calc.Calculate(params)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedTemperature) || errors.Is(err, models.ErrInvalidDimensions) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("API calculate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "calculation failed")
		return
	}
	writeOK(w, result)
}

// applyParameterDefaults fills the heuristic defaults for omitted fields so
// API callers get the same defaulting the flow compiler applies.
func applyParameterDefaults(p *models.RoomParameters) {
	if p.SafetyFactor <= 0 {
		p.SafetyFactor = 1.10
	}
	if p.DefrostFactor <= 0 {
		p.DefrostFactor = 1.20
	}
	if p.ExpansionFactor <= 0 {
		p.ExpansionFactor = 1.10
	}
	if p.CoolingHours <= 0 {
		p.CoolingHours = 24
	}
	if p.Product == "" {
		p.Product = models.ProductGeneral
	}
	if p.Climate == "" {
		p.Climate = models.ClimateTemperate
	}
	if p.Humidity == "" {
		p.Humidity = models.HumidityNormal
	}
}

func (s *Server) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user query parameter required")
		return
	}
	session, err := s.store.GetSession(userID)
	if err != nil {
		slog.Error("API session lookup failed", "error", err, "userID", userID)
		writeError(w, http.StatusInternalServerError, "session lookup failed")
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "no session for user")
		return
	}
	writeOK(w, session)
}

// twilioInboundHandler accepts Twilio's inbound message webhook and feeds
// it into the Twilio transport service.
func (s *Server) twilioInboundHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if s.twilioSvc == nil {
		writeError(w, http.StatusNotFound, "twilio transport not active")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}
	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")
	if from == "" || body == "" {
		writeError(w, http.StatusBadRequest, "From and Body required")
		return
	}

	s.twilioSvc.InjectResponse(models.Response{
		From: from,
		Body: body,
		Time: time.Now().Unix(),
	})
	writeOK(w, nil)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeOK(w, map[string]string{"status": "healthy"})
}
