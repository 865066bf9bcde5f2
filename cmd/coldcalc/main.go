package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/frigosoft/coldcalc/internal/api"
	"github.com/frigosoft/coldcalc/internal/flow"
	"github.com/frigosoft/coldcalc/internal/genai"
	"github.com/frigosoft/coldcalc/internal/lockfile"
	"github.com/frigosoft/coldcalc/internal/messaging"
	"github.com/frigosoft/coldcalc/internal/store"
	"github.com/frigosoft/coldcalc/internal/twiliowhatsapp"
	"github.com/frigosoft/coldcalc/internal/util"
	"github.com/frigosoft/coldcalc/internal/whatsapp"
	"github.com/joho/godotenv"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for coldcalc state data
	DefaultStateDir = "/var/lib/coldcalc"
	// DefaultDBFileName is the default SQLite session database filename
	DefaultDBFileName = "coldcalc.db"
	// DefaultWhatsmeowDBFileName is the default SQLite database for WhatsApp credentials
	DefaultWhatsmeowDBFileName = "whatsmeow.db"
	// DefaultAPIAddr is the default HTTP API listen address
	DefaultAPIAddr = ":8080"
	// ShutdownTimeout bounds graceful HTTP shutdown
	ShutdownTimeout = 10 * time.Second

	// TransportWhatsApp selects the whatsmeow transport
	TransportWhatsApp = "whatsapp"
	// TransportTwilio selects the Twilio WhatsApp transport
	TransportTwilio = "twilio"
)

func main() {
	// Initialize structured logger
	initializeLogger()

	// Load environment configuration
	config := loadEnvironmentConfig()

	// Parse command line flags
	flags := parseCommandLineFlags(config)

	// Ensure required directories exist
	if err := ensureDirectoriesExist(flags); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	// Hold the state directory for the lifetime of the process so a second
	// instance cannot interleave writes to the same session database.
	lock, err := lockfile.AcquireLock(*flags.stateDir)
	if err != nil {
		slog.Error("Failed to acquire state directory lock", "error", err)
		os.Exit(1)
	}
	defer lock.Release()

	slog.Info("Bootstrapping coldcalc", "transport", *flags.transport, "catalog", *flags.catalog)
	slog.Debug("Final configuration", "state_dir", *flags.stateDir, "dsn_set", *flags.dbDSN != "", "api_addr", *flags.apiAddr)

	if err := run(flags); err != nil {
		slog.Error("coldcalc failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("coldcalc exited successfully")
}

// Config holds environment configuration
type Config struct {
	DatabaseURL string
	StateDir    string
	OpenAIKey   string
	APIAddr     string
	Transport   string
	Catalog     string
	NumericCode bool
}

// Flags holds command line flag values
type Flags struct {
	qrOutput  *string
	numeric   *bool
	stateDir  *string
	dbDSN     *string
	apiAddr   *string
	transport *string
	catalog   *string
}

// initializeLogger sets up structured logging with debug level
func initializeLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}

	config := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StateDir:    util.EnvOrDefault("COLDCALC_STATE_DIR", DefaultStateDir),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		APIAddr:     util.EnvOrDefault("API_ADDR", DefaultAPIAddr),
		Transport:   util.EnvOrDefault("COLDCALC_TRANSPORT", TransportWhatsApp),
		Catalog:     os.Getenv("COLDCALC_CATALOG"),
		NumericCode: util.ParseBoolEnv("COLDCALC_NUMERIC_CODE", false),
	}

	// If no database URL is provided, default to SQLite in the state directory
	if config.DatabaseURL == "" {
		config.DatabaseURL = filepath.Join(config.StateDir, DefaultDBFileName)
		slog.Debug("No database DSN provided, defaulting to SQLite", "sqlite_path", config.DatabaseURL)
	}

	slog.Debug("environment variables loaded",
		"DATABASE_URL_SET", os.Getenv("DATABASE_URL") != "",
		"COLDCALC_STATE_DIR", config.StateDir,
		"OPENAI_API_KEY_SET", config.OpenAIKey != "",
		"API_ADDR", config.APIAddr,
		"COLDCALC_TRANSPORT", config.Transport,
		"COLDCALC_CATALOG", config.Catalog)

	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		qrOutput:  flag.String("qr-output", "", "path to write login QR code"),
		numeric:   flag.Bool("numeric-code", config.NumericCode, "use numeric login code instead of QR code (overrides $COLDCALC_NUMERIC_CODE)"),
		stateDir:  flag.String("state-dir", config.StateDir, "state directory for coldcalc data (overrides $COLDCALC_STATE_DIR)"),
		dbDSN:     flag.String("db-dsn", config.DatabaseURL, "database DSN for the session store (overrides $DATABASE_URL)"),
		apiAddr:   flag.String("api-addr", config.APIAddr, "API server address (overrides $API_ADDR)"),
		transport: flag.String("transport", config.Transport, "messaging transport: whatsapp or twilio (overrides $COLDCALC_TRANSPORT)"),
		catalog:   flag.String("catalog", config.Catalog, "question catalog: standard or extended (overrides $COLDCALC_CATALOG)"),
	}

	flag.Parse()

	slog.Debug("flags parsed",
		"qrOutput", *flags.qrOutput,
		"numeric", *flags.numeric,
		"stateDir", *flags.stateDir,
		"dbDSN_set", *flags.dbDSN != "",
		"apiAddr", *flags.apiAddr,
		"transport", *flags.transport,
		"catalog", *flags.catalog)

	// Update database DSN if not explicitly set but state directory is provided
	if *flags.dbDSN == config.DatabaseURL && config.DatabaseURL == filepath.Join(config.StateDir, DefaultDBFileName) && *flags.stateDir != config.StateDir {
		*flags.dbDSN = filepath.Join(*flags.stateDir, DefaultDBFileName)
		slog.Debug("Updated dbDSN based on state directory", "new_state_dir", *flags.stateDir)
	}

	return flags
}

// ensureDirectoriesExist creates necessary directories for file-based storage
func ensureDirectoriesExist(flags Flags) error {
	if err := os.MkdirAll(*flags.stateDir, 0755); err != nil {
		slog.Error("Failed to create state directory", "error", err, "state_dir", *flags.stateDir)
		return err
	}
	if store.DetectDSNType(*flags.dbDSN) == "sqlite" {
		dbDir := filepath.Dir(*flags.dbDSN)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			slog.Error("Failed to create database directory", "error", err, "db_dir", dbDir)
			return err
		}
	}
	return nil
}

// buildStore opens the session store matching the DSN type.
func buildStore(flags Flags) (store.Store, error) {
	if store.DetectDSNType(*flags.dbDSN) == "postgres" {
		slog.Debug("Detected PostgreSQL DSN, configuring PostgreSQL store")
		return store.NewPostgresStore(store.WithDSN(*flags.dbDSN))
	}
	slog.Debug("Detected SQLite DSN, configuring SQLite store", "db_path", *flags.dbDSN)
	return store.NewSQLiteStore(store.WithDSN(*flags.dbDSN))
}

// buildWhatsAppOptions constructs WhatsApp client options
func buildWhatsAppOptions(flags Flags) []whatsapp.Option {
	waOpts := []whatsapp.Option{
		whatsapp.WithDBDSN(filepath.Join(*flags.stateDir, DefaultWhatsmeowDBFileName)),
	}
	if *flags.qrOutput != "" {
		waOpts = append(waOpts, whatsapp.WithQRCodeOutput(*flags.qrOutput))
	}
	if *flags.numeric {
		waOpts = append(waOpts, whatsapp.WithNumericCode())
	}
	return waOpts
}

// buildMessagingService constructs the messaging transport selected by flags.
// The returned TwilioService is non-nil only for the Twilio transport; the
// API server needs it to feed webhook messages into the response channel.
func buildMessagingService(flags Flags) (messaging.Service, *messaging.TwilioService, error) {
	switch strings.ToLower(*flags.transport) {
	case TransportTwilio:
		client, err := twiliowhatsapp.NewClient()
		if err != nil {
			return nil, nil, err
		}
		svc := messaging.NewTwilioService(client)
		return svc, svc, nil
	default:
		client, err := whatsapp.NewClient(buildWhatsAppOptions(flags)...)
		if err != nil {
			return nil, nil, err
		}
		return messaging.NewWhatsAppService(client), nil, nil
	}
}

// buildGenAIClient returns nil when OPENAI_API_KEY is not configured; the
// response handler then falls back to a static hint.
func buildGenAIClient() genai.ClientInterface {
	if os.Getenv("OPENAI_API_KEY") == "" {
		slog.Info("OPENAI_API_KEY not set, GenAI fallback disabled")
		return nil
	}
	client, err := genai.NewClient()
	if err != nil {
		slog.Warn("GenAI client initialization failed, fallback disabled", "error", err)
		return nil
	}
	return client
}

// loadSystemPrompt reads the fallback chat system prompt from the configured
// file, if any.
func loadSystemPrompt() string {
	path := os.Getenv("COLDCALC_SYSTEM_PROMPT_FILE")
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed to read system prompt file, using default", "error", err, "path", path)
		return ""
	}
	return strings.TrimSpace(string(data))
}

// run wires the store, transport, flow coordinator and API server together
// and blocks until a termination signal arrives.
func run(flags Flags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := buildStore(flags)
	if err != nil {
		return err
	}
	defer st.Close()

	msgService, twilioSvc, err := buildMessagingService(flags)
	if err != nil {
		return err
	}
	if err := msgService.Start(ctx); err != nil {
		return err
	}
	defer msgService.Stop()

	coordinator := flow.NewCoordinator(st, flow.CatalogByName(*flags.catalog))

	handler := messaging.NewResponseHandler(msgService, coordinator, buildGenAIClient())
	if prompt := loadSystemPrompt(); prompt != "" {
		handler.SetSystemPrompt(prompt)
	}

	apiOpts := []api.Option{api.WithAddr(*flags.apiAddr)}
	if twilioSvc != nil {
		apiOpts = append(apiOpts, api.WithTwilioService(twilioSvc))
	}
	server := api.NewServer(st, apiOpts...)
	if err := server.Start(); err != nil {
		return err
	}

	go handler.Run(ctx)

	slog.Info("coldcalc running", "api_addr", *flags.apiAddr)
	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("API server shutdown failed", "error", err)
	}
	return nil
}
