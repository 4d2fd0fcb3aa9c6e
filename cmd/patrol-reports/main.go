package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/zombor/patrol-reports/internal/auth"
	"github.com/zombor/patrol-reports/internal/discord"
	"github.com/zombor/patrol-reports/internal/mugshot"
	"github.com/zombor/patrol-reports/internal/notify"
	"github.com/zombor/patrol-reports/internal/report"
	"github.com/zombor/patrol-reports/pkg/logging"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("patrol-reports")
	var (
		port             = fs.IntLong("port", 8080, "HTTP server port")
		dbPath           = fs.StringLong("db", "", "Citation database file path (empty keeps citations in memory)")
		logLevel         = fs.StringLong("log-level", "", "Log level: debug, info, warn or error (default from LOG_LEVEL)")
		discordToken     = fs.StringLong("discord-token", "", "Discord bot token")
		discordChannel   = fs.StringLong("discord-channel", "", "Discord channel ID reports are posted to")
		discordGuild     = fs.StringLong("discord-guild", "", "Discord guild ID used for role checks (empty disables the role gate)")
		discordAPI       = fs.StringLong("discord-api", discord.DefaultBaseURL, "Discord REST API base URL")
		requiredRoles    = fs.StringLong("required-roles", strings.Join(auth.DefaultRequiredRoles, ","), "Comma separated Discord role names allowed to submit reports")
		identitySecret   = fs.StringLong("identity-secret", "", "HS256 secret for bearer identity tokens (empty trusts the proxy identity headers)")
		paymentRecipient = fs.StringLong("payment-recipient", "", "Discord user ID citations are paid to")
		courtDate        = fs.StringLong("court-date", report.DefaultCourt.Date, "Court date printed on reports")
		courtLocation    = fs.StringLong("court-location", report.DefaultCourt.Location, "Court address printed on reports")
		courtPhone       = fs.StringLong("court-phone", report.DefaultCourt.Phone, "Court phone number printed on reports")
		notifyTimeout    = fs.StringLong("notify-timeout", notify.DefaultTimeout.String(), "Timeout for a single Discord delivery")
		describerType    = fs.StringLong("describer", "none", "Mugshot describer: 'none', 'gemini' or 'ollama'")
		geminiKey        = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel      = fs.StringLong("gemini-model", mugshot.DefaultGeminiModel, "Google Gemini model name")
		ollamaURL        = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel      = fs.StringLong("ollama-model", "llava", "Ollama model name (e.g., llava, llava-phi3, bakllava, qwen2-vl)")
		_                = fs.StringLong("config", "", "Config file path")
		showVersion      = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("PATROL_REPORTS"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	logging.Setup(*logLevel)

	timeout, err := time.ParseDuration(*notifyTimeout)
	if err != nil {
		slog.Error("Invalid notify timeout", "value", *notifyTimeout, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	var db report.DB
	if *dbPath == "" {
		slog.Warn("No database path configured, citations are kept in memory")
		db = report.NewMemDB()
	} else {
		slog.Info("Initializing database...", "path", *dbPath)
		db, err = report.NewBoltDB(*dbPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize Discord
	var discordClient *discord.Client
	if *discordToken != "" {
		discordClient, err = discord.NewClient(*discordAPI, *discordToken)
		if err != nil {
			slog.Error("Failed to initialize Discord client", "error", err)
			os.Exit(1)
		}
	}

	// Initialize describer based on type
	var describer mugshot.Describer
	switch *describerType {
	case "none", "":
	case "gemini":
		// Get Gemini API key from flag or environment
		apiKey := *geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Error("Gemini API key is required. Set --gemini-key flag or GEMINI_API_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Gemini describer...", "model", *geminiModel)
		describer, err = mugshot.NewGemini(ctx, apiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
	case "ollama":
		slog.Info("Initializing Ollama describer...", "url", *ollamaURL, "model", *ollamaModel)
		describer = mugshot.NewOllama(*ollamaURL, *ollamaModel)
	default:
		slog.Error("Invalid describer type", "type", *describerType, "valid", "none, gemini or ollama")
		os.Exit(1)
	}
	if describer != nil {
		defer describer.Close()
	}

	court := report.Court{Date: *courtDate, Location: *courtLocation, Phone: *courtPhone}

	// Initialize notifications
	var (
		notifier   report.Notifier
		dispatcher *notify.Dispatcher
	)
	if discordClient != nil && *discordChannel != "" {
		dispatcher = notify.NewDispatcher(discordClient,
			&notify.Formatter{PaymentRecipient: *paymentRecipient, Court: court},
			notify.Config{
				ChannelID:  *discordChannel,
				Timeout:    timeout,
				Describer:  describer,
				Registerer: registry,
			})
		notifier = dispatcher
		slog.Info("Discord notifications enabled", "channel", *discordChannel)
	} else {
		slog.Warn("Discord notifications disabled, set --discord-token and --discord-channel to enable")
	}

	// Initialize role gate
	var resolver auth.Resolver = auth.HeaderResolver{}
	if *identitySecret != "" {
		resolver = auth.NewTokenResolver(*identitySecret)
		slog.Info("Bearer identity tokens enabled")
	}
	var checker auth.RoleChecker
	if discordClient != nil && *discordGuild != "" {
		checker = discordClient.Guild(*discordGuild)
	}
	gate := auth.NewGate(resolver, checker, auth.ParseRoles(*requiredRoles))

	service := report.NewService(db, notifier, court)
	handler := report.NewServer(service, gate, report.NewMetrics(registry))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", srv.Addr), "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http: %w", err)
		}
		if dispatcher != nil {
			dispatcher.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
