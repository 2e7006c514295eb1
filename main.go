// Command code-sniper watches a Twitch chat channel for redemption codes.
// It:
//   - Loads configuration and initializes structured logging.
//   - Connects to Twitch IRC with a hand-rolled line-oriented session
//     (PASS/NICK/JOIN handshake, PING/PONG, CRLF framing).
//   - Feeds chat payloads through a regex matcher and a deduplicating
//     seen-code registry.
//   - Fires best-effort side effects on each first-seen code: beep,
//     clipboard copy, optional automated entry into a desktop app.
//   - Optionally exposes /metrics and /healthz on METRICS_ADDR.
//
// Shutdown is graceful on SIGINT/SIGTERM; the serve loop also ends cleanly
// when the server disconnects. There is no automatic reconnect.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onnwee/code-sniper/codes"
	"github.com/onnwee/code-sniper/config"
	"github.com/onnwee/code-sniper/irc"
	"github.com/onnwee/code-sniper/notify"
	"github.com/onnwee/code-sniper/telemetry"
)

func main() {
	// Load .env file if present (local dev convenience only; production relies on real env)
	_ = godotenv.Load()

	// Configure logging (level + format). Defaults: level=info, format=text.
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "info", "":
		// keep default
	default:
		tmp := slog.New(slog.NewTextHandler(os.Stdout, nil))
		tmp.Warn("unknown LOG_LEVEL, using info", slog.String("value", os.Getenv("LOG_LEVEL")))
	}
	var handler slog.Handler
	switch strings.ToLower(os.Getenv("LOG_FORMAT")) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(handler))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	telemetry.Init()
	shutdown, err := telemetry.InitTracing("code-sniper", "1.0.0")
	if err != nil {
		slog.Error("tracing initialization failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = telemetry.WithCorrelation(ctx, uuid.NewString())
	log := telemetry.LoggerWithCorr(ctx)

	// Pattern compiles once; an invalid override is a config error.
	matcher, err := codes.NewMatcher(cfg.CodePattern)
	if err != nil {
		log.Error("code pattern rejected", slog.Any("err", err))
		os.Exit(1)
	}

	detector := &codes.Detector{
		Matcher:  matcher,
		Registry: codes.NewRegistry(),
		Notifier: buildNotifier(cfg),
	}

	if cfg.SelfTest {
		log.Info("NO_CONNECT=1 self-test", slog.String("message", cfg.TestMessage))
		detector.HandleMessage(ctx, cfg.TestMessage)
		log.Info("self-test complete")
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Error("config invalid", slog.Any("err", err))
		os.Exit(1)
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	sess := &irc.Session{Nick: cfg.Nick, Token: cfg.Token, Channel: cfg.Channel}
	log.Info("connecting to Twitch IRC", slog.String("nick", cfg.Nick), slog.String("channel", cfg.Channel))
	if err := sess.Connect(ctx); err != nil {
		log.Error("connect failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Unblock the serve loop when a shutdown signal arrives.
	go func() {
		<-ctx.Done()
		_ = sess.Close()
	}()

	if err := sess.Serve(func(payload string) {
		detector.HandleMessage(ctx, payload)
	}); err != nil {
		log.Error("session ended with error", slog.Any("err", err))
		os.Exit(1)
	}
}

// buildNotifier assembles the side-effect chain from config toggles.
func buildNotifier(cfg *config.Config) codes.Notifier {
	d := &notify.Desktop{
		DisableBeep:      cfg.DisableBeep,
		DisableClipboard: cfg.DisableClipboard,
	}
	if cfg.AutoRedeem {
		d.Redeemer = &notify.Redeemer{PID: cfg.TargetPID, SendEnter: cfg.SendEnter}
	}
	return d
}

// serveMetrics exposes Prometheus metrics and a trivial health probe.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	slog.Info("metrics listener started", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("metrics listener failed", slog.Any("err", err))
	}
}
