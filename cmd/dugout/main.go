package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beisbol/dugout/internal/api/rest"
	"github.com/beisbol/dugout/internal/api/websocket"
	"github.com/beisbol/dugout/internal/backend"
	"github.com/beisbol/dugout/internal/config"
	"github.com/beisbol/dugout/internal/scheduler"
	"github.com/beisbol/dugout/internal/session"
)

const (
	serviceName    = "dugout"
	serviceVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	setupLogging(cfg.LogLevel)
	log.Info().Str("version", serviceVersion).Msgf("starting %s", serviceName)

	// Redis holds the browser sessions; retry so the dashboard survives a
	// slower-starting Redis container.
	var sessions *session.RedisStore
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		sessions, err = session.NewRedisStore(cfg.RedisURL, time.Duration(cfg.SessionMaxAge)*time.Second)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).
				Dur("retry_in", retryDelay).Msg("redis connection failed")
			time.Sleep(retryDelay)
		} else {
			log.Fatal().Err(err).Int("attempts", maxRetries).Msg("could not connect to redis")
		}
	}
	defer sessions.Close()

	log.Info().Msg("connected to redis")

	provider := session.NewProvider(sessions)

	gateway := backend.NewGateway(cfg.BackendURL, session.ContextTokens{})
	gateway.OnSessionExpired = func() {
		log.Info().Msg("backend rejected a session token")
	}
	clients := backend.NewClients(gateway)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Live score updates: hub fans out, poller feeds it.
	hub := websocket.NewHub()
	go hub.Run()

	poller := scheduler.NewPoller(clients.Games, hub, clockwork.NewRealClock(), cfg.PollInterval)
	go poller.Start(ctx)

	restServer := rest.NewServer(rest.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		SessionMaxAge:  cfg.SessionMaxAge,
	}, clients, provider)
	go func() {
		if err := restServer.Start(); err != nil {
			log.Error().Err(err).Msg("rest server stopped")
		}
	}()

	wsServer := websocket.NewServer(hub)
	go func() {
		if err := wsServer.Start(cfg.WSPort); err != nil {
			log.Error().Err(err).Msg("websocket server stopped")
		}
	}()

	log.Info().Str("rest_port", cfg.Port).Str("ws_port", cfg.WSPort).
		Str("backend", cfg.BackendURL).Msgf("%s started", serviceName)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("rest server shutdown")
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("websocket server shutdown")
	}

	log.Info().Msgf("%s stopped", serviceName)
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
