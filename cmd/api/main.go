package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/config"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/logging"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/postgres"
	redisstore "github.com/njprem/FocoTour_APP_BackEnd/internal/repository/redis"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/server"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig      func() config.Config
	connectPostgres func(config.Config) (*sqlx.DB, error)
	connectRedis    func(config.Config) *goredis.Client
	notify          func(chan<- os.Signal, ...os.Signal)
	run             func(context.Context, config.Config, server.Backends, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:      config.Load,
		connectPostgres: connectPostgres,
		connectRedis:    connectRedis,
		notify:          signal.Notify,
		run:             Run,
	}
}

func connectPostgres(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	return postgres.New(cfg.DatabaseURL)
}

func connectRedis(cfg config.Config) *goredis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redisstore.NewClient(cfg.RedisAddr, cfg.RedisPassword)
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()
	closer := logging.Setup(cfg.LogPrefix, cfg.LogstashTCPAddr, "focotour-api")
	defer closer.Close()

	db, err := deps.connectPostgres(cfg)
	if err != nil {
		log.Printf("postgres connection failed: %v", err)
	}
	rdb := deps.connectRedis(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, server.Backends{DB: db, Redis: rdb}, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(e *echo.Echo, addr string) error

var defaultListen ListenFunc = func(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// Run starts the HTTP server and waits for a termination signal, then drains
// in-flight requests for up to five seconds.
func Run(ctx context.Context, cfg config.Config, backends server.Backends, signals <-chan os.Signal, listen ListenFunc) error {
	srv, err := server.NewServer(cfg, backends)
	if err != nil {
		return err
	}
	defer srv.Close()

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.Echo, ":"+cfg.Port)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Echo.Shutdown(shutdownCtx)
}
