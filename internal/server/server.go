package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/config"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/media"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/memory"
	miniostore "github.com/njprem/FocoTour_APP_BackEnd/internal/repository/minio"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/postgres"
	redisstore "github.com/njprem/FocoTour_APP_BackEnd/internal/repository/redis"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/static"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/stream"
	transporthttp "github.com/njprem/FocoTour_APP_BackEnd/internal/transport/http"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/transport/mail"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

// Backends are the external connections a server may use. Both are optional;
// the storage driver in the config decides which one must be present.
type Backends struct {
	DB    *sqlx.DB
	Redis *goredis.Client
}

type Server struct {
	Echo      *echo.Echo
	Cfg       config.Config
	Hub       *stream.Hub
	Reminders *service.ReminderScheduler
	Backends  Backends
}

type stores struct {
	kv           ports.KeyValueStore
	users        ports.UserRepository
	destinations ports.DestinationRepository
	inbox        interface {
		ports.NotificationInbox
		service.Notifier
	}
}

func NewServer(cfg config.Config, backends Backends) (*Server, error) {
	st, err := buildStores(cfg, backends)
	if err != nil {
		return nil, err
	}

	var storage ports.ObjectStorage
	if cfg.ObjectStorageEnabled() {
		client, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		storage = miniostore.NewStorage(client, cfg.MinIOPublicURL)
	}

	catalog, err := static.NewSource(cfg.CatalogSource, storage)
	if err != nil {
		return nil, err
	}

	loc := cfg.EventLocation()
	hub := stream.NewHub(backends.Redis)
	reminders := service.NewReminderScheduler(service.ReminderConfig{
		Lead:        cfg.ReminderLead,
		DefaultIcon: cfg.ReminderIcon,
		Location:    loc,
	}, st.inbox, hub)
	if cfg.SMTPHost != "" {
		reminders.AddNotifier(mail.NewVisitReminderMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPUseTLS))
	}

	state := service.NewUserStateService(st.kv)
	bucket := ""
	if storage != nil {
		bucket = cfg.MinIOBucketDestinations
	}
	destinations := service.NewDestinationService(st.destinations, catalog, state, storage,
		media.NewInspector(cfg.DestinationImageMaxBytes, cfg.DestinationImageMaxDimension),
		service.DestinationServiceConfig{
			PageDelay:         cfg.PageDelay,
			ImageBucket:       bucket,
			MaxImageDimension: cfg.DestinationImageMaxDimension,
			Location:          loc,
		})
	auth := service.NewAuthService(st.users, state, util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL), reminders, cfg.AuthDelay)

	e := transporthttp.NewRouter(cfg.AllowOrigins)
	transporthttp.RegisterPages(e, cfg.FrontendURL)
	transporthttp.RegisterSwagger(e, cfg.SwaggerSpecPath)
	transporthttp.RegisterAuth(e, auth)
	transporthttp.RegisterDestinations(e, auth, destinations)
	transporthttp.RegisterFavorites(e, auth, service.NewFavoriteService(destinations, state))
	transporthttp.RegisterDashboard(e, auth, service.NewDashboardService(destinations, state))
	transporthttp.RegisterRoutePlanner(e, auth, service.NewRoutePlannerService(destinations, state, reminders, loc))
	transporthttp.RegisterNotifications(e, auth, service.NewNotificationService(st.inbox), hub)
	transporthttp.RegisterTestimonials(e, service.NewTestimonialService())

	return &Server{
		Echo:      e,
		Cfg:       cfg,
		Hub:       hub,
		Reminders: reminders,
		Backends:  backends,
	}, nil
}

func buildStores(cfg config.Config, backends Backends) (stores, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if backends.DB == nil {
			return stores{}, fmt.Errorf("storage driver %s requires a database connection", cfg.StorageDriver)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, backends.DB); err != nil {
			return stores{}, err
		}
		return stores{
			kv:           postgres.NewKeyValueStore(backends.DB),
			users:        postgres.NewUserRepo(backends.DB),
			destinations: postgres.NewDestinationRepo(backends.DB),
			inbox:        postgres.NewNotificationInbox(backends.DB),
		}, nil
	case config.StorageRedis:
		if backends.Redis == nil {
			return stores{}, fmt.Errorf("storage driver %s requires a redis connection", cfg.StorageDriver)
		}
		return stores{
			kv:           redisstore.NewKeyValueStore(backends.Redis),
			users:        memory.NewUserRepo(),
			destinations: memory.NewDestinationRepo(),
			inbox:        memory.NewNotificationInbox(),
		}, nil
	default:
		return stores{
			kv:           memory.NewKeyValueStore(),
			users:        memory.NewUserRepo(),
			destinations: memory.NewDestinationRepo(),
			inbox:        memory.NewNotificationInbox(),
		}, nil
	}
}

// Close stops pending reminders and the stream subscriber, then releases
// the backends.
func (s *Server) Close() {
	s.Reminders.Stop()
	s.Hub.Close()
	if s.Backends.Redis != nil {
		if err := s.Backends.Redis.Close(); err != nil {
			log.Printf("close redis: %v", err)
		}
	}
	if s.Backends.DB != nil {
		if err := s.Backends.DB.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}
}
