package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eucorp/planning/config"
	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/data"
	"github.com/eucorp/planning/internal/observability/statsd"
	"github.com/eucorp/planning/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Classifications *service.ClassificationService
	Departments     *service.DepartmentService
	Leads           *service.LeadService
	Goals           *service.GoalService
	Objectives      *service.ObjectiveService
	Opportunities   *service.OpportunityService
	Profiles        *service.ProfileService
	Ratings         *service.RatingService
	Monitoring      *service.MonitoringService
	Evaluation      *service.EvaluationService
	Auth            *service.AuthService
	Observability   ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB                 *sql.DB
	Redis              redis.UniversalClient
	ClassificationRepo *data.ClassificationRepo
	DepartmentRepo     *data.DepartmentRepo
	LeadRepo           *data.LeadRepo
	GoalRepo           *data.GoalRepo
	ObjectiveRepo      *data.ObjectiveRepo
	OpportunityRepo    *data.OpportunityRepo
	ProfileRepo        *data.ProfileRepo
	RatingRepo         *data.RatingRepo
	MonitoringRepo     *data.MonitoringRepo
}

// buildObservability configures the metrics adapter.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  "eucorp",
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redis redis.UniversalClient) *serviceRepositories {
	return &serviceRepositories{
		DB:                 db,
		Redis:              redis,
		ClassificationRepo: data.NewClassificationRepo(db),
		DepartmentRepo:     data.NewDepartmentRepo(db),
		LeadRepo:           data.NewLeadRepo(db),
		GoalRepo:           data.NewGoalRepo(db),
		ObjectiveRepo:      data.NewObjectiveRepo(db),
		OpportunityRepo:    data.NewOpportunityRepo(db),
		ProfileRepo:        data.NewProfileRepo(db),
		RatingRepo:         data.NewRatingRepo(db),
		MonitoringRepo:     data.NewMonitoringRepo(db),
	}
}

// profileCache returns the Redis-backed cache for profile lookups, or nil
// when no Redis client is configured so the service falls through to Postgres.
//
//nolint:ireturn // callers need the port type so a nil cache disables caching cleanly.
func profileCache(client redis.UniversalClient) core.CacheRepository {
	if client == nil {
		return nil
	}
	return data.NewRedisCacheRepo(client)
}

func newAuthService(cfg config.AuthConfig, redis redis.UniversalClient, logger *slog.Logger) *service.AuthService {
	return BuildAuthService(AuthConfig{
		Auth:        cfg,
		RedisClient: redis,
		Logger:      logger,
	})
}

// DomainServicesOptions groups dependencies for domain service construction.
type DomainServicesOptions struct {
	Repos         *serviceRepositories
	Observability ObservabilityContainer
	Config        *config.AppConfig
	Logger        *slog.Logger
}

// buildDomainServices wires business services using repositories and observability adapters.
func buildDomainServices(opts *DomainServicesOptions) ServiceContainer {
	if opts == nil {
		return ServiceContainer{}
	}
	svcLogger := opts.Logger
	if svcLogger == nil {
		svcLogger = slog.Default()
	}

	appCfg := opts.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := opts.Repos

	return ServiceContainer{
		Classifications: service.NewClassificationService(service.ClassificationServiceOptions{
			Repo: repos.ClassificationRepo,
		}),
		Departments: service.NewDepartmentService(service.DepartmentServiceOptions{
			Repo: repos.DepartmentRepo,
		}),
		Leads: service.NewLeadService(service.LeadServiceOptions{
			Repo: repos.LeadRepo,
		}),
		Goals: service.NewGoalService(service.GoalServiceOptions{
			Repo:       repos.GoalRepo,
			Objectives: repos.ObjectiveRepo,
			Logger:     svcLogger,
		}),
		Objectives: service.NewObjectiveService(service.ObjectiveServiceOptions{
			Repo:   repos.ObjectiveRepo,
			Goals:  repos.GoalRepo,
			Logger: svcLogger,
		}),
		Opportunities: service.NewOpportunityService(service.OpportunityServiceOptions{
			Repo:   repos.OpportunityRepo,
			Logger: svcLogger,
		}),
		Profiles: service.NewProfileService(service.ProfileServiceOptions{
			Repo:   repos.ProfileRepo,
			Cache:  profileCache(repos.Redis),
			Logger: svcLogger,
		}),
		Ratings: service.NewRatingService(service.RatingServiceOptions{
			Repo: repos.RatingRepo,
		}),
		Monitoring: service.NewMonitoringService(service.MonitoringServiceOptions{
			Repo: repos.MonitoringRepo,
		}),
		Evaluation: service.NewEvaluationService(service.EvaluationServiceOptions{
			Monitoring: repos.MonitoringRepo,
			Logger:     svcLogger,
		}),
		Auth:          newAuthService(appCfg.Auth, repos.Redis, svcLogger),
		Observability: opts.Observability,
	}
}

// NewServices builds the full service container from infrastructure dependencies.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var obsCfg config.ObservabilityConfig
	if deps.Config != nil {
		obsCfg = deps.Config.Observability
	}
	observability := buildObservability(logger, obsCfg)
	repos := buildRepositories(deps.DB, deps.RedisClient)
	return buildDomainServices(&DomainServicesOptions{
		Repos:         repos,
		Observability: observability,
		Config:        deps.Config,
		Logger:        logger,
	})
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// RunServicesWithShutdown starts the HTTP server and manages its lifecycle.
// This function blocks until a shutdown signal is received or the server fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	ctx := context.Background()
	serviceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	return waitForShutdown(shutdownConfig{
		ctx:        serviceCtx,
		cancel:     cancel,
		httpServer: server,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx        context.Context
	cancel     context.CancelFunc
	httpServer *http.Server
	logger     *slog.Logger
}

// waitForShutdown waits for a shutdown signal.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	cfg.logger.Info("shutting down services...")
	cfg.cancel()
	return gracefulStop(cfg)
}

// gracefulStop attempts to gracefully stop the HTTP server.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.ctx, shutdownWaitTimeout)
	defer cancel()

	return ShutdownHTTPServer(ShutdownConfig{
		Context: shutdownCtx,
		Server:  cfg.httpServer,
		Logger:  cfg.logger,
	})
}
