// @title                       Project Collaboration API
// @version                     1.0
// @description                 Projects, member ledgers with role-based authorization, tasks and progress reports.
// @BasePath                    /
// @securityDefinitions.apikey  RequesterID
// @in                          header
// @name                        X-User-ID
// @description                 Id of the user the request acts for.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/Hunnisme/NT106-Projects/internal/api"
	"github.com/Hunnisme/NT106-Projects/internal/api/handler"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
	"github.com/Hunnisme/NT106-Projects/internal/core/service"
	"github.com/Hunnisme/NT106-Projects/internal/infrastructure/config"
	mongodb "github.com/Hunnisme/NT106-Projects/internal/infrastructure/db/mongo"
	redisdb "github.com/Hunnisme/NT106-Projects/internal/infrastructure/db/redis"
	"github.com/Hunnisme/NT106-Projects/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := pflag.String("env-file", ".env", "optional dotenv file read before the environment")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, *envFile)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "project-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	users := mongodb.NewUserRepository(db)
	projects := mongodb.NewProjectRepository(db)
	tasks := mongodb.NewTaskRepository(db)
	if err := mongodb.EnsureIndexes(ctx, users, projects, tasks); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	var (
		rdb   *redis.Client
		cache ports.NameCache
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = redisdb.NewNameCache(rdb, cfg.Redis.NameTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.NameTTL).Msg("name cache enabled")
	} else {
		log.Info().Msg("REDIS_ADDR not set, name cache disabled")
	}

	names := service.NewNameResolver(users, cache, log)

	e := api.NewRouter(api.Dependencies{
		Log:       log,
		Identity:  service.NewIdentityService(users, log),
		Projects:  service.NewProjectService(projects, tasks, users, names, log),
		Members:   service.NewMembershipService(projects, users, log),
		Tasks:     service.NewTaskService(projects, tasks, names, log),
		Reports:   service.NewReportService(projects, tasks, log),
		Readiness: handler.NewHealthDependenciesHandler(db, rdb),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
