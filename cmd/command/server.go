package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"akshara/clinic-queue/internal/api"
	authHandler "akshara/clinic-queue/internal/api/handler/auth"
	queueHandler "akshara/clinic-queue/internal/api/handler/queue"
	"akshara/clinic-queue/internal/api/middleware"
	"akshara/clinic-queue/internal/broadcast"
	"akshara/clinic-queue/internal/config"
	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/infra"
	"akshara/clinic-queue/internal/queue"
	"akshara/clinic-queue/internal/repository"
	authService "akshara/clinic-queue/internal/service/auth"
	clinicService "akshara/clinic-queue/internal/service/clinic"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run clinic queue server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}

	redisClient, err := infra.NewRedisClient(ctx, cfg.Database.Redis, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
		return
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
		}
	}()

	kafkaWriter := infra.NewKafkaWriter(cfg.Kafka, constant.TopicQueueEvents)

	// create repositories
	appointmentRepository := repository.NewAppointmentRepository(db.GetDb())
	consultRepository := repository.NewConsultRepository(db.GetDb())
	userRepository := repository.NewUserRepository(db.GetDb())
	dlqRepository := repository.NewDlqRepository(db.GetDb())

	// engine core
	estimator := queue.NewEstimator(cfg.Queue.DefaultAverageConsultMinutes)
	store := queue.NewStore(estimator)
	lifecycle := queue.NewLifecycle(store, estimator, cfg.Queue.AllowParallelConsults, cfg.Queue.AllowReopen)
	hub := broadcast.NewHub(cmd.Logger)

	// create services
	clinicServiceInstance := clinicService.NewService(
		store,
		lifecycle,
		hub,
		appointmentRepository,
		consultRepository,
		dlqRepository,
		cmd.Logger,
		kafkaWriter,
		cfg.Queue.DefaultAverageConsultMinutes,
	)

	authServiceInstance := authService.NewAuthService(userRepository, cfg.Auth, cmd.Logger)
	if err := authServiceInstance.Seed(ctx); err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to seed users"))
		return
	}

	// reload today's queue so a restart keeps tokens and statuses
	if err := clinicServiceInstance.Restore(ctx); err != nil {
		cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to restore queue snapshot"))
	}

	// create handlers
	queueHandlerInstance := queueHandler.New(clinicServiceInstance)
	authHandlerInstance := authHandler.New(authServiceInstance)

	// create middlewares
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg.RateLimit)

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(
		queueHandlerInstance,
		authHandlerInstance,
		cfg.Auth.JWTSecret,
		rateLimitMiddleware,
	)

	// start background event producers
	for i := 0; i < cfg.WorkerCount; i++ {
		go clinicServiceInstance.ProduceEvents(i)
	}
	cmd.Logger.WithContext(ctx).Infof("started %d event producer workers", cfg.WorkerCount)

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}
