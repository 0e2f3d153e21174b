//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"prevoz/internal/handlers/rest/application_approve_post"
	"prevoz/internal/handlers/rest/application_post"
	"prevoz/internal/handlers/rest/application_reject_post"
	"prevoz/internal/handlers/rest/applications_get"
	"prevoz/internal/handlers/rest/notification_read_post"
	"prevoz/internal/handlers/rest/notifications_get"
	"prevoz/internal/handlers/rest/payment_retry_post"
	"prevoz/internal/handlers/rest/payments_get"
	"prevoz/internal/handlers/rest/tour_approve_post"
	"prevoz/internal/handlers/rest/tour_complete_post"
	"prevoz/internal/handlers/rest/tour_post"
	"prevoz/internal/handlers/rest/tour_reject_post"
	"prevoz/internal/handlers/rest/tours_get"
	"prevoz/internal/handlers/rest/unread_count_get"
	"prevoz/internal/handlers/tasks/blocking_reconcile"
	"prevoz/internal/pkg/config"
	redisCache "prevoz/internal/pkg/redis"

	accountRepo "prevoz/internal/repository/account"
	applicationRepo "prevoz/internal/repository/application"
	notificationRepo "prevoz/internal/repository/notification"
	paymentRepo "prevoz/internal/repository/payment"
	tourRepo "prevoz/internal/repository/tour"
	accountService "prevoz/internal/service/account"
	applicationService "prevoz/internal/service/application"
	notificationService "prevoz/internal/service/notification"
	paymentService "prevoz/internal/service/payment"
	tourService "prevoz/internal/service/tour"

	"prevoz/pkg/background"
	"prevoz/pkg/logger"
	"prevoz/pkg/querier"
	"prevoz/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	ReconcileInterval time.Duration
	FeeAmount         int64
)

type Application struct {
	ServiceTour         ServiceTour
	ServiceApplication  ServiceApplication
	ServicePayment      ServicePayment
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceTour interface {
	tour_post.Service
	tours_get.Service
	tour_approve_post.Service
	tour_reject_post.Service
	tour_complete_post.Service
}

type ServiceApplication interface {
	application_post.Service
	applications_get.Service
	application_approve_post.Service
	application_reject_post.Service
}

type ServicePayment interface {
	payment_retry_post.Service
	payments_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	unread_count_get.Service
	notification_read_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,
		provideFeeAmount,
		provideUnreadCounter,

		provideAccountRepository,
		provideTourRepository,
		provideApplicationRepository,
		providePaymentRepository,
		provideNotificationRepository,

		provideServiceAccount,
		provideServiceNotification,
		provideServicePayment,
		provideServiceTour,
		provideServiceApplication,

		provideBlockingReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTour), new(*tourService.Tour)),
		wire.Bind(new(ServiceApplication), new(*applicationService.Application)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.UnreadCache), new(*redisCache.UnreadCounter)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(tourService.Repository), new(*tourRepo.Repository)),
		wire.Bind(new(applicationService.Repository), new(*applicationRepo.Repository)),

		wire.Bind(new(paymentService.AccountService), new(*accountService.Account)),
		wire.Bind(new(paymentService.Notifier), new(*notificationService.Notification)),
		wire.Bind(new(tourService.PaymentService), new(*paymentService.Payment)),
		wire.Bind(new(tourService.Notifier), new(*notificationService.Notification)),
		wire.Bind(new(applicationService.TourService), new(*tourService.Tour)),
		wire.Bind(new(applicationService.AccountService), new(*accountService.Account)),
		wire.Bind(new(applicationService.Notifier), new(*notificationService.Notification)),

		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(tourService.TxManager), new(*tx.Manager)),
		wire.Bind(new(applicationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(blocking_reconcile.Service), new(*accountService.Account)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Payment
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideFeeAmount,
		provideUnreadCounter,

		provideAccountRepository,
		providePaymentRepository,
		provideNotificationRepository,

		provideServiceAccount,
		provideServiceNotification,
		provideServicePayment,

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.UnreadCache), new(*redisCache.UnreadCounter)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),

		wire.Bind(new(paymentService.AccountService), new(*accountService.Account)),
		wire.Bind(new(paymentService.Notifier), new(*notificationService.Notification)),

		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUnreadCounter(client *redis.Client) *redisCache.UnreadCounter {
	return redisCache.NewUnreadCounter(client)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideTourRepository(querier *querier.Querier) *tourRepo.Repository {
	return tourRepo.New(querier)
}

func provideApplicationRepository(querier *querier.Querier) *applicationRepo.Repository {
	return applicationRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideServiceAccount(repository accountService.Repository) *accountService.Account {
	return accountService.New(repository)
}

func provideServiceNotification(
	repository notificationService.Repository,
	cache notificationService.UnreadCache,
	log logger.Logger,
) *notificationService.Notification {
	return notificationService.New(repository, cache, log)
}

func provideServicePayment(
	repository paymentService.Repository,
	accounts paymentService.AccountService,
	notifier paymentService.Notifier,
	txManager paymentService.TxManager,
	feeAmount FeeAmount,
) *paymentService.Payment {
	return paymentService.New(repository, accounts, notifier, txManager, int64(feeAmount))
}

func provideServiceTour(
	repository tourService.Repository,
	payments tourService.PaymentService,
	notifier tourService.Notifier,
	txManager tourService.TxManager,
) *tourService.Tour {
	return tourService.New(repository, payments, notifier, txManager)
}

func provideServiceApplication(
	repository applicationService.Repository,
	tours applicationService.TourService,
	accounts applicationService.AccountService,
	notifier applicationService.Notifier,
	txManager applicationService.TxManager,
) *applicationService.Application {
	return applicationService.New(repository, tours, accounts, notifier, txManager)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.BlockingReconcileInterval)
}

func provideFeeAmount(cfg *config.Config) FeeAmount {
	return FeeAmount(cfg.Payments.FeeAmount)
}

func provideBlockingReconcileTask(
	log logger.Logger,
	accountService blocking_reconcile.Service,
	interval ReconcileInterval,
) *blocking_reconcile.BlockingReconcile {
	return blocking_reconcile.NewBlockingReconcile(log, accountService, time.Duration(interval))
}

func provideTaskList(
	blockingReconcileTask *blocking_reconcile.BlockingReconcile,
) []background.Task {
	return []background.Task{
		blockingReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
