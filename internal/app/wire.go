//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	paymentGateway "fitbox/internal/gateway/payment"
	availability_get "fitbox/internal/handlers/rest/availability_get"
	login_post "fitbox/internal/handlers/rest/login_post"
	menu_get "fitbox/internal/handlers/rest/menu_get"
	order_post "fitbox/internal/handlers/rest/order_post"
	orders_get "fitbox/internal/handlers/rest/orders_get"
	register_post "fitbox/internal/handlers/rest/register_post"
	zones_get "fitbox/internal/handlers/rest/zones_get"
	"fitbox/internal/handlers/tasks/order_expire"
	"fitbox/internal/pkg/config"
	"fitbox/internal/pkg/factory/delivery_schedule"
	"fitbox/internal/pkg/factory/payment_handle"

	customerRepo "fitbox/internal/repository/customer"
	menuRepo "fitbox/internal/repository/menu"
	orderRepo "fitbox/internal/repository/order"
	zoneRepo "fitbox/internal/repository/zone"
	availabilityService "fitbox/internal/service/availability"
	customerService "fitbox/internal/service/customer"
	menuService "fitbox/internal/service/menu"
	orderService "fitbox/internal/service/order"
	paymentService "fitbox/internal/service/payment"

	"fitbox/pkg/background"
	"fitbox/pkg/logger"
	"fitbox/pkg/querier"
	"fitbox/pkg/tx"
)

type (
	ExpireInterval time.Duration
)

type Application struct {
	ServiceAvailability ServiceAvailability
	ServiceMenu         ServiceMenu
	ServiceCustomer     ServiceCustomer
	ServiceOrder        ServiceOrder
	BackgroundWorkers   *background.Worker
}

type ServiceAvailability interface {
	availability_get.Service
	zones_get.Service
}

type ServiceMenu interface {
	menu_get.Service
}

type ServiceCustomer interface {
	register_post.Service
	login_post.Service
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLocation,
		provideExpireInterval,

		provideZoneRepository,
		provideOrderRepository,
		provideMenuRepository,
		provideCustomerRepository,

		delivery_schedule.New,
		provideServiceAvailability,
		provideServiceMenu,
		provideServiceCustomer,
		providePaymentGateway,
		provideServiceOrder,

		provideOrderExpireTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAvailability), new(*availabilityService.Availability)),
		wire.Bind(new(ServiceMenu), new(*menuService.Service)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(availabilityService.ZoneRegistry), new(*zoneRepo.Repository)),
		wire.Bind(new(availabilityService.OrderCounter), new(*orderRepo.Repository)),
		wire.Bind(new(availabilityService.ScheduleFactory), new(*delivery_schedule.ScheduleFactory)),
		wire.Bind(new(menuService.Repository), new(*menuRepo.Repository)),
		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AvailabilityService), new(*availabilityService.Availability)),
		wire.Bind(new(orderService.MenuService), new(*menuService.Service)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_expire.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLocation,

		provideZoneRepository,
		provideOrderRepository,
		provideMenuRepository,

		delivery_schedule.New,
		provideServiceAvailability,
		provideServiceMenu,
		providePaymentGateway,
		provideServiceOrder,

		provideStatusHandlerFactory,
		provideServicePayment,

		wire.Bind(new(availabilityService.ZoneRegistry), new(*zoneRepo.Repository)),
		wire.Bind(new(availabilityService.OrderCounter), new(*orderRepo.Repository)),
		wire.Bind(new(availabilityService.ScheduleFactory), new(*delivery_schedule.ScheduleFactory)),
		wire.Bind(new(menuService.Repository), new(*menuRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AvailabilityService), new(*availabilityService.Availability)),
		wire.Bind(new(orderService.MenuService), new(*menuService.Service)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(paymentService.OrderService), new(*orderService.Service)),
		wire.Bind(new(paymentService.HandlerFactory), new(*payment_handle.StatusHandlerFactory)),

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

func provideLocation(cfg *config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Delivery.Timezone)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideMenuRepository(querier *querier.Querier) *menuRepo.Repository {
	return menuRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideServiceAvailability(
	registry availabilityService.ZoneRegistry,
	counter availabilityService.OrderCounter,
	schedule availabilityService.ScheduleFactory,
) *availabilityService.Availability {
	return availabilityService.New(registry, counter, schedule, nil)
}

func provideServiceMenu(repository menuService.Repository, loc *time.Location) *menuService.Service {
	return menuService.New(repository, loc, nil)
}

func provideServiceCustomer(repository customerService.Repository) *customerService.Service {
	return customerService.New(repository)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.Gateway {
	return paymentGateway.New(cfg.Payment.BaseURL, nil)
}

func provideServiceOrder(
	repository orderService.Repository,
	availability orderService.AvailabilityService,
	menu orderService.MenuService,
	gateway orderService.PaymentGateway,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		repository,
		availability,
		menu,
		gateway,
		txManager,
		cfg.Delivery.PendingPaymentTTL,
		nil,
	)
}

func provideStatusHandlerFactory(orderService paymentService.OrderService) *payment_handle.StatusHandlerFactory {
	return payment_handle.NewStatusHandlerFactory(orderService)
}

func provideServicePayment(
	orderService paymentService.OrderService,
	handlerFactory paymentService.HandlerFactory,
) *paymentService.Service {
	return paymentService.New(orderService, handlerFactory)
}

func provideExpireInterval(cfg *config.Config) ExpireInterval {
	return ExpireInterval(cfg.Tasks.OrderExpireInterval)
}

func provideOrderExpireTask(
	log logger.Logger,
	orderService order_expire.Service,
	interval ExpireInterval,
) *order_expire.OrderExpire {
	return order_expire.NewOrderExpire(log, orderService, time.Duration(interval))
}

func provideTaskList(
	orderExpireTask *order_expire.OrderExpire,
) []background.Task {
	return []background.Task{
		orderExpireTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
