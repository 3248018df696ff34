//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"backoffice/internal/handlers/kafka-consumer/chat_message"
	customer_get "backoffice/internal/handlers/rest/customer_get"
	customer_post "backoffice/internal/handlers/rest/customer_post"
	customer_put "backoffice/internal/handlers/rest/customer_put"
	customers_get "backoffice/internal/handlers/rest/customers_get"
	messages_get "backoffice/internal/handlers/rest/messages_get"
	notification_read_put "backoffice/internal/handlers/rest/notification_read_put"
	notifications_get "backoffice/internal/handlers/rest/notifications_get"
	order_get "backoffice/internal/handlers/rest/order_get"
	order_post "backoffice/internal/handlers/rest/order_post"
	order_status_put "backoffice/internal/handlers/rest/order_status_put"
	orders_get "backoffice/internal/handlers/rest/orders_get"
	product_post "backoffice/internal/handlers/rest/product_post"
	products_get "backoffice/internal/handlers/rest/products_get"
	staff_post "backoffice/internal/handlers/rest/staff_post"
	staffs_get "backoffice/internal/handlers/rest/staffs_get"
	transactions_get "backoffice/internal/handlers/rest/transactions_get"
	voucher_post "backoffice/internal/handlers/rest/voucher_post"
	voucher_put "backoffice/internal/handlers/rest/voucher_put"
	vouchers_get "backoffice/internal/handlers/rest/vouchers_get"
	"backoffice/internal/handlers/tasks/voucher_refresh"
	"backoffice/internal/handlers/ws/chat_ws"
	"backoffice/internal/pkg/config"
	"backoffice/internal/pkg/kafka"

	customerRepo "backoffice/internal/repository/customer"
	messageRepo "backoffice/internal/repository/message"
	notificationRepo "backoffice/internal/repository/notification"
	orderRepo "backoffice/internal/repository/order"
	productRepo "backoffice/internal/repository/product"
	staffRepo "backoffice/internal/repository/staff"
	transactionRepo "backoffice/internal/repository/transaction"
	voucherRepo "backoffice/internal/repository/voucher"

	catalogService "backoffice/internal/service/catalog"
	chatService "backoffice/internal/service/chat"
	customerService "backoffice/internal/service/customer"
	notificationService "backoffice/internal/service/notification"
	orderService "backoffice/internal/service/order"
	staffService "backoffice/internal/service/staff"
	transactionService "backoffice/internal/service/transaction"
	voucherService "backoffice/internal/service/voucher"

	"backoffice/pkg/background"
	"backoffice/pkg/logger"
	"backoffice/pkg/querier"
	"backoffice/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RefreshInterval time.Duration
)

type Application struct {
	ServiceCustomer     ServiceCustomer
	ServiceCatalog      ServiceCatalog
	ServiceOrder        ServiceOrder
	ServiceVoucher      ServiceVoucher
	ServiceTransaction  ServiceTransaction
	ServiceNotification ServiceNotification
	ServiceChat         ServiceChat
	ServiceStaff        ServiceStaff
	BackgroundWorkers   *background.Worker
}

type ServiceCustomer interface {
	customer_get.Service
	customer_post.Service
	customer_put.Service
	customers_get.Service
}

type ServiceCatalog interface {
	product_post.Service
	products_get.Service
}

type ServiceOrder interface {
	order_get.Service
	order_post.Service
	order_status_put.Service
	orders_get.Service
}

type ServiceVoucher interface {
	voucher_post.Service
	voucher_put.Service
	vouchers_get.Service
}

type ServiceTransaction interface {
	transactions_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_put.Service
}

type ServiceChat interface {
	messages_get.Service
	chat_ws.Service
	chat_message.Service
}

type ServiceStaff interface {
	staff_post.Service
	staffs_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	origin chatService.Origin,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRefreshInterval,

		provideCustomerRepository,
		provideProductRepository,
		provideOrderRepository,
		provideVoucherRepository,
		provideTransactionRepository,
		provideMessageRepository,
		provideNotificationRepository,
		provideStaffRepository,

		provideServiceCustomer,
		provideServiceCatalog,
		provideServiceOrder,
		provideServiceVoucher,
		provideServiceTransaction,
		provideServiceNotification,
		provideServiceChat,
		provideServiceStaff,
		chatService.NewHub,

		provideVoucherRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceVoucher), new(*voucherService.Voucher)),
		wire.Bind(new(ServiceTransaction), new(*transactionService.Transaction)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceChat), new(*chatService.Chat)),
		wire.Bind(new(ServiceStaff), new(*staffService.Staff)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(catalogService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(orderService.CustomerService), new(*customerService.Customer)),
		wire.Bind(new(orderService.CatalogService), new(*catalogService.Catalog)),
		wire.Bind(new(orderService.EventProducer), new(*kafka.Producer)),
		wire.Bind(new(voucherService.Repository), new(*voucherRepo.Repository)),
		wire.Bind(new(transactionService.Repository), new(*transactionRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.StaffRepository), new(*staffRepo.Repository)),
		wire.Bind(new(chatService.Repository), new(*messageRepo.Repository)),
		wire.Bind(new(chatService.EventProducer), new(*kafka.Producer)),
		wire.Bind(new(staffService.Repository), new(*staffRepo.Repository)),

		wire.Bind(new(customerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(voucherService.TxManager), new(*tx.Manager)),
		wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(voucher_refresh.Service), new(*voucherService.Voucher)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notifications)
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

		provideNotificationRepository,
		provideStaffRepository,
		provideServiceNotification,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.StaffRepository), new(*staffRepo.Repository)),
		wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),

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

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideVoucherRepository(querier *querier.Querier) *voucherRepo.Repository {
	return voucherRepo.New(querier)
}

func provideTransactionRepository(querier *querier.Querier) *transactionRepo.Repository {
	return transactionRepo.New(querier)
}

func provideMessageRepository(querier *querier.Querier) *messageRepo.Repository {
	return messageRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideStaffRepository(querier *querier.Querier) *staffRepo.Repository {
	return staffRepo.New(querier)
}

func provideServiceCustomer(
	repository customerService.Repository,
	txManager customerService.TxManager,
) *customerService.Customer {
	return customerService.New(repository, txManager)
}

func provideServiceCatalog(repository catalogService.Repository) *catalogService.Catalog {
	return catalogService.New(repository)
}

func provideServiceOrder(
	log logger.Logger,
	cfg *config.Config,
	repository orderService.Repository,
	transactionRepository orderService.TransactionRepository,
	customerSvc orderService.CustomerService,
	catalogSvc orderService.CatalogService,
	producer orderService.EventProducer,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		repository,
		transactionRepository,
		customerSvc,
		catalogSvc,
		producer,
		txManager,
		cfg.Loyalty.EarnRate,
		log,
	)
}

func provideServiceVoucher(
	repository voucherService.Repository,
	txManager voucherService.TxManager,
) *voucherService.Voucher {
	return voucherService.New(repository, txManager)
}

func provideServiceTransaction(repository transactionService.Repository) *transactionService.Transaction {
	return transactionService.New(repository)
}

func provideServiceNotification(
	repository notificationService.Repository,
	staffRepository notificationService.StaffRepository,
	txManager notificationService.TxManager,
) *notificationService.Notification {
	return notificationService.New(repository, staffRepository, txManager)
}

func provideServiceChat(
	log logger.Logger,
	repository chatService.Repository,
	hub *chatService.Hub,
	producer chatService.EventProducer,
	origin chatService.Origin,
) *chatService.Chat {
	return chatService.New(repository, hub, producer, origin, log)
}

func provideServiceStaff(repository staffService.Repository) *staffService.Staff {
	return staffService.New(repository)
}

func provideRefreshInterval(cfg *config.Config) RefreshInterval {
	return RefreshInterval(cfg.Tasks.VoucherStatusRefreshInterval)
}

func provideVoucherRefreshTask(
	log logger.Logger,
	voucherSvc voucher_refresh.Service,
	interval RefreshInterval,
) *voucher_refresh.VoucherRefresh {
	return voucher_refresh.NewVoucherRefresh(log, voucherSvc, time.Duration(interval))
}

func provideTaskList(
	voucherRefreshTask *voucher_refresh.VoucherRefresh,
) []background.Task {
	return []background.Task{
		voucherRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
