package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/entities"
	"backoffice/internal/service/catalog"
	customersvc "backoffice/internal/service/customer"
	"backoffice/pkg/logger"
)

type Order struct {
	repository      Repository
	transactionRepo TransactionRepository
	customerService CustomerService
	catalogService  CatalogService
	producer        EventProducer
	txManager       TxManager
	earnRate        float64
	log             logger.Logger
}

func New(
	repository Repository,
	transactionRepo TransactionRepository,
	customerService CustomerService,
	catalogService CatalogService,
	producer EventProducer,
	txManager TxManager,
	earnRate float64,
	log logger.Logger,
) *Order {
	return &Order{
		repository:      repository,
		transactionRepo: transactionRepo,
		customerService: customerService,
		catalogService:  catalogService,
		producer:        producer,
		txManager:       txManager,
		earnRate:        earnRate,
		log:             log,
	}
}

// CreateOrder оформляет продажу. По умолчанию работает как касса: заказ сразу
// COMPLETED/PAID, пишется транзакция оплаты. Явный Status в OrderCreate
// переключает на обычный жизненный цикл (PENDING и далее по таблице переходов).
func (s *Order) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.SellingOrder, error) {
	if len(orderCreate.Items) == 0 {
		return nil, ErrMissingRequiredFields
	}
	for _, item := range orderCreate.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	paymentMethod := orderCreate.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entities.DefaultPaymentMethod
	}
	if !entities.IsValidPaymentMethod(paymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	status := entities.OrderCompleted
	if orderCreate.Status != nil {
		if !isValidStatus(*orderCreate.Status) {
			return nil, ErrUndefinedStatus
		}
		status = *orderCreate.Status
	}

	productIDs := make([]int64, 0, len(orderCreate.Items))
	for _, item := range orderCreate.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.catalogService.GetProducts(ctx, productIDs)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("resolve order products: %w", err)
	}
	productByID := make(map[int64]entities.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	items := make([]entities.OrderItem, 0, len(orderCreate.Items))
	var totalAmount int64
	for _, item := range orderCreate.Items {
		product, ok := productByID[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		lineTotal := product.Price * int64(item.Quantity)
		items = append(items, entities.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Unit:        product.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		totalAmount += lineTotal
	}

	var created *entities.SellingOrder
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var usedPoints int64
		if orderCreate.UsePoints && orderCreate.CustomerID != nil {
			customer, err := s.customerService.GetCustomer(ctx, *orderCreate.CustomerID)
			if err != nil {
				if errors.Is(err, customersvc.ErrCustomerNotFound) {
					return ErrCustomerNotFound
				}
				return fmt.Errorf("get customer for loyalty: %w", err)
			}

			usedPoints = UsablePoints(customer.LoyaltyPoints, totalAmount)
			if usedPoints > 0 {
				if _, err := s.customerService.AddLoyaltyPoints(ctx, customer.ID, -usedPoints); err != nil {
					return fmt.Errorf("spend loyalty points: %w", err)
				}
			}
		}

		finalAmount := totalAmount - PointsDiscount(usedPoints)

		paymentStatus := entities.PaymentUnpaid
		if status == entities.OrderCompleted {
			paymentStatus = entities.PaymentPaid
		}

		// начисление считаем сразу, на баланс падает при завершении заказа
		var earnedPoints int64
		if orderCreate.CustomerID != nil {
			earnedPoints = EarnedPoints(finalAmount, s.earnRate)
		}

		orderEntity := entities.SellingOrder{
			CustomerID:    orderCreate.CustomerID,
			Items:         items,
			TotalAmount:   totalAmount,
			UsedPoints:    usedPoints,
			EarnedPoints:  earnedPoints,
			FinalAmount:   finalAmount,
			PaymentMethod: paymentMethod,
			PaymentStatus: paymentStatus,
			Status:        status,
		}

		orderID, err := s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if paymentStatus == entities.PaymentPaid {
			if _, err := s.transactionRepo.Create(ctx, orderID, finalAmount, paymentMethod); err != nil {
				return fmt.Errorf("create payment transaction: %w", err)
			}
		}

		if status == entities.OrderCompleted && earnedPoints > 0 {
			if _, err := s.customerService.AddLoyaltyPoints(ctx, *orderCreate.CustomerID, earnedPoints); err != nil {
				if errors.Is(err, customersvc.ErrCustomerNotFound) {
					return ErrCustomerNotFound
				}
				return fmt.Errorf("accrue loyalty points: %w", err)
			}
		}

		created, err = s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get created order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.produceStatusChanged(ctx, created)

	return created, nil
}

// UpdateOrderStatus переводит заказ по таблице переходов. Запрос того же
// статуса отклоняется до каких-либо изменений в базе.
func (s *Order) UpdateOrderStatus(ctx context.Context, id int64, newStatus entities.OrderStatusType) (*entities.SellingOrder, error) {
	if !isValidStatus(newStatus) {
		return nil, ErrUndefinedStatus
	}

	var updated *entities.SellingOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		currentStatus, err := s.repository.GetStatus(ctx, id)
		if err != nil {
			return fmt.Errorf("get current order status: %w", err)
		}

		if currentStatus == newStatus {
			return ErrSameStatus
		}
		if !entities.CanTransitOrderStatus(currentStatus, newStatus) {
			return fmt.Errorf("%s -> %s: %w", currentStatus, newStatus, ErrInvalidTransition)
		}

		updated, err = s.repository.UpdateStatus(ctx, id, newStatus)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if newStatus == entities.OrderCompleted {
			// завершение закрывает оплату и начисляет баллы
			if updated.PaymentStatus == entities.PaymentUnpaid {
				if err := s.repository.MarkPaid(ctx, id); err != nil {
					return fmt.Errorf("mark order paid: %w", err)
				}
				if _, err := s.transactionRepo.Create(ctx, id, updated.FinalAmount, updated.PaymentMethod); err != nil {
					return fmt.Errorf("create payment transaction: %w", err)
				}
				updated.PaymentStatus = entities.PaymentPaid
			}

			if updated.CustomerID != nil && updated.EarnedPoints > 0 {
				if _, err := s.customerService.AddLoyaltyPoints(ctx, *updated.CustomerID, updated.EarnedPoints); err != nil {
					return fmt.Errorf("accrue loyalty points: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.produceStatusChanged(ctx, updated)

	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.SellingOrder, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) ListOrders(ctx context.Context, params entities.ListParams) ([]entities.SellingOrder, int64, error) {
	orders, total, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

// produceStatusChanged шлет событие после коммита. Заказ уже сохранен,
// поэтому ошибку доставки только логируем.
func (s *Order) produceStatusChanged(ctx context.Context, orderEntity *entities.SellingOrder) {
	event := entities.OrderStatusChangedEvent{
		OrderID:     orderEntity.ID,
		CustomerID:  orderEntity.CustomerID,
		Status:      orderEntity.Status.String(),
		TotalAmount: orderEntity.TotalAmount,
		ChangedAt:   time.Now().UTC(),
	}

	if err := s.producer.ProduceOrderStatusChanged(ctx, event); err != nil {
		s.log.Error("produce order status changed event",
			logger.NewField("order_id", orderEntity.ID),
			logger.NewField("error", err.Error()),
		)
	}
}

func isValidStatus(status entities.OrderStatusType) bool {
	for _, s := range entities.AllOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
