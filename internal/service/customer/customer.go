package customer

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

type Customer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Customer {
	return &Customer{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (int64, error) {
	if customerModify.FullName == nil || customerModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidFullName(*customerModify.FullName) {
		return 0, ErrInvalidFullName
	}
	if !isValidPhone(*customerModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if customerModify.Email != nil && !isValidEmail(*customerModify.Email) {
		return 0, ErrInvalidEmail
	}

	id, err := s.repository.Create(ctx, customerModify)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}

	return id, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if customerModify.FullName == nil &&
		customerModify.Phone == nil &&
		customerModify.Email == nil &&
		customerModify.Address == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if customerModify.FullName != nil && !isValidFullName(*customerModify.FullName) {
		return nil, ErrInvalidFullName
	}
	if customerModify.Phone != nil && !isValidPhone(*customerModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if customerModify.Email != nil && !isValidEmail(*customerModify.Email) {
		return nil, ErrInvalidEmail
	}

	customer, err := s.repository.Update(ctx, customerModify)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) GetCustomer(ctx context.Context, id int64) (*entities.Customer, error) {
	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) ListCustomers(ctx context.Context, params entities.ListParams) ([]entities.Customer, int64, error) {
	customers, total, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	return customers, total, nil
}

// AddLoyaltyPoints двигает баланс на delta (может быть отрицательной) и пишет
// движение в историю. Уход баланса в минус репозиторий не пропустит.
// Обновление баланса и строка истории уходят одной транзакцией; если выше по
// стеку транзакция уже открыта, менеджер переиспользует её.
func (s *Customer) AddLoyaltyPoints(ctx context.Context, customerID, delta int64) (int64, error) {
	var balance int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.repository.AddLoyaltyPoints(ctx, customerID, delta)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("add loyalty points: %w", err)
	}

	return balance, nil
}
