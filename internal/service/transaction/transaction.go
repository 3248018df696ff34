package transaction

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

type Transaction struct {
	repository Repository
}

func New(repository Repository) *Transaction {
	return &Transaction{
		repository: repository,
	}
}

func (s *Transaction) ListTransactions(ctx context.Context, params entities.ListParams) ([]entities.Transaction, int64, error) {
	transactions, total, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, total, nil
}
