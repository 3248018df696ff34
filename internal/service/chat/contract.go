//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error)
	GetConversation(ctx context.Context, id int64) (*entities.Conversation, error)
	ListByConversation(ctx context.Context, conversationID int64, limit, offset int) ([]entities.Message, error)
	MarkDelivered(ctx context.Context, conversationID int64, receiverID int64) error
}

type EventProducer interface {
	ProduceChatMessage(ctx context.Context, event entities.ChatMessageEvent) error
}
