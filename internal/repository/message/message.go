package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/chat"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error) {
	query := `INSERT INTO messages (conversation_id, sender_id, receiver_id, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, conversation_id, sender_id, receiver_id, content, status, sent_at`

	var m entities.Message
	err := r.querier.QueryRow(
		ctx,
		query,
		messageCreate.ConversationID,
		messageCreate.SenderID,
		messageCreate.ReceiverID,
		messageCreate.Content,
		entities.MessageSent.String(),
	).Scan(
		&m.ID,
		&m.ConversationID,
		&m.SenderID,
		&m.ReceiverID,
		&m.Content,
		&m.Status,
		&m.SentAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, chat.ErrConversationNotFound
		}
		return nil, fmt.Errorf("unexpected message repository create error: %w", err)
	}

	return &m, nil
}

func (r *Repository) GetConversation(ctx context.Context, id int64) (*entities.Conversation, error) {
	query := `SELECT id, staff_id, customer_id, created_at FROM conversations WHERE id = $1`

	var c entities.Conversation
	err := r.querier.QueryRow(ctx, query, id).Scan(&c.ID, &c.StaffID, &c.CustomerID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrConversationNotFound
		}
		return nil, fmt.Errorf("unexpected message repository getconversation error: %w", err)
	}

	return &c, nil
}

// ListByConversation отдает страницу сообщений, от новых к старым.
func (r *Repository) ListByConversation(ctx context.Context, conversationID int64, limit, offset int) ([]entities.Message, error) {
	query := `SELECT id, conversation_id, sender_id, receiver_id, content, status, sent_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY sent_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.querier.Query(ctx, query, conversationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected message repository list error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.Message, 0, limit)
	for rows.Next() {
		var m entities.Message
		err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.SenderID,
			&m.ReceiverID,
			&m.Content,
			&m.Status,
			&m.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected message repository list error: %w", err)
		}
		messages = append(messages, m)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected message repository list error: %w", err)
	}

	return messages, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, conversationID int64, receiverID int64) error {
	query := `UPDATE messages SET status = 'DELIVERED'
		WHERE conversation_id = $1 AND receiver_id = $2 AND status = 'SENT'`

	_, err := r.querier.Exec(ctx, query, conversationID, receiverID)
	if err != nil {
		return fmt.Errorf("unexpected message repository markdelivered error: %w", err)
	}

	return nil
}
