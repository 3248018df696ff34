package chat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

// Origin идентифицирует инстанс сервиса в событиях чата.
type Origin string

func NewOrigin() Origin {
	host, err := os.Hostname()
	if err != nil {
		host = "backoffice"
	}
	return Origin(fmt.Sprintf("%s-%d", host, os.Getpid()))
}

type Chat struct {
	repository Repository
	hub        *Hub
	producer   EventProducer
	origin     Origin
	log        logger.Logger
}

func New(repository Repository, hub *Hub, producer EventProducer, origin Origin, log logger.Logger) *Chat {
	return &Chat{
		repository: repository,
		hub:        hub,
		producer:   producer,
		origin:     origin,
		log:        log,
	}
}

// Send сохраняет сообщение, раздает его подписчикам разговора и публикует
// в Kafka для остальных инстансов. Ошибка публикации не откатывает отправку.
func (s *Chat) Send(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error) {
	if messageCreate.ConversationID == 0 || messageCreate.SenderID == 0 || messageCreate.ReceiverID == 0 {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(messageCreate.Content) == "" {
		return nil, ErrEmptyContent
	}

	message, err := s.repository.Create(ctx, messageCreate)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.hub.Broadcast(message.ConversationID, *message)

	event := entities.ChatMessageEvent{
		Origin:  string(s.origin),
		Message: *message,
	}
	if err := s.producer.ProduceChatMessage(ctx, event); err != nil {
		s.log.Error("produce chat message",
			logger.NewField("conversation_id", message.ConversationID),
			logger.NewField("message_id", message.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return message, nil
}

// History отдает страницу истории, от новых к старым. Страница короче
// pageSize означает, что продолжения нет.
func (s *Chat) History(ctx context.Context, conversationID int64, page, pageSize int) ([]entities.Message, bool, error) {
	if _, err := s.repository.GetConversation(ctx, conversationID); err != nil {
		return nil, false, fmt.Errorf("get conversation: %w", err)
	}

	offset := (page - 1) * pageSize
	messages, err := s.repository.ListByConversation(ctx, conversationID, pageSize, offset)
	if err != nil {
		return nil, false, fmt.Errorf("list messages: %w", err)
	}

	hasMore := len(messages) == pageSize

	// внутри страницы сообщения по возрастанию, как в буфере чата
	return Merge(nil, messages), hasMore, nil
}

func (s *Chat) Subscribe(ctx context.Context, conversationID int64) (chan entities.Message, error) {
	conversation, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	ch := s.hub.Subscribe(conversation.ID)

	if err := s.repository.MarkDelivered(ctx, conversation.ID, conversation.StaffID); err != nil {
		s.log.Warn("mark messages delivered",
			logger.NewField("conversation_id", conversation.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return ch, nil
}

func (s *Chat) Unsubscribe(conversationID int64, ch chan entities.Message) {
	s.hub.Unsubscribe(conversationID, ch)
}

// HandleInbound обрабатывает событие чата из Kafka: только рассылка, запись
// уже сделана отправителем. Собственные события пропускаются - инстанс раздал
// сообщение подписчикам в момент Send и из топика читает его повторно.
func (s *Chat) HandleInbound(event entities.ChatMessageEvent) {
	if event.Origin == string(s.origin) {
		return
	}

	s.hub.Broadcast(event.Message.ConversationID, event.Message)
}
