package chat_message

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

// Handler раздает сообщения чата, отправленные через другие инстансы
// сервиса, локальным websocket-подписчикам. Запись в базу уже сделана
// инстансом-отправителем.
type Handler struct {
	chatService Service
	log         handlerLogger
}

func New(log handlerLogger, chatService Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		chatService: chatService,
		log:         handlerLog,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("chat.messages: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			var event entities.ChatMessageEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				h.log.With(
					logger.NewField("error", err),
				).Error("chat.messages handler received bad message")
				sess.MarkMessage(message, "")
				continue
			}

			h.chatService.HandleInbound(event)
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Info("chat.messages: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}
