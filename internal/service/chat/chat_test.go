package chat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/entities"
	"backoffice/internal/service/chat"
	"backoffice/pkg/logger"
)

type mock struct {
	*MockRepository
	*MockEventProducer
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockRepository:    NewMockRepository(ctrl),
		MockEventProducer: NewMockEventProducer(ctrl),
	}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...logger.Field) {}
func (noopLogger) Info(string, ...logger.Field)  {}
func (noopLogger) Warn(string, ...logger.Field)  {}
func (noopLogger) Error(string, ...logger.Field) {}
func (l noopLogger) With(...logger.Field) logger.Logger {
	return l
}

const testOrigin = chat.Origin("instance-a")

func newService(m *mock) (*chat.Chat, *chat.Hub) {
	hub := chat.NewHub()
	return chat.New(m.MockRepository, hub, m.MockEventProducer, testOrigin, noopLogger{}), hub
}

func msg(id int64, sentAt time.Time) entities.Message {
	return entities.Message{
		ID:             id,
		ConversationID: 1,
		SenderID:       1,
		ReceiverID:     2,
		Content:        "сообщение",
		Status:         entities.MessageSent,
		SentAt:         sentAt,
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		existing    []entities.Message
		fetched     []entities.Message
		expectedIDs []int64
	}{
		{
			name:        "Объединение без пересечений, сортировка по времени",
			existing:    []entities.Message{msg(3, base.Add(2 * time.Minute))},
			fetched:     []entities.Message{msg(1, base), msg(2, base.Add(time.Minute))},
			expectedIDs: []int64{1, 2, 3},
		},
		{
			name:        "Дубликаты по id отбрасываются",
			existing:    []entities.Message{msg(1, base), msg(2, base.Add(time.Minute))},
			fetched:     []entities.Message{msg(2, base.Add(time.Minute)), msg(3, base.Add(2 * time.Minute))},
			expectedIDs: []int64{1, 2, 3},
		},
		{
			name:        "Одинаковое время отправки - порядок по id",
			existing:    []entities.Message{msg(5, base)},
			fetched:     []entities.Message{msg(4, base), msg(6, base)},
			expectedIDs: []int64{4, 5, 6},
		},
		{
			name:        "Пустой буфер",
			existing:    nil,
			fetched:     []entities.Message{msg(2, base.Add(time.Minute)), msg(1, base)},
			expectedIDs: []int64{1, 2},
		},
		{
			name:        "Обе стороны пустые",
			existing:    nil,
			fetched:     nil,
			expectedIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			merged := chat.Merge(tt.existing, tt.fetched)

			ids := make([]int64, 0, len(merged))
			for _, m := range merged {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestHub(t *testing.T) {
	t.Parallel()

	t.Run("Сообщение доходит до всех подписчиков разговора", func(t *testing.T) {
		t.Parallel()

		hub := chat.NewHub()
		first := hub.Subscribe(1)
		second := hub.Subscribe(1)
		other := hub.Subscribe(2)

		hub.Broadcast(1, msg(1, time.Now()))

		assert.Len(t, first, 1)
		assert.Len(t, second, 1)
		assert.Len(t, other, 0)
	})

	t.Run("Отписка закрывает канал и убирает подписчика", func(t *testing.T) {
		t.Parallel()

		hub := chat.NewHub()
		ch := hub.Subscribe(1)

		hub.Unsubscribe(1, ch)

		_, open := <-ch
		assert.False(t, open)
		assert.Equal(t, 0, hub.SubscriberCount(1))
	})

	t.Run("Повторная отписка безопасна", func(t *testing.T) {
		t.Parallel()

		hub := chat.NewHub()
		ch := hub.Subscribe(1)

		hub.Unsubscribe(1, ch)
		hub.Unsubscribe(1, ch)
	})

	t.Run("Медленный подписчик теряет сообщения, рассылка не блокируется", func(t *testing.T) {
		t.Parallel()

		hub := chat.NewHub()
		ch := hub.Subscribe(1)

		for i := 0; i < 100; i++ {
			hub.Broadcast(1, msg(int64(i), time.Now()))
		}

		assert.Equal(t, cap(ch), len(ch))
	})
}

func TestChatService_Send(t *testing.T) {
	t.Parallel()

	validCreate := entities.MessageCreate{
		ConversationID: 1,
		SenderID:       1,
		ReceiverID:     2,
		Content:        "Лосось приехал?",
	}

	t.Run("Сообщение сохраняется, рассылается и публикуется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		saved := msg(1, time.Now())
		m.MockRepository.EXPECT().
			Create(gomock.Any(), validCreate).
			Return(&saved, nil)
		m.MockEventProducer.EXPECT().
			ProduceChatMessage(gomock.Any(), entities.ChatMessageEvent{
				Origin:  string(testOrigin),
				Message: saved,
			}).
			Return(nil)

		service, hub := newService(m)
		ch := hub.Subscribe(1)

		message, err := service.Send(context.Background(), validCreate)

		require.NoError(t, err)
		assert.Equal(t, int64(1), message.ID)
		assert.Len(t, ch, 1)
	})

	t.Run("Ошибка Kafka не роняет отправку", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		saved := msg(1, time.Now())
		m.MockRepository.EXPECT().
			Create(gomock.Any(), validCreate).
			Return(&saved, nil)
		m.MockEventProducer.EXPECT().
			ProduceChatMessage(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))

		service, _ := newService(m)
		_, err := service.Send(context.Background(), validCreate)

		require.NoError(t, err)
	})

	t.Run("Отклонение сообщения без разговора", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		service, _ := newService(m)
		_, err := service.Send(context.Background(), entities.MessageCreate{
			SenderID:   1,
			ReceiverID: 2,
			Content:    "test",
		})

		require.ErrorIs(t, err, chat.ErrMissingRequiredFields)
	})

	t.Run("Отклонение пустого содержимого", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		service, _ := newService(m)
		_, err := service.Send(context.Background(), entities.MessageCreate{
			ConversationID: 1,
			SenderID:       1,
			ReceiverID:     2,
			Content:        "   ",
		})

		require.ErrorIs(t, err, chat.ErrEmptyContent)
	})
}

func TestChatService_HandleInbound(t *testing.T) {
	t.Parallel()

	t.Run("Собственное событие из Kafka не рассылается второй раз", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		saved := msg(7, time.Now())
		m.MockRepository.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&saved, nil)
		m.MockEventProducer.EXPECT().
			ProduceChatMessage(gomock.Any(), gomock.Any()).
			Return(nil)

		service, hub := newService(m)
		ch := hub.Subscribe(1)

		_, err := service.Send(context.Background(), entities.MessageCreate{
			ConversationID: 1,
			SenderID:       1,
			ReceiverID:     2,
			Content:        "Лосось приехал?",
		})
		require.NoError(t, err)

		// инстанс читает топик целиком и видит собственную запись
		service.HandleInbound(entities.ChatMessageEvent{
			Origin:  string(testOrigin),
			Message: saved,
		})

		assert.Len(t, ch, 1)
	})

	t.Run("Событие другого инстанса доходит до подписчиков", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		service, hub := newService(m)
		ch := hub.Subscribe(1)

		service.HandleInbound(entities.ChatMessageEvent{
			Origin:  "instance-b",
			Message: msg(8, time.Now()),
		})

		require.Len(t, ch, 1)
		received := <-ch
		assert.Equal(t, int64(8), received.ID)
	})
}

func TestChatService_History(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	conversation := &entities.Conversation{ID: 1, StaffID: 1, CustomerID: 2}

	t.Run("Полная страница означает продолжение истории", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		// репозиторий отдает от новых к старым
		page := []entities.Message{
			msg(3, base.Add(2 * time.Minute)),
			msg(2, base.Add(time.Minute)),
		}
		m.MockRepository.EXPECT().
			GetConversation(gomock.Any(), int64(1)).
			Return(conversation, nil)
		m.MockRepository.EXPECT().
			ListByConversation(gomock.Any(), int64(1), 2, 0).
			Return(page, nil)

		service, _ := newService(m)
		messages, hasMore, err := service.History(context.Background(), 1, 1, 2)

		require.NoError(t, err)
		assert.True(t, hasMore)
		// страница отдается по возрастанию
		assert.Equal(t, int64(2), messages[0].ID)
		assert.Equal(t, int64(3), messages[1].ID)
	})

	t.Run("Неполная страница - истории больше нет", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		m.MockRepository.EXPECT().
			GetConversation(gomock.Any(), int64(1)).
			Return(conversation, nil)
		m.MockRepository.EXPECT().
			ListByConversation(gomock.Any(), int64(1), 10, 10).
			Return([]entities.Message{msg(1, base)}, nil)

		service, _ := newService(m)
		_, hasMore, err := service.History(context.Background(), 1, 2, 10)

		require.NoError(t, err)
		assert.False(t, hasMore)
	})

	t.Run("Несуществующий разговор", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		m.MockRepository.EXPECT().
			GetConversation(gomock.Any(), int64(404)).
			Return(nil, chat.ErrConversationNotFound)

		service, _ := newService(m)
		_, _, err := service.History(context.Background(), 404, 1, 10)

		require.ErrorIs(t, err, chat.ErrConversationNotFound)
	})
}
