package entities

import "time"

type MessageStatusType string

const (
	MessageSent      MessageStatusType = "SENT"
	MessageDelivered MessageStatusType = "DELIVERED"
	MessageRead      MessageStatusType = "READ"
)

func (s MessageStatusType) String() string {
	return string(s)
}

type Conversation struct {
	ID         int64
	StaffID    int64
	CustomerID int64
	CreatedAt  time.Time
}

type Message struct {
	ID             int64             `json:"id"`
	ConversationID int64             `json:"conversation_id"`
	SenderID       int64             `json:"sender_id"`
	ReceiverID     int64             `json:"receiver_id"`
	Content        string            `json:"content"`
	Status         MessageStatusType `json:"status"`
	SentAt         time.Time         `json:"sent_at"`
}

// ChatMessageEvent - событие чата в Kafka. Origin помечает инстанс-отправитель:
// он уже раздал сообщение своим подписчикам и собственную запись пропускает.
type ChatMessageEvent struct {
	Origin  string  `json:"origin"`
	Message Message `json:"message"`
}

type MessageCreate struct {
	ConversationID int64  `json:"conversation_id"`
	SenderID       int64  `json:"sender_id"`
	ReceiverID     int64  `json:"receiver_id"`
	Content        string `json:"content"`
}
