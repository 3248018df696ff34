package chat_ws

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/service/chat"
	"backoffice/pkg/logger"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingPeriod   = 50 * time.Second
	maxFrameSize = 4096
)

type inboundFrame struct {
	ConversationID int64  `json:"conversationId"`
	SenderID       int64  `json:"senderId"`
	ReceiverID     int64  `json:"receiverId"`
	Content        string `json:"content"`
}

type Handler struct {
	log      handlerLogger
	service  Service
	upgrader websocket.Upgrader
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// админка ходит с другого origin, доступ закрыт токеном
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conversationID, err := strconv.ParseInt(r.URL.Query().Get("conversationId"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	messages, err := h.service.Subscribe(r.Context(), conversationID)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.service.Unsubscribe(conversationID, messages)
		h.log.Warn("websocket upgrade",
			logger.NewField("conversation_id", conversationID),
			logger.NewField("error", err.Error()),
		)
		return
	}

	log := h.log.With(logger.NewField("conversation_id", conversationID))
	log.Info("chat subscriber connected")

	go h.writePump(conn, messages, log)
	h.readPump(r, conn, conversationID, log)

	h.service.Unsubscribe(conversationID, messages)
	_ = conn.Close()
	log.Info("chat subscriber disconnected")
}

// readPump читает входящие фреймы и отправляет их через сервис. Падение
// соединения завершает обработку, переподключается клиент сам.
func (h *Handler) readPump(r *http.Request, conn *websocket.Conn, conversationID int64, log logger.Logger) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read", logger.NewField("error", err.Error()))
			}
			return
		}

		messageCreate := entities.MessageCreate{
			ConversationID: conversationID,
			SenderID:       frame.SenderID,
			ReceiverID:     frame.ReceiverID,
			Content:        frame.Content,
		}

		if _, err := h.service.Send(r.Context(), messageCreate); err != nil {
			log.Warn("send chat message", logger.NewField("error", err.Error()))
		}
	}
}

func (h *Handler) writePump(conn *websocket.Conn, messages chan entities.Message, log logger.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-messages:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeTimeout))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			messageDTO := dto.Message{
				ID:             message.ID,
				ConversationID: message.ConversationID,
				SenderID:       message.SenderID,
				ReceiverID:     message.ReceiverID,
				Content:        message.Content,
				Status:         message.Status.String(),
				SentAt:         message.SentAt,
			}
			if err := conn.WriteJSON(messageDTO); err != nil {
				log.Warn("websocket write", logger.NewField("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
