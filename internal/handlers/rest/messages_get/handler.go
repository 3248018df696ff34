package messages_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/dto"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/pkg/listquery"
	"backoffice/internal/service/chat"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conversationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid conversation id"))
		return
	}

	params := listquery.Parse(r.URL.Query())

	messages, hasMore, err := h.service.History(r.Context(), conversationID, params.Page, params.PageSize)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrConversationNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, "conversation not found"))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	messageDTOs := make([]dto.Message, len(messages))
	for i, m := range messages {
		messageDTOs[i] = dto.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			ReceiverID:     m.ReceiverID,
			Content:        m.Content,
			Status:         m.Status.String(),
			SentAt:         m.SentAt,
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.MessagePage{
		Messages: messageDTOs,
		HasMore:  hasMore,
	}))
}
