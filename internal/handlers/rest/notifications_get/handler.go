package notifications_get

import (
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/pkg/listquery"
	"backoffice/internal/pkg/middlewares"
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
	staffID, ok := middlewares.StaffIDFromContext(r.Context())
	if !ok {
		respond.JSON(w, h.log, dto.Fail(http.StatusUnauthorized, "missing auth token"))
		return
	}

	params := listquery.Parse(r.URL.Query())

	feed, err := h.service.GetFeed(r.Context(), staffID, params.Limit(), params.Offset())
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	notificationDTOs := make([]dto.Notification, len(feed.Notifications))
	for i, n := range feed.Notifications {
		notificationDTOs[i] = dto.Notification{
			ID:        n.ID,
			OrderID:   n.OrderID,
			Title:     n.Title,
			Body:      n.Body,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.NotificationFeed{
		Notifications: notificationDTOs,
		UnreadCount:   feed.UnreadCount,
	}))
}
