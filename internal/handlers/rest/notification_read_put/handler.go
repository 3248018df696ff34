package notification_read_put

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/dto"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/pkg/middlewares"
	"backoffice/internal/service/notification"
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

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid notification id"))
		return
	}

	err = h.service.MarkRead(r.Context(), id, staffID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrNotificationNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, "notification not found"))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, nil))
}
