package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/service/order"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid order id"))
		return
	}

	var statusDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), id, entities.OrderStatusType(statusDTO.OrderStatus))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUndefinedStatus):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, order.ErrSameStatus),
			errors.Is(err, order.ErrInvalidTransition):
			respond.JSON(w, h.log, dto.Fail(http.StatusConflict, err.Error()))
		case errors.Is(err, order.ErrOrderNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, "order not found"))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	nextStatuses := entities.NextOrderStatuses(orderEntity.Status)
	next := make([]string, len(nextStatuses))
	for i, status := range nextStatuses {
		next[i] = status.String()
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.Order{
		ID:            orderEntity.ID,
		CustomerID:    orderEntity.CustomerID,
		TotalAmount:   orderEntity.TotalAmount,
		UsedPoints:    orderEntity.UsedPoints,
		EarnedPoints:  orderEntity.EarnedPoints,
		FinalAmount:   orderEntity.FinalAmount,
		PaymentStatus: orderEntity.PaymentStatus.String(),
		OrderStatus:   orderEntity.Status.String(),
		NextStatuses:  next,
		CreatedAt:     orderEntity.CreatedAt.Format(time.RFC3339),
	}))
}
