package order_get

import (
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

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, "order not found"))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, toDTO(orderEntity)))
}

func toDTO(orderEntity *entities.SellingOrder) dto.Order {
	items := make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		items[i] = dto.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		}
	}

	history := make([]dto.OrderStatusHistory, len(orderEntity.History))
	for i, entry := range orderEntity.History {
		history[i] = dto.OrderStatusHistory{
			Status:    entry.Status.String(),
			CreatedAt: entry.CreatedAt,
		}
	}

	nextStatuses := entities.NextOrderStatuses(orderEntity.Status)
	next := make([]string, len(nextStatuses))
	for i, status := range nextStatuses {
		next[i] = status.String()
	}

	return dto.Order{
		ID:            orderEntity.ID,
		CustomerID:    orderEntity.CustomerID,
		Items:         items,
		TotalAmount:   orderEntity.TotalAmount,
		UsedPoints:    orderEntity.UsedPoints,
		EarnedPoints:  orderEntity.EarnedPoints,
		FinalAmount:   orderEntity.FinalAmount,
		PaymentStatus: orderEntity.PaymentStatus.String(),
		OrderStatus:   orderEntity.Status.String(),
		History:       history,
		NextStatuses:  next,
		CreatedAt:     orderEntity.CreatedAt.Format(time.RFC3339),
	}
}
