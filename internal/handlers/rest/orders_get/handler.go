package orders_get

import (
	"net/http"
	"time"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/pkg/listquery"
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
	params := listquery.Parse(r.URL.Query(), "orderStatus", "paymentStatus")

	orders, total, err := h.service.ListOrders(r.Context(), params)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	orderDTOs := make([]dto.Order, len(orders))
	for i, orderEntity := range orders {
		nextStatuses := entities.NextOrderStatuses(orderEntity.Status)
		next := make([]string, len(nextStatuses))
		for j, status := range nextStatuses {
			next[j] = status.String()
		}

		// в списке позиции и история не отдаются, они есть в карточке заказа
		orderDTOs[i] = dto.Order{
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
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.OrderList{
		Orders: orderDTOs,
		Meta:   dto.NewListMeta(params, total),
	}))
}
