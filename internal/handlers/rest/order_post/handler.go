package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	items := make([]entities.OrderItemCreate, len(orderDTO.Items))
	for i, item := range orderDTO.Items {
		items[i] = entities.OrderItemCreate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	orderCreate := entities.OrderCreate{
		CustomerID:    orderDTO.CustomerID,
		Items:         items,
		UsePoints:     orderDTO.UsePoints,
		PaymentMethod: orderDTO.PaymentMethod,
	}
	if orderDTO.OrderStatus != "" {
		status := entities.OrderStatusType(orderDTO.OrderStatus)
		orderCreate.Status = &status
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreate)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrUndefinedStatus):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, order.ErrCustomerNotFound),
			errors.Is(err, order.ErrProductNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, err.Error()))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusCreated, dto.OrderCreateResponse{
		ID:           orderEntity.ID,
		TotalAmount:  orderEntity.TotalAmount,
		UsedPoints:   orderEntity.UsedPoints,
		EarnedPoints: orderEntity.EarnedPoints,
		FinalAmount:  orderEntity.FinalAmount,
	}))
}
