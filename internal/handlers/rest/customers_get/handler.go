package customers_get

import (
	"net/http"
	"time"

	"backoffice/internal/dto"
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
	params := listquery.Parse(r.URL.Query())

	customers, total, err := h.service.ListCustomers(r.Context(), params)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	customerDTOs := make([]dto.Customer, len(customers))
	for i, customerEntity := range customers {
		customerDTOs[i] = dto.Customer{
			ID:            customerEntity.ID,
			FullName:      customerEntity.FullName,
			Phone:         customerEntity.Phone,
			Email:         customerEntity.Email,
			Address:       customerEntity.Address,
			LoyaltyPoints: customerEntity.LoyaltyPoints,
			CreatedAt:     customerEntity.CreatedAt.Format(time.RFC3339),
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.CustomerList{
		Customers: customerDTOs,
		Meta:      dto.NewListMeta(params, total),
	}))
}
