package customer_put

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
	"backoffice/internal/service/customer"
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
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid customer id"))
		return
	}

	var customerDTO dto.CustomerUpdate
	err = json.NewDecoder(r.Body).Decode(&customerDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	customerModify := entities.CustomerModify{
		ID:       &id,
		FullName: customerDTO.FullName,
		Phone:    customerDTO.Phone,
		Email:    customerDTO.Email,
		Address:  customerDTO.Address,
	}

	customerEntity, err := h.service.UpdateCustomer(r.Context(), customerModify)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidFullName),
			errors.Is(err, customer.ErrInvalidPhone),
			errors.Is(err, customer.ErrInvalidEmail):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, customer.ErrCustomerNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, "customer not found"))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.Customer{
		ID:            customerEntity.ID,
		FullName:      customerEntity.FullName,
		Phone:         customerEntity.Phone,
		Email:         customerEntity.Email,
		Address:       customerEntity.Address,
		LoyaltyPoints: customerEntity.LoyaltyPoints,
		CreatedAt:     customerEntity.CreatedAt.Format(time.RFC3339),
	}))
}
