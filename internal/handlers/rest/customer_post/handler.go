package customer_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var customerDTO dto.CustomerCreate
	err := json.NewDecoder(r.Body).Decode(&customerDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	customerModify := entities.CustomerModify{
		FullName: &customerDTO.FullName,
		Phone:    &customerDTO.Phone,
	}
	if customerDTO.Email != "" {
		customerModify.Email = &customerDTO.Email
	}
	if customerDTO.Address != "" {
		customerModify.Address = &customerDTO.Address
	}

	id, err := h.service.CreateCustomer(r.Context(), customerModify)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidFullName),
			errors.Is(err, customer.ErrInvalidPhone),
			errors.Is(err, customer.ErrInvalidEmail):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, customer.ErrConflict):
			respond.JSON(w, h.log, dto.Fail(http.StatusConflict, err.Error()))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusCreated, dto.CustomerCreateResponse{ID: id}))
}
