package product_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/service/catalog"
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
	var productDTO dto.ProductCreate
	err := json.NewDecoder(r.Body).Decode(&productDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	productModify := entities.ProductModify{
		SKU:   &productDTO.SKU,
		Name:  &productDTO.Name,
		Unit:  &productDTO.Unit,
		Price: &productDTO.Price,
	}

	id, err := h.service.CreateProduct(r.Context(), productModify)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidSKU),
			errors.Is(err, catalog.ErrInvalidName),
			errors.Is(err, catalog.ErrInvalidPrice):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, catalog.ErrConflict):
			respond.JSON(w, h.log, dto.Fail(http.StatusConflict, err.Error()))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusCreated, dto.ProductCreateResponse{ID: id}))
}
