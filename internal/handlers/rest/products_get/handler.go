package products_get

import (
	"net/http"

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
	params := listquery.Parse(r.URL.Query(), "isActivated")

	products, total, err := h.service.ListProducts(r.Context(), params)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	productDTOs := make([]dto.Product, len(products))
	for i, product := range products {
		productDTOs[i] = dto.Product{
			ID:          product.ID,
			SKU:         product.SKU,
			Name:        product.Name,
			Unit:        product.Unit,
			Price:       product.Price,
			IsActivated: product.IsActivated,
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.ProductList{
		Products: productDTOs,
		Meta:     dto.NewListMeta(params, total),
	}))
}
