package transactions_get

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
	params := listquery.Parse(r.URL.Query(), "method", "orderId")

	transactions, total, err := h.service.ListTransactions(r.Context(), params)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	transactionDTOs := make([]dto.Transaction, len(transactions))
	for i, t := range transactions {
		transactionDTOs[i] = dto.Transaction{
			ID:        t.ID,
			OrderID:   t.OrderID,
			Amount:    t.Amount,
			Method:    t.Method,
			CreatedAt: t.CreatedAt,
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.TransactionList{
		Transactions: transactionDTOs,
		Meta:         dto.NewListMeta(params, total),
	}))
}
