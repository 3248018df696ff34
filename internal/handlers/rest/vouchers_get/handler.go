package vouchers_get

import (
	"net/http"

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
	params := listquery.Parse(r.URL.Query(), "status", "discountType")

	vouchers, total, err := h.service.ListVouchers(r.Context(), params)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	voucherDTOs := make([]dto.Voucher, len(vouchers))
	for i, voucherEntity := range vouchers {
		nextStatuses := entities.NextVoucherStatuses(voucherEntity.Status)
		next := make([]string, len(nextStatuses))
		for j, status := range nextStatuses {
			next[j] = status.String()
		}

		voucherDTOs[i] = dto.Voucher{
			ID:            voucherEntity.ID,
			Code:          voucherEntity.Code,
			DiscountType:  voucherEntity.DiscountType.String(),
			Value:         voucherEntity.Value,
			MinOrderValue: voucherEntity.MinOrderValue,
			MaxDiscount:   voucherEntity.MaxDiscount,
			StartsAt:      voucherEntity.StartsAt,
			EndsAt:        voucherEntity.EndsAt,
			MaxUses:       voucherEntity.MaxUses,
			UsedCount:     voucherEntity.UsedCount,
			Status:        voucherEntity.Status.String(),
			NextStatuses:  next,
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.VoucherList{
		Vouchers: voucherDTOs,
		Meta:     dto.NewListMeta(params, total),
	}))
}
