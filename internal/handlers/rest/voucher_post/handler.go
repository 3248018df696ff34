package voucher_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/service/voucher"
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
	var voucherDTO dto.VoucherCreate
	err := json.NewDecoder(r.Body).Decode(&voucherDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	discountType := entities.DiscountType(voucherDTO.DiscountType)
	voucherModify := entities.VoucherModify{
		Code:          &voucherDTO.Code,
		DiscountType:  &discountType,
		Value:         &voucherDTO.Value,
		MinOrderValue: &voucherDTO.MinOrderValue,
		MaxDiscount:   &voucherDTO.MaxDiscount,
		StartsAt:      &voucherDTO.StartsAt,
		EndsAt:        &voucherDTO.EndsAt,
		MaxUses:       &voucherDTO.MaxUses,
	}

	id, err := h.service.CreateVoucher(r.Context(), voucherModify)
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrMissingRequiredFields),
			errors.Is(err, voucher.ErrInvalidCode),
			errors.Is(err, voucher.ErrInvalidDiscountType),
			errors.Is(err, voucher.ErrInvalidValue),
			errors.Is(err, voucher.ErrInvalidWindow):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, voucher.ErrConflict):
			respond.JSON(w, h.log, dto.Fail(http.StatusConflict, err.Error()))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusCreated, dto.VoucherCreateResponse{ID: id}))
}
