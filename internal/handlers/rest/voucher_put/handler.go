package voucher_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid voucher id"))
		return
	}

	var voucherDTO dto.VoucherUpdate
	err = json.NewDecoder(r.Body).Decode(&voucherDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	voucherModify := entities.VoucherModify{
		ID:          &id,
		EndsAt:      voucherDTO.EndsAt,
		MaxUses:     voucherDTO.MaxUses,
		MaxDiscount: voucherDTO.MaxDiscount,
	}
	if voucherDTO.Status != nil {
		status := entities.VoucherStatusType(*voucherDTO.Status)
		voucherModify.Status = &status
	}

	voucherEntity, err := h.service.UpdateVoucher(r.Context(), voucherModify)
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrMissingRequiredFields),
			errors.Is(err, voucher.ErrUndefinedStatus):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, voucher.ErrInvalidTransition):
			respond.JSON(w, h.log, dto.Fail(http.StatusConflict, err.Error()))
		case errors.Is(err, voucher.ErrVoucherNotFound):
			respond.JSON(w, h.log, dto.Fail(http.StatusNotFound, "voucher not found"))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	nextStatuses := entities.NextVoucherStatuses(voucherEntity.Status)
	next := make([]string, len(nextStatuses))
	for i, status := range nextStatuses {
		next[i] = status.String()
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.Voucher{
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
	}))
}
