package staff_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/respond"
	"backoffice/internal/service/staff"
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
	var staffDTO dto.StaffCreate
	err := json.NewDecoder(r.Body).Decode(&staffDTO)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	staffModify := entities.StaffModify{
		Username: &staffDTO.Username,
		FullName: &staffDTO.FullName,
		Phone:    &staffDTO.Phone,
	}

	id, err := h.service.CreateStaff(r.Context(), staffModify)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrMissingRequiredFields),
			errors.Is(err, staff.ErrInvalidUsername),
			errors.Is(err, staff.ErrInvalidFullName),
			errors.Is(err, staff.ErrInvalidPhone):
			respond.JSON(w, h.log, dto.Fail(http.StatusBadRequest, err.Error()))
		case errors.Is(err, staff.ErrConflict):
			respond.JSON(w, h.log, dto.Fail(http.StatusConflict, err.Error()))
		default:
			respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	respond.JSON(w, h.log, dto.OK(http.StatusCreated, dto.StaffCreateResponse{ID: id}))
}
