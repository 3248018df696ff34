package staffs_get

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

	staffs, total, err := h.service.ListStaffs(r.Context(), params)
	if err != nil {
		respond.JSON(w, h.log, dto.Fail(http.StatusInternalServerError, "internal error"))
		return
	}

	staffDTOs := make([]dto.Staff, len(staffs))
	for i, staffEntity := range staffs {
		staffDTOs[i] = dto.Staff{
			ID:          staffEntity.ID,
			Username:    staffEntity.Username,
			FullName:    staffEntity.FullName,
			Phone:       staffEntity.Phone,
			IsActivated: staffEntity.IsActivated,
		}
	}

	respond.JSON(w, h.log, dto.OK(http.StatusOK, dto.StaffList{
		Staffs: staffDTOs,
		Meta:   dto.NewListMeta(params, total),
	}))
}
