package dto

import "backoffice/internal/entities"

// Response - единый конверт ответа API: {status, success, message?, payload?}.
type Response struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

func OK(status int, payload interface{}) Response {
	return Response{
		Status:  status,
		Success: true,
		Payload: payload,
	}
}

func Fail(status int, message string) Response {
	return Response{
		Status:  status,
		Success: false,
		Message: message,
	}
}

// ListMeta эхо-копия параметров выборки, чтобы клиент мог восстановить вид
// списка из ответа (и из query string, которая совпадает с этими полями).
type ListMeta struct {
	Page      int               `json:"page"`
	PageSize  int               `json:"pageSize"`
	Query     string            `json:"query,omitempty"`
	SortBy    string            `json:"sortBy,omitempty"`
	Direction string            `json:"direction,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
	Total     int64             `json:"total"`
}

func NewListMeta(params entities.ListParams, total int64) ListMeta {
	return ListMeta{
		Page:      params.Page,
		PageSize:  params.PageSize,
		Query:     params.Query,
		SortBy:    params.SortBy,
		Direction: params.Direction.String(),
		Filters:   params.Filters,
		Total:     total,
	}
}
