package listquery

import (
	"net/url"
	"strconv"

	"backoffice/internal/entities"
)

// Parse читает параметры списочной выборки из query string. В Filters
// попадают только ключи из filterKeys с непустыми значениями.
func Parse(values url.Values, filterKeys ...string) entities.ListParams {
	params := entities.ListParams{
		Page:     entities.DefaultPage,
		PageSize: entities.DefaultPageSize,
		Query:    values.Get("query"),
		SortBy:   values.Get("sortBy"),
		Filters:  map[string]string{},
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(values.Get("pageSize")); err == nil && pageSize > 0 {
		if pageSize > entities.MaxPageSize {
			pageSize = entities.MaxPageSize
		}
		params.PageSize = pageSize
	}

	switch entities.SortDirection(values.Get("direction")) {
	case entities.SortAsc:
		params.Direction = entities.SortAsc
	case entities.SortDesc:
		params.Direction = entities.SortDesc
	}

	for _, key := range filterKeys {
		if value := values.Get(key); value != "" {
			params.Filters[key] = value
		}
	}

	return params
}

// Encode собирает параметры обратно в query string, обратен Parse.
// Состояние списка целиком живет в URL и может шариться ссылкой.
func Encode(params entities.ListParams) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("pageSize", strconv.Itoa(params.PageSize))
	if params.Query != "" {
		values.Set("query", params.Query)
	}
	if params.SortBy != "" {
		values.Set("sortBy", params.SortBy)
	}
	if params.Direction != "" {
		values.Set("direction", params.Direction.String())
	}
	for key, value := range params.Filters {
		values.Set(key, value)
	}
	return values
}
