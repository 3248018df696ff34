package entities

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) String() string {
	return string(d)
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListParams - единый контракт списочных выборок: page/pageSize/query/sortBy/
// direction плюс фильтры по полям конкретной сущности. Параметры приходят из
// query string и возвращаются в ответе как есть, чтобы состояние списка
// оставалось шарируемым.
type ListParams struct {
	Page      int
	PageSize  int
	Query     string
	SortBy    string
	Direction SortDirection
	Filters   map[string]string
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p ListParams) Limit() int {
	return p.PageSize
}
