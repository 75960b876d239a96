package schema

// ListQuery 分页查询参数
type ListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// Offset 当前页的偏移量，page 从 1 开始
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page 分页结果
type Page[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}
