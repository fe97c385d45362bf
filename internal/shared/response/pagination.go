package response

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// MaxPageSize caps page sizes so offsets stay far from int overflow.
const MaxPageSize = 1000

// Paginate slices an in-memory list. Pages start at 1; values below 1 fall
// back to the first page and defaultSize, and sizes above MaxPageSize are
// clamped. A page past the end is empty, however large page is.
func Paginate[T any](items []T, page, pageSize, defaultSize int) ([]T, PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	pageSize = min(pageSize, MaxPageSize)

	start := len(items)
	if skipped := page - 1; skipped <= len(items)/pageSize {
		start = min(skipped*pageSize, len(items))
	}
	end := start + min(pageSize, len(items)-start)

	return items[start:end], NewPaginationMeta(int64(len(items)), page, pageSize)
}
