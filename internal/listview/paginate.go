package listview

var PageSizes = []int{5, 10, 25, 50}

const DefaultPageSize = 10

type Page struct {
	Index int
	Size  int
}

// Paginate returns rows [Index*Size, Index*Size+Size) clipped to bounds.
func Paginate[T any](rows []T, p Page) []T {
	if p.Size <= 0 || p.Index < 0 {
		return []T{}
	}
	start := p.Index * p.Size
	if start >= len(rows) {
		return []T{}
	}
	end := min(start+p.Size, len(rows))
	return rows[start:end]
}

// PageCount is the number of pages needed for total rows; at least 1.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
