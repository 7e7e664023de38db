package web

import "math"

const historyPageSize = 10

type pageWindow struct {
	Page       int
	TotalPages int
	Start      int
	End        int
}

// paginate clamps page into 1..TotalPages and returns the slice bounds for it.
func paginate(total, page, size int) pageWindow {
	if page < 1 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(size)))
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return pageWindow{Page: page, TotalPages: totalPages, Start: start, End: end}
}

func (v *HistoryView) applyPage(window pageWindow) {
	v.Page = window.Page
	v.TotalPages = window.TotalPages
	if window.TotalPages > 0 {
		v.Pages = make([]int, 0, window.TotalPages)
		for i := 1; i <= window.TotalPages; i++ {
			v.Pages = append(v.Pages, i)
		}
	}
	v.HasPrev = window.Page > 1
	v.HasNext = window.TotalPages > 0 && window.Page < window.TotalPages
	if v.HasPrev {
		v.PrevPage = window.Page - 1
	}
	if v.HasNext {
		v.NextPage = window.Page + 1
	}
}
