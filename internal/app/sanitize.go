package app

import "hotel_ontology/internal/domain"

// Sanitize returns a copy of in with every missing child count set to 0,
// plus the number of cells it filled. Other columns are left as read.
func Sanitize(in []domain.RawBooking) ([]domain.RawBooking, int) {
	out := make([]domain.RawBooking, len(in))
	filled := 0
	for i, r := range in {
		if r.Children == nil {
			zero := 0
			r.Children = &zero
			filled++
		}
		out[i] = r
	}
	return out, filled
}
