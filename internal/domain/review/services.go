package review

// AverageRating is the arithmetic mean of ratings across reviews, 0 when
// there are none.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating().Value()
	}
	return float64(total) / float64(len(reviews))
}
