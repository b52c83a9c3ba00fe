package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	Reviews       []*ReviewResponse `json:"reviews"`
	TotalReviews  int               `json:"totalReviews"`
	AverageRating float64           `json:"averageRating"`
}

func FromReviewViews(views []*queries.ReviewView, stats *queries.PropertyRatingStats) *ReviewListResponse {
	reviews := make([]*ReviewResponse, 0, len(views))
	for _, v := range views {
		reviews = append(reviews, &ReviewResponse{
			ID:        v.ID,
			UserName:  v.UserName,
			Rating:    v.Rating,
			Comment:   v.Comment,
			CreatedAt: v.CreatedAt,
		})
	}
	return &ReviewListResponse{
		Reviews:       reviews,
		TotalReviews:  stats.TotalReviews,
		AverageRating: stats.AverageRating,
	}
}
