package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// PropertyRatingStats carries the only derived value the UI needs from
// the review feed: the mean rating, 0 when there are no reviews.
type PropertyRatingStats struct {
	PropertyID    string  `json:"property_id"`
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

type ReviewReadStore interface {
	FindByProperty(ctx context.Context, propertyID string) ([]*review.Review, error)
}

type ReviewQueries interface {
	ListByProperty(ctx context.Context, propertyID string) ([]*ReviewView, *PropertyRatingStats, error)
}

type reviewQueriesImpl struct {
	reviews    ReviewReadStore
	properties PropertyReadStore
}

func NewReviewQueries(reviews ReviewReadStore, properties PropertyReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, properties: properties}
}

func (q *reviewQueriesImpl) ListByProperty(ctx context.Context, propertyID string) ([]*ReviewView, *PropertyRatingStats, error) {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrPropertyNotFound
		}
		return nil, nil, errs.Wrap(err, "find property")
	}

	rs, err := q.reviews.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, errs.Wrap(err, "list reviews")
	}

	views := make([]*ReviewView, 0, len(rs))
	for _, r := range rs {
		views = append(views, &ReviewView{
			ID:        r.ID(),
			UserName:  r.UserName(),
			Rating:    r.Rating().Value(),
			Comment:   r.Comment().String(),
			CreatedAt: r.CreatedAt(),
		})
	}

	stats := &PropertyRatingStats{
		PropertyID:    propertyID,
		TotalReviews:  len(rs),
		AverageRating: review.AverageRating(rs),
	}
	return views, stats, nil
}
