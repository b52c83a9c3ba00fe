package review

import (
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyComment   = errs.New("comment cannot be empty")
	ErrCommentTooLong = errs.New("comment is too long")
)

type Review struct {
	id         uuid.UUID
	propertyID string
	userName   string
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

func NewReview(id uuid.UUID, propertyID, userName string, ratingValue int, commentText string, createdAt time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		propertyID: propertyID,
		userName:   userName,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) PropertyID() string   { return r.propertyID }
func (r *Review) UserName() string     { return r.userName }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
