package queries

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

type PrearrangedView struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
}

type PropertyView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	NightlyRate float64          `json:"nightly_rate"`
	Amenities   []string         `json:"amenities"`
	MaxGuests   int              `json:"max_guests"`
	Prearranged *PrearrangedView `json:"prearranged,omitempty"`
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id string) (*property.Property, error)
	List(ctx context.Context) ([]*property.Property, error)
}

type PropertyQueries interface {
	List(ctx context.Context) ([]*PropertyView, error)
	GetByID(ctx context.Context, id string) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) List(ctx context.Context) ([]*PropertyView, error) {
	props, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list properties")
	}
	views := make([]*PropertyView, 0, len(props))
	for _, p := range props {
		views = append(views, ToPropertyView(p))
	}
	return views, nil
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id string) (*PropertyView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "find property")
	}
	return ToPropertyView(p), nil
}

func ToPropertyView(p *property.Property) *PropertyView {
	view := &PropertyView{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Location:    p.Location(),
		NightlyRate: p.NightlyRate(),
		Amenities:   p.Amenities(),
		MaxGuests:   p.MaxGuests(),
	}
	if pre := p.Prearranged(); pre != nil {
		view.Prearranged = &PrearrangedView{
			CheckIn:  pre.Range.CheckIn().String(),
			CheckOut: pre.Range.CheckOut().String(),
			Nights:   pre.Range.Nights(),
			Guests:   pre.Guests,
		}
	}
	return view
}
