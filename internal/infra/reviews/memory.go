package reviews

import (
	"context"
	"sort"
	"sync"
	"time"

	"stayhub/internal/domain/review"

	"github.com/google/uuid"
)

// Memory holds the seeded review feed, newest first per property.
type Memory struct {
	mu         sync.RWMutex
	byProperty map[string][]*review.Review
}

func NewMemory() (*Memory, error) {
	m := &Memory{byProperty: make(map[string][]*review.Review)}
	if err := m.seed(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Memory) FindByProperty(_ context.Context, propertyID string) ([]*review.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.byProperty[propertyID]
	out := make([]*review.Review, len(src))
	copy(out, src)
	return out, nil
}

type seedReview struct {
	propertyID string
	userName   string
	rating     int
	comment    string
	createdAt  string
}

func (m *Memory) seed() error {
	seeds := []seedReview{
		{"1", "Emma Thompson", 5, "Absolutely loved this place! The location is perfect and the apartment is exactly as described. Sarah was a wonderful host.", "2024-01-15T10:30:00Z"},
		{"1", "David Wilson", 4, "Great stay! The apartment was clean and well-equipped. Only minor issue was the WiFi was a bit slow, but overall excellent experience.", "2024-01-10T14:22:00Z"},
		{"1", "Lisa Martinez", 5, "Perfect for our weekend getaway. The downtown location made it easy to walk to restaurants and attractions. Highly recommend!", "2024-01-05T09:15:00Z"},
		{"2", "John Smith", 5, "This beach house exceeded all expectations! The ocean views are breathtaking and the amenities are top-notch.", "2024-01-12T16:45:00Z"},
	}

	for _, s := range seeds {
		createdAt, err := time.Parse(time.RFC3339, s.createdAt)
		if err != nil {
			return err
		}
		r, err := review.NewReview(uuid.New(), s.propertyID, s.userName, s.rating, s.comment, createdAt)
		if err != nil {
			return err
		}
		m.byProperty[s.propertyID] = append(m.byProperty[s.propertyID], r)
	}

	for id := range m.byProperty {
		rs := m.byProperty[id]
		sort.Slice(rs, func(i, j int) bool {
			return rs[i].CreatedAt().After(rs[j].CreatedAt())
		})
	}
	return nil
}
