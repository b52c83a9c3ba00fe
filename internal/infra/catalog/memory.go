package catalog

import (
	"context"
	"sync"
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/stay"
	"stayhub/internal/infra"
)

// Memory is the in-process property catalog. The marketplace core only
// ever reads it; listings are seeded once at startup.
type Memory struct {
	mu    sync.RWMutex
	byID  map[string]*property.Property
	order []string
}

func NewMemory() (*Memory, error) {
	m := &Memory{byID: make(map[string]*property.Property)}
	if err := m.seed(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Memory) FindByID(_ context.Context, id string) (*property.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "property "+id, nil)
	}
	return p, nil
}

func (m *Memory) List(_ context.Context) ([]*property.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*property.Property, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *Memory) add(p *property.Property) {
	m.byID[p.ID()] = p
	m.order = append(m.order, p.ID())
}

func (m *Memory) seed() error {
	downtown, err := property.NewProperty(
		"1",
		"Cozy Downtown Apartment",
		"A beautiful and cozy apartment in the heart of downtown with amazing city views and modern amenities.",
		"Downtown, City Center",
		120,
		[]string{"WiFi", "Kitchen", "Air Conditioning", "Heating", "Washer", "TV", "Parking"},
		4,
		nil,
	)
	if err != nil {
		return err
	}

	beachHouse, err := property.NewProperty(
		"2",
		"Luxury Beach House",
		"Experience the ultimate beachfront luxury with direct beach access, infinity pool, and breathtaking ocean views.",
		"Malibu, California",
		450,
		[]string{"WiFi", "Pool", "Beach Access", "Kitchen", "Air Conditioning", "Hot Tub", "Parking", "Ocean View"},
		8,
		nil,
	)
	if err != nil {
		return err
	}

	// Fixed promotional stay: 24-27 Aug 2024, billed through the flat-fee path.
	villaRange, err := stay.NewStayRange(
		stay.NewDate(2024, time.August, 24),
		stay.NewDate(2024, time.August, 27),
	)
	if err != nil {
		return err
	}
	villa, err := property.NewProperty(
		"3",
		"Villa Arrecife Beach House",
		"Private beachfront villa with chef's kitchen, infinity pool and staffed service for an all-inclusive escape.",
		"Punta Cana, Dominican Republic",
		7500,
		[]string{"WiFi", "Pool", "Beach Access", "Chef's Kitchen", "Daily Housekeeping", "Ocean View"},
		8,
		&property.PrearrangedStay{Range: villaRange, Guests: 2},
	)
	if err != nil {
		return err
	}

	m.add(downtown)
	m.add(beachHouse)
	m.add(villa)
	return nil
}
