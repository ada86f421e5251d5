package simulate_quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type mockConfigSource struct {
	room      *domain.Room
	roomErr   error
	addOns    []*domain.AddOn
	addOnsErr error
}

func (m *mockConfigSource) GetRoom(_ context.Context, _ string) (*domain.Room, error) {
	if m.roomErr != nil {
		return nil, m.roomErr
	}
	return m.room, nil
}

func (m *mockConfigSource) ListAddOns(_ context.Context) ([]*domain.AddOn, error) {
	if m.addOnsErr != nil {
		return nil, m.addOnsErr
	}
	return m.addOns, nil
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:       "studio",
		Name:     "Studio",
		Capacity: 30,
		Pricing: &domain.RoomPricing{
			PerPerson: 20.0,
			PerRoom:   100.0,
			Rule:      "higher",
		},
		IncludedAddOns: []string{"wifi"},
		OptionalAddOns: []string{"projector", "catering", "ghost"},
	}
}

func testAddOns() []*domain.AddOn {
	return []*domain.AddOn{
		{
			ID:      "wifi",
			Name:    "Wi-Fi",
			Pricing: &domain.AddOnPricing{Model: "PER_PERSON", Amount: 5.0},
		},
		{
			ID:      "projector",
			Name:    "Projector",
			Pricing: &domain.AddOnPricing{Model: "PER_PERIOD", Amount: 15.0, Unit: "HOUR"},
		},
		{
			// Legacy-форма записи с PER_UNIT моделью: цена не считается
			ID:           "catering",
			Name:         "Catering",
			PricingModel: "PER_UNIT",
			Price:        "200",
		},
	}
}

func TestExecute_AvailableOptionsListedRegardlessOfSelection(t *testing.T) {
	source := &mockConfigSource{room: testRoom(), addOns: testAddOns()}
	uc := NewUseCase(source, nil, "£", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:           "admin-1",
		RoomID:           "studio",
		Attendees:        10,
		DurationHours:    2,
		SelectedAddOnIDs: []string{"projector"},
	})
	require.NoError(t, err)

	// "ghost" нет в каталоге - отброшен; остальные опции показаны все
	require.Len(t, resp.AvailableOptions, 2)

	projector := resp.AvailableOptions[0]
	assert.Equal(t, "projector", projector.AddOnID)
	assert.True(t, projector.Selected)
	assert.InDelta(t, 30.0, projector.Value, 1e-9)
	assert.True(t, projector.Supported)

	catering := resp.AvailableOptions[1]
	assert.Equal(t, "catering", catering.AddOnID)
	assert.False(t, catering.Selected)
	assert.False(t, catering.Supported)
	assert.Zero(t, catering.Value)
	assert.Equal(t, "£0.00", catering.ValueFormatted)
}

func TestExecute_BreakdownMatchesSelection(t *testing.T) {
	source := &mockConfigSource{room: testRoom(), addOns: testAddOns()}
	uc := NewUseCase(source, nil, "£", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:           "studio",
		Attendees:        10,
		DurationHours:    2,
		SelectedAddOnIDs: []string{"projector"},
	})
	require.NoError(t, err)

	// max(10x20, 100) = 200/час x2 = 400; wifi 50; projector 30
	assert.InDelta(t, 400.0, resp.RoomBaseTotal, 1e-9)
	assert.InDelta(t, 50.0, resp.InclusiveTotal, 1e-9)
	assert.InDelta(t, 450.0, resp.OfferPrice, 1e-9)
	assert.InDelta(t, 30.0, resp.OptionalTotal, 1e-9)
	assert.InDelta(t, 480.0, resp.FinalPrice, 1e-9)
	assert.Equal(t, "£480.00", resp.FinalPriceFormatted)

	// Раскладка содержит только выбранные опции, каталог вариантов - все
	require.Len(t, resp.OptionalItems, 1)
	assert.Equal(t, "projector", resp.OptionalItems[0].AddOnID)
}

func TestExecute_NothingSelected(t *testing.T) {
	source := &mockConfigSource{room: testRoom(), addOns: testAddOns()}
	uc := NewUseCase(source, nil, "£", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:        "studio",
		Attendees:     10,
		DurationHours: 2,
	})
	require.NoError(t, err)

	assert.Zero(t, resp.OptionalTotal)
	assert.InDelta(t, resp.OfferPrice, resp.FinalPrice, 1e-9)
	require.Len(t, resp.AvailableOptions, 2)
	for _, opt := range resp.AvailableOptions {
		assert.False(t, opt.Selected)
	}
}

func TestExecute_RoomNotFound(t *testing.T) {
	source := &mockConfigSource{roomErr: domain.ErrRoomNotFound}
	uc := NewUseCase(source, nil, "£", noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: "missing", Attendees: 5, DurationHours: 2})
	assert.True(t, errors.Is(err, ErrRoomNotFound))
}

func TestExecute_InvalidDuration(t *testing.T) {
	source := &mockConfigSource{room: testRoom(), addOns: testAddOns()}
	uc := NewUseCase(source, nil, "£", noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: "studio", Attendees: 5, DurationHours: 24})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
