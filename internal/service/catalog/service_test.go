package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	roomRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/room"
	"github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type mockRoomRepo struct {
	rooms    map[string]*domain.Room
	err      error
	upserted *domain.Room
}

func (m *mockRoomRepo) Upsert(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.upserted = room
	return room, nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	room, ok := m.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func (m *mockRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	rooms := make([]*domain.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	delete(m.rooms, id)
	return nil
}

type mockAddOnRepo struct {
	addOns []*domain.AddOn
	err    error
}

func (m *mockAddOnRepo) Upsert(_ context.Context, addOn *domain.AddOn) (*domain.AddOn, error) {
	if m.err != nil {
		return nil, m.err
	}
	return addOn, nil
}

func (m *mockAddOnRepo) GetByID(_ context.Context, _ string) (*domain.AddOn, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.addOns) == 0 {
		return nil, errors.New("not found")
	}
	return m.addOns[0], nil
}

func (m *mockAddOnRepo) List(_ context.Context) ([]*domain.AddOn, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.addOns, nil
}

func (m *mockAddOnRepo) Delete(_ context.Context, _ string) error {
	return m.err
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func newTestService(roomR *mockRoomRepo, addOnR *mockAddOnRepo, tx *fakeTxManager) *Service {
	return NewService(roomR, addOnR, tx, noopLogger{})
}

func TestUpsertRoom_RunsInTransaction(t *testing.T) {
	roomR := &mockRoomRepo{rooms: map[string]*domain.Room{}}
	tx := &fakeTxManager{}
	svc := newTestService(roomR, &mockAddOnRepo{}, tx)

	resp, err := svc.UpsertRoom(context.Background(), "boardroom", &models.UpsertRoomRequest{
		Name:           "Boardroom",
		Capacity:       12,
		Pricing:        &domain.RoomPricing{PerPerson: 20.0, PerRoom: "100", Rule: "higher"},
		IncludedAddOns: []string{"wifi"},
		OptionalAddOns: []string{"projector"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "boardroom", resp.ID)
	require.NotNil(t, roomR.upserted)
	assert.Equal(t, []string{"wifi"}, roomR.upserted.IncludedAddOns)
}

func TestUpsertRoom_Validation(t *testing.T) {
	tests := []struct {
		name   string
		roomID string
		req    *models.UpsertRoomRequest
	}{
		{"empty room id", " ", &models.UpsertRoomRequest{Name: "Boardroom"}},
		{"empty name", "boardroom", &models.UpsertRoomRequest{Name: "  "}},
		{"name too long", "boardroom", &models.UpsertRoomRequest{Name: strings.Repeat("x", domain.MaxNameLength+1)}},
		{"negative capacity", "boardroom", &models.UpsertRoomRequest{Name: "Boardroom", Capacity: -1}},
		{"capacity too large", "boardroom", &models.UpsertRoomRequest{Name: "Boardroom", Capacity: domain.MaxCapacity + 1}},
		{"unknown pricing rule", "boardroom", &models.UpsertRoomRequest{
			Name:    "Boardroom",
			Pricing: &domain.RoomPricing{PerRoom: 100.0, Rule: "median"},
		}},
		{"non-numeric rate", "boardroom", &models.UpsertRoomRequest{
			Name:    "Boardroom",
			Pricing: &domain.RoomPricing{PerRoom: "a lot"},
		}},
		{"negative rate", "boardroom", &models.UpsertRoomRequest{
			Name:    "Boardroom",
			Pricing: &domain.RoomPricing{PerPerson: -5.0},
		}},
		{"add-on both included and optional", "boardroom", &models.UpsertRoomRequest{
			Name:           "Boardroom",
			IncludedAddOns: []string{"wifi"},
			OptionalAddOns: []string{"wifi"},
		}},
	}

	tx := &fakeTxManager{}
	svc := newTestService(&mockRoomRepo{rooms: map[string]*domain.Room{}}, &mockAddOnRepo{}, tx)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertRoom(context.Background(), tt.roomID, tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}

	// До транзакции дело не дошло ни разу
	assert.Zero(t, tx.calls)
}

func TestUpsertRoom_RuleCaseInsensitive(t *testing.T) {
	svc := newTestService(&mockRoomRepo{rooms: map[string]*domain.Room{}}, &mockAddOnRepo{}, &fakeTxManager{})

	_, err := svc.UpsertRoom(context.Background(), "boardroom", &models.UpsertRoomRequest{
		Name:    "Boardroom",
		Pricing: &domain.RoomPricing{PerPerson: 20.0, PerRoom: 100.0, Rule: "HIGHER"},
	})
	assert.NoError(t, err)
}

func TestGetRoom(t *testing.T) {
	svc := newTestService(&mockRoomRepo{rooms: map[string]*domain.Room{
		"boardroom": {ID: "boardroom", Name: "Boardroom"},
	}}, &mockAddOnRepo{}, &fakeTxManager{})

	room, err := svc.GetRoom(context.Background(), "boardroom")
	require.NoError(t, err)
	assert.Equal(t, "Boardroom", room.Name)

	_, err = svc.GetRoom(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrRoomNotFound))
	// Sentinel совпадает с доменным: quote use case'ы матчат его напрямую
	assert.True(t, errors.Is(err, domain.ErrRoomNotFound))
}

func TestUpsertAddOn_LegacyFieldsStoredVerbatim(t *testing.T) {
	svc := newTestService(&mockRoomRepo{}, &mockAddOnRepo{}, &fakeTxManager{})

	resp, err := svc.UpsertAddOn(context.Background(), "projector", &models.UpsertAddOnRequest{
		Name:         "Projector",
		PricingModel: "per_period",
		Price:        "15",
		PeriodUnit:   "hour",
	})
	require.NoError(t, err)

	assert.Equal(t, "per_period", resp.PricingModel)
	assert.Equal(t, "15", resp.Price)
	assert.Nil(t, resp.Pricing)
}

func TestUpsertAddOn_Validation(t *testing.T) {
	svc := newTestService(&mockRoomRepo{}, &mockAddOnRepo{}, &fakeTxManager{})

	_, err := svc.UpsertAddOn(context.Background(), "", &models.UpsertAddOnRequest{Name: "Projector"})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.UpsertAddOn(context.Background(), "projector", &models.UpsertAddOnRequest{
		Name: strings.Repeat("x", domain.MaxNameLength+1),
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGetVenueConfig_EmptyCatalog(t *testing.T) {
	svc := newTestService(&mockRoomRepo{rooms: map[string]*domain.Room{}}, &mockAddOnRepo{}, &fakeTxManager{})

	config, err := svc.GetVenueConfig(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, config.Rooms)
	assert.Empty(t, config.Rooms)
	assert.NotNil(t, config.AddOns)
	assert.Empty(t, config.AddOns)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	svc := newTestService(&mockRoomRepo{rooms: map[string]*domain.Room{}}, &mockAddOnRepo{}, &fakeTxManager{})

	err := svc.DeleteRoom(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrRoomNotFound))
}

func TestListAddOns_RepoFailure(t *testing.T) {
	svc := newTestService(&mockRoomRepo{}, &mockAddOnRepo{err: errors.New("db down")}, &fakeTxManager{})

	_, err := svc.ListAddOns(context.Background())
	assert.True(t, errors.Is(err, ErrInternal))
}
