package catalog

import (
	"context"
	"testing"

	"hotelier/internal/domain"
	"hotelier/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) GetByID(ctx context.Context, id uint) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepo) Search(ctx context.Context, f repository.RoomFilter) ([]domain.Room, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepo) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepo) Restore(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomTypeRepo struct {
	mock.Mock
}

func (m *MockRoomTypeRepo) List(ctx context.Context, name string, page, perPage int) ([]domain.RoomType, int64, error) {
	args := m.Called(ctx, name, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.RoomType), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomTypeRepo) GetByID(ctx context.Context, id uint) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepo) Create(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	if rt != nil {
		rt.ID = 21
	}
	return args.Error(0)
}

func (m *MockRoomTypeRepo) Update(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRoomTypeRepo) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) List(ctx context.Context, name string) ([]domain.Property, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepo) GetByID(ctx context.Context, id uint) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) List(ctx context.Context, name string, page, perPage int) ([]domain.HotelService, int64, error) {
	args := m.Called(ctx, name, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.HotelService), args.Get(1).(int64), args.Error(2)
}

func (m *MockServiceRepo) GetByID(ctx context.Context, id uint) (*domain.HotelService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HotelService), args.Error(1)
}

func (m *MockServiceRepo) Create(ctx context.Context, svc *domain.HotelService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepo) Update(ctx context.Context, svc *domain.HotelService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepo) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepo) Restore(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(rooms *MockRoomRepo, roomTypes *MockRoomTypeRepo, props *MockPropertyRepo, svcs *MockServiceRepo) *Service {
	return NewService(rooms, roomTypes, props, svcs, 15)
}

// Rooms

func TestService_ListRooms_NoStatusLeavesFilterOpen(t *testing.T) {
	rooms := new(MockRoomRepo)
	svc := newTestService(rooms, new(MockRoomTypeRepo), new(MockPropertyRepo), new(MockServiceRepo))

	rooms.On("Search", mock.Anything, repository.RoomFilter{
		Name:    "sea",
		Page:    2,
		PerPage: 15,
	}).Return([]domain.Room{{ID: 1, Name: "Sea View 101"}}, int64(1), nil)

	got, total, err := svc.ListRooms(context.Background(), RoomListQuery{Name: "sea", Status: 0, Page: 2})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, got, 1)
	rooms.AssertExpectations(t)
}

func TestService_ListRooms_StatusNarrowsSearch(t *testing.T) {
	rooms := new(MockRoomRepo)
	svc := newTestService(rooms, new(MockRoomTypeRepo), new(MockPropertyRepo), new(MockServiceRepo))

	cleaning := domain.RoomCleaning
	rooms.On("Search", mock.Anything, repository.RoomFilter{
		Status:  &cleaning,
		Page:    1,
		PerPage: 10,
	}).Return([]domain.Room{{ID: 3, Status: domain.RoomCleaning}}, int64(1), nil)

	got, total, err := svc.ListRooms(context.Background(), RoomListQuery{
		Status:  int(domain.RoomCleaning),
		Page:    1,
		PerPage: 10,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, domain.RoomCleaning, got[0].Status)
	rooms.AssertExpectations(t)
}

func TestService_CreateRoom_DefaultsToActive(t *testing.T) {
	rooms := new(MockRoomRepo)
	roomTypes := new(MockRoomTypeRepo)
	svc := newTestService(rooms, roomTypes, new(MockPropertyRepo), new(MockServiceRepo))

	roomTypes.On("GetByID", mock.Anything, uint(2)).Return(&domain.RoomType{ID: 2, Name: "Deluxe"}, nil)
	rooms.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Status == domain.RoomActive && r.RoomTypeID == 2
	})).Return(nil)
	rooms.On("GetByID", mock.Anything, uint(7)).Return(&domain.Room{ID: 7, Name: "201", Status: domain.RoomActive}, nil)

	room, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		Name:       "201",
		RoomTypeID: 2,
		Status:     0,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomActive, room.Status)
	rooms.AssertExpectations(t)
	roomTypes.AssertExpectations(t)
}

func TestService_CreateRoom_InvalidStatus(t *testing.T) {
	rooms := new(MockRoomRepo)
	svc := newTestService(rooms, new(MockRoomTypeRepo), new(MockPropertyRepo), new(MockServiceRepo))

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		Name:       "202",
		RoomTypeID: 2,
		Status:     9,
	})

	assert.ErrorIs(t, err, ErrInvalidRoomStatus)
	rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateRoom_UnknownRoomType(t *testing.T) {
	rooms := new(MockRoomRepo)
	roomTypes := new(MockRoomTypeRepo)
	svc := newTestService(rooms, roomTypes, new(MockPropertyRepo), new(MockServiceRepo))

	roomTypes.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		Name:       "203",
		RoomTypeID: 99,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateRoom_InvalidStatus(t *testing.T) {
	rooms := new(MockRoomRepo)
	svc := newTestService(rooms, new(MockRoomTypeRepo), new(MockPropertyRepo), new(MockServiceRepo))

	_, err := svc.UpdateRoom(context.Background(), 5, UpdateRoomRequest{
		Name:       "101",
		RoomTypeID: 1,
		Status:     42,
	})

	assert.ErrorIs(t, err, ErrInvalidRoomStatus)
	rooms.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// Room types

func TestService_UpdateRoomType_ReplacesProperties(t *testing.T) {
	roomTypes := new(MockRoomTypeRepo)
	props := new(MockPropertyRepo)
	svc := newTestService(new(MockRoomRepo), roomTypes, props, new(MockServiceRepo))

	rt := &domain.RoomType{
		ID:    4,
		Name:  "Suite",
		Price: domain.Money(400_00),
		Properties: []domain.RoomProperty{
			{PropertyID: 1, Value: "2"},
		},
	}
	roomTypes.On("GetByID", mock.Anything, uint(4)).Return(rt, nil)
	props.On("GetByID", mock.Anything, uint(2)).Return(&domain.Property{ID: 2, Name: "Beds"}, nil)
	props.On("GetByID", mock.Anything, uint(3)).Return(&domain.Property{ID: 3, Name: "View"}, nil)
	roomTypes.On("Update", mock.Anything, mock.MatchedBy(func(got *domain.RoomType) bool {
		if len(got.Properties) != 2 {
			return false
		}
		return got.Properties[0].PropertyID == 2 && got.Properties[1].PropertyID == 3
	})).Return(nil)

	updated, err := svc.UpdateRoomType(context.Background(), 4, UpdateRoomTypeRequest{
		Name:  "Suite",
		Price: 450_00,
		Properties: []PropertyValueRequest{
			{PropertyID: 2, Value: "king"},
			{PropertyID: 3, Value: "sea"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.Money(450_00), updated.Price)
	assert.Len(t, updated.Properties, 2)
	roomTypes.AssertExpectations(t)
	props.AssertExpectations(t)
}

func TestService_UpdateRoomType_UnknownProperty(t *testing.T) {
	roomTypes := new(MockRoomTypeRepo)
	props := new(MockPropertyRepo)
	svc := newTestService(new(MockRoomRepo), roomTypes, props, new(MockServiceRepo))

	roomTypes.On("GetByID", mock.Anything, uint(4)).Return(&domain.RoomType{ID: 4, Name: "Suite"}, nil)
	props.On("GetByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateRoomType(context.Background(), 4, UpdateRoomTypeRequest{
		Name:       "Suite",
		Price:      400_00,
		Properties: []PropertyValueRequest{{PropertyID: 77, Value: "x"}},
	})

	assert.ErrorIs(t, err, ErrNotFound)
	roomTypes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
