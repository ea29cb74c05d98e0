package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListAvailable(ctx context.Context, city string) ([]domain.Room, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestService_SearchRooms_AnnotatesInventory(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	listing := []domain.Room{
		{ID: 1, HotelID: 9, RoomType: domain.RoomDoubleBed, PricePerNight: 120},
		{ID: 2, HotelID: 9, RoomType: domain.RoomLuxury, PricePerNight: 300},
	}
	rooms.On("ListAvailable", mock.Anything, "dubai").Return(listing, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(1), day(10), day(12)).Return(int64(3), nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), day(10), day(12)).Return(int64(5), nil)

	got, err := svc.SearchRooms(context.Background(), "dubai", day(10), day(12), false)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].AvailableRooms)
	assert.Equal(t, 5, got[0].TotalRooms)
	assert.False(t, got[0].IsFullyBooked)
	assert.Equal(t, 0, got[1].AvailableRooms)
	assert.True(t, got[1].IsFullyBooked)
}

func TestService_SearchRooms_OnlyAvailableFilters(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	listing := []domain.Room{
		{ID: 1, HotelID: 9},
		{ID: 2, HotelID: 9},
	}
	rooms.On("ListAvailable", mock.Anything, "dubai").Return(listing, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(1), day(10), day(12)).Return(int64(0), nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), day(10), day(12)).Return(int64(5), nil)

	got, err := svc.SearchRooms(context.Background(), "dubai", day(10), day(12), true)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].Room.ID)
}

func TestService_SearchRooms_NoDatesSkipsCounting(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	rooms.On("ListAvailable", mock.Anything, "dubai").Return([]domain.Room{{ID: 1}}, nil)

	got, err := svc.SearchRooms(context.Background(), "dubai", time.Time{}, time.Time{}, false)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 5, got[0].AvailableRooms)
	bookings.AssertNotCalled(t, "CountOverlapping")
}

func TestService_SearchRooms_InvalidRange(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockRoomRepository), 5, 30, 3)

	_, err := svc.SearchRooms(context.Background(), "dubai", day(12), day(10), false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_SuggestDates_StopsAtLimit(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	// Every probed window is free, so the first three offsets win.
	bookings.On("CountOverlapping", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(int64(0), nil)

	got, err := svc.SuggestDates(context.Background(), 1, day(10), day(12))

	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 1, got[0].DaysFromOriginal)
	assert.Equal(t, 2, got[1].DaysFromOriginal)
	assert.Equal(t, 3, got[2].DaysFromOriginal)
}

func TestService_SuggestDates_PreservesStayLength(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(int64(0), nil)

	got, err := svc.SuggestDates(context.Background(), 1, day(10), day(13))

	assert.NoError(t, err)
	for _, sug := range got {
		assert.Equal(t, 3, domain.NightsBetween(sug.CheckIn, sug.CheckOut))
		assert.Equal(t, sug.CheckIn, day(10).AddDate(0, 0, sug.DaysFromOriginal))
	}
}

func TestService_SuggestDates_SkipsConflictingWindows(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 2)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	// Offsets 1 and 2 collide with existing stays, 3 and 4 are open.
	bookings.On("CountOverlapping", mock.Anything, int64(1), day(11), day(13)).Return(int64(1), nil)
	bookings.On("CountOverlapping", mock.Anything, int64(1), day(12), day(14)).Return(int64(2), nil)
	bookings.On("CountOverlapping", mock.Anything, int64(1), day(13), day(15)).Return(int64(0), nil)
	bookings.On("CountOverlapping", mock.Anything, int64(1), day(14), day(16)).Return(int64(0), nil)

	got, err := svc.SuggestDates(context.Background(), 1, day(10), day(12))

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 3, got[0].DaysFromOriginal)
	assert.Equal(t, 4, got[1].DaysFromOriginal)
}

func TestService_SuggestDates_HorizonBound(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	// The whole horizon is booked; the scan exhausts without suggestions.
	bookings.On("CountOverlapping", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(int64(1), nil)

	got, err := svc.SuggestDates(context.Background(), 1, day(10), day(12))

	assert.NoError(t, err)
	assert.Empty(t, got)
	bookings.AssertNumberOfCalls(t, "CountOverlapping", 30)
}

func TestService_SuggestDates_RoomNotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, 5, 30, 3)

	rooms.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.SuggestDates(context.Background(), 404, day(10), day(12))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_SuggestDates_InvalidRange(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockRoomRepository), 5, 30, 3)

	_, err := svc.SuggestDates(context.Background(), 1, day(12), day(12))
	assert.ErrorIs(t, err, ErrValidation)
}
