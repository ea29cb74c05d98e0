package owner

import (
	"context"
	"os"
	"strings"
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

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func TestService_ListHotelBookings(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByHotelID", mock.Anything, int64(5)).Return([]domain.Booking{{ID: 7}, {ID: 8}}, nil)

	got, err := svc.ListHotelBookings(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_ListHotelBookings_NoHotel(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)

	_, err := svc.ListHotelBookings(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoHotel)
}

func TestService_UpdateBookingStatus_Confirm(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 5, Status: domain.BookingPending,
	}, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingConfirmed).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 5, Status: domain.BookingConfirmed,
	}, nil).Once()

	b, err := svc.UpdateBookingStatus(context.Background(), 1, 7, domain.BookingConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_UpdateBookingStatus_TerminalImmutable(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 5, Status: domain.BookingCancelled,
	}, nil)

	_, err := svc.UpdateBookingStatus(context.Background(), 1, 7, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	bookings.AssertNotCalled(t, "UpdateStatus")
}

func TestService_UpdateBookingStatus_RejectsPendingTarget(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 5, Status: domain.BookingConfirmed,
	}, nil)

	_, err := svc.UpdateBookingStatus(context.Background(), 1, 7, domain.BookingPending)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_ExportBookings_WritesSnapshot(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	dir := t.TempDir()
	svc := NewService(bookings, hotels, dir)

	checkIn := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByHotelID", mock.Anything, int64(5)).Return([]domain.Booking{
		{
			ID:           7,
			Reference:    "ref-7",
			RoomID:       10,
			HotelID:      5,
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.AddDate(0, 0, 2),
			Guests:       2,
			TotalPrice:   300,
			Status:       domain.BookingConfirmed,
		},
	}, nil)

	f, err := svc.ExportBookings(context.Background(), 1)
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Bookings", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Reference", header)
	ref, err := f.GetCellValue("Bookings", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "ref-7", ref)
	nights, err := f.GetCellValue("Bookings", "E2")
	assert.NoError(t, err)
	assert.Equal(t, "2", nights)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Contains(t, entries[0].Name(), "bookings_hotel_5_")
		assert.True(t, strings.HasSuffix(entries[0].Name(), ".xlsx"))
	}
}

func TestService_ExportBookings_NoSnapshotDir(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByHotelID", mock.Anything, int64(5)).Return([]domain.Booking{}, nil)

	f, err := svc.ExportBookings(context.Background(), 1)
	assert.NoError(t, err)
	f.Close()
}

func TestService_UpdateBookingStatus_WrongHotel(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	svc := NewService(bookings, hotels, "")

	hotels.On("GetByOwnerID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 99, Status: domain.BookingPending,
	}, nil)

	_, err := svc.UpdateBookingStatus(context.Background(), 1, 7, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)
}
