package invoice

import (
	"context"
	"testing"

	"hotelier/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByIDInStatuses(ctx context.Context, id uint, statuses []domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockInvoiceStore struct {
	mock.Mock
}

func (m *MockInvoiceStore) ListByBooking(ctx context.Context, bookingID uint) ([]domain.InvoiceDetail, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceStore) Upsert(ctx context.Context, details []domain.InvoiceDetail) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockInvoiceStore) Delete(ctx context.Context, bookingID, id uint) (bool, error) {
	args := m.Called(ctx, bookingID, id)
	return args.Bool(0), args.Error(1)
}

type MockServiceReader struct {
	mock.Mock
}

func (m *MockServiceReader) GetByID(ctx context.Context, id uint) (*domain.HotelService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HotelService), args.Error(1)
}

func chargeableBooking() *domain.Booking {
	return &domain.Booking{ID: 5, Status: domain.BookingCheckIn}
}

func TestService_Save_SnapshotsNewLines(t *testing.T) {
	bookings := new(MockBookingReader)
	invoices := new(MockInvoiceStore)
	services := new(MockServiceReader)

	bookings.On("GetByIDInStatuses", mock.Anything, uint(5), chargeableStatuses()).
		Return(chargeableBooking(), nil)
	invoices.On("ListByBooking", mock.Anything, uint(5)).
		Return([]domain.InvoiceDetail{}, nil)
	services.On("GetByID", mock.Anything, uint(3)).
		Return(&domain.HotelService{ID: 3, Name: "Laundry", Price: 25_00}, nil)

	var saved []domain.InvoiceDetail
	invoices.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.InvoiceDetail)
		}).
		Return(nil)

	svc := NewService(bookings, invoices, services)

	_, err := svc.Save(context.Background(), 5, SaveRequest{
		Lines: []LineRequest{{ServiceID: 3, Quantity: 2}},
	})

	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, "Laundry", saved[0].Name)
	assert.Equal(t, domain.Money(25_00), saved[0].Price)
	assert.Equal(t, 2, saved[0].Quantity)
	assert.Equal(t, domain.Money(50_00), saved[0].Total())
}

func TestService_Save_ExistingLineKeepsSnapshot(t *testing.T) {
	bookings := new(MockBookingReader)
	invoices := new(MockInvoiceStore)
	services := new(MockServiceReader)

	bookings.On("GetByIDInStatuses", mock.Anything, uint(5), chargeableStatuses()).
		Return(chargeableBooking(), nil)
	// the catalog price may have changed since this line was recorded
	invoices.On("ListByBooking", mock.Anything, uint(5)).
		Return([]domain.InvoiceDetail{
			{ID: 7, BookingID: 5, ServiceID: 3, Name: "Laundry", Price: 20_00, Quantity: 1},
		}, nil)

	var saved []domain.InvoiceDetail
	invoices.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.InvoiceDetail)
		}).
		Return(nil)

	svc := NewService(bookings, invoices, services)

	_, err := svc.Save(context.Background(), 5, SaveRequest{
		Lines: []LineRequest{{ID: 7, ServiceID: 3, Quantity: 4}},
	})

	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, domain.Money(20_00), saved[0].Price)
	assert.Equal(t, 4, saved[0].Quantity)
	services.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Save_BookingNotChargeable(t *testing.T) {
	bookings := new(MockBookingReader)
	invoices := new(MockInvoiceStore)
	services := new(MockServiceReader)

	bookings.On("GetByIDInStatuses", mock.Anything, uint(5), chargeableStatuses()).
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, invoices, services)

	_, err := svc.Save(context.Background(), 5, SaveRequest{
		Lines: []LineRequest{{ServiceID: 3, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	invoices.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_Save_RejectsZeroQuantity(t *testing.T) {
	svc := NewService(new(MockBookingReader), new(MockInvoiceStore), new(MockServiceReader))

	_, err := svc.Save(context.Background(), 5, SaveRequest{
		Lines: []LineRequest{{ServiceID: 3, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Save_UnknownService(t *testing.T) {
	bookings := new(MockBookingReader)
	invoices := new(MockInvoiceStore)
	services := new(MockServiceReader)

	bookings.On("GetByIDInStatuses", mock.Anything, uint(5), chargeableStatuses()).
		Return(chargeableBooking(), nil)
	invoices.On("ListByBooking", mock.Anything, uint(5)).
		Return([]domain.InvoiceDetail{}, nil)
	services.On("GetByID", mock.Anything, uint(404)).
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, invoices, services)

	_, err := svc.Save(context.Background(), 5, SaveRequest{
		Lines: []LineRequest{{ServiceID: 404, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_Delete_MissingDetail(t *testing.T) {
	bookings := new(MockBookingReader)
	invoices := new(MockInvoiceStore)

	bookings.On("GetByIDInStatuses", mock.Anything, uint(5), chargeableStatuses()).
		Return(chargeableBooking(), nil)
	invoices.On("Delete", mock.Anything, uint(5), uint(9)).Return(false, nil)

	svc := NewService(bookings, invoices, new(MockServiceReader))

	err := svc.Delete(context.Background(), 5, 9)
	assert.ErrorIs(t, err, ErrDetailNotFound)
}
