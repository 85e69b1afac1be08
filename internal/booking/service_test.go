package booking

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitstudio/internal/class"
	"fitstudio/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) BookClass(ctx context.Context, classID int, clientName, clientEmail string) (*Booking, error) {
	args := m.Called(ctx, classID, clientName, clientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByEmail(ctx context.Context, email string) ([]BookingWithClass, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithClass), args.Error(1)
}

func (m *MockBookingRepo) CountForClass(ctx context.Context, classID int) (int, error) {
	args := m.Called(ctx, classID)
	return args.Int(0), args.Error(1)
}

type MockClassRepo struct{ mock.Mock }

func (m *MockClassRepo) CreateClass(ctx context.Context, name string, startTime time.Time, instructor string, availableSlots int) (*class.FitnessClass, error) {
	args := m.Called(ctx, name, startTime, instructor, availableSlots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*class.FitnessClass), args.Error(1)
}

func (m *MockClassRepo) ListUpcoming(ctx context.Context, now time.Time) ([]class.FitnessClass, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]class.FitnessClass), args.Error(1)
}

func (m *MockClassRepo) GetByID(ctx context.Context, id int) (*class.FitnessClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*class.FitnessClass), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendBookingConfirmation(ctx context.Context, to, name, className string, when time.Time) error {
	return m.Called(ctx, to, name, className, when).Error(0)
}

func newTestService() (*MockBookingRepo, *MockClassRepo, *MockNotifier, Service) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	notifier := new(MockNotifier)
	return repo, classRepo, notifier, NewService(repo, classRepo, notifier)
}

func TestBookInvalidEmail(t *testing.T) {
	repo, _, _, svc := newTestService()

	_, err := svc.Book(context.Background(), BookRequest{
		FitnessClass: 1,
		ClientName:   "John Doe",
		ClientEmail:  "not-an-email",
	})

	assert.ErrorIs(t, err, ErrInvalidEmail)
	repo.AssertNotCalled(t, "BookClass")
}

func TestBookSuccess(t *testing.T) {
	repo, classRepo, notifier, svc := newTestService()

	start := time.Now().Add(24 * time.Hour)
	repo.On("BookClass", mock.Anything, 1, "John Doe", "john@x.com").
		Return(&Booking{ID: 10, FitnessClassID: 1, ClientName: "John Doe", ClientEmail: "john@x.com"}, nil)
	classRepo.On("GetByID", mock.Anything, 1).
		Return(&class.FitnessClass{ID: 1, Name: "Yoga", StartTime: start}, nil)
	notifier.On("SendBookingConfirmation", mock.Anything, "john@x.com", "John Doe", "Yoga", start).
		Return(nil)

	booking, err := svc.Book(context.Background(), BookRequest{
		FitnessClass: 1,
		ClientName:   "John Doe",
		ClientEmail:  "john@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, booking.ID)
	notifier.AssertExpectations(t)
}

func TestBookNoSlots(t *testing.T) {
	repo, _, notifier, svc := newTestService()

	repo.On("BookClass", mock.Anything, 2, "John Doe", "john@x.com").
		Return(nil, ErrNoSlotsAvailable)

	_, err := svc.Book(context.Background(), BookRequest{
		FitnessClass: 2,
		ClientName:   "John Doe",
		ClientEmail:  "john@x.com",
	})

	assert.ErrorIs(t, err, ErrNoSlotsAvailable)
	notifier.AssertNotCalled(t, "SendBookingConfirmation")
}

func TestBookClassNotFoundError(t *testing.T) {
	repo, _, _, svc := newTestService()

	repo.On("BookClass", mock.Anything, 99, "John Doe", "john@x.com").
		Return(nil, ErrClassNotFound)

	_, err := svc.Book(context.Background(), BookRequest{
		FitnessClass: 99,
		ClientName:   "John Doe",
		ClientEmail:  "john@x.com",
	})

	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestBookNotifierFailureDoesNotFailBooking(t *testing.T) {
	repo, classRepo, notifier, svc := newTestService()

	start := time.Now().Add(24 * time.Hour)
	repo.On("BookClass", mock.Anything, 1, "John Doe", "john@x.com").
		Return(&Booking{ID: 10, FitnessClassID: 1, ClientName: "John Doe", ClientEmail: "john@x.com"}, nil)
	classRepo.On("GetByID", mock.Anything, 1).
		Return(&class.FitnessClass{ID: 1, Name: "Yoga", StartTime: start}, nil)
	notifier.On("SendBookingConfirmation", mock.Anything, "john@x.com", "John Doe", "Yoga", start).
		Return(assert.AnError)

	booking, err := svc.Book(context.Background(), BookRequest{
		FitnessClass: 1,
		ClientName:   "John Doe",
		ClientEmail:  "john@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, booking.ID)
}

func TestBookClassLookupFailureDoesNotFailBooking(t *testing.T) {
	repo, classRepo, notifier, svc := newTestService()

	repo.On("BookClass", mock.Anything, 1, "John Doe", "john@x.com").
		Return(&Booking{ID: 10, FitnessClassID: 1, ClientName: "John Doe", ClientEmail: "john@x.com"}, nil)
	classRepo.On("GetByID", mock.Anything, 1).Return(nil, assert.AnError)

	booking, err := svc.Book(context.Background(), BookRequest{
		FitnessClass: 1,
		ClientName:   "John Doe",
		ClientEmail:  "john@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, booking.ID)
	notifier.AssertNotCalled(t, "SendBookingConfirmation")
}

func TestServiceFindByEmail(t *testing.T) {
	repo, _, _, svc := newTestService()

	repo.On("FindByEmail", mock.Anything, "john@x.com").
		Return([]BookingWithClass{{Booking: Booking{ID: 1, ClientEmail: "John@X.com"}}}, nil)

	bookings, err := svc.FindByEmail(context.Background(), "john@x.com")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestClassStats(t *testing.T) {
	repo, classRepo, _, svc := newTestService()

	classRepo.On("GetByID", mock.Anything, 1).
		Return(&class.FitnessClass{ID: 1, Name: "Yoga", AvailableSlots: 3}, nil)
	repo.On("CountForClass", mock.Anything, 1).Return(7, nil)

	stats, err := svc.ClassStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Yoga", stats.ClassName)
	assert.Equal(t, 7, stats.BookedCount)
	assert.Equal(t, 3, stats.AvailableSlots)
	assert.False(t, stats.IsFull)
}

func TestClassStatsFullClass(t *testing.T) {
	repo, classRepo, _, svc := newTestService()

	classRepo.On("GetByID", mock.Anything, 2).
		Return(&class.FitnessClass{ID: 2, Name: "HIIT", AvailableSlots: 0}, nil)
	repo.On("CountForClass", mock.Anything, 2).Return(20, nil)

	stats, err := svc.ClassStats(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, stats.IsFull)
}

func TestClassStatsClassNotFound(t *testing.T) {
	repo, classRepo, _, svc := newTestService()

	classRepo.On("GetByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	_, err := svc.ClassStats(context.Background(), 99)
	assert.ErrorIs(t, err, ErrClassNotFound)
	repo.AssertNotCalled(t, "CountForClass")
}
