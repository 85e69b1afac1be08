package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"fitstudio/internal/class"
	"fitstudio/internal/logger"
	"fitstudio/internal/metrics"
)

var ErrInvalidEmail = errors.New("please enter a valid email address")

// Notifier queues outbound booking notifications.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, className string, when time.Time) error
}

type Service interface {
	Book(ctx context.Context, req BookRequest) (*Booking, error)
	FindByEmail(ctx context.Context, email string) ([]BookingWithClass, error)
	ClassStats(ctx context.Context, classID int) (*ClassBookingStats, error)
}

type service struct {
	repo      Repository
	classRepo class.Repository
	notifier  Notifier
}

func NewService(repo Repository, classRepo class.Repository, notifier Notifier) Service {
	return &service{
		repo:      repo,
		classRepo: classRepo,
		notifier:  notifier,
	}
}

func (s *service) Book(ctx context.Context, req BookRequest) (*Booking, error) {
	if !strings.Contains(req.ClientEmail, "@") {
		metrics.RecordBooking("invalid_email")
		return nil, ErrInvalidEmail
	}

	booking, err := s.repo.BookClass(ctx, req.FitnessClass, req.ClientName, req.ClientEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			metrics.RecordBooking("class_not_found")
		case errors.Is(err, ErrNoSlotsAvailable):
			metrics.RecordBooking("no_slots")
		default:
			metrics.RecordBooking("error")
		}
		return nil, err
	}

	metrics.RecordBooking("success")

	// Confirmation email is best effort and never fails the booking.
	if s.notifier != nil {
		fitnessClass, err := s.classRepo.GetByID(ctx, booking.FitnessClassID)
		if err != nil {
			logger.Errorf("Failed to load class %d for confirmation email: %v", booking.FitnessClassID, err)
			return booking, nil
		}
		if err := s.notifier.SendBookingConfirmation(ctx, booking.ClientEmail, booking.ClientName, fitnessClass.Name, fitnessClass.StartTime); err != nil {
			logger.Errorf("Failed to queue confirmation email to %s: %v", booking.ClientEmail, err)
		}
	}

	return booking, nil
}

func (s *service) FindByEmail(ctx context.Context, email string) ([]BookingWithClass, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) ClassStats(ctx context.Context, classID int) (*ClassBookingStats, error) {
	fitnessClass, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	count, err := s.repo.CountForClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	return &ClassBookingStats{
		ClassID:        fitnessClass.ID,
		ClassName:      fitnessClass.Name,
		BookedCount:    count,
		AvailableSlots: fitnessClass.AvailableSlots,
		IsFull:         fitnessClass.AvailableSlots <= 0,
	}, nil
}
