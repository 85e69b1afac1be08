package class

import (
	"context"
	"errors"
	"time"

	"fitstudio/internal/metrics"
	"fitstudio/internal/timezone"
)

const naiveTimeLayout = "2006-01-02 15:04:05"

var ErrInvalidStartTime = errors.New("invalid start time format")

type Service interface {
	ListUpcoming(ctx context.Context, tzName string) ([]ClassView, error)
	CreateClass(ctx context.Context, req CreateClassRequest) (*FitnessClass, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUpcoming(ctx context.Context, tzName string) ([]ClassView, error) {
	// Reject unknown zones before touching the database.
	if _, err := timezone.Resolve(tzName); err != nil {
		return nil, err
	}

	classes, err := s.repo.ListUpcoming(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	views := make([]ClassView, 0, len(classes))
	for _, class := range classes {
		localized, err := timezone.Convert(class.StartTime, tzName)
		if err != nil {
			return nil, err
		}
		views = append(views, ClassView{
			ID:             class.ID,
			Name:           class.Name,
			StartTime:      localized.Format(time.RFC3339),
			Instructor:     class.Instructor,
			AvailableSlots: class.AvailableSlots,
		})
	}

	metrics.RecordClassList(tzName)
	return views, nil
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*FitnessClass, error) {
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		// No zone suffix: interpret as studio home zone wall clock.
		startTime, err = timezone.ParseInHomeZone(naiveTimeLayout, req.StartTime)
		if err != nil {
			return nil, ErrInvalidStartTime
		}
	}

	return s.repo.CreateClass(ctx, req.Name, startTime.UTC(), req.Instructor, req.AvailableSlots)
}
