package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/batch"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/go-playground/validator/v10"
)

type FlightUseCase interface {
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Flight, error)
	FindByID(ctx context.Context, id int64) (*domain.Flight, error)
	FindByStatus(ctx context.Context, status domain.FlightStatus) ([]domain.Flight, error)
	Search(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) ([]domain.Flight, error)
	Save(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	EditMany(ctx context.Context, flights []domain.Flight) domain.BatchResult
	Delay(ctx context.Context, input DelayInput) (*DelayResult, error)
	DelayHistory(ctx context.Context, flightID int64) ([]domain.FlightDelay, error)
}

// DelayPropagator moves the bookings of a delayed flight to DELAY and tells
// their passengers.
type DelayPropagator interface {
	DelayFlight(ctx context.Context, flightID int64) (*lifecycle.Report, error)
}

type DelayInput struct {
	FlightID int64  `json:"-"`
	Minutes  int    `json:"delayMinutes" validate:"gt=0,lte=10080"`
	Reason   string `json:"reason" validate:"max=500"`
}

type DelayResult struct {
	Flight *domain.Flight     `json:"flight"`
	Delay  domain.FlightDelay `json:"delay"`
	Report *lifecycle.Report  `json:"report"`
}

type FlightService struct {
	repo      repository.FlightRepository
	planes    repository.PlaneRepository
	history   repository.FlightDelayRepository
	propagate DelayPropagator
	validate  *validator.Validate
	log       logger.Logger
	now       func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithLogger(log logger.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

func NewFlightService(
	repo repository.FlightRepository,
	planes repository.PlaneRepository,
	history repository.FlightDelayRepository,
	propagate DelayPropagator,
	validate *validator.Validate,
	opts ...FlightServiceOption,
) *FlightService {
	s := &FlightService{
		repo:      repo,
		planes:    planes,
		history:   history,
		propagate: propagate,
		validate:  validate,
		log:       logger.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Flight, error) {
	return s.repo.FindAllActive(ctx, page)
}

func (s *FlightService) FindByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.FindByIDActive(ctx, id)
}

func (s *FlightService) FindByStatus(ctx context.Context, status domain.FlightStatus) ([]domain.Flight, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown flight status %q", domain.ErrValidation, status)
	}
	return s.repo.FindByStatusActive(ctx, status)
}

func (s *FlightService) Search(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) ([]domain.Flight, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: time range start is after its end", domain.ErrValidation)
	}
	return s.repo.Search(ctx, filter, page)
}

func (s *FlightService) Save(ctx context.Context, flight *domain.Flight) error {
	if err := domain.Validate(s.validate, flight); err != nil {
		return err
	}
	if err := flight.CheckSchedule(); err != nil {
		return err
	}
	ok, err := s.planes.ExistsByIDActive(ctx, flight.PlaneID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: plane %d does not exist", domain.ErrValidation, flight.PlaneID)
	}
	flight.IsDeleted = false
	return s.repo.Save(ctx, flight)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	flight, err := s.repo.FindByIDActive(ctx, id)
	if err != nil {
		return err
	}
	flight.IsDeleted = true
	return s.repo.Save(ctx, flight)
}

func (s *FlightService) EditMany(ctx context.Context, flights []domain.Flight) domain.BatchResult {
	return batch.Apply(ctx, flights, func(f *domain.Flight) int64 { return f.ID }, s.Save)
}

// Delay pushes the flight's schedule back, marks it DELAYED and records the
// change in the delay history before propagating it to the bookings. The
// flight change is kept even when the history write fails.
func (s *FlightService) Delay(ctx context.Context, input DelayInput) (*DelayResult, error) {
	if err := domain.Validate(s.validate, input); err != nil {
		return nil, err
	}
	flight, err := s.repo.FindByIDActive(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.Status == domain.FlightStatusCancelled || flight.Status == domain.FlightStatusCompleted {
		return nil, fmt.Errorf("%w: flight %d is %s", domain.ErrValidation, flight.ID, flight.Status)
	}

	delay := domain.FlightDelay{
		FlightID:      flight.ID,
		Minutes:       input.Minutes,
		Reason:        input.Reason,
		PreviousStart: flight.StartTime,
		CreatedAt:     s.now().UTC(),
	}
	if actor, ok := audit.ActorFrom(ctx); ok {
		delay.DelayedBy = actor.Email
	}

	flight.Shift(time.Duration(input.Minutes) * time.Minute)
	flight.Status = domain.FlightStatusDelayed
	if err := s.repo.Save(ctx, flight); err != nil {
		return nil, err
	}
	delay.NewStart = flight.StartTime

	if err := s.history.Append(ctx, &delay); err != nil {
		s.log.Error("failed to record flight delay", "flight_id", flight.ID, "error", err)
	}

	report, err := s.propagate.DelayFlight(ctx, flight.ID)
	if err != nil {
		return nil, fmt.Errorf("propagate delay of flight %d: %w", flight.ID, err)
	}

	return &DelayResult{Flight: flight, Delay: delay, Report: report}, nil
}

func (s *FlightService) DelayHistory(ctx context.Context, flightID int64) ([]domain.FlightDelay, error) {
	exists, err := s.repo.ExistsByIDActive(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.history.FindByFlight(ctx, flightID)
}

var _ FlightUseCase = (*FlightService)(nil)
