package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/kafka"
	"github.com/rmoulin/skyflight/internal/repository"
	"github.com/rmoulin/skyflight/internal/rules"
	"github.com/rmoulin/skyflight/internal/service/flights"
)

type WizardUseCase interface {
	StartSession(ctx context.Context) (*Session, error)
	Search(ctx context.Context, sid string, criteria SearchCriteria) ([]domain.Flight, error)
	SelectFlight(ctx context.Context, sid, flno string) (*Session, error)
	Back(ctx context.Context, sid string) (*Session, error)
	SubmitPassengerInfo(ctx context.Context, sid string, info PassengerInfo, class domain.CabinClass) (*Confirmation, error)
}

// SessionStore persists wizard sessions between requests. The cache package
// provides the Redis implementation; raw is the session's json encoding.
type SessionStore interface {
	SaveSession(ctx context.Context, sid string, raw []byte) error
	GetSession(ctx context.Context, sid string) ([]byte, error)
	DeleteSession(ctx context.Context, sid string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type WizardService struct {
	flights            flights.FlightUseCase
	passengers         repository.PassengerRepository
	bookings           repository.BookingRepository
	sessions           SessionStore
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	loc                *time.Location
	rng                rules.RandomSource
	now                func() time.Time
}

type WizardServiceOption func(*WizardService)

func WithNotificationsTopic(topic string) WizardServiceOption {
	return func(s *WizardService) {
		s.notificationsTopic = topic
	}
}

// WithRandomSource replaces the seat-draw entropy, used by tests for
// reproducible seat codes.
func WithRandomSource(rng rules.RandomSource) WizardServiceOption {
	return func(s *WizardService) {
		s.rng = rng
	}
}

func WithClock(now func() time.Time) WizardServiceOption {
	return func(s *WizardService) {
		s.now = now
	}
}

func NewWizardService(
	flightSvc flights.FlightUseCase,
	passengers repository.PassengerRepository,
	bookings repository.BookingRepository,
	sessions SessionStore,
	producer Producer,
	bookingTopic string,
	loc *time.Location,
	opts ...WizardServiceOption,
) *WizardService {
	service := &WizardService{
		flights:      flightSvc,
		passengers:   passengers,
		bookings:     bookings,
		sessions:     sessions,
		producer:     producer,
		bookingTopic: bookingTopic,
		loc:          loc,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *WizardService) StartSession(ctx context.Context) (*Session, error) {
	session := &Session{
		ID:    uuid.NewString(),
		State: StateSearch,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Search filters the flight set by the optional criteria. The session stays
// in the search state; only selecting a flight moves it forward.
func (s *WizardService) Search(ctx context.Context, sid string, criteria SearchCriteria) ([]domain.Flight, error) {
	session, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if session.State != StateSearch {
		return nil, domain.NewValidationError("state", fmt.Sprintf("cannot search from state %q", session.State))
	}

	all, err := s.flights.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	session.Criteria = criteria
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return FilterFlights(all, criteria), nil
}

// SelectFlight is unconditional: no availability or seat-conflict check is
// performed before proceeding.
func (s *WizardService) SelectFlight(ctx context.Context, sid, flno string) (*Session, error) {
	session, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if session.State != StateSearch {
		return nil, domain.NewValidationError("state", fmt.Sprintf("cannot select a flight from state %q", session.State))
	}

	flight, err := s.flights.GetByFlNo(ctx, flno)
	if err != nil {
		return nil, fmt.Errorf("get flight %s: %w", flno, err)
	}

	session.Flight = flight
	session.State = StateFlightSelected
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back performs the explicit user-triggered backward transition. There is no
// way back out of a confirmed session.
func (s *WizardService) Back(ctx context.Context, sid string) (*Session, error) {
	session, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case StatePassengerInfo:
		session.State = StateFlightSelected
	case StateFlightSelected:
		session.Flight = nil
		session.State = StateSearch
	default:
		return nil, domain.NewValidationError("state", fmt.Sprintf("cannot go back from state %q", session.State))
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitPassengerInfo validates the passenger identity fields, reuses or
// creates the passenger record, then creates the booking and confirms the
// session. A repository failure aborts the transition and leaves the session
// where it was, so the caller can retry without losing entered data. The
// passenger id consumed before a failed booking write is not rolled back.
func (s *WizardService) SubmitPassengerInfo(ctx context.Context, sid string, info PassengerInfo, class domain.CabinClass) (*Confirmation, error) {
	session, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if session.State != StateFlightSelected && session.State != StatePassengerInfo {
		return nil, domain.NewValidationError("state", fmt.Sprintf("cannot submit passenger info from state %q", session.State))
	}
	if session.Flight == nil {
		return nil, domain.NewValidationError("flight", "no flight selected")
	}
	if !class.Valid() {
		return nil, domain.NewValidationError("class", fmt.Sprintf("unknown cabin class %q", class))
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	session.State = StatePassengerInfo
	session.Info = &info
	session.Class = class
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	passenger, err := s.resolvePassenger(ctx, info)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	booking := domain.Booking{
		BID:         rules.NextID('B', len(existing)),
		PID:         passenger.PID,
		FlNo:        session.Flight.FlNo,
		BookingDate: s.now().In(s.loc).Format("2006-01-02"),
		SeatNumber:  rules.AssignSeat(class, s.rng),
		Class:       class,
		Status:      domain.BookingStatusConfirmed,
		PricePaid:   rules.Price(session.Flight.Price, class),
	}

	if err := s.bookings.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	confirmation := &Confirmation{
		Booking:   booking,
		Flight:    *session.Flight,
		Passenger: *passenger,
	}
	session.State = StateConfirmed
	session.Confirmation = confirmation
	if err := s.save(ctx, session); err != nil {
		// The booking is persisted; a stale session must not undo it.
		log.Printf("WARNING: save confirmed session %s: %v", sid, err)
	}

	s.publish(ctx, "booking_confirmed", booking, passenger.Email)
	return confirmation, nil
}

func (s *WizardService) resolvePassenger(ctx context.Context, info PassengerInfo) (*domain.Passenger, error) {
	passenger, err := s.passengers.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, fmt.Errorf("find passenger by email: %w", err)
	}
	if passenger != nil {
		return passenger, nil
	}

	all, err := s.passengers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}

	passenger = &domain.Passenger{
		PID:            rules.NextID('P', len(all)),
		FirstName:      info.FirstName,
		LastName:       info.LastName,
		Email:          info.Email,
		Phone:          info.Phone,
		PassportNumber: info.PassportNumber,
		Nationality:    info.Nationality,
		DateOfBirth:    info.DateOfBirth,
	}
	if err := s.passengers.Create(ctx, passenger); err != nil {
		return nil, fmt.Errorf("create passenger: %w", err)
	}
	return passenger, nil
}

func (s *WizardService) publish(ctx context.Context, eventType string, booking domain.Booking, email string) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BID:        booking.BID,
		PID:        booking.PID,
		FlNo:       booking.FlNo,
		Seat:       booking.SeatNumber,
		Class:      booking.Class,
		Status:     string(booking.Status),
		Email:      email,
		PricePaid:  booking.PricePaid,
		OccurredAt: s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.BID, event); err != nil {
		log.Printf("WARNING: publish %s event for booking %s: %v", eventType, booking.BID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.BID, event); err != nil {
			log.Printf("WARNING: publish %s notification for booking %s: %v", eventType, booking.BID, err)
		}
	}
}

func (s *WizardService) load(ctx context.Context, sid string) (*Session, error) {
	raw, err := s.sessions.GetSession(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sid, err)
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sid, err)
	}
	return &session, nil
}

func (s *WizardService) save(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := s.sessions.SaveSession(ctx, session.ID, raw); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// FilterFlights applies the three optional search predicates: origin and
// destination match by case-insensitive substring, the departure date must
// match exactly, and all given predicates combine with AND.
func FilterFlights(all []domain.Flight, criteria SearchCriteria) []domain.Flight {
	result := make([]domain.Flight, 0, len(all))
	origin := strings.ToLower(criteria.Origin)
	destination := strings.ToLower(criteria.Destination)

	for _, f := range all {
		if origin != "" && !strings.Contains(strings.ToLower(f.Origin), origin) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(f.Destination), destination) {
			continue
		}
		if criteria.DepartureDate != "" && f.DepartureDate != criteria.DepartureDate {
			continue
		}
		result = append(result, f)
	}
	return result
}

var _ WizardUseCase = (*WizardService)(nil)
