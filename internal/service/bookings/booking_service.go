package bookings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/kafka"
	"github.com/rmoulin/skyflight/internal/repository"
	"github.com/rmoulin/skyflight/internal/rules"
)

type BookingUseCase interface {
	ListForEmail(ctx context.Context, email string) ([]BookingView, error)
	RequestCancellation(ctx context.Context, bid string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingView is one row of the passenger's bookings page: the booking, a
// flight snapshot when the flight still exists, the remaining-time bucket
// and whether cancellation is still possible.
type BookingView struct {
	Booking         domain.Booking `json:"booking"`
	Flight          *domain.Flight `json:"flight,omitempty"`
	TimeUntilFlight string         `json:"time_until_flight,omitempty"`
	CanCancel       bool           `json:"can_cancel"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	passengers         repository.PassengerRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	loc                *time.Location
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	producer Producer,
	bookingTopic string,
	loc *time.Location,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		passengers:   passengers,
		producer:     producer,
		bookingTopic: bookingTopic,
		loc:          loc,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// ListForEmail resolves the passenger profile behind the email and returns
// their bookings joined with flight snapshots. An email with no passenger
// profile has no bookings.
func (s *BookingService) ListForEmail(ctx context.Context, email string) ([]BookingView, error) {
	passenger, err := s.passengers.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find passenger by email: %w", err)
	}
	if passenger == nil {
		return []BookingView{}, nil
	}

	bookings, err := s.bookings.ListByPID(ctx, passenger.PID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	now := s.now()
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{Booking: b}
		flight, err := s.flights.GetByFlNo(ctx, b.FlNo)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get flight %s: %w", b.FlNo, err)
		}
		if flight != nil {
			view.Flight = flight
			view.TimeUntilFlight = rules.TimeUntilFlight(*flight, now, s.loc)
		}
		view.CanCancel = rules.CanCancel(b, flight, now, s.loc)
		views = append(views, view)
	}
	return views, nil
}

// RequestCancellation applies the cancellation policy and, when allowed,
// flips the booking to Cancelled. The record is never deleted and a
// cancelled booking never transitions again.
func (s *BookingService) RequestCancellation(ctx context.Context, bid string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByBID(ctx, bid)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bid, err)
	}

	flight, err := s.flights.GetByFlNo(ctx, booking.FlNo)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get flight %s: %w", booking.FlNo, err)
	}

	if _, err := rules.Cancel(*booking, flight, s.now(), s.loc); err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateStatus(ctx, bid, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("update booking %s: %w", bid, err)
	}

	s.publish(ctx, "booking_cancelled", *updated)
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	email := ""
	if passenger, err := s.passengers.GetByPID(ctx, booking.PID); err == nil {
		email = passenger.Email
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

var _ BookingUseCase = (*BookingService)(nil)
