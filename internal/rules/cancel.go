package rules

import (
	"fmt"
	"math"
	"time"

	"github.com/rmoulin/skyflight/internal/domain"
)

// CancellationCutoffHours is how long before departure a booking can still
// be cancelled.
const CancellationCutoffHours = 24

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DepartureInstant combines a flight's departure date and time into a single
// instant in the given reference zone.
func DepartureInstant(f domain.Flight, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+"T"+timeLayout, f.DepartureDate+"T"+f.DepartureTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse departure of flight %s: %w", f.FlNo, err)
	}
	return t, nil
}

// CanCancel reports whether the booking may still be cancelled: it must not
// already be cancelled, the flight must be known (a missing flight fails
// closed), and departure must be more than the cutoff away from now.
func CanCancel(b domain.Booking, f *domain.Flight, now time.Time, loc *time.Location) bool {
	if b.Status == domain.BookingStatusCancelled {
		return false
	}
	if f == nil {
		return false
	}
	departure, err := DepartureInstant(*f, loc)
	if err != nil {
		return false
	}
	return departure.Sub(now).Hours() > CancellationCutoffHours
}

// TimeUntilFlight renders the remaining time before departure as the bucket
// shown to the passenger: "Vol passé" once departure is behind now, an hour
// count under 24h, a day count above.
func TimeUntilFlight(f domain.Flight, now time.Time, loc *time.Location) string {
	departure, err := DepartureInstant(f, loc)
	if err != nil {
		return ""
	}
	hours := departure.Sub(now).Hours()
	if hours < 0 {
		return "Vol passé"
	}
	if hours < 24 {
		return fmt.Sprintf("%dh restantes", int(math.Round(hours)))
	}
	days := int(hours / 24)
	if days > 1 {
		return fmt.Sprintf("%d jours restants", days)
	}
	return fmt.Sprintf("%d jour restant", days)
}

// Cancel returns the booking with its status set to Cancelled, all other
// fields untouched. It is the only mutation the rules define and it is
// one-directional: a cancelled booking never transitions again.
func Cancel(b domain.Booking, f *domain.Flight, now time.Time, loc *time.Location) (domain.Booking, error) {
	if !CanCancel(b, f, now, loc) {
		return domain.Booking{}, domain.ErrCancellationNotAllowed
	}
	b.Status = domain.BookingStatusCancelled
	return b, nil
}
