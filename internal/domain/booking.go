package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type CabinClass string

const (
	ClassEconomy  CabinClass = "Economy"
	ClassBusiness CabinClass = "Business"
	ClassFirst    CabinClass = "First"
)

// Valid reports whether c is one of the three known cabin classes. Fare
// computation is defined only over these values, so callers must check
// before pricing.
func (c CabinClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

type Booking struct {
	ID          int64         `json:"id"`
	BID         string        `json:"bid"`
	PID         string        `json:"pid"`
	FlNo        string        `json:"flno"`
	BookingDate string        `json:"booking_date"` // 2006-01-02, date of creation
	SeatNumber  string        `json:"seat_number"`
	Class       CabinClass    `json:"class"`
	Status      BookingStatus `json:"status"`
	PricePaid   float64       `json:"price_paid"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
