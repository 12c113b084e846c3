package domain

import "time"

// Flight keeps departure date and time as separate fields the way they are
// entered and stored; combining them into an instant is the rules package's
// job because it depends on the reference time zone.
type Flight struct {
	ID             int64     `json:"id"`
	FlNo           string    `json:"flno"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Distance       int       `json:"distance"`
	DepartureDate  string    `json:"departure_date"` // 2006-01-02
	DepartureTime  string    `json:"departure_time"` // 15:04
	ArrivalTime    string    `json:"arrival_time"`
	Price          float64   `json:"price"`
	AircraftID     string    `json:"aid"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
