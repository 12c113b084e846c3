package wizard

import "github.com/rmoulin/skyflight/internal/domain"

// State of a booking session. Forward order is search, flight_selected,
// passenger_info, confirmed; confirmed is terminal.
type State string

const (
	StateSearch         State = "search"
	StateFlightSelected State = "flight_selected"
	StatePassengerInfo  State = "passenger_info"
	StateConfirmed      State = "confirmed"
)

type SearchCriteria struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"` // 2006-01-02, exact match
}

type PassengerInfo struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"date_of_birth"`
}

// Validate checks that every identity field is present. Format checks beyond
// presence belong to the transport layer's binding rules.
func (i PassengerInfo) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"first_name", i.FirstName},
		{"last_name", i.LastName},
		{"email", i.Email},
		{"phone", i.Phone},
		{"passport_number", i.PassportNumber},
		{"nationality", i.Nationality},
		{"date_of_birth", i.DateOfBirth},
	}
	for _, f := range fields {
		if f.value == "" {
			return domain.NewValidationError(f.name, "required")
		}
	}
	return nil
}

// Session is the wizard's state across requests. It is stored as json in the
// session store under its uuid token.
type Session struct {
	ID           string            `json:"id"`
	State        State             `json:"state"`
	Criteria     SearchCriteria    `json:"criteria"`
	Flight       *domain.Flight    `json:"flight,omitempty"`
	Info         *PassengerInfo    `json:"passenger_info,omitempty"`
	Class        domain.CabinClass `json:"class,omitempty"`
	Confirmation *Confirmation     `json:"confirmation,omitempty"`
}

// Confirmation carries the completed booking with denormalized flight and
// passenger snapshots for the confirmation view.
type Confirmation struct {
	Booking   domain.Booking   `json:"booking"`
	Flight    domain.Flight    `json:"flight"`
	Passenger domain.Passenger `json:"passenger"`
}
