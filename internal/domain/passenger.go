package domain

import "time"

type Passenger struct {
	ID             int64     `json:"id"`
	PID            string    `json:"pid"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
	DateOfBirth    string    `json:"date_of_birth"` // 2006-01-02
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
