package domain

import "time"

type Employee struct {
	ID        int64     `json:"id"`
	EID       string    `json:"eid"`
	Name      string    `json:"name"`
	Salary    float64   `json:"salary"`
	Role      string    `json:"role"`
	HireDate  string    `json:"hire_date"` // 2006-01-02
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
