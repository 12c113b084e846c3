package domain

import "time"

type Aircraft struct {
	ID               int64     `json:"id"`
	AID              string    `json:"aid"`
	Name             string    `json:"name"`
	Range            int       `json:"range_km"`
	Capacity         int       `json:"capacity"`
	Manufacturer     string    `json:"manufacturer"`
	YearManufactured int       `json:"year_manufactured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
