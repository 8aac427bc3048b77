package models

import "time"

// Service represents one bookable procedure from the clinic catalog.
// DurationMinutes is authoritative when set; Duration keeps the legacy
// free-text form (e.g. "45 mins") still present on older records.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Duration        string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Promotion is a priced bundle of services. When DurationMinutes is set it
// replaces the summed duration of the component services: bundles are timed
// as a unit.
type Promotion struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	ServiceIDs      []string  `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	DurationMinutes int       `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`
	PromoPrice      float64   `bson:"promoPrice,omitempty" json:"promoPrice,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	StartDate       string    `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         string    `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
