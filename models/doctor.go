package models

import "time"

// Doctor represents one practitioner in the clinic directory. Available is an
// administrative flag independent of scheduling: a doctor with a full weekly
// schedule can still be disabled for new bookings.
type Doctor struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Specialty string         `bson:"specialty" json:"specialty"`
	Available bool           `bson:"available" json:"available"`
	Schedule  WeeklySchedule `bson:"schedule,omitempty" json:"schedule,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}
