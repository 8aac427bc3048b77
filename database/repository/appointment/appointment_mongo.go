package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo is the MongoDB-backed appointment repository.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a repository over the appointments collection.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.GetCollection("appointments")}
}

// Create inserts a new appointment document. A duplicate-key error from the
// unique slot index maps to ErrSlotTaken so the service layer can report the
// slot as just taken rather than a storage failure.
func (r *MongoAppointmentRepo) Create(ctx context.Context, apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	apt.Active = apt.Status != models.StatusCancelled
	_, err := r.coll.InsertOne(ctx, apt)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var apt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&apt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &apt, nil
}

// Update replaces an existing appointment document.
func (r *MongoAppointmentRepo) Update(ctx context.Context, apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	apt.Active = apt.Status != models.StatusCancelled
	apt.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": apt.ID}, bson.M{"$set": apt})
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", apt.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets the status of an appointment and keeps the active flag in
// sync (false only for cancelled). Cancelling frees the slot for the unique
// index immediately.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"active":     status != models.StatusCancelled,
		"updated_at": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating appointment status %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns appointments matching the filter, ordered by date and time.
func (r *MongoAppointmentRepo) List(ctx context.Context, f Filter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if f.DoctorID != "" {
		query["doctorId"] = f.DoctorID
	}
	if f.PatientID != "" {
		query["patientId"] = f.PatientID
	}
	if f.Date != "" {
		query["date"] = f.Date
	}
	if f.Status != "" {
		query["status"] = f.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

// ListByDate returns all appointments on one date across doctors.
func (r *MongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.List(ctx, Filter{Date: date})
}
