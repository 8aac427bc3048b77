package clinicRepo

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

// MongoClinicRepo is the MongoDB-backed clinic schedule store.
type MongoClinicRepo struct {
	coll *mongo.Collection
}

// NewMongoClinicRepo returns a repository over the clinic_schedule collection.
func NewMongoClinicRepo() *MongoClinicRepo {
	return &MongoClinicRepo{coll: database.GetCollection("clinic_schedule")}
}

// GetDay fetches the operating window for one weekday.
func (r *MongoClinicRepo) GetDay(ctx context.Context, day string) (*models.DayWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var window models.DayWindow
	err := r.coll.FindOne(ctx, bson.M{"day": day}).Decode(&window)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching clinic schedule for %s: %w", day, err)
	}
	return &window, nil
}

// GetWeek fetches all weekday windows keyed by weekday name.
func (r *MongoClinicRepo) GetWeek(ctx context.Context) (models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching clinic schedule: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.DayWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("error decoding clinic schedule: %w", err)
	}

	week := make(models.WeeklySchedule, len(windows))
	for _, w := range windows {
		week[w.Day] = w
	}
	return week, nil
}

// UpsertDay writes the window for one weekday, creating it if missing.
func (r *MongoClinicRepo) UpsertDay(ctx context.Context, window models.DayWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"day": window.Day}, bson.M{"$set": dayWindowDoc(window)}, opts)
	if err != nil {
		return fmt.Errorf("error upserting clinic schedule for %s: %w", window.Day, err)
	}
	return nil
}

// dayWindowDoc builds the stored form of a window explicitly. The struct's
// omitempty break tags would drop empty break fields from a $set, leaving a
// previously configured break in place with no way to remove it.
func dayWindowDoc(w models.DayWindow) bson.M {
	return bson.M{
		"day":            w.Day,
		"isOpen":         w.IsOpen,
		"startTime":      w.StartTime,
		"endTime":        w.EndTime,
		"breakStartTime": w.BreakStartTime,
		"breakEndTime":   w.BreakEndTime,
	}
}
