package catalogRepo

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

// MongoCatalogRepo is the MongoDB-backed service/promotion catalog.
type MongoCatalogRepo struct {
	services   *mongo.Collection
	promotions *mongo.Collection
}

// NewMongoCatalogRepo returns a repository over the services and promotions
// collections.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{
		services:   database.GetCollection("services"),
		promotions: database.GetCollection("promotions"),
	}
}

// GetServiceByID retrieves one service.
func (r *MongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices returns the full service catalog ordered by name.
func (r *MongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// GetPromotionByID retrieves one promotion.
func (r *MongoCatalogRepo) GetPromotionByID(ctx context.Context, id string) (*models.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var promo models.Promotion
	err := r.promotions.FindOne(ctx, bson.M{"id": id}).Decode(&promo)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching promotion %s: %w", id, err)
	}
	return &promo, nil
}

// ListPromotions returns promotions, optionally only the active ones.
func (r *MongoCatalogRepo) ListPromotions(ctx context.Context, activeOnly bool) ([]models.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}
	cursor, err := r.promotions.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promotions []models.Promotion
	if err := cursor.All(ctx, &promotions); err != nil {
		return nil, fmt.Errorf("error decoding promotions: %w", err)
	}
	return promotions, nil
}
