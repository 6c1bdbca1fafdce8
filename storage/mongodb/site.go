package mongodb

import (
	"context"
	"errors"
	"sort"
	"time"

	"api/database"
	"api/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// rawProduct defers features decoding: older documents store the list as a
// JSON string instead of an array.
type rawProduct struct {
	DocID         string `bson:"_id,omitempty"`
	ID            int    `bson:"id"`
	Name          string `bson:"name"`
	Category      string `bson:"category"`
	PriceRental   int    `bson:"price_rental"`
	PricePurchase int    `bson:"price_purchase"`
	Description   string `bson:"description"`
	Features      any    `bson:"features"`
	ImageURL      string `bson:"image_url"`
}

func (s *Store) ListProducts(ctx context.Context) ([]schemas.Product, error) {
	cursor, err := s.products().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	raw := []rawProduct{}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	products := make([]schemas.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, schemas.Product{
			DocID:         r.DocID,
			ID:            r.ID,
			Name:          r.Name,
			Category:      r.Category,
			PriceRental:   r.PriceRental,
			PricePurchase: r.PricePurchase,
			Description:   r.Description,
			Features:      schemas.ParseFeatures(r.Features),
			ImageURL:      r.ImageURL,
		})
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *schemas.Product) error {
	_, err := s.products().InsertOne(ctx, product)
	return err
}

func (s *Store) ListReviews(ctx context.Context) ([]schemas.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.reviews().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []schemas.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *Store) CreateReview(ctx context.Context, review *schemas.Review) (string, error) {
	review.ID = bson.NewObjectID()
	review.CreatedAt = time.Now().UTC()

	if _, err := s.reviews().InsertOne(ctx, review); err != nil {
		return "", err
	}

	return review.ID.Hex(), nil
}

// Stats runs the dashboard's count aggregations server side.
func (s *Store) Stats(ctx context.Context) (*schemas.Stats, error) {
	total, err := s.applications().CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	pending, err := s.applications().CountDocuments(ctx, bson.D{{Key: "status", Value: schemas.StatusPending}})
	if err != nil {
		return nil, err
	}

	completed, err := s.applications().CountDocuments(ctx, bson.D{{Key: "status", Value: schemas.StatusCompleted}})
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews().CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	return &schemas.Stats{
		TotalApplications:     total,
		PendingApplications:   pending,
		CompletedApplications: completed,
		TotalReviews:          reviews,
	}, nil
}

type settingsDoc struct {
	ID           string    `bson:"_id"`
	CustomPrefix string    `bson:"custom_prefix"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// GetSettings reads the singleton site document, defaulting to an empty
// prefix when it has never been written.
func (s *Store) GetSettings(ctx context.Context) (*schemas.Settings, error) {
	var doc settingsDoc
	err := s.settings().FindOne(ctx, bson.D{{Key: "_id", Value: database.SETTINGS_DOC_ID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &schemas.Settings{CustomPrefix: ""}, nil
	}
	if err != nil {
		return nil, err
	}

	return &schemas.Settings{CustomPrefix: doc.CustomPrefix, UpdatedAt: doc.UpdatedAt}, nil
}

func (s *Store) UpdateSettings(ctx context.Context, customPrefix string) (*schemas.Settings, error) {
	doc := settingsDoc{
		ID:           database.SETTINGS_DOC_ID,
		CustomPrefix: customPrefix,
		UpdatedAt:    time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	filter := bson.D{{Key: "_id", Value: database.SETTINGS_DOC_ID}}
	if _, err := s.settings().ReplaceOne(ctx, filter, doc, opts); err != nil {
		return nil, err
	}

	return &schemas.Settings{CustomPrefix: doc.CustomPrefix, UpdatedAt: doc.UpdatedAt}, nil
}
