package schemas

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is a catalog entry. Documents are keyed by a human-readable doc id
// ("product_1") while the numeric ID drives display ordering.
type Product struct {
	DocID         string   `json:"-" bson:"_id,omitempty"`
	ID            int      `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Category      string   `json:"category" bson:"category"`
	PriceRental   int      `json:"price_rental" bson:"price_rental"`
	PricePurchase int      `json:"price_purchase" bson:"price_purchase"`
	Description   string   `json:"description" bson:"description"`
	Features      []string `json:"features" bson:"features"`
	ImageURL      string   `json:"image_url" bson:"image_url"`
}

// ParseFeatures tolerates the two encodings found in stored product docs:
// a proper array of strings, or a JSON array serialized as one text field.
func ParseFeatures(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		features := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				features = append(features, s)
			}
		}
		return features
	case string:
		var features []string
		if err := json.Unmarshal([]byte(v), &features); err != nil {
			return []string{}
		}
		return features
	default:
		return []string{}
	}
}

type Review struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Rating    int           `json:"rating" bson:"rating"`
	Content   string        `json:"content" bson:"content"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// Settings is the singleton site configuration document (doc id "site").
type Settings struct {
	CustomPrefix string    `json:"customPrefix" bson:"custom_prefix"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type Stats struct {
	TotalApplications     int64 `json:"totalApplications"`
	PendingApplications   int64 `json:"pendingApplications"`
	CompletedApplications int64 `json:"completedApplications"`
	TotalReviews          int64 `json:"totalReviews"`
}
