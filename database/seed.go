package database

import (
	"context"
	"fmt"
	"log/slog"

	"api/schemas"
	"api/storage"
)

// Seed loads the initial product catalog and sample reviews. It is
// idempotent: collections that already hold data are left alone.
func Seed(ctx context.Context, store storage.Store, log *slog.Logger) error {
	products, err := store.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("check products: %w", err)
	}

	if len(products) == 0 {
		for _, product := range seedProducts {
			p := product
			p.DocID = fmt.Sprintf("product_%d", p.ID)
			if err := store.CreateProduct(ctx, &p); err != nil {
				return fmt.Errorf("seed product %d: %w", p.ID, err)
			}
			log.Info("seeded product", "name", p.Name)
		}
	}

	reviews, err := store.ListReviews(ctx)
	if err != nil {
		return fmt.Errorf("check reviews: %w", err)
	}

	if len(reviews) == 0 {
		for _, review := range seedReviews {
			rv := review
			if _, err := store.CreateReview(ctx, &rv); err != nil {
				return fmt.Errorf("seed review: %w", err)
			}
			log.Info("seeded review", "name", rv.Name)
		}
	}

	return nil
}

var seedProducts = []schemas.Product{
	{
		ID:            1,
		Name:          "BEREX Smart Mattress S8+",
		Category:      "Smart mattress",
		PriceRental:   89000,
		PricePurchase: 3200000,
		Description:   "Smart mattress that senses sleeping posture and adjusts for optimal comfort",
		Features:      []string{"Automatic height adjustment", "Sleep analysis", "Smartphone pairing", "Mite care system"},
		ImageURL:      "/images/berex-s8.jpg",
	},
	{
		ID:            2,
		Name:          "BEREX Hybrid 4",
		Category:      "Hybrid mattress",
		PriceRental:   59000,
		PricePurchase: 1800000,
		Description:   "Springs and memory foam combined for comfortable sleep",
		Features:      []string{"Pocket springs", "Memory foam", "High breathability", "Pressure distribution"},
		ImageURL:      "/images/berex-hybrid4.jpg",
	},
	{
		ID:            3,
		Name:          "BEREX Elite",
		Category:      "Premium mattress",
		PriceRental:   69000,
		PricePurchase: 2200000,
		Description:   "Premium materials and engineering for the best sleep experience",
		Features:      []string{"Natural latex", "Antibacterial finish", "Temperature control", "Pressure relief"},
		ImageURL:      "/images/berex-elite.jpg",
	},
}

var seedReviews = []schemas.Review{
	{
		Name:    "Kim Minsu",
		Rating:  5,
		Content: "My asthma improved a lot after the mattress care. They said a huge amount of mites came out. Thank you for doing it free of charge!",
	},
	{
		Name:    "Lee Jieun",
		Rating:  5,
		Content: "I was worried because my child has allergies, but things got much better after the care. The technician kindly explained everything and left a mattress condition report.",
	},
	{
		Name:    "Park Cheolsu",
		Rating:  5,
		Content: "The mattress is ten years old so I was concerned, but after the care it looks like new. Considering switching to one of their products.",
	},
}
