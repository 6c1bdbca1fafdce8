package database

import (
	"api/utils"
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	MONGO_TIMEOUT = 20 * time.Second

	COLLECTION_APPLICATIONS          = "applications"
	COLLECTION_ARCHIVED_APPLICATIONS = "archived_applications"
	COLLECTION_PRODUCTS              = "products"
	COLLECTION_REVIEWS               = "reviews"
	COLLECTION_POSTS                 = "posts"
	COLLECTION_COMMENTS              = "comments"
	COLLECTION_SETTINGS              = "settings"
	COLLECTION_ADMIN_SESSIONS        = "admin_sessions"

	SETTINGS_DOC_ID = "site"
)

// Connect builds the single client used for the whole process lifetime and
// verifies connectivity before returning it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
