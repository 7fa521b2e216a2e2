package config

import (
	"Wardrobe-Backend/internal/utils"
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

func ConnectDB(ctx context.Context) (*firestore.Client, error) {
	projectID := utils.GetConfig("GOOGLE_PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("GOOGLE_PROJECT_ID is not set")
	}

	var opts []option.ClientOption
	if credentials := utils.GetConfig("GOOGLE_CREDENTIALS_FILE"); credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	return firestore.NewClient(ctx, projectID, opts...)
}
