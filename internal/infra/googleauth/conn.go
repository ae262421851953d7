package infra_googleauth

import (
	"context"
	"log"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/humanbelnik/movieshelf/core/internal/config"
)

var scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/drive.file",
}

// Conn bundles the two authenticated Google services the app talks to.
type Conn struct {
	Sheets *sheets.Service
	Drive  *drive.Service
}

func MustEstablishConn(ctx context.Context, cfg config.Google) *Conn {
	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to build google credentials: %v", err)
	}

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		log.Fatalf("failed to create sheets service: %v", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		log.Fatalf("failed to create drive service: %v", err)
	}

	return &Conn{
		Sheets: sheetsSvc,
		Drive:  driveSvc,
	}
}

func clientOptions(ctx context.Context, cfg config.Google) ([]option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		jsonKey, err := ResolveServiceAccountJSON(cfg.ServiceAccountJSON)
		if err != nil {
			return nil, err
		}
		jwt, err := google.JWTConfigFromJSON(jsonKey, scopes...)
		if err != nil {
			return nil, err
		}
		return []option.ClientOption{option.WithHTTPClient(jwt.Client(ctx))}, nil
	}
	return []option.ClientOption{
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(scopes...),
	}, nil
}
