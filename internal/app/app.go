package app

import (
	"context"

	"github.com/humanbelnik/movieshelf/core/internal/config"
	http_cover "github.com/humanbelnik/movieshelf/core/internal/delivery/http/cover"
	http_health "github.com/humanbelnik/movieshelf/core/internal/delivery/http/health"
	http_init "github.com/humanbelnik/movieshelf/core/internal/delivery/http/init"
	http_movie "github.com/humanbelnik/movieshelf/core/internal/delivery/http/movie"
	infra_cloudinary "github.com/humanbelnik/movieshelf/core/internal/infra/cloudinary"
	infra_drive "github.com/humanbelnik/movieshelf/core/internal/infra/drive"
	infra_googleauth "github.com/humanbelnik/movieshelf/core/internal/infra/googleauth"
	infra_sheets_movie "github.com/humanbelnik/movieshelf/core/internal/infra/sheets/movie"
	usecase_cover "github.com/humanbelnik/movieshelf/core/internal/usecase/cover"
	usecase_movie "github.com/humanbelnik/movieshelf/core/internal/usecase/movie"
)

func Go(cfg *config.Config) {
	ctx := context.Background()

	googleConn := infra_googleauth.MustEstablishConn(ctx, cfg.Google)

	movieStore := infra_sheets_movie.New(googleConn.Sheets, cfg.Google.SheetID)
	driveStorage := infra_drive.New(googleConn.Drive, cfg.Google.DriveFolderID)

	// Uploads go to Cloudinary when its three credential fields are all
	// present, to Drive otherwise. Cleanup on record delete runs through
	// every configured backend: covers stored under the other one in a
	// previous deployment must still go away.
	var uploader usecase_cover.Uploader = driveStorage
	cleaners := []usecase_movie.CoverCleaner{driveStorage}
	if cfg.Cloudinary.Enabled() {
		cloudinaryStorage := infra_cloudinary.MustEstablishConn(cfg.Cloudinary)
		uploader = cloudinaryStorage
		cleaners = []usecase_movie.CoverCleaner{cloudinaryStorage, driveStorage}
	}

	movieUC := usecase_movie.New(movieStore, cleaners)
	coverUC := usecase_cover.New(uploader)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_health.New())
	controllerPool.Add(http_movie.New(movieUC))
	controllerPool.Add(http_cover.New(coverUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
