package main

import (
	"github.com/humanbelnik/movieshelf/core/internal/app"
	"github.com/humanbelnik/movieshelf/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
