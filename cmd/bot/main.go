package main

import (
	"github.com/dxmate/dxmate-bot/internal/app"
	"github.com/dxmate/dxmate-bot/internal/config"
)

func main() {
	app.Go(config.Load())
}
