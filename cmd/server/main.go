package main

import (
	"context"
	"log"

	"github.com/alumnihub/alumnihub/internal/app"
	"github.com/alumnihub/alumnihub/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
