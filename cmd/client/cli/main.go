package main

import (
	"context"
	"log"

	"github.com/mindwell/mindwell/internal/client/cli"
	"github.com/mindwell/mindwell/internal/client/config"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
