package main

import (
	"context"
	"log"

	"github.com/avetrov/profilekeeper/internal/cli"
	"github.com/avetrov/profilekeeper/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
