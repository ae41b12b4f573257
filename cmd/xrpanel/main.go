package main

import (
	"log"

	"xrpanel/internal/app"
	"xrpanel/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := app.New(cfg).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
