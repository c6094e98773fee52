package main

import (
	"log"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/app"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
