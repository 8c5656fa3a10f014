package main

import (
	"log"

	"github.com/lmacedo/biblioteca/internal/config"
	"github.com/lmacedo/biblioteca/internal/entrypoint"
)

func main() {
	cfg := config.NewConfig()
	if err := entrypoint.Run(cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
