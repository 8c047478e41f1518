// Command devstub runs the fake TechieFinder backend with canned data so
// the client can be exercised without the real service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/techiefinder/client/internal/devstub"
	"github.com/techiefinder/client/internal/pkg/config"
	"github.com/techiefinder/client/pkg/logger"
)

func main() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	server := devstub.New(cfg.Stub, log)
	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "devstub: %v\n", err)
		os.Exit(1)
	}
}
