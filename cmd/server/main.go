// Command server runs the invitation REST API.
//
// Configuration comes from config.yaml (or CONFIG_PATH) and environment
// variables; see internal/config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("run: %v", err)
	}
}
