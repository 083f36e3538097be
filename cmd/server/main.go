// actions-web - single-route web service for the CI/CD Actions pipeline
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jredh-dev/actions-web/config"
	"github.com/jredh-dev/actions-web/internal/handlers"
	"github.com/jredh-dev/actions-web/internal/server"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("actions-web %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	s := server.New(handlers.NotFound)
	s.Router.Get("/", handlers.Root)

	addr := cfg.Addr()
	log.Printf("actions-web starting on %s (env=%s)", addr, cfg.Env)
	log.Printf("  Local: http://localhost%s/", addr)

	if err := s.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
