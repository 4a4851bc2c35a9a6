package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shatterloop/skirmish/internal/content"
	"github.com/shatterloop/skirmish/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	cardFile := flag.String("cards", "", "path to card library file (default: built-in set)")
	loadoutFile := flag.String("loadouts", "loadouts.yaml", "path to loadouts YAML file")
	flag.Parse()

	var lib *content.Library
	var err error
	if *cardFile == "" {
		lib = content.DefaultLibrary()
	} else {
		lib, err = content.LoadLibrary(*cardFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	srv := web.NewServer(lib, *loadoutFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("skirmish web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
