package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	skirmishmcp "github.com/shatterloop/skirmish/internal/mcp"
)

func main() {
	cards := flag.String("cards", "", "path to card library file (default: built-in set)")
	loadouts := flag.String("loadouts", "loadouts.yaml", "path to loadouts YAML file")
	port := flag.String("port", "7799", "TCP port for human player connection")
	flag.Parse()

	skirmishmcp.SetCardFile(*cards)
	skirmishmcp.SetLoadoutFile(*loadouts)
	skirmishmcp.SetPort(*port)

	s := server.NewMCPServer("skirmish", "1.0.0")
	skirmishmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
