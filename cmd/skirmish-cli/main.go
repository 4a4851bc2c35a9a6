package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	skirmishnet "github.com/shatterloop/skirmish/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  skirmish host [--loadout N] [--port P] [--cards FILE] [--loadouts FILE]")
	fmt.Println("  skirmish join [--loadout N] [--name NAME] [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host    Start a fight server and take the first seat")
	fmt.Println("  join    Connect to a fight server and take the second seat")
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	loadout := fs.Int("loadout", 1, "loadout number to use (from loadouts.yaml)")
	port := fs.String("port", "7777", "TCP port to listen on")
	cardFile := fs.String("cards", "", "path to card library file (default: built-in set)")
	loadoutFile := fs.String("loadouts", "loadouts.yaml", "path to loadouts file")
	name := fs.String("name", "Host", "fighter name")
	fs.Parse(args)

	srv := &skirmishnet.Server{
		Port:        *port,
		CardFile:    *cardFile,
		LoadoutFile: *loadoutFile,
		HostName:    *name,
		HostLoadout: *loadout,
	}

	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	loadout := fs.Int("loadout", 2, "loadout number to use (from loadouts.yaml)")
	addr := fs.String("addr", "localhost:7777", "server address to connect to")
	name := fs.String("name", "Challenger", "fighter name")
	fs.Parse(args)

	if err := skirmishnet.Connect(context.Background(), *addr, *name, *loadout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
