package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/google/uuid"

	"github.com/shatterloop/skirmish/internal/content"
	"github.com/shatterloop/skirmish/internal/engine"
	"github.com/shatterloop/skirmish/internal/log"
)

// Server hosts a fight between the local player and one TCP client.
type Server struct {
	Port        string
	CardFile    string // empty = embedded library
	LoadoutFile string
	HostName    string
	HostLoadout int // host's loadout number (1-indexed)
}

func (s *Server) library() (*content.Library, error) {
	if s.CardFile == "" {
		return content.DefaultLibrary(), nil
	}
	return content.LoadLibrary(s.CardFile)
}

// Run starts the server, waits for a client to join, then runs the fight.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for opponent on port %s...\n", s.Port)

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Printf("Opponent connected from %s\n", conn.RemoteAddr())

	// Read the joiner's loadout choice
	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	joinerLoadout := joinMsg.Loadout
	if joinerLoadout == 0 {
		joinerLoadout = 2
	}
	joinerName := joinMsg.Name
	if joinerName == "" {
		joinerName = "Challenger"
	}

	lib, err := s.library()
	if err != nil {
		return fmt.Errorf("load card library: %w", err)
	}
	loadouts, err := content.LoadLoadouts(s.LoadoutFile, lib)
	if err != nil {
		return fmt.Errorf("load loadouts: %w", err)
	}
	hostLo, err := content.LoadoutByNumber(loadouts, s.HostLoadout)
	if err != nil {
		return fmt.Errorf("host loadout: %w", err)
	}
	joinerLo, err := content.LoadoutByNumber(loadouts, joinerLoadout)
	if err != nil {
		return fmt.Errorf("joiner loadout: %w", err)
	}

	hostName := s.HostName
	if hostName == "" {
		hostName = "Host"
	}
	fmt.Printf("Host: %s (%d cards)\n", hostLo.Name, len(hostLo.Cards))
	fmt.Printf("Joiner: %s (%d cards)\n", joinerLo.Name, len(joinerLo.Cards))

	// Pipe for the host's local connection
	hostConn, hostServerConn := net.Pipe()

	// Seat 0 = host, seat 1 = joiner
	hostCtrl := NewNetworkController(hostServerConn)
	joinerCtrl := NewNetworkController(conn)

	fight := engine.NewFight(engine.FightConfig{
		Names:    [2]string{hostName, joinerName},
		IDs:      [2]engine.EntityID{engine.EntityID(uuid.NewString()), engine.EntityID(uuid.NewString())},
		Loadouts: [2][]*engine.Card{hostLo.Cards, joinerLo.Cards},
		Logger:   log.NewTextLogger(os.Stdout),
	}, hostCtrl, joinerCtrl)

	errCh := make(chan error, 2)

	// Host's local REPL
	go func() {
		client := &Client{conn: hostConn}
		errCh <- client.RunREPL(ctx)
	}()

	go func() {
		winner, err := fight.Run(ctx)
		if err != nil {
			errCh <- fmt.Errorf("fight error: %w", err)
			return
		}

		winnerName := ""
		if winner >= 0 {
			winnerName = fight.Fighters[winner].Entity.Name
		}
		_ = joinerCtrl.SendFightOver(winnerName, fight.Result)
		_ = hostCtrl.SendFightOver(winnerName, fight.Result)
		errCh <- nil
	}()

	return <-errCh
}
