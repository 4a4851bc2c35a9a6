package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a fight server and provides a terminal REPL.
type Client struct {
	conn net.Conn
}

// Connect connects to a server, sends the loadout choice, and runs the
// REPL.
func Connect(ctx context.Context, addr, name string, loadout int) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", Name: name, Loadout: loadout}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Println("Connected! Waiting for the fight to start...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "choose_action":
			c.renderState(msg.State)
			resp := c.readAction(reader, msg.State, msg.Playable)
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("send action: %w", err)
			}

		case "fight_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			fmt.Println("          FIGHT OVER")
			fmt.Println("═══════════════════════════════════")
			fmt.Println(msg.Result)
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger
	entity := ev.Entity
	for len(entity) < 12 {
		entity += " "
	}
	fmt.Printf("R%-2d %s| %s\n", ev.Round, entity, ev.Details)
}

func (c *Client) renderState(sv *FightView) {
	if sv == nil {
		return
	}

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")

	opp := sv.Opponent
	fmt.Printf("║  %s  HP: %d/%d  Hand: %d  Deck: %d  Discard: %d\n",
		opp.Name, opp.HP, opp.MaxHP, opp.HandCount, opp.DeckCount, opp.DiscardCount)
	if line := formatStatuses(opp.Statuses); line != "" {
		fmt.Printf("║    %s\n", line)
	}

	fmt.Println("║──────────────────────────────────────────────────────")

	you := sv.You
	fmt.Printf("║  %s  HP: %d/%d  Energy: %d/%d  Deck: %d  Discard: %d\n",
		you.Name, you.HP, you.MaxHP, you.Energy, you.MaxEnergy, you.DeckCount, you.DiscardCount)
	if line := formatStatuses(you.Statuses); line != "" {
		fmt.Printf("║    %s\n", line)
	}
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	fmt.Printf("Round %d\n", sv.Round)

	if len(you.Hand) > 0 {
		fmt.Println("\nHand:")
		for _, cv := range you.Hand {
			combo := ""
			if cv.Combo {
				combo = " [combo]"
			}
			fmt.Printf("  %d) %s (%s, %d energy)%s — %s\n",
				cv.Index+1, cv.Name, cv.Type, cv.Cost, combo, cv.Description)
		}
	}
}

func formatStatuses(statuses []StatusView) string {
	var parts []string
	for _, sv := range statuses {
		if sv.Duration < 0 {
			parts = append(parts, fmt.Sprintf("%s %d (fight)", sv.Kind, sv.Potency))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d (%dt)", sv.Kind, sv.Potency, sv.Duration))
		}
	}
	return strings.Join(parts, ", ")
}

// readAction prompts for a hand index or "e" to end the turn.
func (c *Client) readAction(reader *bufio.Reader, sv *FightView, playable []int) ClientMessage {
	playableSet := make(map[int]bool, len(playable))
	for _, i := range playable {
		playableSet[i] = true
	}

	for {
		fmt.Print("\nPlay a card (number) or end turn (e) > ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(strings.ToLower(line))

		if line == "e" || line == "end" {
			return ClientMessage{Type: "end_turn"}
		}
		n, err := strconv.Atoi(line)
		if err != nil || sv == nil || n < 1 || n > len(sv.You.Hand) {
			fmt.Println("Enter a card number or e")
			continue
		}
		idx := n - 1
		if !playableSet[idx] {
			fmt.Println("Not enough energy for that card")
			continue
		}
		return ClientMessage{Type: "play", HandIndex: idx}
	}
}
