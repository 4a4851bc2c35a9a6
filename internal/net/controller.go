package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/shatterloop/skirmish/internal/engine"
	"github.com/shatterloop/skirmish/internal/log"
)

// NetworkController implements engine.FighterController over a TCP
// connection.
type NetworkController struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
	mu   sync.Mutex
}

// NewNetworkController creates a controller for the given connection.
func NewNetworkController(conn net.Conn) *NetworkController {
	return &NetworkController{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
	}
}

// BuildFightView creates a FightView from the given seat's perspective.
func BuildFightView(f *engine.Fight, seat int, yourTurn bool) *FightView {
	return &FightView{
		You:        buildFighterView(f.Fighters[seat], true),
		Opponent:   buildFighterView(f.Fighters[1-seat], false),
		Round:      f.Combat.Round(),
		IsYourTurn: yourTurn,
	}
}

func buildFighterView(ft *engine.Fighter, isOwner bool) FighterView {
	e := ft.Entity
	fv := FighterView{
		Name:         e.Name,
		HP:           e.Health,
		MaxHP:        e.MaxHealth,
		Energy:       e.Energy,
		MaxEnergy:    e.MaxEnergy,
		HandCount:    len(ft.Hand),
		DeckCount:    len(ft.Deck),
		DiscardCount: len(ft.Discard),
	}
	if isOwner {
		for i, card := range ft.Hand {
			fv.Hand = append(fv.Hand, CardView{
				Index:       i,
				Name:        card.Name,
				Description: card.Description,
				Type:        card.Type.String(),
				Cost:        card.Cost,
				Combo:       card.IsCombo,
			})
		}
	}
	for _, se := range e.Statuses.Snapshot() {
		fv.Statuses = append(fv.Statuses, StatusView{
			Kind:     se.Kind.String(),
			Potency:  se.Potency,
			Duration: se.Duration,
		})
	}
	return fv
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseAction implements engine.FighterController.
func (nc *NetworkController) ChooseAction(ctx context.Context, f *engine.Fight, seat int, playable []int) (engine.Action, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{
		Type:     "choose_action",
		State:    BuildFightView(f, seat, true),
		Playable: playable,
	}
	if err := nc.send(msg); err != nil {
		return engine.Action{}, fmt.Errorf("send choose_action: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return engine.Action{}, fmt.Errorf("recv action: %w", err)
	}
	if resp.Type == "end_turn" {
		return engine.Action{Type: engine.ActionEndTurn}, nil
	}
	return engine.Action{Type: engine.ActionPlayCard, HandIndex: resp.HandIndex}, nil
}

// Notify implements engine.FighterController.
func (nc *NetworkController) Notify(ctx context.Context, event log.CombatEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{
		Type: "notify",
		Event: &EventView{
			Round:   event.Round,
			Entity:  event.Entity,
			Type:    event.Type.String(),
			Card:    event.Card,
			Details: event.Details,
		},
	}
	return nc.send(msg)
}

// SendFightOver sends a fight_over message to the client.
func (nc *NetworkController) SendFightOver(winner, result string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "fight_over", Winner: winner, Result: result})
}
