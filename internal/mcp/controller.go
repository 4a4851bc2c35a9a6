package mcp

import (
	"context"

	"github.com/shatterloop/skirmish/internal/engine"
	"github.com/shatterloop/skirmish/internal/log"
	skirmishnet "github.com/shatterloop/skirmish/internal/net"
)

// AgentController implements engine.FighterController by parking each
// decision on the session's pending channel and blocking until an MCP
// tool call answers.
type AgentController struct {
	seat       int
	session    *FightSession
	responseCh chan engine.Action
}

// NewAgentController creates a controller for the given seat.
func NewAgentController(seat int, session *FightSession) *AgentController {
	return &AgentController{
		seat:       seat,
		session:    session,
		responseCh: make(chan engine.Action),
	}
}

// ChooseAction implements engine.FighterController.
func (c *AgentController) ChooseAction(ctx context.Context, f *engine.Fight, seat int, playable []int) (engine.Action, error) {
	c.session.pendingCh <- &PendingDecision{
		Type:     DecisionChooseAction,
		Seat:     c.seat,
		State:    skirmishnet.BuildFightView(f, c.seat, true),
		Playable: playable,
	}
	return <-c.responseCh, nil
}

// Notify implements engine.FighterController. Only the agent controller
// appends events to avoid duplicates.
func (c *AgentController) Notify(ctx context.Context, event log.CombatEvent) error {
	if c.seat == c.session.agentSeat {
		c.session.appendEvent(skirmishnet.EventView{
			Round:   event.Round,
			Entity:  event.Entity,
			Type:    event.Type.String(),
			Card:    event.Card,
			Details: event.Details,
		})
	}
	return nil
}
