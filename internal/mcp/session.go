package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shatterloop/skirmish/internal/content"
	"github.com/shatterloop/skirmish/internal/engine"
	"github.com/shatterloop/skirmish/internal/log"
	skirmishnet "github.com/shatterloop/skirmish/internal/net"

	stdnet "net"
)

// DecisionType identifies what kind of decision the fight is waiting
// for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionFightOver    DecisionType = "fight_over"
)

// PendingDecision represents a decision the fight is waiting for.
type PendingDecision struct {
	Type     DecisionType           `json:"type"`
	Seat     int                    `json:"seat"`
	State    *skirmishnet.FightView `json:"state"`
	Playable []int                  `json:"playable,omitempty"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events    []skirmishnet.EventView `json:"events"`
	State     *skirmishnet.FightView  `json:"state,omitempty"`
	Pending   *PendingView            `json:"pending,omitempty"`
	FightOver bool                    `json:"fight_over"`
	Winner    string                  `json:"winner,omitempty"`
	Result    string                  `json:"result,omitempty"`
	Port      string                  `json:"port,omitempty"`
}

// PendingView is the pending decision as presented in the tool response
// JSON.
type PendingView struct {
	Type     DecisionType `json:"type"`
	ForSeat  string       `json:"for_seat"` // "agent" or "human"
	Playable []int        `json:"playable,omitempty"`
}

// FightSession holds the state of a single MCP fight session: the agent
// on one seat, a human TCP client on the other.
type FightSession struct {
	fight     *engine.Fight
	agentCtrl *AgentController
	humanCtrl *skirmishnet.NetworkController
	agentSeat int

	listener  stdnet.Listener
	humanConn stdnet.Conn

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu        sync.Mutex
	events    []skirmishnet.EventView
	fightOver bool
	winner    int
	result    string
}

// NewFightSession starts a TCP listener, waits for the human player to
// connect via `skirmish join`, then starts the fight.
func NewFightSession(cardFile, loadoutFile string, agentLoadout, agentSeat int, port string) (*FightSession, error) {
	var lib *content.Library
	var err error
	if cardFile == "" {
		lib = content.DefaultLibrary()
	} else {
		lib, err = content.LoadLibrary(cardFile)
		if err != nil {
			return nil, fmt.Errorf("load card library: %w", err)
		}
	}
	loadouts, err := content.LoadLoadouts(loadoutFile, lib)
	if err != nil {
		return nil, fmt.Errorf("load loadouts: %w", err)
	}
	agentLo, err := content.LoadoutByNumber(loadouts, agentLoadout)
	if err != nil {
		return nil, fmt.Errorf("agent loadout: %w", err)
	}

	// Listener for the human player
	ln, err := stdnet.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen on port %s: %w", port, err)
	}

	// Blocks until the human runs `skirmish join`
	conn, err := ln.Accept()
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("accept: %w", err)
	}

	dec := json.NewDecoder(conn)
	var joinMsg skirmishnet.ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("read join message: %w", err)
	}
	humanLoadout := joinMsg.Loadout
	if humanLoadout == 0 {
		humanLoadout = 2
	}
	humanName := joinMsg.Name
	if humanName == "" {
		humanName = "Human"
	}

	humanLo, err := content.LoadoutByNumber(loadouts, humanLoadout)
	if err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("human loadout: %w", err)
	}

	sess := &FightSession{
		agentSeat: agentSeat,
		pendingCh: make(chan *PendingDecision, 1),
		winner:    -1,
		listener:  ln,
		humanConn: conn,
	}
	sess.agentCtrl = NewAgentController(agentSeat, sess)
	sess.humanCtrl = skirmishnet.NewNetworkController(conn)

	var names [2]string
	var loadoutCards [2][]*engine.Card
	var ctrls [2]engine.FighterController
	names[agentSeat] = "Agent"
	names[1-agentSeat] = humanName
	loadoutCards[agentSeat] = agentLo.Cards
	loadoutCards[1-agentSeat] = humanLo.Cards
	ctrls[agentSeat] = sess.agentCtrl
	ctrls[1-agentSeat] = sess.humanCtrl

	sess.fight = engine.NewFight(engine.FightConfig{
		Names: names,
		IDs: [2]engine.EntityID{
			engine.EntityID(uuid.NewString()),
			engine.EntityID(uuid.NewString()),
		},
		Loadouts: loadoutCards,
		Logger:   log.NewMemoryLogger(),
	}, ctrls[0], ctrls[1])

	go func() {
		winner, err := sess.fight.Run(context.Background())
		result := sess.fight.Result
		if err != nil {
			result = fmt.Sprintf("error: %v", err)
		}

		winnerName := ""
		if winner >= 0 {
			winnerName = sess.fight.Fighters[winner].Entity.Name
		}
		_ = sess.humanCtrl.SendFightOver(winnerName, result)

		sess.humanConn.Close()
		sess.listener.Close()

		sess.mu.Lock()
		sess.fightOver = true
		sess.winner = winner
		sess.result = result
		sess.mu.Unlock()

		sess.pendingCh <- &PendingDecision{
			Type:  DecisionFightOver,
			Seat:  winner,
			State: skirmishnet.BuildFightView(sess.fight, sess.agentSeat, false),
		}
	}()

	return sess, nil
}

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *FightSession) appendEvent(ev skirmishnet.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *FightSession) drainEvents() []skirmishnet.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	return events
}

// waitForPending blocks until the next decision arrives from the fight,
// then builds a ToolResponse with accumulated events plus the pending
// decision.
func (s *FightSession) waitForPending() (*ToolResponse, error) {
	pending := <-s.pendingCh
	s.currentPending = pending

	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  pending.State,
	}
	if resp.Events == nil {
		resp.Events = []skirmishnet.EventView{}
	}

	if pending.Type == DecisionFightOver {
		s.mu.Lock()
		resp.FightOver = true
		if s.winner >= 0 {
			resp.Winner = s.fight.Fighters[s.winner].Entity.Name
		}
		resp.Result = s.result
		s.mu.Unlock()
		return resp, nil
	}

	resp.Pending = &PendingView{
		Type:     pending.Type,
		ForSeat:  s.seatLabel(pending.Seat),
		Playable: pending.Playable,
	}
	return resp, nil
}

// seatLabel returns "agent" or "human" for the given seat.
func (s *FightSession) seatLabel(seat int) string {
	if seat == s.agentSeat {
		return "agent"
	}
	return "human"
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
