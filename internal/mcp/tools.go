package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shatterloop/skirmish/internal/engine"
	skirmishnet "github.com/shatterloop/skirmish/internal/net"
)

// activeSession is the singleton fight session (one per stdio process).
var activeSession *FightSession

// Paths and port, set by main before serving.
var (
	cardFile    string
	loadoutFile string
	port        string
)

// SetCardFile sets the path to the card library YAML file. Empty uses
// the embedded library.
func SetCardFile(path string) {
	cardFile = path
}

// SetLoadoutFile sets the path to the loadouts YAML file.
func SetLoadoutFile(path string) {
	loadoutFile = path
}

// SetPort sets the TCP port for the human player connection.
func SetPort(p string) {
	port = p
}

// RegisterTools adds all fight tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startFightTool(), handleStartFight)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(getFightStateTool(), handleGetFightState)
}

// --- Tool definitions ---

func startFightTool() mcp.Tool {
	return mcp.NewTool("start_fight",
		mcp.WithDescription("Start a new skirmish card fight. Returns the initial state and first pending decision. "+
			"The human player connects via `skirmish join --addr localhost:<port> --loadout N` in a separate terminal. "+
			"This call blocks until the human connects."),
		mcp.WithNumber("agent_loadout", mcp.Required(), mcp.Description("Loadout number for the agent (1-indexed from loadouts.yaml)")),
		mcp.WithNumber("agent_seat", mcp.Required(), mcp.Description("Which seat the agent takes: 0 = goes first, 1 = goes second")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from the agent's hand. Use this when the pending decision is 'choose_action'. "+
			"Only indices listed in the pending 'playable' list are affordable."),
		mcp.WithNumber("hand_index", mcp.Required(), mcp.Description("0-based index into the agent's hand")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End the agent's turn without playing another card. Use this when the pending decision is 'choose_action'."),
	)
}

func getFightStateTool() mcp.Tool {
	return mcp.NewTool("get_fight_state",
		mcp.WithDescription("Get the current fight state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartFight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A fight is already running. Only one fight at a time is supported."), nil
	}

	agentLoadout := request.GetInt("agent_loadout", 0)
	agentSeat := request.GetInt("agent_seat", 0)

	if agentLoadout < 1 {
		return mcp.NewToolResultError("agent_loadout must be >= 1"), nil
	}
	if agentSeat != 0 && agentSeat != 1 {
		return mcp.NewToolResultError("agent_seat must be 0 or 1"), nil
	}

	sess, err := NewFightSession(cardFile, loadoutFile, agentLoadout, agentSeat, port)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start fight: %v", err), nil
	}
	activeSession = sess

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	resp.Port = port

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

// agentPending validates that the pending decision belongs to the agent
// and is an action choice. Returns an error result string when not.
func agentPending() (*FightSession, *PendingDecision, string) {
	if activeSession == nil {
		return nil, nil, "No fight is running. Use start_fight first."
	}
	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return nil, nil, "No pending decision."
	}
	if pending.Type != DecisionChooseAction {
		return nil, nil, "The fight is over. Use start_fight to begin a new one."
	}
	if pending.Seat != sess.agentSeat {
		return nil, nil, "Waiting for the human player to respond via their terminal."
	}
	return sess, pending, ""
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, pending, errMsg := agentPending()
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	index := request.GetInt("hand_index", -1)
	valid := false
	for _, i := range pending.Playable {
		if i == index {
			valid = true
			break
		}
	}
	if !valid {
		return mcp.NewToolResultErrorf("hand_index %d is not playable. Playable indices: %v.", index, pending.Playable), nil
	}

	sess.agentCtrl.responseCh <- engine.Action{Type: engine.ActionPlayCard, HandIndex: index}

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	if resp.FightOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, _, errMsg := agentPending()
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	sess.agentCtrl.responseCh <- engine.Action{Type: engine.ActionEndTurn}

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	if resp.FightOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetFightState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}

	sess := activeSession
	events := sess.drainEvents()

	sess.mu.Lock()
	fightOver := sess.fightOver
	winner := sess.winner
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		Events:    events,
		FightOver: fightOver,
		Result:    result,
	}
	if resp.Events == nil {
		resp.Events = []skirmishnet.EventView{}
	}
	if fightOver && winner >= 0 {
		resp.Winner = sess.fight.Fighters[winner].Entity.Name
	}
	if sess.currentPending != nil {
		resp.State = sess.currentPending.State
		if !fightOver {
			resp.Pending = &PendingView{
				Type:     sess.currentPending.Type,
				ForSeat:  sess.seatLabel(sess.currentPending.Seat),
				Playable: sess.currentPending.Playable,
			}
		}
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}
