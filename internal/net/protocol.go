package net

// Message types for the JSON protocol over TCP.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "choose_action"
	State    *FightView `json:"state,omitempty"`
	Playable []int      `json:"playable,omitempty"`

	// For "fight_over"
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified combat event for the client.
type EventView struct {
	Round   int    `json:"round"`
	Entity  string `json:"entity,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// FightView is the fight state from one seat's perspective.
type FightView struct {
	You        FighterView `json:"you"`
	Opponent   FighterView `json:"opponent"`
	Round      int         `json:"round"`
	IsYourTurn bool        `json:"is_your_turn"`
}

// FighterView shows one side of the fight. Hand contents are only
// populated for the viewing seat; the opponent sees counts.
type FighterView struct {
	Name         string       `json:"name"`
	HP           int          `json:"hp"`
	MaxHP        int          `json:"max_hp"`
	Energy       int          `json:"energy"`
	MaxEnergy    int          `json:"max_energy"`
	Hand         []CardView   `json:"hand,omitempty"`
	HandCount    int          `json:"hand_count"`
	DeckCount    int          `json:"deck_count"`
	DiscardCount int          `json:"discard_count"`
	Statuses     []StatusView `json:"statuses,omitempty"`
}

// CardView describes one card in hand.
type CardView struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"`
	Combo       bool   `json:"combo,omitempty"`
}

// StatusView describes one active status effect.
type StatusView struct {
	Kind     string `json:"kind"`
	Potency  int    `json:"potency"`
	Duration int    `json:"duration"` // -1 for the whole fight
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "play"
	HandIndex int `json:"hand_index,omitempty"`

	// For "join" (initial handshake)
	Name    string `json:"name,omitempty"`
	Loadout int    `json:"loadout,omitempty"` // 1-indexed from loadouts.yaml
}
