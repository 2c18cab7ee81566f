package entity

import "github.com/gridplay/tictactoe-engine/internal/engine"

// Session binds one engine lifetime to the identifier a client keeps across
// a suspend/resume cycle.
type Session struct {
	ID    string          `json:"id"`
	State engine.Snapshot `json:"state"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: engine.New().Snapshot(),
	}
}
