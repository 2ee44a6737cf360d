package model

import (
	"strings"

	"github.com/google/uuid"
)

// ContestantID uniquely identifies a contestant within a match
type ContestantID string

// Contestant represents a match participant.
// The name doubles as the ledger key, so changing it mid-match moves
// recorded history along with it.
type Contestant struct {
	ID    ContestantID
	Name  string
	IsBot bool // true for computer-controlled contestants
	Score int  // banked points, never negative
}

// NewContestant creates a contestant with a fresh ID.
// Names are trimmed and must not be empty.
func NewContestant(name string, isBot bool) (*Contestant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Contestant{
		ID:    ContestantID(uuid.NewString()),
		Name:  name,
		IsBot: isBot,
	}, nil
}

// SetName changes the display name, rejecting empty names
func (c *Contestant) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	c.Name = name
	return nil
}

// AddScore banks points. Negative points are rejected and leave the
// score untouched.
func (c *Contestant) AddScore(points int) error {
	if points < 0 {
		return ErrNegativePoints
	}
	c.Score += points
	return nil
}

// ResetScore zeroes the banked score
func (c *Contestant) ResetScore() {
	c.Score = 0
}
