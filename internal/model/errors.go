package model

import "errors"

// Common errors used across the application
var (
	// Contestant errors
	ErrInvalidName    = errors.New("name must not be empty")
	ErrDuplicateName  = errors.New("name is already taken by the other contestant")
	ErrNegativePoints = errors.New("points must not be negative")

	// Match errors
	ErrInvalidPlayerCount  = errors.New("a match requires exactly two contestants")
	ErrInvalidWinningScore = errors.New("winning score must be positive")
	ErrNoDecisionSource    = errors.New("every contestant needs a decision source")
	ErrMatchOver           = errors.New("match is already over")
	ErrUnknownCommand      = errors.New("unknown command")

	// Strategy errors
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrNoBotContestant   = errors.New("no computer contestant in this match")

	// Dice errors
	ErrInvalidFaces = errors.New("a die needs at least two faces")
	ErrNoDice       = errors.New("a hand needs at least one die")

	// Ledger errors
	ErrPlayerNotFound = errors.New("player not found")
)
