package model

// GameRecord is a single completed game in a player's history
type GameRecord struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Points int    `json:"points"`
}

// LedgerEntry is the recorded history for one player name
type LedgerEntry struct {
	TotalPoints int          `json:"total_points"`
	Games       []GameRecord `json:"games"`
}

// ScoreTable maps player names to their recorded history.
// Entries are keyed by display name, which is why renames migrate them.
type ScoreTable map[string]*LedgerEntry

// Clone returns a deep copy of the table
func (t ScoreTable) Clone() ScoreTable {
	clone := make(ScoreTable, len(t))
	for name, entry := range t {
		games := make([]GameRecord, len(entry.Games))
		copy(games, entry.Games)
		clone[name] = &LedgerEntry{
			TotalPoints: entry.TotalPoints,
			Games:       games,
		}
	}
	return clone
}

// PlayerScores pairs a player name with its ledger entry for ranked listings
type PlayerScores struct {
	Name  string
	Stats LedgerEntry
}
