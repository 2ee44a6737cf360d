package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcoot/pigdice-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ScoreReport:
		o.printScoreReport(v)
	case HistoryReport:
		o.printHistoryReport(v)
	case SimulationReport:
		o.printSimulationReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ScoreReport is the ranked score table, with pre-rendered charts
// for the text format
type ScoreReport struct {
	Players []RankedPlayer `json:"players"`
	Totals  []string       `json:"-"`
	PerGame []string       `json:"-"`
	Key     []string       `json:"-"`
}

// RankedPlayer is one row of the high score table
type RankedPlayer struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
	Games       int    `json:"games"`
}

// HistoryReport is one player's recorded games
type HistoryReport struct {
	Name        string             `json:"name"`
	Games       []model.GameRecord `json:"games"`
	TotalPoints int                `json:"total_points"`
}

// SimulationReport summarises a difficulty comparison run
type SimulationReport struct {
	GamesPerPair int            `json:"games_per_pair"`
	Seed         int64          `json:"seed"`
	Pairings     []PairingWins  `json:"pairings"`
	Wins         map[string]int `json:"wins"`
	Lines        []string       `json:"-"`
}

// PairingWins is the outcome of one difficulty pairing
type PairingWins struct {
	First      string `json:"first"`
	Second     string `json:"second"`
	FirstWins  int    `json:"first_wins"`
	SecondWins int    `json:"second_wins"`
}

func (o *Output) printScoreReport(r ScoreReport) {
	fmt.Println("-- HIGH SCORES (BY TOTAL POINTS) --")
	for _, p := range r.Players {
		fmt.Printf("%d. %s: %d points (%d games)\n", p.Rank, p.Name, p.TotalPoints, p.Games)
	}

	if len(r.Totals) > 0 {
		fmt.Println("\nHistogram (total points):")
		fmt.Println()
		for _, line := range r.Totals {
			fmt.Println(line)
		}
	}

	if len(r.PerGame) > 0 {
		fmt.Println("\nHistogram (per game):")
		fmt.Println()
		for _, line := range r.PerGame {
			fmt.Println(line)
		}
	}

	if len(r.Key) > 0 {
		fmt.Println()
		for _, line := range r.Key {
			fmt.Println(line)
		}
	}
}

func (o *Output) printHistoryReport(h HistoryReport) {
	fmt.Printf("History for %s:\n", h.Name)
	for _, g := range h.Games {
		fmt.Printf("  %s: %d points\n", g.Date, g.Points)
	}
	fmt.Printf("Total: %d points over %d games\n", h.TotalPoints, len(h.Games))
}

func (o *Output) printSimulationReport(r SimulationReport) {
	fmt.Printf("Simulated %d games per pairing (seed %d):\n", r.GamesPerPair, r.Seed)
	for _, line := range r.Lines {
		fmt.Println(line)
	}
}
