package histogram

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/pigdice-go/internal/model"
)

const (
	nameWidth   = 12
	pointsWidth = 6
)

// Chart renders player scores as text histograms, one star per
// scale points
type Chart struct {
	scale int
}

// New creates a chart with the given scale. Scales below 1 are
// treated as 1.
func New(scale int) *Chart {
	if scale < 1 {
		scale = 1
	}
	return &Chart{scale: scale}
}

// Totals renders one line per player showing their overall total
func (c *Chart) Totals(players []model.PlayerScores) []string {
	lines := make([]string, 0, len(players))
	for _, player := range players {
		lines = append(lines, c.line(player.Name, player.Stats.TotalPoints))
	}
	return lines
}

// PerGame renders one line per recorded game, dated
func (c *Chart) PerGame(players []model.PlayerScores) []string {
	lines := make([]string, 0, len(players))
	for _, player := range players {
		for _, game := range player.Stats.Games {
			line := c.line(player.Name, game.Points)
			lines = append(lines, fmt.Sprintf("%s (%s)", line, game.Date))
		}
	}
	return lines
}

// Key returns the legend explaining the bars
func (c *Chart) Key() []string {
	return []string{
		"------------ KEY ------------",
		"*  | Bar represents points scored",
		fmt.Sprintf("Note: bar length scaled by %d points per *", c.scale),
	}
}

func (c *Chart) line(name string, points int) string {
	bars := points / c.scale
	if bars < 0 {
		bars = 0
	}
	return center(name, nameWidth) + " | " +
		center(strconv.Itoa(points), pointsWidth) + " | " +
		strings.Repeat("*", bars)
}

// center pads s with spaces to width, favouring the right side when
// the padding is uneven
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
