package histogram

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pigdice-go/internal/model"
)

type HistogramSuite struct {
	suite.Suite
}

func TestHistogramSuite(t *testing.T) {
	suite.Run(t, new(HistogramSuite))
}

func (s *HistogramSuite) players() []model.PlayerScores {
	return []model.PlayerScores{
		{
			Name: "Ayisha",
			Stats: model.LedgerEntry{
				TotalPoints: 10,
				Games: []model.GameRecord{
					{Date: "2025-01-01", Points: 5},
					{Date: "2025-01-02", Points: 5},
				},
			},
		},
		{
			Name: "Lulu",
			Stats: model.LedgerEntry{
				TotalPoints: 15,
				Games: []model.GameRecord{
					{Date: "2025-01-01", Points: 7},
					{Date: "2025-01-02", Points: 8},
				},
			},
		},
	}
}

func (s *HistogramSuite) TestTotals_RendersBarPerPlayer() {
	lines := New(1).Totals(s.players())

	s.Equal([]string{
		"   Ayisha    |   10   | **********",
		"    Lulu     |   15   | ***************",
	}, lines)
}

func (s *HistogramSuite) TestTotals_ScalesBars() {
	lines := New(5).Totals(s.players())

	s.Require().Len(lines, 2)
	s.Equal("   Ayisha    |   10   | **", lines[0])
	s.Equal("    Lulu     |   15   | ***", lines[1])
}

func (s *HistogramSuite) TestTotals_EmptyInput() {
	s.Empty(New(1).Totals(nil))
}

func (s *HistogramSuite) TestPerGame_RendersDatedLineForEachGame() {
	lines := New(1).PerGame(s.players())

	s.Equal([]string{
		"   Ayisha    |   5    | ***** (2025-01-01)",
		"   Ayisha    |   5    | ***** (2025-01-02)",
		"    Lulu     |   7    | ******* (2025-01-01)",
		"    Lulu     |   8    | ******** (2025-01-02)",
	}, lines)
}

func (s *HistogramSuite) TestPerGame_ScalesBars() {
	lines := New(5).PerGame(s.players())

	s.Require().Len(lines, 4)
	s.Equal("   Ayisha    |   5    | * (2025-01-01)", lines[0])
}

func (s *HistogramSuite) TestPerGame_EmptyInput() {
	s.Empty(New(1).PerGame(nil))
}

func (s *HistogramSuite) TestKey_DescribesScale() {
	s.Equal([]string{
		"------------ KEY ------------",
		"*  | Bar represents points scored",
		"Note: bar length scaled by 5 points per *",
	}, New(5).Key())
}

func (s *HistogramSuite) TestNegativePointsRenderNoBar() {
	lines := New(1).Totals([]model.PlayerScores{
		{Name: "Negative", Stats: model.LedgerEntry{TotalPoints: -5}},
	})

	s.Require().Len(lines, 1)
	s.Equal("  Negative   |   -5   | ", lines[0])
}

func (s *HistogramSuite) TestNew_ClampsScaleToOne() {
	lines := New(0).Totals([]model.PlayerScores{
		{Name: "Zero", Stats: model.LedgerEntry{TotalPoints: 3}},
	})

	s.Require().Len(lines, 1)
	s.Equal("    Zero     |   3    | ***", lines[0])
}

func (s *HistogramSuite) TestCenter_PadsRightOnUnevenGap() {
	s.Equal(" ab  ", center("ab", 5))
	s.Equal("abcdef", center("abcdef", 5))
}
