package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pigdice-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	path    string
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "scores.json")
	s.storage = New(s.path)
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadScoresMissingFile() {
	scores, err := s.storage.LoadScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(scores)
	s.NotNil(scores)
}

func (s *StorageSuite) TestSaveAndLoadScores() {
	scores := model.ScoreTable{
		"Lulu": {
			TotalPoints: 15,
			Games: []model.GameRecord{
				{Date: "2024-01-01", Points: 10},
				{Date: "2024-01-02", Points: 5},
			},
		},
		"Anastasia": {
			TotalPoints: 7,
			Games:       []model.GameRecord{{Date: "2024-01-03", Points: 7}},
		},
	}

	err := s.storage.SaveScores(s.ctx, scores)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadScores(s.ctx)
	s.Require().NoError(err)
	s.Equal(scores, loaded)
}

func (s *StorageSuite) TestLoadScoresCorruptFileStartsFresh() {
	err := os.WriteFile(s.path, []byte("{not json"), 0o644)
	s.Require().NoError(err)

	scores, err := s.storage.LoadScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(scores)
	s.NotNil(scores)
}

func (s *StorageSuite) TestSaveScoresWireFormat() {
	scores := model.ScoreTable{
		"Lulu": {
			TotalPoints: 12,
			Games:       []model.GameRecord{{Date: "2024-01-01", Points: 12}},
		},
	}
	s.Require().NoError(s.storage.SaveScores(s.ctx, scores))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	var raw map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Require().Contains(raw, "Lulu")
	s.Equal(float64(12), raw["Lulu"]["total_points"])

	games, ok := raw["Lulu"]["games"].([]any)
	s.Require().True(ok)
	s.Require().Len(games, 1)
	game := games[0].(map[string]any)
	s.Equal("2024-01-01", game["date"])
	s.Equal(float64(12), game["points"])
}

func (s *StorageSuite) TestSaveScoresIsPrettyPrinted() {
	scores := model.ScoreTable{
		"Lulu": {TotalPoints: 12, Games: []model.GameRecord{{Date: "2024-01-01", Points: 12}}},
	}
	s.Require().NoError(s.storage.SaveScores(s.ctx, scores))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), "\n    ")
}

func (s *StorageSuite) TestSaveScoresReplacesPreviousContents() {
	first := model.ScoreTable{
		"Lulu": {TotalPoints: 10, Games: []model.GameRecord{{Date: "2024-01-01", Points: 10}}},
	}
	s.Require().NoError(s.storage.SaveScores(s.ctx, first))

	second := model.ScoreTable{}
	s.Require().NoError(s.storage.SaveScores(s.ctx, second))

	loaded, err := s.storage.LoadScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded)
}
