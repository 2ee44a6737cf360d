package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ContestantSuite struct {
	suite.Suite
}

func TestContestantSuite(t *testing.T) {
	suite.Run(t, new(ContestantSuite))
}

func (s *ContestantSuite) TestNewContestantAssignsDistinctIDs() {
	a, err := NewContestant("Lulu", false)
	s.Require().NoError(err)
	b, err := NewContestant("Computer", true)
	s.Require().NoError(err)

	s.NotEmpty(a.ID)
	s.NotEmpty(b.ID)
	s.NotEqual(a.ID, b.ID)
	s.True(b.IsBot)
}

func (s *ContestantSuite) TestNewContestantRejectsEmptyName() {
	_, err := NewContestant("", false)
	s.ErrorIs(err, ErrInvalidName)

	_, err = NewContestant("   ", false)
	s.ErrorIs(err, ErrInvalidName)
}

func (s *ContestantSuite) TestNewContestantTrimsName() {
	c, err := NewContestant("  Lulu  ", false)
	s.Require().NoError(err)
	s.Equal("Lulu", c.Name)
}

func (s *ContestantSuite) TestSetName() {
	c, _ := NewContestant("Lulu", false)

	s.Require().NoError(c.SetName("Anastasia"))
	s.Equal("Anastasia", c.Name)

	s.ErrorIs(c.SetName("  "), ErrInvalidName)
	s.Equal("Anastasia", c.Name)
}

func (s *ContestantSuite) TestAddScoreAccumulates() {
	c, _ := NewContestant("Lulu", false)

	s.Require().NoError(c.AddScore(10))
	s.Require().NoError(c.AddScore(5))
	s.Equal(15, c.Score)
}

func (s *ContestantSuite) TestAddScoreRejectsNegativePoints() {
	c, _ := NewContestant("Lulu", false)
	_ = c.AddScore(10)

	s.ErrorIs(c.AddScore(-3), ErrNegativePoints)
	s.Equal(10, c.Score)
}

func (s *ContestantSuite) TestResetScore() {
	c, _ := NewContestant("Lulu", false)
	_ = c.AddScore(42)

	c.ResetScore()
	s.Equal(0, c.Score)
}
