package dice

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pigdice-go/internal/dependencies/mocks"
	"github.com/mcoot/pigdice-go/internal/model"
)

type DiceSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceSuite))
}

func (s *DiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

// Die tests

func (s *DiceSuite) TestNewDieRejectsTooFewFaces() {
	_, err := NewDie(1)
	s.ErrorIs(err, model.ErrInvalidFaces)

	_, err = NewDie(0)
	s.ErrorIs(err, model.ErrInvalidFaces)

	_, err = NewDie(2)
	s.NoError(err)
}

func (s *DiceSuite) TestRollShiftsIntoFaceRange() {
	die, _ := NewDie(6)

	s.random.QueueIntn(0, 5, 2)
	s.Equal(1, die.Roll(s.random))
	s.Equal(6, die.Roll(s.random))
	s.Equal(3, die.Roll(s.random))
	s.Equal(3, die.Value())
}

func (s *DiceSuite) TestValueBeforeFirstRoll() {
	die, _ := NewDie(6)
	s.Equal(0, die.Value())
}

func (s *DiceSuite) TestSetFaces() {
	die, _ := NewDie(6)

	s.Require().NoError(die.SetFaces(20))
	s.Equal(20, die.Faces())

	s.ErrorIs(die.SetFaces(1), model.ErrInvalidFaces)
	s.Equal(20, die.Faces())
}

// Hand tests

func (s *DiceSuite) TestNewHandRejectsNoDice() {
	_, err := NewHand(0, 6)
	s.ErrorIs(err, model.ErrNoDice)

	_, err = NewHand(-1, 6)
	s.ErrorIs(err, model.ErrNoDice)
}

func (s *DiceSuite) TestNewHandValidatesFaces() {
	_, err := NewHand(2, 1)
	s.ErrorIs(err, model.ErrInvalidFaces)
}

func (s *DiceSuite) TestHandRollsEveryDie() {
	hand, _ := NewHand(3, 6)

	s.random.QueueIntn(1, 3, 5)
	values := hand.Roll(s.random)

	s.Equal([]int{2, 4, 6}, values)
	s.Equal([]int{2, 4, 6}, hand.Values())
	s.Equal(12, hand.Total())
	s.Equal(3, hand.Size())
}

func (s *DiceSuite) TestAnyOneAndDoubleOnes() {
	hand, _ := NewHand(2, 6)

	s.random.QueueIntn(0, 3)
	hand.Roll(s.random)
	s.True(hand.AnyOne())
	s.False(hand.DoubleOnes())

	s.random.Reset()
	s.random.QueueIntn(0, 0)
	hand.Roll(s.random)
	s.True(hand.AnyOne())
	s.True(hand.DoubleOnes())

	s.random.Reset()
	s.random.QueueIntn(2, 4)
	hand.Roll(s.random)
	s.False(hand.AnyOne())
	s.False(hand.DoubleOnes())
}

// Face tests

func (s *DiceSuite) TestFaceGlyphs() {
	s.Equal("⚀", Face(1))
	s.Equal("⚅", Face(6))
	s.Equal("7", Face(7))
	s.Equal("20", Face(20))
}
