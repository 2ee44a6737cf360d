package dice

import (
	"strconv"

	"github.com/mcoot/pigdice-go/internal/dependencies/random"
	"github.com/mcoot/pigdice-go/internal/model"
)

// DefaultFaces is the standard die size
const DefaultFaces = 6

// Die is a single die with a configurable number of faces
type Die struct {
	faces int
	value int // last rolled value, 0 before the first roll
}

// NewDie creates a die with the given number of faces
func NewDie(faces int) (*Die, error) {
	if faces < 2 {
		return nil, model.ErrInvalidFaces
	}
	return &Die{faces: faces}, nil
}

// Roll returns a uniform value in [1, faces]
func (d *Die) Roll(rng random.Random) int {
	d.value = rng.Intn(d.faces) + 1
	return d.value
}

// Value returns the last rolled value, or 0 if the die has not been rolled
func (d *Die) Value() int {
	return d.value
}

// Faces returns the number of faces
func (d *Die) Faces() int {
	return d.faces
}

// SetFaces changes the number of faces
func (d *Die) SetFaces(faces int) error {
	if faces < 2 {
		return model.ErrInvalidFaces
	}
	d.faces = faces
	return nil
}

// Hand is a group of dice rolled together
type Hand struct {
	dice   []*Die
	values []int
}

// NewHand creates a hand of count dice, each with the given number of faces
func NewHand(count, faces int) (*Hand, error) {
	if count < 1 {
		return nil, model.ErrNoDice
	}
	dice := make([]*Die, count)
	for i := range dice {
		die, err := NewDie(faces)
		if err != nil {
			return nil, err
		}
		dice[i] = die
	}
	return &Hand{dice: dice}, nil
}

// Roll rolls every die in the hand and returns the values in die order
func (h *Hand) Roll(rng random.Random) []int {
	h.values = make([]int, len(h.dice))
	for i, die := range h.dice {
		h.values[i] = die.Roll(rng)
	}
	return h.values
}

// Values returns the most recent roll
func (h *Hand) Values() []int {
	return h.values
}

// Total returns the sum of the most recent roll
func (h *Hand) Total() int {
	sum := 0
	for _, v := range h.values {
		sum += v
	}
	return sum
}

// AnyOne reports whether any die in the last roll shows a 1
func (h *Hand) AnyOne() bool {
	for _, v := range h.values {
		if v == 1 {
			return true
		}
	}
	return false
}

// DoubleOnes reports whether at least two dice in the last roll show a 1
func (h *Hand) DoubleOnes() bool {
	ones := 0
	for _, v := range h.values {
		if v == 1 {
			ones++
		}
	}
	return ones >= 2
}

// Size returns the number of dice in the hand
func (h *Hand) Size() int {
	return len(h.dice)
}

// Face renders a die value using the Unicode die glyphs for 1-6
// and the plain number for anything larger
func Face(n int) string {
	if n >= 1 && n <= 6 {
		return string(rune(0x2680 + n - 1))
	}
	return strconv.Itoa(n)
}
