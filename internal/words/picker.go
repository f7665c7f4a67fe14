package words

import (
	"crypto/rand"
	"math/big"
)

// Picker chooses an index in [0, n). n is always > 0 when called.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

// RandomPicker picks uniformly using crypto/rand.
type RandomPicker struct{}

func (RandomPicker) Pick(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// Choose returns one entry of list selected by p, or DefaultRoot when list
// is empty or the chosen entry is blank.
func Choose(list []string, p Picker) string {
	if len(list) == 0 {
		return DefaultRoot
	}
	if p == nil {
		p = RandomPicker{}
	}
	i := p.Pick(len(list))
	if i < 0 || i >= len(list) || list[i] == "" {
		return DefaultRoot
	}
	return list[i]
}
