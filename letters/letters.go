package letters

import (
	"errors"
	"math/rand"
	"strings"
)

// Letter is one of the 21 symbols used in the game: the English alphabet
// minus J, Q, V, X and Z.
type Letter rune

// None marks the absence of a letter, e.g. an unset position guess.
const None Letter = 0

// Alphabet holds every valid letter.
var Alphabet = []Letter{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'O', 'P', 'R', 'S', 'T', 'U', 'W', 'Y',
}

var ErrInvalidLetter = errors.New("letter is not part of the alphabet")

// Valid reports whether l is one of the 21 playable letters.
func Valid(l Letter) bool {
	for _, a := range Alphabet {
		if a == l {
			return true
		}
	}
	return false
}

// Draw draws one letter uniformly from the alphabet.
func Draw(rng *rand.Rand) Letter {
	return Alphabet[rng.Intn(len(Alphabet))]
}

// DrawN draws n letters, each uniform and independent.
func DrawN(rng *rand.Rand, n int) []Letter {
	drawn := make([]Letter, n)
	for i := range drawn {
		drawn[i] = Draw(rng)
	}
	return drawn
}

// Shuffle returns a shuffled copy of ls. The input is never mutated.
func Shuffle(rng *rand.Rand, ls []Letter) []Letter {
	shuffled := make([]Letter, len(ls))
	copy(shuffled, ls)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Parse converts a word to its letters, upper-casing as it goes.
// It fails on any symbol outside the alphabet.
func Parse(word string) ([]Letter, error) {
	upper := strings.ToUpper(word)
	parsed := []Letter{}
	for _, r := range upper {
		l := Letter(r)
		if !Valid(l) {
			return nil, ErrInvalidLetter
		}
		parsed = append(parsed, l)
	}
	return parsed, nil
}

func (l Letter) String() string {
	if l == None {
		return ""
	}
	return string(rune(l))
}
