package game

import (
	"math/rand"
	"sort"

	"github.com/pomelomuffin/letterjam/letters"
)

func someRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func readyStartRoom() StartRoom {
	room, _ := NewStartRoom("harry", 3)
	room, _ = AddPlayer(room, "sally")
	room, _ = SetPlayerWord(room, "harry", "cat")
	room, _ = SetPlayerWord(room, "sally", "dog")
	return room
}

// twoPlayerHintingRoom builds a fixed hinting-phase room: harry holds CAT,
// sally holds DOG, both on their first letter.
func twoPlayerHintingRoom() HintingRoom {
	return HintingRoom{
		WordLength: 3,
		Players: []HintingPlayer{
			{Name: "harry", Hand: Hand{Letters: []letters.Letter{'C', 'A', 'T'}, Guesses: make([]letters.Letter, 3)}},
			{Name: "sally", Hand: Hand{Letters: []letters.Letter{'D', 'O', 'G'}, Guesses: make([]letters.Letter, 3)}},
		},
		Dummies: []Dummy{
			{CurrentLetter: 'E', UntilFreeHint: 7},
			{CurrentLetter: 'F', UntilFreeHint: 8},
			{CurrentLetter: 'G', UntilFreeHint: 9},
			{CurrentLetter: 'H', UntilFreeHint: 10},
		},
		Bonuses:        []letters.Letter{},
		HintsRemaining: StartingHints,
		HintLog:        []LogEntry{},
		ActiveHint:     Proposing{ProposedHints: map[int]Hint{}},
	}
}

func twoPlayerEndgameRoom() EndgameRoom {
	return MoveToEndgame(twoPlayerHintingRoom())
}

// lettersInPlay gathers the full multiset of letters across hands, the
// bonus pool and dummy stands, sorted for comparison.
func lettersInPlay(room HintingRoom) []letters.Letter {
	inPlay := []letters.Letter{}
	for _, p := range room.Players {
		inPlay = append(inPlay, p.Hand.Letters...)
	}
	inPlay = append(inPlay, room.Bonuses...)
	for _, d := range room.Dummies {
		inPlay = append(inPlay, d.CurrentLetter)
	}

	sort.Slice(inPlay, func(i, j int) bool { return inPlay[i] < inPlay[j] })

	return inPlay
}
