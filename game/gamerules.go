package game

import (
	"fmt"
	"sort"
)

const (
	MinPlayers    = 2
	MaxPlayers    = 6
	StartingHints = 11
)

// dummyCountdowns fixes the dummy stands per player count. Each entry is
// one dummy's starting countdown to a free hint.
var dummyCountdowns = map[int][]int{
	2: {7, 8, 9, 10},
	3: {7, 8, 9},
	4: {8},
	5: {8},
	6: {},
}

// checkHint verifies that every sourced letter in the hint references a
// letter that is actually available right now. It inspects only; the room
// is never touched.
func checkHint(room HintingRoom, hint Hint) error {
	for _, las := range hint.LettersAndSources {
		switch las.Source.Kind {

		case SourceWildcard:
			continue

		case SourceBonus:
			if !containsLetter(room.Bonuses, las.Letter) {
				return fmt.Errorf("%w: bonus %s is not in the pool", ErrIllegalHint, las.Letter)
			}

		case SourceDummy:
			n := las.Source.Number
			if n < 1 || n > len(room.Dummies) {
				return fmt.Errorf("%w: no dummy %d", ErrIllegalHint, n)
			}
			if room.Dummies[n-1].CurrentLetter != las.Letter {
				return fmt.Errorf("%w: dummy %d does not show %s", ErrIllegalHint, n, las.Letter)
			}

		case SourcePlayer:
			n := las.Source.Number
			if n < 1 || n > len(room.Players) {
				return fmt.Errorf("%w: no player %d", ErrIllegalHint, n)
			}
			hand := room.Players[n-1].Hand
			if hand.ActiveIndex >= len(hand.Letters) {
				return fmt.Errorf("%w: player %d has no active letter", ErrIllegalHint, n)
			}
			if hand.Letters[hand.ActiveIndex] != las.Letter {
				return fmt.Errorf("%w: player %d's active letter is not %s", ErrIllegalHint, n, las.Letter)
			}

		default:
			return fmt.Errorf("%w: unknown source kind %d", ErrIllegalHint, las.Source.Kind)
		}
	}

	return nil
}

// involvedPlayers returns the distinct player numbers whose letters the
// hint uses, in ascending order.
func involvedPlayers(hint Hint) []int {
	set := map[int]struct{}{}
	for _, las := range hint.LettersAndSources {
		if las.Source.Kind == SourcePlayer {
			set[las.Source.Number] = struct{}{}
		}
	}

	players := setToIntSlice(set)
	sort.Ints(players)

	return players
}
