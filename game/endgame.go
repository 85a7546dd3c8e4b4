package game

import (
	"fmt"

	"github.com/pomelomuffin/letterjam/letters"
)

// LetterChoice is one letter of a final guess. Index is set for
// ChoiceHandIndex (a position in the player's own hand); Letter is set for
// ChoiceBonus.
type LetterChoice struct {
	Kind   ChoiceKind
	Index  int
	Letter letters.Letter
}

func HandIndexChoice(index int) LetterChoice {
	return LetterChoice{Kind: ChoiceHandIndex, Index: index}
}

func WildcardChoice() LetterChoice {
	return LetterChoice{Kind: ChoiceWildcard}
}

func BonusChoice(letter letters.Letter) LetterChoice {
	return LetterChoice{Kind: ChoiceBonus, Letter: letter}
}

// Available is the set of letter sources one player may still claim for
// their final guess.
type Available struct {
	HandIndexes []int
	Wildcard    bool
	Bonuses     []letters.Letter
}

// MoveToEndgame ends the hinting loop. Hands are cut back to the word
// length, discarding any extra letter, nothing is active any more and no
// hints remain. Dummies, bonuses and the hint log carry over untouched.
func MoveToEndgame(room HintingRoom) EndgameRoom {
	players := make([]EndgamePlayer, len(room.Players))
	for i, p := range room.Players {
		hand := cloneHand(p.Hand)
		hand.Letters = hand.Letters[:room.WordLength]
		hand.ActiveIndex = room.WordLength

		players[i] = EndgamePlayer{
			Name:       p.Name,
			Hand:       hand,
			HintsGiven: p.HintsGiven,
			FinalGuess: []LetterChoice{},
			Committed:  false,
		}
	}

	return EndgameRoom{
		WordLength:     room.WordLength,
		Players:        players,
		Dummies:        cloneDummies(room.Dummies),
		Bonuses:        cloneLetters(room.Bonuses),
		HintsRemaining: 0,
		HintLog:        cloneLog(room.HintLog),
	}
}

// checkClaims replays every player's current final guess and verifies
// global consistency: no own-hand position claimed twice, at most one
// wildcard use in the whole room, no bonus letter claimed more times than
// the pool holds it.
func checkClaims(room EndgameRoom) error {
	wildcardUses := 0
	bonusClaims := map[letters.Letter]int{}

	for _, p := range room.Players {
		ownIndexes := map[int]struct{}{}

		for _, choice := range p.FinalGuess {
			switch choice.Kind {

			case ChoiceHandIndex:
				if _, claimed := ownIndexes[choice.Index]; claimed {
					return fmt.Errorf("%w: %s claims position %d twice", ErrInvalidClaims, p.Name, choice.Index)
				}
				ownIndexes[choice.Index] = struct{}{}

			case ChoiceWildcard:
				wildcardUses++
				if wildcardUses > 1 {
					return fmt.Errorf("%w: the wildcard is claimed more than once", ErrInvalidClaims)
				}

			case ChoiceBonus:
				bonusClaims[choice.Letter]++
				if bonusClaims[choice.Letter] > countLetter(room.Bonuses, choice.Letter) {
					return fmt.Errorf("%w: bonus %s is over-claimed", ErrInvalidClaims, choice.Letter)
				}
			}
		}
	}

	return nil
}

// AvailableLetters computes the letter sources the given player may still
// claim. Legality is re-derived from every player's current guess on each
// call; an inconsistent set of guesses is a fault.
func AvailableLetters(room EndgameRoom, playerNumber int) (Available, error) {
	if playerNumber < 1 || playerNumber > len(room.Players) {
		return Available{}, ErrPlayerNotFound
	}
	if err := checkClaims(room); err != nil {
		return Available{}, err
	}

	player := room.Players[playerNumber-1]

	claimedIndexes := map[int]struct{}{}
	wildcardUsed := false
	bonusClaims := map[letters.Letter]int{}

	for _, p := range room.Players {
		for _, choice := range p.FinalGuess {
			switch choice.Kind {
			case ChoiceHandIndex:
				if p.Name == player.Name {
					claimedIndexes[choice.Index] = struct{}{}
				}
			case ChoiceWildcard:
				wildcardUsed = true
			case ChoiceBonus:
				bonusClaims[choice.Letter]++
			}
		}
	}

	available := Available{HandIndexes: []int{}, Bonuses: []letters.Letter{}}

	for i := 0; i < room.WordLength; i++ {
		if _, claimed := claimedIndexes[i]; !claimed {
			available.HandIndexes = append(available.HandIndexes, i)
		}
	}

	available.Wildcard = !wildcardUsed

	for _, bonus := range room.Bonuses {
		if bonusClaims[bonus] > 0 {
			bonusClaims[bonus]--
			continue
		}
		available.Bonuses = append(available.Bonuses, bonus)
	}

	return available, nil
}

// SetFinalGuess tentatively installs one player's final guess. If the new
// guess conflicts with another player's claims the unchanged room and false
// come back; that is an ordinary outcome and the player simply picks again.
func SetFinalGuess(room EndgameRoom, playerNumber int, guess []LetterChoice) (EndgameRoom, bool, error) {
	if playerNumber < 1 || playerNumber > len(room.Players) {
		return EndgameRoom{}, false, ErrPlayerNotFound
	}
	if room.Players[playerNumber-1].Committed {
		return EndgameRoom{}, false, ErrAlreadyCommitted
	}

	for _, choice := range guess {
		if choice.Kind == ChoiceHandIndex && (choice.Index < 0 || choice.Index >= room.WordLength) {
			return EndgameRoom{}, false, ErrInvalidPosition
		}
		if choice.Kind == ChoiceBonus && !letters.Valid(choice.Letter) {
			return EndgameRoom{}, false, letters.ErrInvalidLetter
		}
	}

	candidate := cloneEndgameRoom(room)
	candidate.Players[playerNumber-1].FinalGuess = cloneChoices(guess)

	if err := checkClaims(candidate); err != nil {
		return room, false, nil
	}

	return candidate, true, nil
}

// CommitFinalGuess locks one player's guess. Whether every player has
// committed, and what happens then, is the caller's concern.
func CommitFinalGuess(room EndgameRoom, playerNumber int) (EndgameRoom, error) {
	if playerNumber < 1 || playerNumber > len(room.Players) {
		return EndgameRoom{}, ErrPlayerNotFound
	}

	newRoom := cloneEndgameRoom(room)
	newRoom.Players[playerNumber-1].Committed = true

	return newRoom, nil
}

func countLetter(ls []letters.Letter, target letters.Letter) int {
	count := 0
	for _, l := range ls {
		if l == target {
			count++
		}
	}
	return count
}
