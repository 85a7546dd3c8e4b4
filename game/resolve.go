package game

import (
	"fmt"
	"math/rand"

	"github.com/pomelomuffin/letterjam/letters"
)

// ResolveAction is one involved player's response to the active hint.
// Guess and Actual are set for ActionGuess only: Guess is the letter the
// player believes their extra letter to be, Actual the letter it really is.
type ResolveAction struct {
	Player int
	Kind   ActionKind
	Guess  letters.Letter
	Actual letters.Letter
}

// WhichActionRequired reports what the named player must do for the hint
// currently being resolved.
func WhichActionRequired(room HintingRoom, playerName string) (RequiredAction, error) {
	resolving, ok := room.ActiveHint.(Resolving)
	if !ok {
		return Uninvolved, ErrNoActiveHint
	}

	idx := findHintingPlayer(room.Players, playerName)
	if idx == -1 {
		return Uninvolved, ErrPlayerNotFound
	}

	return requiredActionForNumber(room, resolving, idx+1)
}

func requiredActionForNumber(room HintingRoom, resolving Resolving, playerNumber int) (RequiredAction, error) {
	if !containsInt(involvedPlayers(resolving.Hint), playerNumber) {
		return Uninvolved, nil
	}

	for _, action := range resolving.PlayerActions {
		if action.Player == playerNumber {
			return Done, nil
		}
	}

	hand := room.Players[playerNumber-1].Hand
	switch len(hand.Letters) {
	case room.WordLength:
		return MustFlip, nil
	case room.WordLength + 1:
		return MustGuess, nil
	}

	return Uninvolved, fmt.Errorf("%w: player %d holds %d letters", ErrCorruptHand, playerNumber, len(hand.Letters))
}

// PerformResolveAction records one involved player's response and applies
// its effect to their hand. Once every involved player has responded, the
// hint resolves and the room returns to proposing.
func PerformResolveAction(room HintingRoom, action ResolveAction, rng *rand.Rand) (HintingRoom, error) {
	resolving, ok := room.ActiveHint.(Resolving)
	if !ok {
		return HintingRoom{}, ErrNoActiveHint
	}
	if action.Player < 1 || action.Player > len(room.Players) {
		return HintingRoom{}, ErrPlayerNotFound
	}

	required, err := requiredActionForNumber(room, resolving, action.Player)
	if err != nil {
		return HintingRoom{}, err
	}

	switch required {
	case Uninvolved:
		return HintingRoom{}, ErrNotInvolved
	case Done:
		return HintingRoom{}, ErrAlreadyActed
	case MustGuess:
		if action.Kind != ActionGuess {
			return HintingRoom{}, ErrWrongAction
		}
		if action.Actual != room.Players[action.Player-1].Hand.Letters[room.WordLength] {
			return HintingRoom{}, fmt.Errorf("%w: the extra letter is not %s", ErrWrongAction, action.Actual)
		}
	case MustFlip:
		if action.Kind != ActionFlip && action.Kind != ActionNone {
			return HintingRoom{}, ErrWrongAction
		}
	}

	newRoom := cloneHintingRoom(room)
	hand := &newRoom.Players[action.Player-1].Hand

	switch action.Kind {

	case ActionNone:
		// the player declines; their letter stays exposed

	case ActionFlip:
		wasLastLetter := hand.ActiveIndex == newRoom.WordLength-1
		hand.ActiveIndex++
		if wasLastLetter {
			// Peeking past the end of the word: draw a fresh letter so
			// something is exposed.
			hand.Letters = append(hand.Letters, letters.Draw(rng))
		}

	case ActionGuess:
		if action.Guess == action.Actual {
			newRoom.Bonuses = append(newRoom.Bonuses, action.Guess)
		}
		// Right or wrong, the ambiguous extra letter is spent and replaced.
		hand.Letters = append(hand.Letters[:newRoom.WordLength], letters.Draw(rng))
	}

	newResolving := newRoom.ActiveHint.(Resolving)
	newResolving.PlayerActions = append(newResolving.PlayerActions, action)
	newRoom.ActiveHint = newResolving

	if len(newResolving.PlayerActions) == len(involvedPlayers(newResolving.Hint)) {
		newRoom = completeResolution(newRoom, rng)
	}

	return newRoom, nil
}

// completeResolution closes out the active hint: it logs the hint, pays its
// cost, consumes the bonus and dummy letters it used and returns the room
// to proposing. Consuming a dummy refreshes its letter and ticks its
// countdown; consuming it at countdown 1 grants a free hint.
func completeResolution(room HintingRoom, rng *rand.Rand) HintingRoom {
	resolving := room.ActiveHint.(Resolving)

	entry := LogEntry{
		Hint:          resolving.Hint,
		TotalHints:    len(room.HintLog) + room.HintsRemaining,
		ActiveIndexes: resolving.ActiveIndexes,
		PlayerActions: resolving.PlayerActions,
	}

	room.HintLog = append(room.HintLog, entry)
	room.HintsRemaining--

	for _, las := range resolving.Hint.LettersAndSources {
		switch las.Source.Kind {

		case SourceBonus:
			for i, bonus := range room.Bonuses {
				if bonus == las.Letter {
					room.Bonuses = append(room.Bonuses[:i], room.Bonuses[i+1:]...)
					break
				}
			}

		case SourceDummy:
			dummy := &room.Dummies[las.Source.Number-1]
			if dummy.UntilFreeHint == 1 {
				room.HintsRemaining++
			}
			dummy.UntilFreeHint--
			dummy.CurrentLetter = letters.Draw(rng)
		}
	}

	room.ActiveHint = Proposing{ProposedHints: map[int]Hint{}}

	return room
}

// RecordPositionGuess notes what the named player believes the letter at
// one of their own positions to be. letters.None clears the note.
func RecordPositionGuess(room HintingRoom, playerName string, position int, letter letters.Letter) (HintingRoom, error) {
	idx := findHintingPlayer(room.Players, playerName)
	if idx == -1 {
		return HintingRoom{}, ErrPlayerNotFound
	}
	if position < 0 || position >= room.WordLength {
		return HintingRoom{}, ErrInvalidPosition
	}
	if letter != letters.None && !letters.Valid(letter) {
		return HintingRoom{}, letters.ErrInvalidLetter
	}

	newRoom := cloneHintingRoom(room)
	newRoom.Players[idx].Hand.Guesses[position] = letter

	return newRoom, nil
}
