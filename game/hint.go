package game

import (
	"math/rand"

	"github.com/pomelomuffin/letterjam/letters"
)

// LetterSource names where a hinted letter comes from. Number is the
// 1-based player or dummy number and is meaningful only for those kinds.
type LetterSource struct {
	Kind   SourceKind
	Number int
}

func PlayerSource(playerNumber int) LetterSource {
	return LetterSource{Kind: SourcePlayer, Number: playerNumber}
}

func DummySource(dummyNumber int) LetterSource {
	return LetterSource{Kind: SourceDummy, Number: dummyNumber}
}

func BonusSource() LetterSource {
	return LetterSource{Kind: SourceBonus}
}

func WildcardSource() LetterSource {
	return LetterSource{Kind: SourceWildcard}
}

// LetterAndSource is one letter of a hint together with its claimed source.
type LetterAndSource struct {
	Letter letters.Letter
	Source LetterSource
}

// Hint is a multiset of sourced letters. List order is display order only.
type Hint struct {
	GivenByPlayer     int
	LettersAndSources []LetterAndSource
}

// SetProposedHint stores or clears one player's proposed hint. A nil hint
// clears the player's proposal.
func SetProposedHint(room HintingRoom, playerName string, hint *Hint) (HintingRoom, error) {
	proposing, ok := room.ActiveHint.(Proposing)
	if !ok {
		return HintingRoom{}, ErrHintInProgress
	}

	idx := findHintingPlayer(room.Players, playerName)
	if idx == -1 {
		return HintingRoom{}, ErrPlayerNotFound
	}

	proposed := cloneProposedHints(proposing.ProposedHints)
	if hint == nil {
		delete(proposed, idx+1)
	} else {
		proposed[idx+1] = *hint
	}

	newRoom := cloneHintingRoom(room)
	newRoom.ActiveHint = Proposing{ProposedHints: proposed}

	return newRoom, nil
}

// GiveHint commits a hint, making it the active hint and moving the room
// into resolution. The whole hint is checked for legality before anything
// changes; an illegal hint leaves the room untouched.
//
// A hint that uses no player letters has nothing for anyone to resolve, so
// it resolves on the spot and the room returns straight to proposing.
func GiveHint(room HintingRoom, hint Hint, rng *rand.Rand) (HintingRoom, error) {
	if _, ok := room.ActiveHint.(Proposing); !ok {
		return HintingRoom{}, ErrHintInProgress
	}
	if hint.GivenByPlayer < 1 || hint.GivenByPlayer > len(room.Players) {
		return HintingRoom{}, ErrPlayerNotFound
	}
	if err := checkHint(room, hint); err != nil {
		return HintingRoom{}, err
	}

	activeIndexes := make([]int, len(room.Players))
	for i, p := range room.Players {
		activeIndexes[i] = p.Hand.ActiveIndex
	}

	newRoom := cloneHintingRoom(room)
	newRoom.Players[hint.GivenByPlayer-1].HintsGiven++
	newRoom.ActiveHint = Resolving{
		Hint:          hint,
		PlayerActions: []ResolveAction{},
		ActiveIndexes: activeIndexes,
	}

	if len(involvedPlayers(hint)) == 0 {
		newRoom = completeResolution(newRoom, rng)
	}

	return newRoom, nil
}
