package game

import (
	"github.com/pomelomuffin/letterjam/letters"
)

// Room is a room in exactly one phase of its life. The concrete types are
// StartRoom, HintingRoom and EndgameRoom; a room only ever moves forwards
// through them.
type Room interface {
	Phase() Phase
	room()
}

// StartPlayer is a player waiting in an unstarted room. Word is nil until
// the player has chosen one.
type StartPlayer struct {
	Name string
	Word []letters.Letter
}

// StartRoom is a room gathering players before the game begins.
type StartRoom struct {
	WordLength int
	Players    []StartPlayer
}

func (StartRoom) Phase() Phase { return PhaseStart }
func (StartRoom) room()        {}

// Hand is a player's row of letters. Letters has exactly WordLength entries,
// or WordLength+1 while an unresolved guess letter is in play. Guesses holds
// the player's own recorded guess per position, letters.None where they have
// not recorded one. ActiveIndex points at the currently exposed letter and
// equals len(Letters) when nothing is active.
type Hand struct {
	Letters     []letters.Letter
	Guesses     []letters.Letter
	ActiveIndex int
}

// HintingPlayer is a player in the hinting phase.
type HintingPlayer struct {
	Name       string
	Hand       Hand
	HintsGiven int
}

// Dummy is a shared, playerless letter stand usable as a hint source.
// UntilFreeHint counts down each time the dummy is consumed; consuming it
// at 1 grants a free hint.
type Dummy struct {
	CurrentLetter letters.Letter
	UntilFreeHint int
}

// HintingRoom is a room in the main hinting/resolving loop.
type HintingRoom struct {
	WordLength     int
	Players        []HintingPlayer
	Dummies        []Dummy
	Bonuses        []letters.Letter
	HintsRemaining int
	HintLog        []LogEntry
	ActiveHint     ActiveHint
}

func (HintingRoom) Phase() Phase { return PhaseHinting }
func (HintingRoom) room()        {}

// EndgamePlayer is a player assembling their final word guess.
type EndgamePlayer struct {
	Name       string
	Hand       Hand
	HintsGiven int
	FinalGuess []LetterChoice
	Committed  bool
}

// EndgameRoom is a room after hinting has finished. HintsRemaining is
// always 0 here.
type EndgameRoom struct {
	WordLength     int
	Players        []EndgamePlayer
	Dummies        []Dummy
	Bonuses        []letters.Letter
	HintsRemaining int
	HintLog        []LogEntry
}

func (EndgameRoom) Phase() Phase { return PhaseEndgame }
func (EndgameRoom) room()        {}

// LogEntry records one fully resolved hint. TotalHints is the hint budget
// as it stood when the hint resolved, before the hint's own cost.
type LogEntry struct {
	Hint          Hint
	TotalHints    int
	ActiveIndexes []int
	PlayerActions []ResolveAction
}
