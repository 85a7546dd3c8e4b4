package game

// Phase represents the main phases of a room
type Phase int

const (
	PhaseStart Phase = iota
	PhaseHinting
	PhaseEndgame
)

func (p Phase) String() string {
	if p == PhaseStart {
		return "start"
	} else if p == PhaseHinting {
		return "hinting"
	} else if p == PhaseEndgame {
		return "endgame"
	}
	return ""
}

// ActiveHint is the hinting phase's inner state: either players are still
// proposing hints, or one hint has been given and is being resolved.
type ActiveHint interface {
	activeHint()
}

// Proposing holds each player's proposed hint, keyed by player number.
type Proposing struct {
	ProposedHints map[int]Hint
}

func (Proposing) activeHint() {}

// Resolving holds the committed hint, the actions received so far and a
// snapshot of every player's active index at the moment the hint was given.
type Resolving struct {
	Hint          Hint
	PlayerActions []ResolveAction
	ActiveIndexes []int
}

func (Resolving) activeHint() {}

// SourceKind discriminates where a hinted letter comes from.
type SourceKind int

const (
	SourcePlayer SourceKind = iota
	SourceDummy
	SourceBonus
	SourceWildcard
)

var sourceKindNames = []string{"player", "dummy", "bonus", "wildcard"}

func (k SourceKind) String() string {
	if k < SourcePlayer || k > SourceWildcard {
		return ""
	}
	return sourceKindNames[k]
}

// ActionKind discriminates a player's response to a hint involving them.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionFlip
	ActionGuess
)

var actionKindNames = []string{"none", "flip", "guess"}

func (k ActionKind) String() string {
	if k < ActionNone || k > ActionGuess {
		return ""
	}
	return actionKindNames[k]
}

// RequiredAction is what a player must do next for the hint being resolved.
type RequiredAction int

const (
	Uninvolved RequiredAction = iota
	Done
	MustGuess
	MustFlip
)

var requiredActionNames = []string{"uninvolved", "done", "must guess", "must flip"}

func (a RequiredAction) String() string {
	if a < Uninvolved || a > MustFlip {
		return ""
	}
	return requiredActionNames[a]
}

// ChoiceKind discriminates a final-guess letter source.
type ChoiceKind int

const (
	ChoiceHandIndex ChoiceKind = iota
	ChoiceWildcard
	ChoiceBonus
)

var choiceKindNames = []string{"hand index", "wildcard", "bonus"}

func (k ChoiceKind) String() string {
	if k < ChoiceHandIndex || k > ChoiceBonus {
		return ""
	}
	return choiceKindNames[k]
}
