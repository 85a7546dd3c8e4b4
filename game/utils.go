package game

import "github.com/pomelomuffin/letterjam/letters"

func setToIntSlice(set map[int]struct{}) []int {
	s := []int{}
	for key := range set {
		s = append(s, key)
	}
	return s
}

func containsLetter(ls []letters.Letter, target letters.Letter) bool {
	for _, l := range ls {
		if l == target {
			return true
		}
	}
	return false
}

func containsInt(s []int, target int) bool {
	for _, v := range s {
		if v == target {
			return true
		}
	}
	return false
}

func cloneLetters(ls []letters.Letter) []letters.Letter {
	if ls == nil {
		return nil
	}
	cloned := make([]letters.Letter, len(ls))
	copy(cloned, ls)
	return cloned
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	cloned := make([]int, len(s))
	copy(cloned, s)
	return cloned
}

func cloneHand(h Hand) Hand {
	return Hand{
		Letters:     cloneLetters(h.Letters),
		Guesses:     cloneLetters(h.Guesses),
		ActiveIndex: h.ActiveIndex,
	}
}

func cloneStartPlayers(players []StartPlayer) []StartPlayer {
	cloned := make([]StartPlayer, len(players))
	for i, p := range players {
		cloned[i] = StartPlayer{Name: p.Name, Word: cloneLetters(p.Word)}
	}
	return cloned
}

func cloneHintingPlayers(players []HintingPlayer) []HintingPlayer {
	cloned := make([]HintingPlayer, len(players))
	for i, p := range players {
		cloned[i] = HintingPlayer{Name: p.Name, Hand: cloneHand(p.Hand), HintsGiven: p.HintsGiven}
	}
	return cloned
}

func cloneEndgamePlayers(players []EndgamePlayer) []EndgamePlayer {
	cloned := make([]EndgamePlayer, len(players))
	for i, p := range players {
		cloned[i] = EndgamePlayer{
			Name:       p.Name,
			Hand:       cloneHand(p.Hand),
			HintsGiven: p.HintsGiven,
			FinalGuess: cloneChoices(p.FinalGuess),
			Committed:  p.Committed,
		}
	}
	return cloned
}

func cloneDummies(dummies []Dummy) []Dummy {
	cloned := make([]Dummy, len(dummies))
	copy(cloned, dummies)
	return cloned
}

func cloneActions(actions []ResolveAction) []ResolveAction {
	cloned := make([]ResolveAction, len(actions))
	copy(cloned, actions)
	return cloned
}

func cloneChoices(choices []LetterChoice) []LetterChoice {
	if choices == nil {
		return nil
	}
	cloned := make([]LetterChoice, len(choices))
	copy(cloned, choices)
	return cloned
}

// Log entries are append-only and never edited, so sharing them between
// room values is safe.
func cloneLog(log []LogEntry) []LogEntry {
	cloned := make([]LogEntry, len(log))
	copy(cloned, log)
	return cloned
}

func cloneProposedHints(hints map[int]Hint) map[int]Hint {
	cloned := map[int]Hint{}
	for number, hint := range hints {
		cloned[number] = hint
	}
	return cloned
}

func cloneActiveHint(active ActiveHint) ActiveHint {
	switch a := active.(type) {
	case Proposing:
		return Proposing{ProposedHints: cloneProposedHints(a.ProposedHints)}
	case Resolving:
		return Resolving{
			Hint:          a.Hint,
			PlayerActions: cloneActions(a.PlayerActions),
			ActiveIndexes: cloneInts(a.ActiveIndexes),
		}
	}
	return active
}

func cloneHintingRoom(room HintingRoom) HintingRoom {
	return HintingRoom{
		WordLength:     room.WordLength,
		Players:        cloneHintingPlayers(room.Players),
		Dummies:        cloneDummies(room.Dummies),
		Bonuses:        cloneLetters(room.Bonuses),
		HintsRemaining: room.HintsRemaining,
		HintLog:        cloneLog(room.HintLog),
		ActiveHint:     cloneActiveHint(room.ActiveHint),
	}
}

func cloneEndgameRoom(room EndgameRoom) EndgameRoom {
	return EndgameRoom{
		WordLength:     room.WordLength,
		Players:        cloneEndgamePlayers(room.Players),
		Dummies:        cloneDummies(room.Dummies),
		Bonuses:        cloneLetters(room.Bonuses),
		HintsRemaining: room.HintsRemaining,
		HintLog:        cloneLog(room.HintLog),
	}
}

func findStartPlayer(players []StartPlayer, name string) int {
	for i, p := range players {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func findHintingPlayer(players []HintingPlayer, name string) int {
	for i, p := range players {
		if p.Name == name {
			return i
		}
	}
	return -1
}
