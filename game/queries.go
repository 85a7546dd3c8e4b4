package game

// GetPlayerNumber returns the 1-based player number for a name. Numbers
// come from join order and never change for the life of the room; only
// removing a player before the game starts can invalidate one.
func GetPlayerNumber(room Room, name string) (int, error) {
	for i, n := range PlayerNames(room) {
		if n == name {
			return i + 1, nil
		}
	}
	return 0, ErrPlayerNotFound
}

// PlayerNames lists player names in player-number order.
func PlayerNames(room Room) []string {
	names := []string{}

	switch r := room.(type) {
	case StartRoom:
		for _, p := range r.Players {
			names = append(names, p.Name)
		}
	case HintingRoom:
		for _, p := range r.Players {
			names = append(names, p.Name)
		}
	case EndgameRoom:
		for _, p := range r.Players {
			names = append(names, p.Name)
		}
	}

	return names
}

// PlayersWithOutstandingAction lists the player numbers still to respond to
// the hint being resolved, in ascending order. It is empty while proposing.
func PlayersWithOutstandingAction(room HintingRoom) []int {
	resolving, ok := room.ActiveHint.(Resolving)
	if !ok {
		return []int{}
	}

	acted := map[int]struct{}{}
	for _, action := range resolving.PlayerActions {
		acted[action.Player] = struct{}{}
	}

	outstanding := []int{}
	for _, number := range involvedPlayers(resolving.Hint) {
		if _, ok := acted[number]; !ok {
			outstanding = append(outstanding, number)
		}
	}

	return outstanding
}
