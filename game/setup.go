package game

import (
	"errors"
	"math/rand"

	"github.com/pomelomuffin/letterjam/letters"
)

var errWordLength = errors.New("word length must be at least 1")

// NewStartRoom creates a room in the start phase with a single player and a
// fixed word length.
func NewStartRoom(firstPlayerName string, wordLength int) (StartRoom, error) {
	if wordLength < 1 {
		return StartRoom{}, errWordLength
	}

	return StartRoom{
		WordLength: wordLength,
		Players:    []StartPlayer{{Name: firstPlayerName}},
	}, nil
}

// AddPlayer appends a player to an unstarted room. Over-capacity joins and
// duplicate names are rejected.
func AddPlayer(room StartRoom, name string) (StartRoom, error) {
	if len(room.Players) >= MaxPlayers {
		return StartRoom{}, ErrRoomFull
	}
	if findStartPlayer(room.Players, name) != -1 {
		return StartRoom{}, ErrDuplicateName
	}

	newRoom := StartRoom{
		WordLength: room.WordLength,
		Players:    append(cloneStartPlayers(room.Players), StartPlayer{Name: name}),
	}

	return newRoom, nil
}

// RemovePlayer removes a player from an unstarted room by name.
func RemovePlayer(room StartRoom, name string) (StartRoom, error) {
	idx := findStartPlayer(room.Players, name)
	if idx == -1 {
		return StartRoom{}, ErrPlayerNotFound
	}

	players := cloneStartPlayers(room.Players)
	players = append(players[:idx], players[idx+1:]...)

	return StartRoom{WordLength: room.WordLength, Players: players}, nil
}

// SetPlayerWord replaces one player's word. An empty word clears the
// player's choice. An unknown name is a no-op, matching the join flow where
// a departed player's late submission is simply dropped.
func SetPlayerWord(room StartRoom, name, word string) (StartRoom, error) {
	idx := findStartPlayer(room.Players, name)
	if idx == -1 {
		return room, nil
	}

	players := cloneStartPlayers(room.Players)

	if word == "" {
		players[idx].Word = nil
		return StartRoom{WordLength: room.WordLength, Players: players}, nil
	}

	parsed, err := letters.Parse(word)
	if err != nil {
		return StartRoom{}, err
	}
	if len(parsed) != room.WordLength {
		return StartRoom{}, ErrInvalidWord
	}

	players[idx].Word = parsed

	return StartRoom{WordLength: room.WordLength, Players: players}, nil
}

// IsRoomReady reports whether the game can begin: every player has chosen
// a word and the player count is within bounds.
func IsRoomReady(room StartRoom) bool {
	if len(room.Players) < MinPlayers || len(room.Players) > MaxPlayers {
		return false
	}
	for _, p := range room.Players {
		if p.Word == nil {
			return false
		}
	}
	return true
}

// StartGame moves a ready room into the hinting phase. Each player receives
// the previous player's word, shuffled, as their hand; player 1 receives the
// last player's word.
func StartGame(room StartRoom, rng *rand.Rand) (HintingRoom, error) {
	if !IsRoomReady(room) {
		return HintingRoom{}, ErrRoomNotReady
	}

	players := make([]HintingPlayer, len(room.Players))
	for i, p := range room.Players {
		previous := room.Players[(i+len(room.Players)-1)%len(room.Players)]
		if previous.Word == nil {
			return HintingRoom{}, ErrMissingWord
		}

		players[i] = HintingPlayer{
			Name: p.Name,
			Hand: Hand{
				Letters:     letters.Shuffle(rng, previous.Word),
				Guesses:     make([]letters.Letter, room.WordLength),
				ActiveIndex: 0,
			},
		}
	}

	countdowns := dummyCountdowns[len(room.Players)]
	dummies := make([]Dummy, len(countdowns))
	for i, c := range countdowns {
		dummies[i] = Dummy{CurrentLetter: letters.Draw(rng), UntilFreeHint: c}
	}

	return HintingRoom{
		WordLength:     room.WordLength,
		Players:        players,
		Dummies:        dummies,
		Bonuses:        []letters.Letter{},
		HintsRemaining: StartingHints,
		HintLog:        []LogEntry{},
		ActiveHint:     Proposing{ProposedHints: map[int]Hint{}},
	}, nil
}
