package game

import (
	"testing"

	utils "github.com/pomelomuffin/letterjam/internal"
	"github.com/pomelomuffin/letterjam/letters"
	"github.com/stretchr/testify/assert"
)

func TestMoveToEndgame(t *testing.T) {
	t.Run("cuts hands back and deactivates them", func(t *testing.T) {
		room := twoPlayerHintingRoom()
		room.Players[0].Hand.Letters = append(room.Players[0].Hand.Letters, 'K')
		room.Players[0].Hand.ActiveIndex = 3
		room.Players[0].Hand.Guesses[0] = 'C'

		endgame := MoveToEndgame(room)

		utils.AssertEqual(t, endgame.HintsRemaining, 0)

		for _, p := range endgame.Players {
			utils.AssertEqual(t, len(p.Hand.Letters), 3)
			utils.AssertEqual(t, p.Hand.ActiveIndex, 3)
			utils.AssertEqual(t, len(p.FinalGuess), 0)
			assert.False(t, p.Committed)
		}

		// position guesses carry over
		utils.AssertEqual(t, endgame.Players[0].Hand.Guesses[0], letters.Letter('C'))
	})

	t.Run("dummies, bonuses and log carry over verbatim", func(t *testing.T) {
		room := twoPlayerHintingRoom()
		room.Bonuses = []letters.Letter{'K'}
		room.HintLog = []LogEntry{{TotalHints: StartingHints}}

		endgame := MoveToEndgame(room)

		utils.AssertDeepEqual(t, endgame.Dummies, room.Dummies)
		utils.AssertDeepEqual(t, endgame.Bonuses, room.Bonuses)
		utils.AssertEqual(t, len(endgame.HintLog), 1)
	})
}

func TestAvailableLetters(t *testing.T) {
	t.Run("everything is available at first", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Bonuses = []letters.Letter{'K', 'K'}

		available, err := AvailableLetters(room, 1)
		utils.AssertNoError(t, err)

		assert.Equal(t, []int{0, 1, 2}, available.HandIndexes)
		utils.AssertTrue(t, available.Wildcard)
		assert.Equal(t, []letters.Letter{'K', 'K'}, available.Bonuses)
	})

	t.Run("own claimed positions disappear, other players' do not", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Players[0].FinalGuess = []LetterChoice{HandIndexChoice(1)}
		room.Players[1].FinalGuess = []LetterChoice{HandIndexChoice(0)}

		available, err := AvailableLetters(room, 1)
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{0, 2}, available.HandIndexes)
	})

	t.Run("the wildcard is global", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Players[1].FinalGuess = []LetterChoice{WildcardChoice()}

		available, err := AvailableLetters(room, 1)
		utils.AssertNoError(t, err)
		assert.False(t, available.Wildcard)
	})

	t.Run("bonus letters are counted, not positional", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Bonuses = []letters.Letter{'K', 'K', 'M'}
		room.Players[1].FinalGuess = []LetterChoice{BonusChoice('K')}

		available, err := AvailableLetters(room, 1)
		utils.AssertNoError(t, err)
		assert.Equal(t, []letters.Letter{'K', 'M'}, available.Bonuses)
	})

	t.Run("an inconsistent claim set is a fault", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Players[0].FinalGuess = []LetterChoice{HandIndexChoice(1), HandIndexChoice(1)}

		_, err := AvailableLetters(room, 1)
		utils.AssertErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("unknown player number fails", func(t *testing.T) {
		_, err := AvailableLetters(twoPlayerEndgameRoom(), 3)
		utils.AssertErrorIs(t, err, ErrPlayerNotFound)
	})
}

func TestSetFinalGuess(t *testing.T) {
	t.Run("installs a consistent guess", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		guess := []LetterChoice{HandIndexChoice(0), HandIndexChoice(1), HandIndexChoice(2)}

		room, ok, err := SetFinalGuess(room, 1, guess)
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, ok)
		assert.Equal(t, guess, room.Players[0].FinalGuess)
	})

	t.Run("two players cannot both take the wildcard", func(t *testing.T) {
		room := twoPlayerEndgameRoom()

		room, ok, err := SetFinalGuess(room, 1, []LetterChoice{WildcardChoice()})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, ok)

		rejected, ok, err := SetFinalGuess(room, 2, []LetterChoice{WildcardChoice()})
		utils.AssertNoError(t, err)
		assert.False(t, ok)

		// the first claim stands, the second player's guess is unchanged
		utils.AssertEqual(t, len(rejected.Players[0].FinalGuess), 1)
		utils.AssertEqual(t, len(rejected.Players[1].FinalGuess), 0)
	})

	t.Run("over-claiming bonuses is rejected, not an error", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Bonuses = []letters.Letter{'K'}

		_, ok, err := SetFinalGuess(room, 1, []LetterChoice{BonusChoice('K'), BonusChoice('K')})
		utils.AssertNoError(t, err)
		assert.False(t, ok)
	})

	t.Run("a player may reuse a letter value at two positions", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room.Players[0].Hand.Letters = []letters.Letter{'O', 'T', 'O'}

		_, ok, err := SetFinalGuess(room, 1, []LetterChoice{HandIndexChoice(0), HandIndexChoice(2)})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, ok)
	})

	t.Run("a hand index out of range is a fault", func(t *testing.T) {
		_, _, err := SetFinalGuess(twoPlayerEndgameRoom(), 1, []LetterChoice{HandIndexChoice(3)})
		utils.AssertErrorIs(t, err, ErrInvalidPosition)
	})

	t.Run("a committed guess is locked", func(t *testing.T) {
		room := twoPlayerEndgameRoom()
		room, _, _ = SetFinalGuess(room, 1, []LetterChoice{HandIndexChoice(0)})
		room, err := CommitFinalGuess(room, 1)
		utils.AssertNoError(t, err)

		_, _, err = SetFinalGuess(room, 1, []LetterChoice{HandIndexChoice(1)})
		utils.AssertErrorIs(t, err, ErrAlreadyCommitted)
	})
}

func TestCommitFinalGuess(t *testing.T) {
	t.Run("marks one player committed", func(t *testing.T) {
		room := twoPlayerEndgameRoom()

		room, err := CommitFinalGuess(room, 2)
		utils.AssertNoError(t, err)

		assert.False(t, room.Players[0].Committed)
		utils.AssertTrue(t, room.Players[1].Committed)
	})

	t.Run("unknown player number fails", func(t *testing.T) {
		_, err := CommitFinalGuess(twoPlayerEndgameRoom(), 0)
		utils.AssertErrorIs(t, err, ErrPlayerNotFound)
	})
}
