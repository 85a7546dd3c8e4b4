package game

import "errors"

var (
	ErrRoomFull         = errors.New("maximum of 6 players allowed")
	ErrDuplicateName    = errors.New("player name already taken")
	ErrPlayerNotFound   = errors.New("player not found in room")
	ErrInvalidWord      = errors.New("word does not fit the room")
	ErrRoomNotReady     = errors.New("room is not ready to start")
	ErrMissingWord      = errors.New("player has not set a word")
	ErrIllegalHint      = errors.New("hint references an unavailable letter")
	ErrHintInProgress   = errors.New("a hint is already being resolved")
	ErrNoActiveHint     = errors.New("no hint is being resolved")
	ErrCorruptHand      = errors.New("hand has an impossible number of letters")
	ErrNotInvolved      = errors.New("player is not involved in the active hint")
	ErrAlreadyActed     = errors.New("player already responded to the active hint")
	ErrWrongAction      = errors.New("action does not match what the player must do")
	ErrInvalidPosition  = errors.New("letter position out of range")
	ErrAlreadyCommitted = errors.New("final guess is already committed")
	ErrInvalidClaims    = errors.New("final guesses claim letters inconsistently")
)
