package letterjam

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/pomelomuffin/letterjam/game"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrVersionConflict = errors.New("room version has moved on")
	ErrStoreFull       = errors.New("room store is at capacity")
)

// RoomStore is the synchronisation boundary around the engine. A caller
// fetches a room's latest state and version, computes a new state with the
// engine's pure functions, then submits it naming the version it started
// from. A submission against a stale version is refused and the caller
// re-fetches and recomputes.
type RoomStore interface {
	Create(state game.Room) (string, int, error)
	Fetch(roomID string, knownVersion int) (game.Room, int, bool, error)
	Submit(roomID string, expectedVersion int, state game.Room) (int, error)
}

type versionedRoom struct {
	state   game.Room
	version int
}

// InMemoryRoomStore maps room id to versioned room state
type InMemoryRoomStore struct {
	mu       sync.Mutex
	rooms    map[string]*versionedRoom
	maxRooms int
	logger   zerolog.Logger
}

// NewInMemoryRoomStore constructs an InMemoryRoomStore
func NewInMemoryRoomStore(cfg Config, logger zerolog.Logger) *InMemoryRoomStore {
	return &InMemoryRoomStore{
		rooms:    map[string]*versionedRoom{},
		maxRooms: cfg.MaxRooms,
		logger:   logger,
	}
}

func NewID() string {
	return uuid.NewV4().String()
}

// Create registers a room at version 1 and returns its id.
func (s *InMemoryRoomStore) Create(state game.Room) (string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxRooms > 0 && len(s.rooms) >= s.maxRooms {
		return "", 0, ErrStoreFull
	}

	roomID := NewID()
	s.rooms[roomID] = &versionedRoom{state: state, version: 1}

	s.logger.Info().
		Str("room", roomID).
		Stringer("phase", state.Phase()).
		Msg("room created")

	return roomID, 1, nil
}

// Fetch returns the room's latest state and version. If the caller's known
// version is already the latest, the third return is false and the state is
// nil — nothing has changed.
func (s *InMemoryRoomStore) Fetch(roomID string, knownVersion int) (game.Room, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, 0, false, ErrRoomNotFound
	}

	if knownVersion == room.version {
		return nil, room.version, false, nil
	}

	return room.state, room.version, true, nil
}

// Submit installs a new state for the room iff the expected version is
// still current.
func (s *InMemoryRoomStore) Submit(roomID string, expectedVersion int, state game.Room) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return 0, ErrRoomNotFound
	}

	if room.version != expectedVersion {
		s.logger.Debug().
			Str("room", roomID).
			Int("expected", expectedVersion).
			Int("current", room.version).
			Msg("stale submission refused")
		return room.version, ErrVersionConflict
	}

	room.state = state
	room.version++

	s.logger.Debug().
		Str("room", roomID).
		Int("version", room.version).
		Stringer("phase", state.Phase()).
		Msg("room state accepted")

	return room.version, nil
}

// Delete discards a room once the external layer is done with it.
func (s *InMemoryRoomStore) Delete(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; ok {
		delete(s.rooms, roomID)
		s.logger.Info().Str("room", roomID).Msg("room discarded")
	}
}
