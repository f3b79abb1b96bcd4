package app

import (
	"sort"
	"strings"
	"sync"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultRoomIDLength = 8
	MinRoomIDLength     = 4
	MaxRoomIDLength     = 32
)

// IDGenerator yields candidate room ids. Collisions are retried by the manager.
type IDGenerator func() domain.RoomID

// UUIDPrefix returns a generator of hex tokens cut from a random uuid.
func UUIDPrefix(length int) IDGenerator {
	if length < MinRoomIDLength || length > MaxRoomIDLength {
		length = DefaultRoomIDLength
	}
	return func() domain.RoomID {
		hex := strings.ReplaceAll(uuid.NewString(), "-", "")
		return domain.RoomID(hex[:length])
	}
}

type RoomManagerOption func(*RoomManagerImpl)

func WithIDGenerator(gen IDGenerator) RoomManagerOption {
	return func(m *RoomManagerImpl) { m.newID = gen }
}

// RoomManagerImpl is the registry of primary rooms. A room exists only while
// it has at least one member.
type RoomManagerImpl struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
	newID IDGenerator
}

func NewRoomManager(opts ...RoomManagerOption) *RoomManagerImpl {
	m := &RoomManagerImpl{
		rooms: make(map[domain.RoomID]core.RoomService),
		newID: UUIDPrefix(DefaultRoomIDLength),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateRoom registers a room whose sole member is owner.
func (m *RoomManagerImpl) CreateRoom(owner core.SessionID) core.RoomService {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newID()
	for {
		if _, taken := m.rooms[id]; !taken {
			break
		}
		id = m.newID()
	}
	room := core.NewRoomService(&domain.Room{ID: id}, domain.MaxRoomMembers)
	_ = room.AddMember(owner)
	m.rooms[id] = room
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Str("sid", string(owner)).Msg("room created")
	return room
}

func (m *RoomManagerImpl) GetRoom(id domain.RoomID) (core.RoomService, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[id]
	return room, ok
}

// DeleteIfEmpty drops the room once its last member is gone.
func (m *RoomManagerImpl) DeleteIfEmpty(id domain.RoomID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok || room.MemberCount() > 0 {
		return false
	}
	delete(m.rooms, id)
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room deleted")
	return true
}

// RoomsOf lists every room containing sid, ordered by id.
func (m *RoomManagerImpl) RoomsOf(sid core.SessionID) []core.RoomService {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []core.RoomService
	for _, r := range m.rooms {
		if r.Has(sid) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Room().ID < out[j].Room().ID })
	return out
}

func (m *RoomManagerImpl) List() []core.RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(m.rooms))
	for id, r := range m.rooms {
		out = append(out, core.RoomInfo{ID: id, MemberCount: r.MemberCount()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Reset drops all rooms.
func (m *RoomManagerImpl) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms = make(map[domain.RoomID]core.RoomService)
}
