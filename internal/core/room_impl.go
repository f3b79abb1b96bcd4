package core

import (
	"slices"
	"sync"

	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room with a fixed capacity.
// It never closes adapter-owned resources.
type roomImpl struct {
	room     *domain.Room
	capacity int

	mu      sync.RWMutex
	members []SessionID
}

func NewRoomService(room *domain.Room, capacity int) RoomService {
	return &roomImpl{
		room:     room,
		capacity: capacity,
		members:  make([]SessionID, 0, capacity),
	}
}

func (r *roomImpl) Room() *domain.Room { return r.room }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) Members() []SessionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.members)
}

func (r *roomImpl) Has(sid SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.members, sid)
}

// AddMember is idempotent for an existing member.
func (r *roomImpl) AddMember(sid SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.members, sid) {
		return nil
	}
	if len(r.members) >= r.capacity {
		return ErrRoomFull
	}
	r.members = append(r.members, sid)
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("sid", string(sid)).Msg("member added")
	return nil
}

func (r *roomImpl) RemoveMember(sid SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.members, sid)
	if i < 0 {
		return false
	}
	r.members = slices.Delete(r.members, i, i+1)
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("sid", string(sid)).Msg("member removed")
	return true
}
