package app

import (
	"slices"
	"sync"

	"github.com/dkeye/Rendezvous/internal/core"
)

// GroupHub is the in-process implementation of core.GroupTransport.
// Groups appear on first join and vanish when emptied.
type GroupHub struct {
	mu     sync.RWMutex
	groups map[string][]core.SessionID
}

func NewGroupHub() *GroupHub {
	return &GroupHub{groups: make(map[string][]core.SessionID)}
}

func (h *GroupHub) Join(group string, sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if slices.Contains(h.groups[group], sid) {
		return
	}
	h.groups[group] = append(h.groups[group], sid)
}

func (h *GroupHub) Leave(group string, sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(group, sid)
}

func (h *GroupHub) LeaveAll(sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for group := range h.groups {
		h.leaveLocked(group, sid)
	}
}

func (h *GroupHub) leaveLocked(group string, sid core.SessionID) {
	members := h.groups[group]
	i := slices.Index(members, sid)
	if i < 0 {
		return
	}
	members = slices.Delete(members, i, i+1)
	if len(members) == 0 {
		delete(h.groups, group)
		return
	}
	h.groups[group] = members
}

func (h *GroupHub) Members(group string) []core.SessionID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.groups[group])
}
