// Package domain contains entity without logic, just meta-data
package domain

import "github.com/google/uuid"

type PeerID string

// Peer is the per-connection record. Lifetime equals the connection.
// displayName is optional: nil until the peer announces one.
type Peer struct {
	ID          PeerID
	displayName *string
}

// NewPeer assigns a fresh connection-scoped id.
func NewPeer() *Peer {
	return &Peer{ID: PeerID(uuid.NewString())}
}

func NewPeerWithID(id PeerID) *Peer {
	return &Peer{ID: id}
}

// DisplayName returns the announced name and whether one was ever set.
func (p *Peer) DisplayName() (string, bool) {
	if p.displayName == nil {
		return "", false
	}
	return *p.displayName, true
}

// SetDisplayName overwrites any prior value. Empty names are kept as-is.
func (p *Peer) SetDisplayName(name string) {
	p.displayName = &name
}

// ClearDisplayName returns the peer to the never-announced state.
func (p *Peer) ClearDisplayName() {
	p.displayName = nil
}

// DisplayNamePtr is the JSON view: nil means never announced.
func (p *Peer) DisplayNamePtr() *string {
	if p.displayName == nil {
		return nil
	}
	name := *p.displayName
	return &name
}
