package core

import "github.com/dkeye/Rendezvous/internal/domain"

// PeerSession binds domain.Peer and its transport endpoint.
type PeerSession interface {
	Peer() *domain.Peer
	Signal() SignalConnection
}

type peerSession struct {
	peer *domain.Peer
	conn SignalConnection
}

func NewPeerSession(peer *domain.Peer, conn SignalConnection) PeerSession {
	return &peerSession{peer: peer, conn: conn}
}

func (s *peerSession) Peer() *domain.Peer       { return s.peer }
func (s *peerSession) Signal() SignalConnection { return s.conn }
