package signal

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/core"
)

func (ctl *SignalWSController) handlePeerInfo(sid core.SessionID, data json.RawMessage) error {
	var p peerInfoPayload
	if err := decode(EventPeerInfo, data, &p); err != nil {
		return err
	}
	ctl.Orch.AnnounceDisplayName(sid, p.DisplayName)
	return nil
}
