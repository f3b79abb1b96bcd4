package signal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Debug().Str("module", "signal").Msg("writePump channel closed")
				_ = c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(ctl.opts.WriteWait))
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Debug().Err(err).Str("module", "signal").Msg("writePump ping error")
				return
			}
		}
	}
}

// readPump owns the connection lifetime: its exit is the one disconnect.
func (ctl *SignalWSController) readPump(ctx context.Context, sid core.SessionID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		ctl.Orch.Registry.Cancel(sid)
		err := ctl.Dispatcher.Submit(context.Background(), func() {
			ctl.Orch.OnDisconnect(sid)
		})
		if err != nil {
			log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("disconnect not reconciled")
		}
		c.Close()
	}()

	c.conn.SetReadLimit(ctl.opts.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(ctl.opts.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(ctl.opts.pongWait()))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
			}
			return
		}
		if err := ctl.Dispatcher.Submit(ctx, func() { ctl.handleSignal(sid, data) }); err != nil {
			log.Info().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump stopped")
			return
		}
	}
}

// handleSignal runs on the dispatcher goroutine.
func (ctl *SignalWSController) handleSignal(sid core.SessionID, data []byte) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		ctl.reportInvalid(sid, "", fmt.Errorf("%w: %v", ErrInvalidPayload, err))
		return
	}

	var err error
	switch env.Event {
	case EventCreateRoom:
		ctl.handleCreate(sid)
	case EventJoinRoom:
		err = ctl.handleJoin(sid, env.Data)
	case EventGetRoomPeers:
		err = ctl.handleGetPeers(sid, env.Data)
	case EventLeaveRoom:
		err = ctl.handleLeave(sid, env.Data)
	case EventPeerInfo:
		err = ctl.handlePeerInfo(sid, env.Data)
	case EventSignal:
		err = ctl.handleRelay(sid, env.Data)
	case EventChatMessage:
		ctl.handleChat(sid, env.Data)
	case EventPairJoin:
		err = ctl.handlePairJoin(sid, env.Data)
	case EventPairOffer, EventPairAnswer:
		err = ctl.handlePairSDP(sid, env.Event, env.Data)
	case EventPairCandidate:
		err = ctl.handlePairCandidate(sid, env.Data)
	case EventPairLeave:
		err = ctl.handlePairLeave(sid, env.Data)
	default:
		err = invalidf(env.Event, "unknown event")
	}
	if errors.Is(err, ErrInvalidPayload) {
		ctl.reportInvalid(sid, env.Event, err)
	}
}
