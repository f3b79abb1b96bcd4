package signal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dkeye/Rendezvous/internal/core"
)

func TestEncode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ev   core.Event
		want string
	}{
		{
			name: "with data",
			ev:   core.Event{Name: core.EventRoomCreated, Data: core.RoomCreated{RoomID: "ab12cd34"}},
			want: `{"event":"room-created","data":{"roomId":"ab12cd34"}}`,
		},
		{
			name: "no data",
			ev:   core.Event{Name: core.EventRoomJoined},
			want: `{"event":"room-joined"}`,
		},
		{
			name: "null display name",
			ev: core.Event{Name: core.EventRoomPeers, Data: core.RoomPeers{Peers: []core.RosterEntry{
				{SocketID: "p1"},
			}}},
			want: `{"event":"room-peers","data":{"peers":[{"socketId":"p1","displayName":null}]}}`,
		},
		{
			name: "opaque relay",
			ev:   core.Event{Name: core.EventOffer, Data: core.SDP{SDP: json.RawMessage(`{"type":"offer","sdp":"v=0"}`)}},
			want: `{"event":"webrtc:offer","data":{"sdp":{"type":"offer","sdp":"v=0"}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.ev)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode:\n got  %s\n want %s", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid", raw: `{"roomId":"r1"}`},
		{name: "missing field", raw: `{}`, wantErr: true},
		{name: "empty field", raw: `{"roomId":""}`, wantErr: true},
		{name: "no payload", raw: ``, wantErr: true},
		{name: "wrong shape", raw: `"r1"`, wantErr: true},
		{name: "wrong type", raw: `{"roomId":5}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p roomPayload
			err := decode(EventJoinRoom, json.RawMessage(tt.raw), &p)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPayload) {
					t.Errorf("decode(%s): got %v, want ErrInvalidPayload", tt.raw, err)
				}
				return
			}
			if err != nil || p.RoomID != "r1" {
				t.Errorf("decode(%s): got (%+v, %v)", tt.raw, p, err)
			}
		})
	}
}

func TestDecodeOptionalFields(t *testing.T) {
	t.Parallel()
	var p leavePayload
	if err := decode(EventLeaveRoom, nil, &p); err != nil {
		t.Errorf("decode leave without payload: %v", err)
	}
	var info peerInfoPayload
	if err := decode(EventPeerInfo, json.RawMessage(`{}`), &info); err != nil || info.DisplayName != nil {
		t.Errorf("decode peer-info without name: got (%+v, %v)", info, err)
	}
}
