package core

import (
	"errors"
	"slices"
	"testing"

	"github.com/dkeye/Rendezvous/internal/domain"
)

func TestRoomCapacity(t *testing.T) {
	t.Parallel()
	room := NewRoomService(&domain.Room{ID: "r1"}, 2)

	if err := room.AddMember("a"); err != nil {
		t.Fatalf("AddMember(a): %v", err)
	}
	if err := room.AddMember("b"); err != nil {
		t.Fatalf("AddMember(b): %v", err)
	}
	if err := room.AddMember("c"); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("AddMember(c): got %v, want ErrRoomFull", err)
	}
	if got := room.Members(); !slices.Equal(got, []SessionID{"a", "b"}) {
		t.Errorf("Members: got %v, want [a b]", got)
	}
}

func TestRoomAddExistingMemberIsNoop(t *testing.T) {
	t.Parallel()
	room := NewRoomService(&domain.Room{ID: "r1"}, 2)
	_ = room.AddMember("a")
	_ = room.AddMember("b")

	if err := room.AddMember("a"); err != nil {
		t.Errorf("AddMember(existing) on full room: got %v, want nil", err)
	}
	if room.MemberCount() != 2 {
		t.Errorf("MemberCount: got %d, want 2", room.MemberCount())
	}
}

func TestRoomRemoveKeepsOrder(t *testing.T) {
	t.Parallel()
	room := NewRoomService(&domain.Room{ID: "r1"}, 3)
	for _, sid := range []SessionID{"a", "b", "c"} {
		_ = room.AddMember(sid)
	}

	if !room.RemoveMember("b") {
		t.Fatal("RemoveMember(b): got false, want true")
	}
	if room.RemoveMember("b") {
		t.Error("RemoveMember(b) twice: got true, want false")
	}
	if got := room.Members(); !slices.Equal(got, []SessionID{"a", "c"}) {
		t.Errorf("Members: got %v, want [a c]", got)
	}
	if room.Has("b") {
		t.Error("Has(b): got true after removal")
	}
}

func TestRoomMembersReturnsCopy(t *testing.T) {
	t.Parallel()
	room := NewRoomService(&domain.Room{ID: "r1"}, 2)
	_ = room.AddMember("a")
	members := room.Members()
	members[0] = "z"
	if !room.Has("a") {
		t.Error("mutating Members() result changed the room")
	}
}
