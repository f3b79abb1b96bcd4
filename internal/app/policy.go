package app

type PairingAction int

const (
	// AssignInitiator: the joiner is alone and will make the offer.
	AssignInitiator PairingAction = iota
	// CompletePair: re-announce the waiting peer as initiator, joiner answers.
	CompletePair
	// RejectFull: evict the joiner, group unchanged.
	RejectFull
)

func (a PairingAction) String() string {
	switch a {
	case AssignInitiator:
		return "assign_initiator"
	case CompletePair:
		return "complete_pair"
	case RejectFull:
		return "reject_full"
	default:
		return "unknown"
	}
}

// PairingPolicy decides roles from the group occupancy after a join.
type PairingPolicy interface {
	OnJoin(occupancy int) PairingAction
}

type TwoPartyPolicy struct{}

func (TwoPartyPolicy) OnJoin(occupancy int) PairingAction {
	switch {
	case occupancy <= 1:
		return AssignInitiator
	case occupancy == 2:
		return CompletePair
	default:
		return RejectFull
	}
}
