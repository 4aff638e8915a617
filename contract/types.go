package contract

import "snapgov/sdk"

// Amount is the scaled integer unit used for share balances, external asset
// amounts and vote weights. No floats touch storage.
type Amount int64

// Stance is the vote position code. Exactly three values are valid on the wire.
type Stance uint8

const (
	StanceAgainst Stance = 0
	StanceFor     Stance = 1
	StanceAbstain Stance = 2
)

// String prints the stance as lower-case text for events and logs.
// Example payload: StanceFor.String()
func (s Stance) String() string {
	switch s {
	case StanceAgainst:
		return "against"
	case StanceFor:
		return "for"
	case StanceAbstain:
		return "abstain"
	default:
		return "invalid"
	}
}

// ProposalState captures a proposal's lifecycle.
type ProposalState uint8

const (
	ProposalUnopened  ProposalState = 0
	ProposalActive    ProposalState = 1
	ProposalQueued    ProposalState = 2
	ProposalSucceeded ProposalState = 3
	ProposalDefeated  ProposalState = 4
	ProposalExpired   ProposalState = 5
	ProposalExecuted  ProposalState = 6
)

// String prints the proposal state as lower-case text for events and logs.
// Example payload: ProposalSucceeded.String()
func (ps ProposalState) String() string {
	switch ps {
	case ProposalUnopened:
		return "unopened"
	case ProposalActive:
		return "active"
	case ProposalQueued:
		return "queued"
	case ProposalSucceeded:
		return "succeeded"
	case ProposalDefeated:
		return "defeated"
	case ProposalExpired:
		return "expired"
	case ProposalExecuted:
		return "executed"
	default:
		return "unspecified"
	}
}

// OpKind selects the execution primitive for an intent: a contract call with
// payload, or a plain asset transfer of Value to Target. The kind is part of
// the intent digest either way.
type OpKind uint8

const (
	OpInvoke   OpKind = 0
	OpTransfer OpKind = 1
)

// ExecIntent is the (op, target, value, payload, nonce) tuple whose digest
// identifies a proposal or a permit.
type ExecIntent struct {
	Op      OpKind
	Target  sdk.Address
	Value   Amount
	Payload string
	Nonce   uint64
}

// Config is the governed engine configuration. Every field is only mutable
// through config_apply, which is reachable solely by the engine calling
// itself out of proposal_execute / permit_execute.
type Config struct {
	Owner           sdk.Address
	Epoch           uint64 // salts intent digests; bumping orphans precomputed ids
	QuorumBps       uint64 // proportional turnout floor vs snapshot supply
	QuorumAbs       Amount // absolute turnout floor
	YesFloor        Amount // absolute FOR floor
	TTLSecs         int64  // 0 = proposals never expire
	TimelockSecs    int64  // 0 = no queue step
	RageQuitEnabled bool
	TransferLocked  bool
	SaleOpen        bool
	SalePrice       Amount // asset units per share
	SaleAsset       sdk.Asset
	PermitMirror    bool // keep the secondary per-digest ledger in lock-step
}

// Checkpoint records a voting-power (or supply) value effective from Height
// until superseded. Sequences are strictly increasing in Height.
type Checkpoint struct {
	Height uint64
	Power  Amount
}

// SplitEntry is one leg of a fractional delegation, weighted in basis points.
type SplitEntry struct {
	Delegate  sdk.Address
	WeightBps uint64
}

// Delegation is the per-account routing record. Split nil means everything
// flows to Delegate; Delegate defaults to the holder itself.
type Delegation struct {
	Delegate sdk.Address
	Split    []SplitEntry
}

// Proposal is the stored record for an opened intent digest. The executed
// latch lives under its own key since permits share it.
type Proposal struct {
	SnapshotHeight uint64 // 0 = unopened
	SnapshotSupply Amount
	CreatedAt      int64
	QueuedAt       int64 // 0 = not queued
	ForVotes       Amount
	AgainstVotes   Amount
	AbstainVotes   Amount
}

// Futarchy is the optional conditional funding market attached to a proposal.
type Futarchy struct {
	Enabled       bool
	Asset         sdk.Asset // "" = native asset
	Pool          Amount
	Resolved      bool
	Winning       Stance
	WinningSupply Amount // winning-side receipt supply at resolution
	PayoutPerUnit Amount // floor(Pool / WinningSupply)
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
func AssetToString(a sdk.Asset) string { return a.String() }
