package contract

import "math"

// -----------------------------------------------------------------------------
// Fixed-point and capacity limits
// -----------------------------------------------------------------------------

const (
	// BpsDenom is the parts-per-10000 denominator for quorum and split weights.
	BpsDenom = 10000
	// MaxSplitTargets caps fractional delegation fan-out.
	MaxSplitTargets = 4
	// MemberSlots is the fixed capacity of the sticky membership set.
	MemberSlots = 256
	// UnlimitedUses is the reserved permit counter sentinel.
	UnlimitedUses = math.MaxUint64
	// MaxChatLength limits the size of a chat message.
	MaxChatLength = 500
)

// -----------------------------------------------------------------------------
// Error symbols (one per error category, passed to sdk.Revert)
// -----------------------------------------------------------------------------

const (
	errAuth       = "auth_error"
	errValidity   = "validity_error"
	errState      = "state_error"
	errArithmetic = "arithmetic_error"
	errExternal   = "external_call_error"
)

// -----------------------------------------------------------------------------
// Default/Fallback Values (used by contract_init when the payload omits them)
// -----------------------------------------------------------------------------

const (
	FallbackQuorumBps    = 5000
	FallbackTTLSecs      = int64(60 * 60 * 24 * 7)
	FallbackTimelockSecs = int64(0)
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kConfig stores the single encoded Config record.
	kConfig byte = 0x01
	// kBalance houses share balances per address.
	kBalance byte = 0x02
	// kSupply stores the current total share supply.
	kSupply byte = 0x03
	// kDelegation stores the per-address routing record.
	kDelegation byte = 0x04
	// kPowerCheckpoints stores an address' voting-power checkpoint sequence.
	kPowerCheckpoints byte = 0x05
	// kSupplyCheckpoints stores the global supply checkpoint sequence.
	kSupplyCheckpoints byte = 0x06
	// kProposal contains encoded Proposal records keyed by intent digest.
	kProposal byte = 0x10
	// kExecuted is the per-digest executed latch shared by votes and permits.
	kExecuted byte = 0x11
	// kVoteStance latches a voter's stance per digest; presence = has voted.
	kVoteStance byte = 0x12
	// kReceipt stores per-voter vote receipt balances keyed digest+stance.
	kReceipt byte = 0x13
	// kReceiptSupply aggregates receipt supply per digest+stance.
	kReceiptSupply byte = 0x14
	// kPermit stores remaining-use counters keyed by intent digest.
	kPermit byte = 0x20
	// kMirror is the optional secondary permit ledger kept in lock-step.
	kMirror byte = 0x21
	// kFutarchy contains encoded Futarchy markets keyed by intent digest.
	kFutarchy byte = 0x30
	// kMemberSlots stores the fixed 256-entry slot array as one blob.
	kMemberSlots byte = 0x40
	// kMemberIndex maps address -> 1-based slot index (absent = no badge).
	kMemberIndex byte = 0x41
	// kAllowance stores claimable treasury grants keyed asset + address.
	kAllowance byte = 0x50
	// kChatCount counts accepted chat messages.
	kChatCount byte = 0x60
)
