package contract

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"snapgov/sdk"
)

// -----------------------------------------------------------------------------
// Intent digests
// -----------------------------------------------------------------------------

// Digest is the content-addressed identity of an execution intent. Proposals,
// permits, receipts and futarchy markets all key off it.
type Digest [32]byte

// Hex returns the lowercase hex form used on the payload boundary.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func digestFromHex(s string) Digest {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(b) != 32 {
		abortValidity("invalid digest")
	}
	var d Digest
	copy(d[:], b)
	return d
}

// intentDigest hashes (engine identity, op, target, value, payload digest,
// nonce, config epoch). The epoch salt means a governance-triggered bump
// orphans every precomputed, not-yet-opened identity.
func intentDigest(in *ExecIntent) Digest {
	payloadSum := sha3.Sum256([]byte(in.Payload))

	w := newWriter()
	w.writeAddress(contractAddress())
	w.buf.WriteByte(byte(in.Op))
	w.writeAddress(in.Target)
	w.writeAmount(in.Value)
	w.buf.Write(payloadSum[:])
	w.writeUint64(in.Nonce)
	w.writeUint64(loadConfig().Epoch)
	return Digest(sha3.Sum256(w.bytes()))
}

// parseIntentPayload decodes "op|target|value|nonce|payload". The raw payload
// rides in the last field so it may itself contain pipes.
func parseIntentPayload(raw string) *ExecIntent {
	parts := strings.SplitN(raw, "|", 5)
	if len(parts) < 4 {
		abortValidity("intent needs op|target|value|nonce|payload")
	}
	op := parseUintField(parts[0], "op kind")
	if op > uint64(OpTransfer) {
		abortValidity("unknown op kind")
	}
	target := AddressFromString(strings.TrimSpace(parts[1]))
	if !target.IsValid() {
		abortValidity("invalid intent target")
	}
	in := &ExecIntent{
		Op:     OpKind(op),
		Target: target,
		Value:  parseAmountField(parts[2], "intent value"),
		Nonce:  parseUintField(parts[3], "intent nonce"),
	}
	if len(parts) == 5 {
		in.Payload = parts[4]
	}
	return in
}

// -----------------------------------------------------------------------------
// Proposal storage
// -----------------------------------------------------------------------------

func loadProposalRecord(id Digest) *Proposal {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode proposal")
	}
	return p
}

func saveProposalRecord(id Digest, p *Proposal) {
	sdk.StateSetObject(proposalKey(id), string(EncodeProposal(p)))
}

// isExecuted reads the per-digest latch shared by the vote and permit paths.
func isExecuted(id Digest) bool {
	ptr := sdk.StateGetObject(executedKey(id))
	return ptr != nil && *ptr == "1"
}

func markExecuted(id Digest) {
	sdk.StateSetObject(executedKey(id), "1")
}

// -----------------------------------------------------------------------------
// Opening
// -----------------------------------------------------------------------------

// openProposalRecord fixes the snapshot to the previous logical tick so every
// later checkpoint lookup is strictly historical. Opening twice is a no-op.
func openProposalRecord(id Digest) *Proposal {
	if p := loadProposalRecord(id); p != nil && p.SnapshotHeight != 0 {
		return p
	}
	h := currentHeight()
	if h < 2 {
		abortValidity("no committed history to snapshot")
	}
	p := &Proposal{
		SnapshotHeight: h - 1,
		SnapshotSupply: supplyAt(h - 1),
		CreatedAt:      nowUnix(),
	}
	saveProposalRecord(id, p)
	emitProposalOpened(id.Hex(), p.SnapshotHeight)
	return p
}

// ProposalOpen opens (or re-opens, as a no-op) the given intent digest.
// Example payload: ProposalOpen(strptr("9f2c..."))
//
//go:wasmexport proposal_open
func ProposalOpen(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	openProposalRecord(id)
	return strptr("open")
}

// ProposalId computes the digest for an intent tuple without touching state.
// Example payload: ProposalId(strptr("0|contract:snapgov|0|7|set_ttl|3600"))
//
//go:wasmexport proposal_id
func ProposalId(payload *string) *string {
	in := parseIntentPayload(unwrapPayload(payload, "intent required"))
	return strptr(intentDigest(in).Hex())
}

// -----------------------------------------------------------------------------
// Voting
// -----------------------------------------------------------------------------

// ProposalVote casts the caller's snapshot voting power on a digest,
// auto-opening it when needed, and mints the matching vote receipt.
// Example payload: ProposalVote(strptr("9f2c...|1"))
//
//go:wasmexport proposal_vote
func ProposalVote(payload *string) *string {
	raw := unwrapPayload(payload, "vote payload required")
	parts := splitFields(raw, 2)
	id := digestFromHex(parts[0])
	stanceCode := parseUintField(parts[1], "stance")
	if stanceCode > uint64(StanceAbstain) {
		abortValidity("stance must be 0, 1 or 2")
	}
	stance := Stance(stanceCode)

	if isExecuted(id) {
		abortState("proposal already executed")
	}
	p := openProposalRecord(id)
	cfg := loadConfig()
	if cfg.TTLSecs > 0 && p.QueuedAt == 0 && nowUnix() > p.CreatedAt+cfg.TTLSecs {
		abortState("proposal expired")
	}
	voter := getSenderAddress()
	if sdk.StateGetObject(voteStanceKey(id, voter)) != nil {
		abortValidity("already voted")
	}
	weight := votingPowerAt(voter, p.SnapshotHeight)
	if weight == 0 {
		abortValidity("no voting power at snapshot")
	}

	switch stance {
	case StanceFor:
		p.ForVotes += weight
	case StanceAgainst:
		p.AgainstVotes += weight
	case StanceAbstain:
		p.AbstainVotes += weight
	}
	saveProposalRecord(id, p)
	sdk.StateSetObject(voteStanceKey(id, voter), UInt64ToString(stanceCode))
	mintReceipt(id, stance, voter, weight)
	emitVoteCast(id.Hex(), AddressToString(voter), stance, weight)
	return strptr("voted")
}

// mintReceipt credits the non-transferable per-stance receipt. Aggregate
// supply per (digest, stance) is the total weight that voted that way.
func mintReceipt(id Digest, stance Stance, voter sdk.Address, weight Amount) {
	rk := receiptKey(id, stance, voter)
	setAmount(rk, getAmount(rk)+weight)
	sk := receiptSupplyKey(id, stance)
	setAmount(sk, getAmount(sk)+weight)
}

// burnReceipt destroys part of a holder's receipt, keeping the aggregate
// supply in step. Aborts when the holder does not have enough.
func burnReceipt(id Digest, stance Stance, holder sdk.Address, amount Amount) {
	rk := receiptKey(id, stance, holder)
	held := getAmount(rk)
	if held < amount {
		abortArithmetic("insufficient receipt balance")
	}
	setAmount(rk, held-amount)
	sk := receiptSupplyKey(id, stance)
	setAmount(sk, getAmount(sk)-amount)
}

func receiptBalance(id Digest, stance Stance, holder sdk.Address) Amount {
	return getAmount(receiptKey(id, stance, holder))
}

func receiptSupply(id Digest, stance Stance) Amount {
	return getAmount(receiptSupplyKey(id, stance))
}

// -----------------------------------------------------------------------------
// State machine
// -----------------------------------------------------------------------------

// proposalStateOf computes the lifecycle state from time, tally and config.
// The executed latch wins over everything; the gates then run in a fixed
// order: expiry, pending timelock, absolute turnout floor, proportional
// turnout floor, absolute yes floor, simple majority (ties lose).
func proposalStateOf(id Digest) ProposalState {
	if isExecuted(id) {
		return ProposalExecuted
	}
	p := loadProposalRecord(id)
	if p == nil || p.SnapshotHeight == 0 {
		return ProposalUnopened
	}
	cfg := loadConfig()
	now := nowUnix()
	if cfg.TTLSecs > 0 && p.QueuedAt == 0 && now > p.CreatedAt+cfg.TTLSecs {
		return ProposalExpired
	}
	if p.QueuedAt > 0 && now < p.QueuedAt+cfg.TimelockSecs {
		return ProposalQueued
	}
	turnout := p.ForVotes + p.AgainstVotes + p.AbstainVotes
	if turnout < cfg.QuorumAbs {
		return ProposalActive
	}
	if checkedMul(turnout, BpsDenom) < checkedMul(p.SnapshotSupply, Amount(cfg.QuorumBps)) {
		return ProposalActive
	}
	if p.ForVotes < cfg.YesFloor {
		return ProposalDefeated
	}
	if p.ForVotes > p.AgainstVotes {
		return ProposalSucceeded
	}
	return ProposalDefeated
}

// ProposalStateView reports the current state for a digest.
// Example payload: ProposalStateView(strptr("9f2c..."))
//
//go:wasmexport proposal_state
func ProposalStateView(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	return strptr(proposalStateOf(id).String())
}

// -----------------------------------------------------------------------------
// Queueing & execution
// -----------------------------------------------------------------------------

// ProposalQueue stamps the queue time once for a succeeded proposal. Anything
// else is a silent no-op, matching the idempotent open.
// Example payload: ProposalQueue(strptr("9f2c..."))
//
//go:wasmexport proposal_queue
func ProposalQueue(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	if proposalStateOf(id) != ProposalSucceeded {
		return strptr("not queueable")
	}
	cfg := loadConfig()
	if cfg.TimelockSecs <= 0 {
		return strptr("no timelock")
	}
	p := loadProposalRecord(id)
	if p.QueuedAt == 0 {
		p.QueuedAt = nowUnix()
		saveProposalRecord(id, p)
		emitProposalQueued(id.Hex(), p.QueuedAt)
	}
	return strptr("queued")
}

// ProposalExecute runs the vote-gated execution path for an intent tuple.
// With a timelock configured the first successful call only queues; the
// caller comes back after the delay.
// Example payload: ProposalExecute(strptr("0|contract:snapgov|0|7|set_ttl|3600"))
//
//go:wasmexport proposal_execute
func ProposalExecute(payload *string) *string {
	release := enterGuard()
	defer release()

	in := parseIntentPayload(unwrapPayload(payload, "intent required"))
	id := intentDigest(in)
	if isExecuted(id) {
		abortState("already executed")
	}
	st := proposalStateOf(id)
	if st == ProposalExpired {
		abortState("proposal expired")
	}
	if st != ProposalSucceeded && st != ProposalQueued {
		abortState("proposal not passed")
	}
	cfg := loadConfig()
	p := loadProposalRecord(id)
	if cfg.TimelockSecs > 0 && p.QueuedAt == 0 {
		p.QueuedAt = nowUnix()
		saveProposalRecord(id, p)
		emitProposalQueued(id.Hex(), p.QueuedAt)
		return strptr("queued")
	}
	if p.QueuedAt > 0 && nowUnix() < p.QueuedAt+cfg.TimelockSecs {
		abortState("timelock not elapsed")
	}

	markExecuted(id)
	result := performIntent(in)
	resolveFutarchyMarket(id, StanceFor)
	emitProposalExecuted(id.Hex(), "votes")
	return result
}

// performIntent is the shared execution primitive behind the vote path and
// the permit path. Self-targeted intents dispatch straight into the
// governance action table; everything else goes out through the host.
func performIntent(in *ExecIntent) *string {
	if in.Target == contractAddress() {
		return applyConfigAction(in.Payload)
	}
	switch in.Op {
	case OpTransfer:
		if in.Value <= 0 {
			abortValidity("transfer intent needs a positive value")
		}
		sdk.HiveTransfer(in.Target, int64(in.Value), sdk.AssetHive)
		return strptr("transferred")
	case OpInvoke:
		if in.Value > 0 {
			sdk.HiveTransfer(in.Target, int64(in.Value), sdk.AssetHive)
		}
		method, args := splitInvokePayload(in.Payload)
		res := sdk.ContractCall(AddressToString(in.Target), method, args, nil)
		if res == nil {
			abortExternal("target call reverted")
		}
		return res
	default:
		abortValidity("unknown op kind")
		return nil
	}
}

// splitInvokePayload separates "method|args..."; args keep any further pipes.
func splitInvokePayload(payload string) (string, string) {
	parts := strings.SplitN(payload, "|", 2)
	method := strings.TrimSpace(parts[0])
	if method == "" {
		abortValidity("invoke intent needs a method")
	}
	if len(parts) == 2 {
		return method, parts[1]
	}
	return method, ""
}
