package contract

import (
	"strings"

	"snapgov/sdk"
)

// Permits let governance pre-authorize an intent digest for a bounded (or
// unbounded) number of executions that skip the voting and timelock gates.
// A permit count is stored as a decimal string; UnlimitedUses is the
// sentinel for "spend freely, never decrement".

func permitUses(id Digest) (uint64, bool) {
	ptr := sdk.StateGetObject(permitKey(id))
	if ptr == nil || *ptr == "" {
		return 0, false
	}
	return parseUintField(*ptr, "permit count"), true
}

func storePermitUses(id Digest, uses uint64) {
	if uses == 0 {
		sdk.StateDeleteObject(permitKey(id))
		return
	}
	sdk.StateSetObject(permitKey(id), UInt64ToString(uses))
}

func mirrorSupply(id Digest) Amount {
	return getAmount(mirrorKey(id))
}

// syncMirrorTo moves the mirror supply for a digest to the target count.
// Unlimited permits carry no mirror, so the target collapses to zero.
func syncMirrorTo(id Digest, uses uint64) {
	target := Amount(0)
	if uses != UnlimitedUses {
		target = Amount(uses)
	}
	current := mirrorSupply(id)
	if current == target {
		return
	}
	setAmount(mirrorKey(id), target)
	emitMirrorMoved(id.Hex(), target-current)
}

// applyPermitAction handles the governance-side grant: "digest|uses|mode".
// Mode "add" is a saturating top-up on an existing permit and a no-op once
// the permit is already unlimited; anything else replaces.
// Uses of "unlimited" (or the sentinel value) grant an unbounded permit.
func applyPermitAction(args string) *string {
	parts := splitFields(args, 3)
	id := digestFromHex(parts[0])
	uses := parsePermitCount(parts[1])
	additive := strings.TrimSpace(parts[2]) == "add"

	mirror := loadConfig().PermitMirror
	if additive {
		current, ok := permitUses(id)
		if !ok {
			abortState("no permit to top up")
		}
		if current == UnlimitedUses {
			// already unlimited: the add is a no-op
			return strptr("permit set")
		}
		if uses == 0 {
			abortValidity("top up needs a positive count")
		}
		next := current + uses
		if uses == UnlimitedUses || next < current {
			next = UnlimitedUses
		}
		// additive mirror minting only applies between finite counts
		mirror = mirror && next != UnlimitedUses
		uses = next
	}
	storePermitUses(id, uses)
	if mirror {
		syncMirrorTo(id, uses)
	}
	emitPermitSet(id.Hex(), uses)
	return strptr("permit set")
}

func parsePermitCount(raw string) uint64 {
	s := strings.TrimSpace(raw)
	if s == "unlimited" {
		return UnlimitedUses
	}
	return parseUintField(s, "permit count")
}

// PermitSet is the export wrapper around the grant action; like every other
// governance mutation it only accepts the engine itself as caller.
// Example payload: PermitSet(strptr("9f2c...|3|replace"))
//
//go:wasmexport permit_set
func PermitSet(payload *string) *string {
	requireSelf()
	return applyPermitAction(unwrapPayload(payload, "permit payload required"))
}

// PermitMirrorToggle flips the mirror ledger on or off. Turning it on syncs
// every future grant; existing permits sync lazily on their next grant or
// spend. Turning it off leaves stale mirror rows behind, which read as zero
// once their permit is gone.
// Example payload: PermitMirrorToggle(strptr("true"))
//
//go:wasmexport permit_mirror_toggle
func PermitMirrorToggle(payload *string) *string {
	requireSelf()
	cfg := loadConfig()
	cfg.PermitMirror = parseBoolField(unwrapPayload(payload, "flag required"), "mirror flag")
	saveConfig(cfg)
	emitConfigChanged("set_permit_mirror")
	return strptr("mirror toggled")
}

// PermitExecute spends one permit use to run an intent immediately. No vote,
// no quorum, no timelock; the permit is the authorization. Spending marks
// the executed latch so the vote path can never run the same digest again,
// but the permit path itself gates on remaining uses, which is what lets a
// multi-use permit fire more than once.
// Example payload: PermitExecute(strptr("0|contract:snapgov|0|7|set_ttl|3600"))
//
//go:wasmexport permit_execute
func PermitExecute(payload *string) *string {
	release := enterGuard()
	defer release()

	in := parseIntentPayload(unwrapPayload(payload, "intent required"))
	id := intentDigest(in)
	uses, ok := permitUses(id)
	if !ok {
		abortAuth("no permit for intent")
	}
	if uses != UnlimitedUses {
		uses--
		storePermitUses(id, uses)
		if loadConfig().PermitMirror {
			syncMirrorTo(id, uses)
		}
	}

	markExecuted(id)
	result := performIntent(in)
	resolveFutarchyMarket(id, StanceFor)
	emitPermitSpent(id.Hex(), uses)
	emitProposalExecuted(id.Hex(), "permit")
	return result
}
