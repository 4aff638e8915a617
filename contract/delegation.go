package contract

import "snapgov/sdk"

// -----------------------------------------------------------------------------
// Delegation: single-target by default, optional fractional split
// -----------------------------------------------------------------------------

// loadDelegation returns the routing record for addr, defaulting to
// self-delegation for accounts that never touched the table. That default is
// what makes "transfers auto-assign both parties to self" hold for free.
func loadDelegation(addr sdk.Address) *Delegation {
	ptr := sdk.StateGetObject(delegationKey(addr))
	if ptr == nil || *ptr == "" {
		return &Delegation{Delegate: addr}
	}
	d, err := DecodeDelegation([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode delegation")
	}
	return d
}

func saveDelegation(addr sdk.Address, d *Delegation) {
	sdk.StateSetObject(delegationKey(addr), string(EncodeDelegation(d)))
}

// effectiveDistribution flattens the record into a weight list that always
// sums to BpsDenom: the split when present, otherwise 100% to the delegate.
func effectiveDistribution(d *Delegation) []SplitEntry {
	if len(d.Split) > 0 {
		return d.Split
	}
	return []SplitEntry{{Delegate: d.Delegate, WeightBps: BpsDenom}}
}

// distributionPortions cuts amount along the weights. The last leg absorbs
// the rounding remainder so the portions always sum exactly to amount, for
// negative deltas too.
func distributionPortions(dist []SplitEntry, amount Amount) []Amount {
	portions := make([]Amount, len(dist))
	var assigned Amount
	for i, e := range dist {
		if i == len(dist)-1 {
			portions[i] = amount - assigned
			break
		}
		p := Amount(int64(amount) * int64(e.WeightBps) / BpsDenom)
		portions[i] = p
		assigned += p
	}
	return portions
}

// routePowerDelta pushes a balance delta through the holder's current
// distribution into the delegates' checkpoint sequences.
func routePowerDelta(holder sdk.Address, delta Amount) {
	if delta == 0 {
		return
	}
	dist := effectiveDistribution(loadDelegation(holder))
	portions := distributionPortions(dist, delta)
	for i, e := range dist {
		adjustPowerCheckpoint(e.Delegate, portions[i])
	}
}

// repointHeldPower moves the holder's already-held voting power from the old
// distribution to the new one. Raw balance never moves; each delegate gains
// or loses exactly its portion difference.
func repointHeldPower(holder sdk.Address, oldDist, newDist []SplitEntry) {
	balance := balanceOf(holder)
	if balance == 0 {
		return
	}
	deltas := map[sdk.Address]Amount{}
	order := []sdk.Address{}
	oldPortions := distributionPortions(oldDist, balance)
	for i, e := range oldDist {
		if _, seen := deltas[e.Delegate]; !seen {
			order = append(order, e.Delegate)
		}
		deltas[e.Delegate] -= oldPortions[i]
	}
	newPortions := distributionPortions(newDist, balance)
	for i, e := range newDist {
		if _, seen := deltas[e.Delegate]; !seen {
			order = append(order, e.Delegate)
		}
		deltas[e.Delegate] += newPortions[i]
	}
	for _, delegate := range order {
		adjustPowerCheckpoint(delegate, deltas[delegate])
	}
}

// DelegationSet points 100% of the caller's voting power at one delegate.
// Example payload: DelegationSet(strptr("hive:bob"))
//
//go:wasmexport delegation_set
func DelegationSet(payload *string) *string {
	raw := unwrapPayload(payload, "delegate required")
	delegate := AddressFromString(raw)
	if !delegate.IsValid() {
		abortValidity("invalid delegate address")
	}
	caller := getSenderAddress()
	d := loadDelegation(caller)
	oldDist := effectiveDistribution(d)
	d.Delegate = delegate
	d.Split = nil
	repointHeldPower(caller, oldDist, effectiveDistribution(d))
	saveDelegation(caller, d)
	emitDelegationChanged(AddressToString(caller), raw)
	return strptr("delegated")
}

// DelegationSetSplit installs a fractional distribution. An empty list field
// clears the split back to the single-target path.
// Example payload: DelegationSetSplit(strptr("hive:bob:6000,hive:carol:4000"))
//
//go:wasmexport delegation_set_split
func DelegationSetSplit(payload *string) *string {
	raw := unwrapPayload(payload, "split list required")
	caller := getSenderAddress()
	d := loadDelegation(caller)
	oldDist := effectiveDistribution(d)

	if raw == "-" {
		d.Split = nil
	} else {
		d.Split = parseSplitList(raw)
	}
	repointHeldPower(caller, oldDist, effectiveDistribution(d))
	saveDelegation(caller, d)
	emitDelegationChanged(AddressToString(caller), raw)
	return strptr("split updated")
}

// parseSplitList validates the hard invariants: at most 4 legs, no duplicate
// delegates, positive weights summing to exactly BpsDenom.
func parseSplitList(raw string) []SplitEntry {
	entries := []SplitEntry{}
	seen := map[sdk.Address]bool{}
	var sum uint64
	for _, part := range splitList(raw) {
		delegate, weight := parseSplitEntry(part)
		if seen[delegate] {
			abortValidity("duplicate split delegate")
		}
		seen[delegate] = true
		entries = append(entries, SplitEntry{Delegate: delegate, WeightBps: weight})
		sum += weight
	}
	if len(entries) == 0 || len(entries) > MaxSplitTargets {
		abortValidity("split needs 1 to 4 delegates")
	}
	if sum != BpsDenom {
		abortValidity("split weights must sum to 10000")
	}
	return entries
}
