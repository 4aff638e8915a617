package contract

import "snapgov/sdk"

// Checkpoint sequences back every historical voting-power and supply lookup.
// One sequence per account plus one global supply sequence, each stored as a
// single encoded blob. Sequences are append-only with two exceptions baked
// into pushCheckpoint: a write at the height of the latest entry updates it
// in place, and a write that does not change the latest value is dropped.

func loadCheckpoints(key string) []Checkpoint {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cps, err := DecodeCheckpoints([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode checkpoints")
	}
	return cps
}

func saveCheckpoints(key string, cps []Checkpoint) {
	sdk.StateSetObject(key, string(EncodeCheckpoints(cps)))
}

// pushCheckpoint records value effective from height onward.
func pushCheckpoint(key string, height uint64, value Amount) {
	cps := loadCheckpoints(key)
	if n := len(cps); n > 0 {
		last := &cps[n-1]
		if last.Height > height {
			sdk.Abort("checkpoint height regression")
		}
		if last.Power == value {
			return
		}
		if last.Height == height {
			last.Power = value
			saveCheckpoints(key, cps)
			return
		}
	}
	cps = append(cps, Checkpoint{Height: height, Power: value})
	saveCheckpoints(key, cps)
}

// latestCheckpoint returns the most recent value, zero for an empty sequence.
func latestCheckpoint(key string) Amount {
	cps := loadCheckpoints(key)
	if len(cps) == 0 {
		return 0
	}
	return cps[len(cps)-1].Power
}

// checkpointAt answers "what was the value at height h". Querying the current
// or a future tick is invalid: the current tick is still open and its batch
// may yet mutate the value.
func checkpointAt(key string, height uint64) Amount {
	if height >= currentHeight() {
		abortValidity("height not yet determined")
	}
	cps := loadCheckpoints(key)
	n := len(cps)
	if n == 0 {
		return 0
	}
	// fast path: most queries target recent history
	if cps[n-1].Height <= height {
		return cps[n-1].Power
	}
	if cps[0].Height > height {
		return 0
	}
	// binary search for the latest entry with Height <= height
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if cps[mid].Height <= height {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return cps[lo].Power
}

// adjustPowerCheckpoint moves a delegate's recorded voting power by delta at
// the current tick.
func adjustPowerCheckpoint(delegate sdk.Address, delta Amount) {
	if delta == 0 {
		return
	}
	key := powerCheckpointsKey(delegate)
	next := latestCheckpoint(key) + delta
	if next < 0 {
		abortArithmetic("voting power underflow")
	}
	pushCheckpoint(key, currentHeight(), next)
}

// votingPowerAt is the public point-in-time lookup for one account.
func votingPowerAt(addr sdk.Address, height uint64) Amount {
	return checkpointAt(powerCheckpointsKey(addr), height)
}

// supplyAt is the point-in-time lookup for the global share supply.
func supplyAt(height uint64) Amount {
	return checkpointAt(supplyCheckpointsKey(), height)
}
