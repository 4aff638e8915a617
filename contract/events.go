package contract

import (
	"snapgov/sdk"
)

// Event lines are short pipe-delimited records on the host log stream.
// Indexers split on "|"; the first field is the event name.

func emitSharesMoved(from, to string, amount Amount) {
	sdk.Log("shares_moved|" + from + "|" + to + "|" + AmountToString(amount))
}

func emitSharesMinted(to string, amount Amount) {
	sdk.Log("shares_minted|" + to + "|" + AmountToString(amount))
}

func emitSharesBurned(from string, amount Amount) {
	sdk.Log("shares_burned|" + from + "|" + AmountToString(amount))
}

func emitDelegationChanged(holder, target string) {
	sdk.Log("delegation|" + holder + "|" + target)
}

func emitBadgeGranted(addr string, slot int) {
	sdk.Log("badge_granted|" + addr + "|" + UInt64ToString(uint64(slot)))
}

func emitBadgeRevoked(addr string) {
	sdk.Log("badge_revoked|" + addr)
}

func emitChat(addr string, seq uint64, text string) {
	sdk.Log("chat|" + addr + "|" + UInt64ToString(seq) + "|" + text)
}

func emitProposalOpened(id string, snapshot uint64) {
	sdk.Log("proposal_opened|" + id + "|" + UInt64ToString(snapshot))
}

func emitVoteCast(id, voter string, stance Stance, weight Amount) {
	sdk.Log("vote_cast|" + id + "|" + voter + "|" + stance.String() + "|" + AmountToString(weight))
}

func emitProposalQueued(id string, at int64) {
	sdk.Log("proposal_queued|" + id + "|" + Int64ToString(at))
}

func emitProposalExecuted(id, path string) {
	sdk.Log("proposal_executed|" + id + "|" + path)
}

func emitPermitSet(id string, uses uint64) {
	if uses == UnlimitedUses {
		sdk.Log("permit_set|" + id + "|unlimited")
		return
	}
	sdk.Log("permit_set|" + id + "|" + UInt64ToString(uses))
}

func emitPermitSpent(id string, remaining uint64) {
	if remaining == UnlimitedUses {
		sdk.Log("permit_spent|" + id + "|unlimited")
		return
	}
	sdk.Log("permit_spent|" + id + "|" + UInt64ToString(remaining))
}

func emitMirrorMoved(id string, delta Amount) {
	sdk.Log("mirror|" + id + "|" + AmountToString(delta))
}

func emitFutarchyOpened(id string, asset sdk.Asset) {
	sdk.Log("futarchy_opened|" + id + "|" + string(asset))
}

func emitFutarchyFunded(id, from string, amount Amount) {
	sdk.Log("futarchy_funded|" + id + "|" + from + "|" + AmountToString(amount))
}

func emitFutarchyResolved(id string, winning Stance) {
	sdk.Log("futarchy_resolved|" + id + "|" + winning.String())
}

func emitFutarchyCashout(id, holder string, payout Amount) {
	sdk.Log("futarchy_cashout|" + id + "|" + holder + "|" + AmountToString(payout))
}

func emitRageQuit(holder string, burned Amount) {
	sdk.Log("ragequit|" + holder + "|" + AmountToString(burned))
}

func emitConfigChanged(action string) {
	sdk.Log("config|" + action)
}

func emitEpochBumped(epoch uint64) {
	sdk.Log("epoch|" + UInt64ToString(epoch))
}

func emitSharesBought(buyer string, shares, paid Amount, asset sdk.Asset) {
	sdk.Log("shares_bought|" + buyer + "|" + AmountToString(shares) + "|" + AmountToString(paid) + "|" + string(asset))
}

func emitAllowanceClaimed(to string, amount Amount, asset sdk.Asset) {
	sdk.Log("allowance_claimed|" + to + "|" + AmountToString(amount) + "|" + string(asset))
}
