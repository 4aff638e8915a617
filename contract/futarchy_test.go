package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snapgov/contract"
	"snapgov/sdk"
)

// openMarket grants a market on the intent digest through governance.
func openMarket(t *testing.T, intent string, nonce uint64) string {
	t.Helper()
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	runGovernance(t, ownerAddress, "futarchy_open|"+id+"|hive", nonce)
	return id
}

func fundMarket(t *testing.T, from sdk.Address, id string, amount int64) {
	t.Helper()
	sdk.MockSetBalance(from, sdk.AssetHive, amount)
	allowDraw(amount, sdk.AssetHive)
	mustCall(t, from, contract.FutarchyFund, id+"|"+contract.Int64ToString(amount))
	clearIntents()
}

func TestFutarchyYesPathPayout(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|100")
	mustCall(t, ownerAddress, contract.TokenTransfer, memberBob+"|20")
	sdk.MockTick()

	intent := governanceIntent("set_ttl|777", 9)
	id := openMarket(t, intent, 1)
	fundMarket(t, outsider, id, 1000)

	f := viewJSON(t, contract.GetFutarchy, id)
	assert.Equal(t, float64(1000), f["pool"])
	assert.Equal(t, false, f["resolved"])

	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustCall(t, memberBob, contract.ProposalVote, id+"|1")
	mustCall(t, ownerAddress, contract.ProposalExecute, intent)

	f = viewJSON(t, contract.GetFutarchy, id)
	assert.Equal(t, true, f["resolved"])
	assert.Equal(t, "for", f["winning"])
	assert.Equal(t, float64(100), f["winning_supply"])
	assert.Equal(t, float64(10), f["payout_per_unit"])

	// bob voted with 20 power: cashing out 5 receipts pays exactly 50
	assert.Equal(t, "50", mustCall(t, memberBob, contract.FutarchyCashout, id+"|5"))
	assert.Equal(t, int64(50), sdk.GetBalance(memberBob, sdk.AssetHive))
	assert.Equal(t, "95", mustCall(t, memberBob, contract.GetReceiptSupply, id+"|1"))

	// the rest cashes out at the same rate, then the receipts are gone
	assert.Equal(t, "150", mustCall(t, memberBob, contract.FutarchyCashout, id+"|15"))
	assert.Equal(t, int64(200), sdk.GetBalance(memberBob, sdk.AssetHive))
	mustFail(t, memberBob, contract.FutarchyCashout, id+"|1", "arithmetic_error")
}

func TestFutarchyNoBlockedWhileVotesCanFlip(t *testing.T) {
	setupEngine(t, "0|0|0|0|0|100")
	mustCall(t, ownerAddress, contract.TokenTransfer, memberBob+"|30")
	sdk.MockTick()

	intent := governanceIntent("set_ttl|777", 9)
	id := openMarket(t, intent, 1)
	fundMarket(t, outsider, id, 500)

	// a losing tally is not final without a TTL: later votes can flip it
	mustCall(t, memberBob, contract.ProposalVote, id+"|0")
	assert.Equal(t, "defeated", mustCall(t, ownerAddress, contract.ProposalStateView, id))
	mustFail(t, outsider, contract.FutarchyResolveNo, id, "state_error")

	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustCall(t, ownerAddress, contract.ProposalExecute, intent)
	f := viewJSON(t, contract.GetFutarchy, id)
	assert.Equal(t, "for", f["winning"])
}

func TestFutarchyNoPathAfterExpiry(t *testing.T) {
	setupEngine(t, "5000|0|0|3600|0|100")
	intent := governanceIntent("set_ttl|777", 9)
	id := openMarket(t, intent, 1)
	fundMarket(t, outsider, id, 500)

	mustCall(t, ownerAddress, contract.ProposalVote, id+"|0")
	assert.Equal(t, "defeated", mustCall(t, ownerAddress, contract.ProposalStateView, id))
	mustFail(t, outsider, contract.FutarchyResolveNo, id, "state_error")

	sdk.MockSetTimestamp("1700003601")
	mustCall(t, outsider, contract.FutarchyResolveNo, id)

	f := viewJSON(t, contract.GetFutarchy, id)
	assert.Equal(t, "against", f["winning"])
	assert.Equal(t, float64(5), f["payout_per_unit"]) // 500 / 100 AGAINST receipts

	assert.Equal(t, "500", mustCall(t, ownerAddress, contract.FutarchyCashout, id+"|100"))
}

func TestFutarchyExpiredPoolStrandsWithoutAgainstVotes(t *testing.T) {
	setupEngine(t, "5000|0|0|3600|0|100")
	intent := governanceIntent("set_ttl|777", 9)
	id := openMarket(t, intent, 1)
	fundMarket(t, outsider, id, 500)
	mustCall(t, ownerAddress, contract.ProposalOpen, id)

	sdk.MockSetTimestamp("1700003601")
	mustCall(t, outsider, contract.FutarchyResolveNo, id)

	// nobody voted AGAINST: the pool strands in the treasury
	f := viewJSON(t, contract.GetFutarchy, id)
	assert.Equal(t, true, f["resolved"])
	assert.Equal(t, float64(0), f["winning_supply"])
	mustFail(t, ownerAddress, contract.FutarchyCashout, id+"|1", "arithmetic_error")
}

func TestFutarchyCallsAreGuarded(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|1000")
	intent := "0|contract:other|0|1|x"
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")

	sdk.MockSetCallHook(func(contractId, method, payload string) *string {
		// callee tries to loop back into the cashout path
		p := id + "|5"
		return contract.FutarchyCashout(&p)
	})
	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "state_error")
}

func TestFutarchyFundingRules(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|100")
	intent := governanceIntent("set_ttl|777", 9)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)

	// no market yet
	mustFail(t, outsider, contract.FutarchyFund, id+"|100", "state_error")

	runGovernance(t, ownerAddress, "futarchy_open|"+id+"|hive", 1)

	// funding needs a matching transfer.allow intent
	clearIntents()
	mustFail(t, outsider, contract.FutarchyFund, id+"|100", "auth_error")
	allowDraw(100, sdk.AssetHbd)
	mustFail(t, outsider, contract.FutarchyFund, id+"|100", "auth_error")
	allowDraw(50, sdk.AssetHive)
	mustFail(t, outsider, contract.FutarchyFund, id+"|100", "auth_error")
	clearIntents()

	// a second market on the same digest is rejected
	intent2 := governanceIntent("futarchy_open|"+id+"|hive", 2)
	id2 := mustCall(t, ownerAddress, contract.ProposalId, intent2)
	mustCall(t, ownerAddress, contract.ProposalVote, id2+"|1")
	mustFail(t, ownerAddress, contract.ProposalExecute, intent2, "state_error")
}
