package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snapgov/contract"
	"snapgov/sdk"
)

// distribute sets up alice with 600 and bob with 400 shares, all committed.
func distribute(t *testing.T, initTail string) {
	t.Helper()
	setupEngine(t, initTail)
	mustCall(t, ownerAddress, contract.TokenTransfer, memberBob+"|400")
	sdk.MockTick()
}

func TestQuorumAgainstSnapshotSupply(t *testing.T) {
	// 60% turnout clears a 50% quorum
	distribute(t, "5000|0|0|0|0|1000")
	intent := governanceIntent("set_ttl|3600", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	assert.Equal(t, "succeeded", mustCall(t, ownerAddress, contract.ProposalStateView, id))

	// the same 60% turnout stays active under an 80% quorum
	distribute(t, "8000|0|0|0|0|1000")
	id = mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	assert.Equal(t, "active", mustCall(t, ownerAddress, contract.ProposalStateView, id))

	// bob's 40% joins, turnout hits 100%, quorum clears
	mustCall(t, memberBob, contract.ProposalVote, id+"|1")
	assert.Equal(t, "succeeded", mustCall(t, ownerAddress, contract.ProposalStateView, id))
}

func TestAbsoluteFloorsAndMajority(t *testing.T) {
	// absolute turnout floor above anything a lone voter can reach
	distribute(t, "0|700|0|0|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	assert.Equal(t, "active", mustCall(t, ownerAddress, contract.ProposalStateView, id))

	// yes floor defeats a proposal that clears quorum with too few FOR votes
	distribute(t, "0|0|500|0|0|1000")
	id = mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, memberBob, contract.ProposalVote, id+"|1")
	assert.Equal(t, "defeated", mustCall(t, ownerAddress, contract.ProposalStateView, id))

	// majority: FOR must strictly exceed AGAINST
	distribute(t, "0|0|0|0|0|1000")
	mustCall(t, ownerAddress, contract.TokenTransfer, memberCarol+"|200")
	sdk.MockTick()
	id = mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, memberBob, contract.ProposalVote, id+"|1")
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|0")
	assert.Equal(t, "defeated", mustCall(t, ownerAddress, contract.ProposalStateView, id))
}

func TestAbstainCountsForTurnoutOnly(t *testing.T) {
	distribute(t, "8000|0|0|0|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustCall(t, memberBob, contract.ProposalVote, id+"|2")
	// abstain pushed turnout over quorum without adding FOR votes
	assert.Equal(t, "succeeded", mustCall(t, ownerAddress, contract.ProposalStateView, id))

	p := viewJSON(t, contract.GetProposal, id)
	assert.Equal(t, float64(600), p["for"])
	assert.Equal(t, float64(400), p["abstain"])
	assert.Equal(t, "600", mustCall(t, ownerAddress, contract.GetReceiptSupply, id+"|1"))
	assert.Equal(t, "400", mustCall(t, ownerAddress, contract.GetReceiptSupply, id+"|2"))
}

func TestDoubleVoteRejected(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustFail(t, ownerAddress, contract.ProposalVote, id+"|0", "validity_error")
}

func TestVoteRequiresSnapshotPower(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalOpen, id)

	// carol gets shares after the snapshot; her power there is still zero
	mustCall(t, ownerAddress, contract.TokenTransfer, memberCarol+"|100")
	sdk.MockTick()
	mustFail(t, memberCarol, contract.ProposalVote, id+"|1", "validity_error")
}

func TestOpenIsIdempotent(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalOpen, id)
	first := viewJSON(t, contract.GetProposal, id)

	sdk.MockTick()
	mustCall(t, ownerAddress, contract.ProposalOpen, id)
	second := viewJSON(t, contract.GetProposal, id)
	assert.Equal(t, first["snapshot_height"], second["snapshot_height"])
	assert.Equal(t, first["created_at"], second["created_at"])
}

func TestTTLExpiry(t *testing.T) {
	distribute(t, "5000|0|0|3600|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")

	sdk.MockSetTimestamp("1700003601")
	assert.Equal(t, "expired", mustCall(t, ownerAddress, contract.ProposalStateView, id))
	mustFail(t, memberBob, contract.ProposalVote, id+"|1", "state_error")
	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "state_error")
}

func TestTimelockQueueThenExecute(t *testing.T) {
	distribute(t, "5000|0|0|0|600|1000")
	intent := governanceIntent("set_quorum_bps|4000", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")

	// first execute only queues
	assert.Equal(t, "queued", mustCall(t, ownerAddress, contract.ProposalExecute, intent))
	assert.Equal(t, "queued", mustCall(t, ownerAddress, contract.ProposalStateView, id))
	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "state_error")

	// a queued proposal does not expire while it waits
	sdk.MockSetTimestamp("1700000300")
	assert.Equal(t, "queued", mustCall(t, ownerAddress, contract.ProposalStateView, id))

	sdk.MockSetTimestamp("1700000601")
	mustCall(t, ownerAddress, contract.ProposalExecute, intent)
	assert.Equal(t, "executed", mustCall(t, ownerAddress, contract.ProposalStateView, id))
	cfg := viewJSON(t, contract.GetConfig, "")
	assert.Equal(t, float64(4000), cfg["quorum_bps"])
}

func TestExplicitQueueStampsOnce(t *testing.T) {
	distribute(t, "5000|0|0|0|600|1000")
	intent := governanceIntent("set_quorum_bps|4000", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)

	// nothing to queue while turnout still sits under quorum
	mustCall(t, memberBob, contract.ProposalVote, id+"|1")
	assert.Equal(t, "not queueable", mustCall(t, memberBob, contract.ProposalQueue, id))

	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	assert.Equal(t, "queued", mustCall(t, memberBob, contract.ProposalQueue, id))
	first := viewJSON(t, contract.GetProposal, id)["queued_at"]

	// while the timelock runs the proposal reads as queued, not succeeded
	sdk.MockSetTimestamp("1700000100")
	assert.Equal(t, "not queueable", mustCall(t, memberBob, contract.ProposalQueue, id))

	// re-queueing after the delay keeps the original stamp
	sdk.MockSetTimestamp("1700000601")
	assert.Equal(t, "queued", mustCall(t, memberBob, contract.ProposalQueue, id))
	assert.Equal(t, first, viewJSON(t, contract.GetProposal, id)["queued_at"])
}

func TestExecutedLatchBlocksReplay(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	intent := governanceIntent("set_ttl|60", 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustCall(t, ownerAddress, contract.ProposalExecute, intent)

	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "state_error")
	mustFail(t, memberBob, contract.ProposalVote, id+"|1", "state_error")
	assert.Equal(t, "executed", mustCall(t, ownerAddress, contract.ProposalStateView, id))
}

func TestExternalInvokeIntent(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	var gotMethod, gotPayload string
	sdk.MockSetCallHook(func(contractId, method, payload string) *string {
		gotMethod = method
		gotPayload = payload
		ok := "ok"
		return &ok
	})

	intent := "0|contract:other|0|1|do_thing|argA|argB"
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	assert.Equal(t, "ok", mustCall(t, ownerAddress, contract.ProposalExecute, intent))
	assert.Equal(t, "do_thing", gotMethod)
	assert.Equal(t, "argA|argB", gotPayload)
}

func TestRevertedExternalCallRollsBack(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	sdk.MockSetCallHook(func(contractId, method, payload string) *string {
		return nil // callee reverted
	})

	intent := "0|contract:other|0|1|do_thing|x"
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "external_call_error")
	// the latch rolled back with everything else
	assert.Equal(t, "succeeded", mustCall(t, ownerAddress, contract.ProposalStateView, id))
}

func TestReentrantCallbackAborts(t *testing.T) {
	distribute(t, "5000|0|0|0|0|1000")
	intent := "0|contract:other|0|1|do_thing|x"
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")

	sdk.MockSetCallHook(func(contractId, method, payload string) *string {
		// callee tries to loop back into a guarded entry point
		p := "hbd,hive"
		return contract.RageQuit(&p)
	})
	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "state_error")
}
