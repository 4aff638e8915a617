package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"snapgov/contract"
	"snapgov/sdk"
)

func TestInitSeedsConfigAndMint(t *testing.T) {
	setupEngine(t, "6000|5|2|3600|60|1000")

	cfg := viewJSON(t, contract.GetConfig, "")
	assert.Equal(t, ownerAddress, cfg["owner"])
	assert.Equal(t, float64(6000), cfg["quorum_bps"])
	assert.Equal(t, float64(5), cfg["quorum_abs"])
	assert.Equal(t, float64(2), cfg["yes_floor"])
	assert.Equal(t, float64(3600), cfg["ttl_secs"])
	assert.Equal(t, float64(60), cfg["timelock_secs"])
	assert.Equal(t, false, cfg["ragequit_enabled"])

	assert.Equal(t, "1000", balanceOf(t, ownerAddress))
	assert.Equal(t, "1000", mustCall(t, ownerAddress, contract.GetSupply, ""))
}

func TestInitDefaultsAndReinitRejected(t *testing.T) {
	setupEngine(t, "")

	cfg := viewJSON(t, contract.GetConfig, "")
	assert.Equal(t, float64(5000), cfg["quorum_bps"])
	assert.Equal(t, float64(60*60*24*7), cfg["ttl_secs"])
	assert.Equal(t, float64(0), cfg["timelock_secs"])

	mustFail(t, ownerAddress, contract.ContractInit, "5000|0|0|0|0|0", "state_error")
}

func TestConfigApplyRequiresSelf(t *testing.T) {
	setupEngine(t, "|||||1000")

	mustFail(t, ownerAddress, contract.ConfigApply, "set_quorum_bps|1", "auth_error")
	mustFail(t, outsider, contract.PermitSet, "00|1|replace", "auth_error")
	mustFail(t, outsider, contract.FutarchyOpen, "00|hive", "auth_error")
}

func TestGovernanceUpdatesConfig(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|1000")

	runGovernance(t, ownerAddress, "set_quorum_bps|7500", 1)
	cfg := viewJSON(t, contract.GetConfig, "")
	assert.Equal(t, float64(7500), cfg["quorum_bps"])

	// a bad action aborts inside the execute and rolls the latch back
	intent := governanceIntent("set_quorum_bps|20000", 2)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustFail(t, ownerAddress, contract.ProposalExecute, intent, "validity_error")
	assert.Equal(t, "succeeded", mustCall(t, ownerAddress, contract.ProposalStateView, id))
}

func TestEpochBumpOrphansPendingDigests(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|1000")

	before := mustCall(t, ownerAddress, contract.ProposalId, governanceIntent("set_ttl|3600", 9))
	runGovernance(t, ownerAddress, "bump_epoch", 1)
	after := mustCall(t, ownerAddress, contract.ProposalId, governanceIntent("set_ttl|3600", 9))
	assert.NotEqual(t, before, after)
}

func TestGovernanceMintAndTransferLock(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|1000")

	runGovernance(t, ownerAddress, "mint|"+memberBob+"|200", 1)
	assert.Equal(t, "200", balanceOf(t, memberBob))
	assert.Equal(t, "1200", mustCall(t, ownerAddress, contract.GetSupply, ""))

	mintHeight := sdk.MockHeight()
	sdk.MockTick()
	assert.Equal(t, "1000", mustCall(t, ownerAddress, contract.GetSupplyAt, "1"))
	assert.Equal(t, "1200", mustCall(t, ownerAddress, contract.GetSupplyAt, fmt.Sprintf("%d", mintHeight)))

	runGovernance(t, ownerAddress, "set_transfer_lock|true", 2)
	mustFail(t, ownerAddress, contract.TokenTransfer, memberBob+"|10", "state_error")
}

func TestTreasuryTransferIntent(t *testing.T) {
	setupEngine(t, "5000|0|0|0|0|1000")
	sdk.MockSetBalance(sdk.Address(sdk.MockContractId()), sdk.AssetHive, 500)

	intent := transferIntent(memberCarol, 300, 1)
	id := mustCall(t, ownerAddress, contract.ProposalId, intent)
	mustCall(t, ownerAddress, contract.ProposalVote, id+"|1")
	mustCall(t, ownerAddress, contract.ProposalExecute, intent)

	assert.Equal(t, int64(300), sdk.GetBalance(memberCarol, sdk.AssetHive))
	assert.Equal(t, int64(200), sdk.GetBalance(sdk.Address(sdk.MockContractId()), sdk.AssetHive))
}
