package contract_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgov/contract"
	"snapgov/sdk"
)

const (
	ownerAddress = "hive:alice"
	memberBob    = "hive:bob"
	memberCarol  = "hive:carol"
	outsider     = "hive:outsider"
)

var txCounter int

// nextTxId gives every invocation a fresh tx.id so the per-tx env cache
// refreshes, mirroring distinct transactions on chain.
func nextTxId() string {
	txCounter++
	return fmt.Sprintf("tx-%d", txCounter)
}

// invoke runs one export as the given sender with full chain semantics:
// state snapshots on entry and rolls back if the call aborts.
func invoke(as sdk.Address, fn func(*string) *string, payload string) (result *string, abort *sdk.HostAbort) {
	restore := sdk.MockSnapshot()
	sdk.MockSetSender(as)
	sdk.MockSetTxId(nextTxId())
	defer contract.GuardReset()
	defer func() {
		if r := recover(); r != nil {
			ha, ok := r.(sdk.HostAbort)
			if !ok {
				panic(r)
			}
			restore()
			result = nil
			abort = &ha
		}
	}()
	p := payload
	result = fn(&p)
	return
}

// mustCall asserts the invocation succeeds and returns its result string.
func mustCall(t *testing.T, as sdk.Address, fn func(*string) *string, payload string) string {
	t.Helper()
	res, abort := invoke(as, fn, payload)
	require.Nil(t, abort, "unexpected abort: %v", abort)
	require.NotNil(t, res)
	return *res
}

// mustFail asserts the invocation aborts with the given error symbol.
func mustFail(t *testing.T, as sdk.Address, fn func(*string) *string, payload string, symbol string) string {
	t.Helper()
	res, abort := invoke(as, fn, payload)
	require.Nil(t, res)
	require.NotNil(t, abort, "expected abort with symbol %q", symbol)
	if symbol != "" {
		assert.Equal(t, symbol, abort.Symbol, "wrong symbol, message was: %s", abort.Msg)
	}
	return abort.Msg
}

// setupEngine resets the mock host, initializes the engine and advances one
// tick so the init batch is committed history.
func setupEngine(t *testing.T, initPayload string) {
	t.Helper()
	sdk.MockReset()
	contract.GuardReset()
	mustCall(t, ownerAddress, contract.ContractInit, initPayload)
	sdk.MockTick()
}

// runGovernance drives an engine-targeted action through the full vote path:
// open, vote FOR with the sender's whole snapshot power, execute.
func runGovernance(t *testing.T, as sdk.Address, action string, nonce uint64) string {
	t.Helper()
	intent := governanceIntent(action, nonce)
	id := mustCall(t, as, contract.ProposalId, intent)
	mustCall(t, as, contract.ProposalVote, id+"|1")
	return mustCall(t, as, contract.ProposalExecute, intent)
}

// governanceIntent builds an invoke intent targeting the engine itself.
func governanceIntent(action string, nonce uint64) string {
	return fmt.Sprintf("0|%s|0|%d|%s", sdk.MockContractId(), nonce, action)
}

// transferIntent builds a plain asset-transfer intent payload.
func transferIntent(to string, value int64, nonce uint64) string {
	return fmt.Sprintf("1|%s|%d|%d|", to, value, nonce)
}

// viewJSON runs a view export and decodes its JSON answer.
func viewJSON(t *testing.T, fn func(*string) *string, payload string) map[string]any {
	t.Helper()
	raw := mustCall(t, ownerAddress, fn, payload)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

// balanceOf reads a share balance through the view export.
func balanceOf(t *testing.T, addr string) string {
	t.Helper()
	return mustCall(t, ownerAddress, contract.GetBalance, addr)
}

// allowDraw attaches a transfer.allow intent for the next invocations.
func allowDraw(limit int64, asset sdk.Asset) {
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": fmt.Sprintf("%d", limit), "token": asset.String()},
	}})
}

func clearIntents() {
	sdk.MockSetIntents(nil)
}
