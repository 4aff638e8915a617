package contract

import (
	"strconv"
	"time"

	"snapgov/sdk"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop memoized data so
// subsequent helper calls (intents, sender, timestamps) see one snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnv.TxId = currentTx
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress is the engine's own identity; self-gated operations compare
// the sender against this.
func contractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// currentHeight is the logical clock tick of the in-flight invocation.
func currentHeight() uint64 {
	return currentEnv().BlockHeight
}

// nowUnix returns the block timestamp in seconds. It prefers the cached env
// and falls back to the dedicated env key.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// getFirstTransferAllow scans the tx intents and returns the first valid
// transfer.allow as a TransferAllow. The cache clears automatically whenever
// currentEnv() detects a new transaction.
func getFirstTransferAllow() *TransferAllow {
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentEnv().Intents {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			limitStr := intent.Args["limit"]
			limit, err := strconv.ParseInt(limitStr, 10, 64)
			if err != nil {
				abortValidity("invalid intent limit")
			}
			ta := &TransferAllow{
				Limit: Amount(limit),
				Token: sdk.Asset(token),
			}
			cachedTransfer = ta
			return ta
		}
	}
	return nil
}
