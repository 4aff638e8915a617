package contract

import (
	"strings"

	"snapgov/sdk"
)

// Futarchy markets attach a funded prediction pool to an intent digest.
// Voters earn per-stance receipts when they vote; once the market resolves,
// holders of the winning side's receipts split the pool pro rata.

func loadFutarchy(id Digest) *Futarchy {
	ptr := sdk.StateGetObject(futarchyKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	f, err := DecodeFutarchy([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode futarchy market")
	}
	return f
}

func saveFutarchy(id Digest, f *Futarchy) {
	sdk.StateSetObject(futarchyKey(id), string(EncodeFutarchy(f)))
}

// applyFutarchyOpenAction creates a market on a digest: "digest|asset".
// Reached through governance, so only a passed proposal or permit opens one.
func applyFutarchyOpenAction(args string) *string {
	parts := splitFields(args, 2)
	id := digestFromHex(parts[0])
	asset := sdk.Asset(strings.TrimSpace(parts[1]))
	if asset != sdk.AssetHive && asset != sdk.AssetHbd {
		abortValidity("unknown market asset")
	}
	if loadFutarchy(id) != nil {
		abortState("market already open")
	}
	if isExecuted(id) {
		abortState("intent already executed")
	}
	saveFutarchy(id, &Futarchy{Enabled: true, Asset: asset})
	emitFutarchyOpened(id.Hex(), asset)
	return strptr("market open")
}

// FutarchyOpen is the export wrapper; engine-only like the other
// governance mutations.
// Example payload: FutarchyOpen(strptr("9f2c...|hive"))
//
//go:wasmexport futarchy_open
func FutarchyOpen(payload *string) *string {
	requireSelf()
	return applyFutarchyOpenAction(unwrapPayload(payload, "market payload required"))
}

// FutarchyFund pulls the caller's staked amount into the pool. The deposit
// rides on a transfer.allow intent; the market asset must match it.
// Example payload: FutarchyFund(strptr("9f2c...|250"))
//
//go:wasmexport futarchy_fund
func FutarchyFund(payload *string) *string {
	release := enterGuard()
	defer release()

	parts := splitFields(unwrapPayload(payload, "fund payload required"), 2)
	id := digestFromHex(parts[0])
	amount := parseAmountField(parts[1], "fund amount")
	if amount <= 0 {
		abortValidity("fund amount must be positive")
	}
	f := loadFutarchy(id)
	if f == nil || !f.Enabled {
		abortState("no open market")
	}
	if f.Resolved {
		abortState("market already resolved")
	}
	allow := getFirstTransferAllow()
	if allow == nil || allow.Token != f.Asset {
		abortAuth("missing transfer intent for market asset")
	}
	if allow.Limit < amount {
		abortAuth("transfer intent limit too low")
	}
	sdk.HiveDraw(int64(amount), f.Asset)
	f.Pool += amount
	saveFutarchy(id, f)
	emitFutarchyFunded(id.Hex(), AddressToString(getSenderAddress()), amount)
	return strptr("funded")
}

// resolveFutarchyMarket fixes the winning stance and the payout rate. It is
// a no-op when there is no market or it already resolved, which lets the
// execute paths call it unconditionally. A market whose winning side has no
// receipt supply strands its pool in the treasury.
func resolveFutarchyMarket(id Digest, winning Stance) {
	f := loadFutarchy(id)
	if f == nil || !f.Enabled || f.Resolved {
		return
	}
	f.Resolved = true
	f.Winning = winning
	f.WinningSupply = receiptSupply(id, winning)
	if f.WinningSupply > 0 {
		f.PayoutPerUnit = f.Pool / f.WinningSupply
	}
	saveFutarchy(id, f)
	emitFutarchyResolved(id.Hex(), winning)
}

// FutarchyResolveNo settles a market on the losing side once the underlying
// proposal has expired. Anyone may call it. A losing tally alone is not
// enough: until the TTL runs out later votes can still flip it, so without
// a TTL the market only ever resolves through the execute paths.
// Example payload: FutarchyResolveNo(strptr("9f2c..."))
//
//go:wasmexport futarchy_resolve_no
func FutarchyResolveNo(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	f := loadFutarchy(id)
	if f == nil || !f.Enabled {
		abortState("no open market")
	}
	if f.Resolved {
		abortState("market already resolved")
	}
	if proposalStateOf(id) != ProposalExpired {
		abortState("proposal has not expired")
	}
	resolveFutarchyMarket(id, StanceAgainst)
	return strptr("resolved no")
}

// FutarchyCashout burns a chosen slice of the caller's winning receipts for
// the matching share of the pool. Receipts on the losing side stay where
// they are and pay nothing.
// Example payload: FutarchyCashout(strptr("9f2c...|20"))
//
//go:wasmexport futarchy_cashout
func FutarchyCashout(payload *string) *string {
	release := enterGuard()
	defer release()

	parts := splitFields(unwrapPayload(payload, "cashout payload required"), 2)
	id := digestFromHex(parts[0])
	amount := parseAmountField(parts[1], "cashout amount")
	if amount <= 0 {
		abortValidity("cashout amount must be positive")
	}
	f := loadFutarchy(id)
	if f == nil || !f.Resolved {
		abortState("market not resolved")
	}
	holder := getSenderAddress()
	burnReceipt(id, f.Winning, holder, amount)
	payout := checkedMul(amount, f.PayoutPerUnit)
	if payout > 0 {
		sdk.HiveTransfer(holder, int64(payout), f.Asset)
	}
	emitFutarchyCashout(id.Hex(), AddressToString(holder), payout)
	return strptr(AmountToString(payout))
}
