package contract

import (
	"strings"

	"snapgov/sdk"
)

// SharesBuy mints shares against a configured sale price. The buyer states
// how many shares they want and the ceiling they will pay; the exact cost
// comes off a transfer.allow intent in the same transaction.
// Example payload: SharesBuy(strptr("100|1000"))
//
//go:wasmexport shares_buy
func SharesBuy(payload *string) *string {
	release := enterGuard()
	defer release()

	cfg := loadConfig()
	if !cfg.SaleOpen {
		abortState("sale closed")
	}
	parts := splitFields(unwrapPayload(payload, "buy payload required"), 2)
	shares := parseAmountField(parts[0], "share count")
	if shares <= 0 {
		abortValidity("share count must be positive")
	}
	maxPay := parseAmountField(parts[1], "max payment")
	cost := checkedMul(shares, cfg.SalePrice)
	if cost > maxPay {
		abortValidity("cost exceeds stated maximum")
	}
	allow := getFirstTransferAllow()
	if allow == nil || allow.Token != cfg.SaleAsset {
		abortAuth("missing transfer intent for sale asset")
	}
	if allow.Limit < cost {
		abortAuth("transfer intent limit too low")
	}
	sdk.HiveDraw(int64(cost), cfg.SaleAsset)

	buyer := getSenderAddress()
	mintShares(buyer, shares)
	emitSharesBought(AddressToString(buyer), shares, cost, cfg.SaleAsset)
	return strptr("bought")
}

// AllowanceClaim draws a stated amount off a previously granted treasury
// allowance. Claiming more than remains is an arithmetic underflow; partial
// claims leave the remainder in place.
// Example payload: AllowanceClaim(strptr("40|hive"))
//
//go:wasmexport allowance_claim
func AllowanceClaim(payload *string) *string {
	release := enterGuard()
	defer release()

	parts := splitFields(unwrapPayload(payload, "claim payload required"), 2)
	amount := parseAmountField(parts[0], "claim amount")
	if amount <= 0 {
		abortValidity("claim amount must be positive")
	}
	asset := sdk.Asset(strings.TrimSpace(parts[1]))
	if asset != sdk.AssetHive && asset != sdk.AssetHbd {
		abortValidity("unknown allowance asset")
	}
	to := getSenderAddress()
	k := allowanceKey(to, asset)
	granted := getAmount(k)
	if amount > granted {
		abortArithmetic("claim exceeds allowance")
	}
	setAmount(k, granted-amount)
	sdk.HiveTransfer(to, int64(amount), asset)
	emitAllowanceClaimed(AddressToString(to), amount, asset)
	return strptr(AmountToString(amount))
}
