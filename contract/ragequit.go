package contract

import (
	"strings"

	"snapgov/sdk"
)

// RageQuit burns the caller's entire share balance and pays out a pro-rata
// slice of every listed treasury asset. The asset list must be strictly
// ascending, which rules out duplicates without a set. Payouts divide
// against the pre-burn supply and round down; dust stays in the treasury.
// Example payload: RageQuit(strptr("hbd,hive"))
//
//go:wasmexport ragequit
func RageQuit(payload *string) *string {
	release := enterGuard()
	defer release()

	cfg := loadConfig()
	if !cfg.RageQuitEnabled {
		abortState("ragequit disabled")
	}
	assets := parseAssetList(unwrapPayload(payload, "asset list required"))

	holder := getSenderAddress()
	burn := balanceOf(holder)
	if burn <= 0 {
		abortArithmetic("no shares to burn")
	}
	supply := totalSupply()

	for _, asset := range assets {
		pool := Amount(sdk.GetBalance(contractAddress(), asset))
		if pool <= 0 {
			continue
		}
		payout := mulDiv(burn, pool, supply)
		if payout > 0 {
			sdk.HiveTransfer(holder, int64(payout), asset)
		}
	}
	burnShares(holder, burn)
	emitRageQuit(AddressToString(holder), burn)
	return strptr("quit")
}

// parseAssetList decodes a comma list of assets, enforcing strict ascent.
func parseAssetList(raw string) []sdk.Asset {
	names := splitList(raw)
	assets := make([]sdk.Asset, 0, len(names))
	prev := ""
	for _, name := range names {
		name = strings.TrimSpace(name)
		asset := sdk.Asset(name)
		if asset != sdk.AssetHive && asset != sdk.AssetHbd {
			abortValidity("unknown treasury asset")
		}
		if prev != "" && name <= prev {
			abortValidity("asset list must be strictly ascending")
		}
		prev = name
		assets = append(assets, asset)
	}
	return assets
}
