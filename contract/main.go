package contract

import (
	"strings"

	"snapgov/sdk"
)

// ContractInit seeds the engine config exactly once. Empty fields fall back
// to the defaults; a non-zero initial mint credits the deployer and opens
// the first supply checkpoint.
// Example payload: ContractInit(strptr("5000|0|0|604800|0|1000"))
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if ptr := sdk.StateGetObject(configKey()); ptr != nil && *ptr != "" {
		abortState("already initialized")
	}
	raw := ""
	if payload != nil {
		raw = strings.TrimSpace(*payload)
	}
	parts := splitFields(raw, 6)

	cfg := &Config{
		Owner:        getSenderAddress(),
		QuorumBps:    FallbackQuorumBps,
		TTLSecs:      FallbackTTLSecs,
		TimelockSecs: FallbackTimelockSecs,
	}
	if strings.TrimSpace(parts[0]) != "" {
		cfg.QuorumBps = parseUintField(parts[0], "quorum bps")
		if cfg.QuorumBps > BpsDenom {
			abortValidity("quorum bps above denominator")
		}
	}
	if strings.TrimSpace(parts[1]) != "" {
		cfg.QuorumAbs = parseAmountField(parts[1], "quorum floor")
	}
	if strings.TrimSpace(parts[2]) != "" {
		cfg.YesFloor = parseAmountField(parts[2], "yes floor")
	}
	if strings.TrimSpace(parts[3]) != "" {
		cfg.TTLSecs = parseIntField(parts[3], "ttl seconds")
	}
	if strings.TrimSpace(parts[4]) != "" {
		cfg.TimelockSecs = parseIntField(parts[4], "timelock seconds")
	}
	saveConfig(cfg)

	if strings.TrimSpace(parts[5]) != "" {
		mint := parseAmountField(parts[5], "initial mint")
		if mint < 0 {
			abortValidity("negative initial mint")
		}
		if mint > 0 {
			mintShares(cfg.Owner, mint)
			emitSharesMinted(AddressToString(cfg.Owner), mint)
		}
	}
	sdk.Log("init|" + AddressToString(cfg.Owner))
	return strptr("initialized")
}
