package contract

import (
	"strings"

	"snapgov/sdk"
)

func loadConfig() *Config {
	ptr := sdk.StateGetObject(configKey())
	if ptr == nil || *ptr == "" {
		sdk.Abort("engine not initialized")
	}
	cfg, err := DecodeConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode config")
	}
	return cfg
}

func saveConfig(cfg *Config) {
	sdk.StateSetObject(configKey(), string(EncodeConfig(cfg)))
}

// ConfigApply is the self-call entrypoint for governance actions. Only the
// engine itself may invoke it, which in practice means a passed proposal or
// a spendable permit whose intent targets the engine.
// Example payload: ConfigApply(strptr("set_quorum_bps|6000"))
//
//go:wasmexport config_apply
func ConfigApply(payload *string) *string {
	requireSelf()
	return applyConfigAction(unwrapPayload(payload, "action required"))
}

// applyConfigAction dispatches "action|args...". It is reached either via
// the config_apply export or directly when an executed intent targets the
// engine address.
func applyConfigAction(raw string) *string {
	parts := strings.SplitN(raw, "|", 2)
	action := strings.TrimSpace(parts[0])
	args := ""
	if len(parts) == 2 {
		args = parts[1]
	}
	cfg := loadConfig()

	switch action {
	case "set_quorum_bps":
		v := parseUintField(args, "quorum bps")
		if v > BpsDenom {
			abortValidity("quorum bps above denominator")
		}
		cfg.QuorumBps = v
	case "set_quorum_abs":
		cfg.QuorumAbs = parseAmountField(args, "quorum floor")
	case "set_yes_floor":
		cfg.YesFloor = parseAmountField(args, "yes floor")
	case "set_ttl":
		cfg.TTLSecs = parseIntField(args, "ttl seconds")
	case "set_timelock":
		cfg.TimelockSecs = parseIntField(args, "timelock seconds")
	case "set_ragequit":
		cfg.RageQuitEnabled = parseBoolField(args, "ragequit flag")
	case "set_transfer_lock":
		cfg.TransferLocked = parseBoolField(args, "transfer lock")
	case "set_sale":
		applySaleAction(cfg, args)
	case "set_allowance":
		saveConfig(cfg)
		return applyAllowanceAction(args)
	case "bump_epoch":
		cfg.Epoch++
		saveConfig(cfg)
		emitEpochBumped(cfg.Epoch)
		return strptr("epoch bumped")
	case "mint":
		saveConfig(cfg)
		return applyMintAction(args)
	case "set_permit":
		saveConfig(cfg)
		return applyPermitAction(args)
	case "set_permit_mirror":
		cfg.PermitMirror = parseBoolField(args, "mirror flag")
	case "futarchy_open":
		saveConfig(cfg)
		return applyFutarchyOpenAction(args)
	default:
		abortValidity("unknown config action")
	}
	saveConfig(cfg)
	emitConfigChanged(action)
	return strptr(action)
}

// applySaleAction parses "open|price|asset". A closed sale ignores the rest.
func applySaleAction(cfg *Config, args string) {
	parts := splitFields(args, 3)
	cfg.SaleOpen = parseBoolField(parts[0], "sale flag")
	if !cfg.SaleOpen {
		return
	}
	price := parseAmountField(parts[1], "sale price")
	if price <= 0 {
		abortValidity("sale price must be positive")
	}
	asset := sdk.Asset(strings.TrimSpace(parts[2]))
	if asset != sdk.AssetHive && asset != sdk.AssetHbd {
		abortValidity("unknown sale asset")
	}
	cfg.SalePrice = price
	cfg.SaleAsset = asset
}

// applyMintAction credits fresh shares to an address: "to|amount".
func applyMintAction(args string) *string {
	parts := splitFields(args, 2)
	to := AddressFromString(strings.TrimSpace(parts[0]))
	if !to.IsValid() {
		abortValidity("invalid mint target")
	}
	amount := parseAmountField(parts[1], "mint amount")
	if amount <= 0 {
		abortValidity("mint amount must be positive")
	}
	mintShares(to, amount)
	emitSharesMinted(AddressToString(to), amount)
	return strptr("minted")
}

// applyAllowanceAction grants a claimable treasury allowance: "to|amount|asset".
// Amounts accumulate; a grant of zero clears the entry.
func applyAllowanceAction(args string) *string {
	parts := splitFields(args, 3)
	to := AddressFromString(strings.TrimSpace(parts[0]))
	if !to.IsValid() {
		abortValidity("invalid allowance target")
	}
	amount := parseAmountField(parts[1], "allowance amount")
	if amount < 0 {
		abortValidity("negative allowance")
	}
	asset := sdk.Asset(strings.TrimSpace(parts[2]))
	if asset != sdk.AssetHive && asset != sdk.AssetHbd {
		abortValidity("unknown allowance asset")
	}
	if amount == 0 {
		sdk.StateDeleteObject(allowanceKey(to, asset))
	} else {
		k := allowanceKey(to, asset)
		setAmount(k, getAmount(k)+amount)
	}
	emitConfigChanged("set_allowance")
	return strptr("allowance set")
}
