package contract

import "snapgov/sdk"

// -----------------------------------------------------------------------------
// Share token: every mutation flows through mint/burn/transfer below so the
// checkpoint ledger and the membership tracker can never drift from balances.
// -----------------------------------------------------------------------------

func balanceOf(addr sdk.Address) Amount {
	return getAmount(balanceKey(addr))
}

func totalSupply() Amount {
	return getAmount(supplyKey())
}

// creditShares raises a balance and routes the voting-power delta through the
// receiver's current distribution.
func creditShares(addr sdk.Address, amount Amount) {
	setAmount(balanceKey(addr), balanceOf(addr)+amount)
	routePowerDelta(addr, amount)
	updateMembership(addr)
}

// debitShares lowers a balance, aborting on insufficient funds before any
// state is touched.
func debitShares(addr sdk.Address, amount Amount) {
	bal := balanceOf(addr)
	if bal < amount {
		abortArithmetic("insufficient share balance")
	}
	setAmount(balanceKey(addr), bal-amount)
	routePowerDelta(addr, -amount)
	updateMembership(addr)
}

func mintShares(to sdk.Address, amount Amount) {
	if amount <= 0 {
		abortValidity("mint amount must be positive")
	}
	creditShares(to, amount)
	supply := totalSupply() + amount
	setAmount(supplyKey(), supply)
	pushCheckpoint(supplyCheckpointsKey(), currentHeight(), supply)
}

func burnShares(from sdk.Address, amount Amount) {
	if amount <= 0 {
		abortValidity("burn amount must be positive")
	}
	debitShares(from, amount)
	supply := totalSupply() - amount
	if supply < 0 {
		abortArithmetic("supply underflow")
	}
	setAmount(supplyKey(), supply)
	pushCheckpoint(supplyCheckpointsKey(), currentHeight(), supply)
	emitSharesBurned(AddressToString(from), amount)
}

func transferShares(from, to sdk.Address, amount Amount) {
	if amount <= 0 {
		abortValidity("transfer amount must be positive")
	}
	debitShares(from, amount)
	creditShares(to, amount)
}

// TokenTransfer moves shares between participants. Blocked while governance
// holds the transfer lock.
// Example payload: TokenTransfer(strptr("hive:bob|250"))
//
//go:wasmexport token_transfer
func TokenTransfer(payload *string) *string {
	raw := unwrapPayload(payload, "transfer payload required")
	parts := splitFields(raw, 2)
	to := AddressFromString(parts[0])
	if !to.IsValid() {
		abortValidity("invalid recipient")
	}
	amount := parseAmountField(parts[1], "transfer amount")

	cfg := loadConfig()
	if cfg.TransferLocked {
		abortState("transfers are locked")
	}
	from := getSenderAddress()
	transferShares(from, to, amount)
	emitSharesMoved(AddressToString(from), AddressToString(to), amount)
	return strptr("transferred")
}
