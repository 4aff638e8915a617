package contract

// GuardReset lets the native test harness drop the invocation lock after a
// recovered abort, the way a fresh wasm instance would on chain.
func GuardReset() { guardReset() }
