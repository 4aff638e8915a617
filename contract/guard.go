package contract

import "snapgov/sdk"

// Reentrancy guard. The host serializes invocations and resets the wasm
// instance between them, so a plain package-level flag is exactly the
// "ephemeral storage" lock: it can never leak into a later invocation.
// External calls made from inside a guarded operation that loop back into
// another guarded entry point hit the flag and abort.
var guardHeld bool

// enterGuard takes the invocation lock or aborts if a reentrant call already
// holds it. Callers must defer the returned release on the outermost frame.
func enterGuard() func() {
	if guardHeld {
		sdk.Revert("reentrant call", errState)
	}
	guardHeld = true
	return func() { guardHeld = false }
}

// guardReset is only for the native test harness, which reuses one process
// for many invocations and needs abort paths to drop the lock.
func guardReset() { guardHeld = false }
