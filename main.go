////////////////////////////////////////////////////////////////////////////////
// Snapgov: a snapshot-weighted collective decision engine
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "snapgov/contract"
)

// The wasm build exposes the contract entrypoints through //go:wasmexport;
// main itself has nothing to run.
func main() {}
