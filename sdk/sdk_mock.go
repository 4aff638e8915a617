//go:build !wasm

package sdk

import "fmt"

// Native build: the wasm host is replaced by an in-memory ledger so the
// contract runs under plain `go test`. The mock keeps the same all-or-nothing
// contract as the chain — Abort/Revert panic with a HostAbort and the test
// harness restores the snapshot taken at invocation entry.

// HostAbort is the panic payload raised by Abort/Revert on the native build.
type HostAbort struct {
	Msg    string
	Symbol string
}

func (h HostAbort) Error() string {
	if h.Symbol == "" {
		return h.Msg
	}
	return h.Symbol + ": " + h.Msg
}

type mockHost struct {
	state    map[string]string
	balances map[string]int64 // "<address>|<asset>" -> amount
	env      Env
	logs     []string
	callHook func(contractId, method, payload string) *string
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state:    map[string]string{},
		balances: map[string]int64{},
		env: Env{
			ContractId:  "contract:snapgov",
			TxId:        "tx-0",
			BlockId:     "block-1",
			BlockHeight: 1,
			Timestamp:   "1700000000",
			Sender:      Sender{Address: "hive:alice"},
		},
	}
}

func balKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// Log records the message so tests can assert on emitted events.
func Log(s string) {
	host.logs = append(host.logs, s)
}

// Abort panics with an uncategorized host abort, mirroring env.abort on chain.
func Abort(msg string) {
	panic(HostAbort{Msg: msg})
}

// Revert panics with a symbolized abort, mirroring env.revert on chain.
func Revert(msg string, symbol string) {
	panic(HostAbort{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	host.state[key] = value
}

func StateGetObject(key string) *string {
	v, ok := host.state[key]
	if !ok {
		return nil
	}
	return &v
}

func StateDeleteObject(key string) {
	delete(host.state, key)
}

func GetEnv() Env {
	return host.env
}

func GetEnvKey(key string) *string {
	var v string
	switch key {
	case "contract.id":
		v = host.env.ContractId
	case "tx.id":
		v = host.env.TxId
	case "block.id":
		v = host.env.BlockId
	case "block.height":
		v = fmt.Sprintf("%d", host.env.BlockHeight)
	case "block.timestamp":
		v = host.env.Timestamp
	default:
		return nil
	}
	return &v
}

func GetBalance(address Address, asset Asset) int64 {
	return host.balances[balKey(address, asset)]
}

// HiveDraw pulls funds from the current sender into the contract account.
// The chain enforces the transfer.allow limit; the mock only checks funds.
func HiveDraw(amount int64, asset Asset) {
	from := host.env.Sender.Address
	if host.balances[balKey(from, asset)] < amount {
		Abort("insufficient balance for draw")
	}
	host.balances[balKey(from, asset)] -= amount
	host.balances[balKey(Address(host.env.ContractId), asset)] += amount
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	self := Address(host.env.ContractId)
	if host.balances[balKey(self, asset)] < amount {
		Abort("insufficient contract balance")
	}
	host.balances[balKey(self, asset)] -= amount
	host.balances[balKey(to, asset)] += amount
}

// ContractCall dispatches to the registered hook. A nil return means the
// callee reverted, same as on chain.
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	if host.callHook == nil {
		return nil
	}
	return host.callHook(contractId, method, payload)
}

// --- test controls -----------------------------------------------------------

// MockReset wipes the whole host: state, balances, logs, env back to defaults.
func MockReset() {
	host = newMockHost()
}

func MockSetSender(a Address)       { host.env.Sender.Address = a }
func MockSetHeight(h uint64)        { host.env.BlockHeight = h }
func MockSetTimestamp(ts string)    { host.env.Timestamp = ts }
func MockSetTxId(id string)         { host.env.TxId = id }
func MockSetIntents(in []Intent)    { host.env.Intents = in }
func MockContractId() string        { return host.env.ContractId }
func MockHeight() uint64            { return host.env.BlockHeight }

// MockTick advances the logical clock by one committed batch.
func MockTick() { host.env.BlockHeight++ }

func MockSetBalance(addr Address, asset Asset, amount int64) {
	host.balances[balKey(addr, asset)] = amount
}

// MockSetCallHook registers the callee side for ContractCall. Tests use it
// both for happy-path externals and for reentrancy callbacks.
func MockSetCallHook(hook func(contractId, method, payload string) *string) {
	host.callHook = hook
}

func MockLogs() []string {
	out := make([]string, len(host.logs))
	copy(out, host.logs)
	return out
}

// MockSnapshot captures kv state and balances and returns a restore func,
// used by the test harness to emulate the chain's rollback on abort.
func MockSnapshot() func() {
	state := make(map[string]string, len(host.state))
	for k, v := range host.state {
		state[k] = v
	}
	balances := make(map[string]int64, len(host.balances))
	for k, v := range host.balances {
		balances[k] = v
	}
	return func() {
		host.state = state
		host.balances = balances
	}
}
