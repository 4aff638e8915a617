package sdk

// Env is the execution environment snapshot the host hands to an invocation.
type Env struct {
	ContractId  string
	TxId        string
	Index       uint64
	OpIndex     uint64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}

// Sender describes the account behind the current transaction.
type Sender struct {
	Address       Address   `json:"address"`
	RequiredAuths []Address `json:"required_auths,omitempty"`
}

// Intent is a signed side-authorization attached to the transaction, for
// example a transfer.allow that lets the contract draw funds.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// ContractCallOptions tunes cross-contract calls.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}
