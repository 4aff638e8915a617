package contract

import (
	"strconv"
	"strings"

	"snapgov/sdk"
)

// -----------------------------------------------------------------------------
// Abort helpers, one per error category
// -----------------------------------------------------------------------------

func abortAuth(msg string)       { sdk.Revert(msg, errAuth) }
func abortValidity(msg string)   { sdk.Revert(msg, errValidity) }
func abortState(msg string)      { sdk.Revert(msg, errState) }
func abortArithmetic(msg string) { sdk.Revert(msg, errArithmetic) }
func abortExternal(msg string)   { sdk.Revert(msg, errExternal) }

// requireSelf gates governance operations: config changes are proposals, so
// the only legitimate caller is the engine itself via its own execute path.
func requireSelf() {
	if getSenderAddress() != contractAddress() {
		abortAuth("caller is not the engine")
	}
}

// -----------------------------------------------------------------------------
// Checked arithmetic
// -----------------------------------------------------------------------------

// checkedMul multiplies two non-negative amounts and aborts on overflow
// instead of wrapping. Price and ratio math funnels through here.
func checkedMul(a, b Amount) Amount {
	if a < 0 || b < 0 {
		abortArithmetic("negative amount")
	}
	if a == 0 || b == 0 {
		return 0
	}
	prod := a * b
	if prod/b != a {
		abortArithmetic("multiplication overflow")
	}
	return prod
}

// mulDiv computes floor(a*b/den) with the overflow check on the product.
func mulDiv(a, b, den Amount) Amount {
	if den <= 0 {
		abortArithmetic("zero denominator")
	}
	return checkedMul(a, b) / den
}

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// -----------------------------------------------------------------------------
// Amount storage (single-value keys kept as decimal strings)
// -----------------------------------------------------------------------------

func getAmount(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt amount at " + key)
	}
	return Amount(n)
}

func setAmount(key string, v Amount) {
	if v == 0 {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, strconv.FormatInt(int64(v), 10))
}

// -----------------------------------------------------------------------------
// Payload parsing (pipe-delimited fields)
// -----------------------------------------------------------------------------

// unwrapPayload dereferences the export payload pointer or aborts with a hint.
func unwrapPayload(payload *string, hint string) string {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		abortValidity(hint)
	}
	return strings.TrimSpace(*payload)
}

// splitFields cuts a pipe-delimited payload and pads missing fields as "".
func splitFields(raw string, want int) []string {
	parts := strings.Split(raw, "|")
	for len(parts) < want {
		parts = append(parts, "")
	}
	return parts
}

func parseUintField(val string, name string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil {
		abortValidity("invalid " + name)
	}
	return v
}

func parseIntField(val string, name string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err != nil {
		abortValidity("invalid " + name)
	}
	return v
}

func parseAmountField(val string, name string) Amount {
	return Amount(parseIntField(val, name))
}

func parseBoolField(val string, name string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		abortValidity("invalid " + name)
		return false
	}
}

// splitList cuts a comma list and trims entries; empty entries are invalid.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			abortValidity("empty list entry")
		}
		out = append(out, p)
	}
	return out
}

// parseSplitEntry decodes one "address:weight" leg. Addresses contain colons
// themselves (hive:bob), so the weight hangs off the last one.
func parseSplitEntry(part string) (sdk.Address, uint64) {
	idx := strings.LastIndex(part, ":")
	if idx <= 0 || idx == len(part)-1 {
		abortValidity("malformed split entry")
	}
	addr := AddressFromString(part[:idx])
	if !addr.IsValid() {
		abortValidity("invalid split delegate")
	}
	weight := parseUintField(part[idx+1:], "split weight")
	if weight == 0 {
		abortValidity("zero split weight")
	}
	return addr, weight
}

// Convenience helper
func strptr(s string) *string { return &s }

// UInt64ToString turns an id back into decimal text for logs or payload building.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

func Int64ToString(val int64) string {
	return strconv.FormatInt(val, 10)
}

func AmountToString(val Amount) string {
	return strconv.FormatInt(int64(val), 10)
}
