package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgov/sdk"
)

var hostResets int

func resetHost(height uint64) {
	sdk.MockReset()
	guardReset()
	sdk.MockSetHeight(height)
	// unique tx.id per reset so the per-tx env cache refreshes
	hostResets++
	sdk.MockSetTxId("cp-test-" + UInt64ToString(uint64(hostResets)))
}

func TestPushCheckpointDedupAndInPlaceUpdate(t *testing.T) {
	resetHost(5)
	key := powerCheckpointsKey("hive:cp")

	pushCheckpoint(key, 3, 100)
	pushCheckpoint(key, 3, 150) // same height updates in place
	pushCheckpoint(key, 4, 150) // same value is dropped
	pushCheckpoint(key, 4, 200)

	cps := loadCheckpoints(key)
	require.Len(t, cps, 2)
	assert.Equal(t, Checkpoint{Height: 3, Power: 150}, cps[0])
	assert.Equal(t, Checkpoint{Height: 4, Power: 200}, cps[1])
}

func TestCheckpointAtBinarySearch(t *testing.T) {
	resetHost(100)
	key := powerCheckpointsKey("hive:cp")
	pushCheckpoint(key, 10, 1)
	pushCheckpoint(key, 20, 2)
	pushCheckpoint(key, 30, 3)
	pushCheckpoint(key, 40, 4)

	assert.Equal(t, Amount(0), checkpointAt(key, 9))
	assert.Equal(t, Amount(1), checkpointAt(key, 10))
	assert.Equal(t, Amount(1), checkpointAt(key, 19))
	assert.Equal(t, Amount(2), checkpointAt(key, 29))
	assert.Equal(t, Amount(3), checkpointAt(key, 30))
	assert.Equal(t, Amount(4), checkpointAt(key, 99))
}

func TestCheckpointHeightRegressionAborts(t *testing.T) {
	resetHost(50)
	key := powerCheckpointsKey("hive:cp")
	pushCheckpoint(key, 40, 1)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		guardReset()
	}()
	pushCheckpoint(key, 39, 2)
}

func TestDistributionPortionsConserveAmount(t *testing.T) {
	dist := []SplitEntry{
		{Delegate: "hive:a", WeightBps: 3333},
		{Delegate: "hive:b", WeightBps: 3333},
		{Delegate: "hive:c", WeightBps: 3334},
	}
	for _, amount := range []Amount{1, 7, 100, 9999, -1, -7, -9999} {
		portions := distributionPortions(dist, amount)
		var sum Amount
		for _, p := range portions {
			sum += p
		}
		assert.Equal(t, amount, sum, "amount %d must split without loss", amount)
	}
}

func TestIntentDigestSensitivity(t *testing.T) {
	resetHost(5)
	saveConfig(&Config{Owner: "hive:alice"})

	base := ExecIntent{Op: OpInvoke, Target: "contract:other", Value: 0, Payload: "do|x", Nonce: 1}
	d1 := intentDigest(&base)
	assert.Equal(t, d1, intentDigest(&base), "digest must be deterministic")

	bumped := base
	bumped.Nonce = 2
	assert.NotEqual(t, d1, intentDigest(&bumped))

	changed := base
	changed.Payload = "do|y"
	assert.NotEqual(t, d1, intentDigest(&changed))

	valued := base
	valued.Value = 1
	assert.NotEqual(t, d1, intentDigest(&valued))

	saveConfig(&Config{Owner: "hive:alice", Epoch: 1})
	assert.NotEqual(t, d1, intentDigest(&base), "epoch salts the digest")
}

func TestDigestHexRoundTrip(t *testing.T) {
	resetHost(5)
	saveConfig(&Config{Owner: "hive:alice"})
	in := ExecIntent{Op: OpTransfer, Target: "hive:bob", Value: 10, Nonce: 3}
	d := intentDigest(&in)
	assert.Equal(t, d, digestFromHex(d.Hex()))
	assert.Len(t, d.Hex(), 64)
}
