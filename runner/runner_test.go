package runner

import (
	"testing"
	"time"

	"github.com/katalvlaran/deadstate/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineOfFour() []classify.Transaction {
	return []classify.Transaction{
		{Kind: classify.TxAdd, V1: 0, V2: 1},
		{Kind: classify.TxClose, V1: 0},
		{Kind: classify.TxAdd, V1: 1, V2: 2},
		{Kind: classify.TxClose, V1: 1},
		{Kind: classify.TxAdd, V1: 2, V2: 3},
		{Kind: classify.TxClose, V1: 2},
		{Kind: classify.TxClose, V1: 3},
	}
}

func TestRunLineOfFourEndsAllDead(t *testing.T) {
	res, err := Run("simple", lineOfFour())
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Output.Dead)
	assert.Empty(t, res.Output.Open)
	assert.Empty(t, res.Output.Unknown)
	assert.Empty(t, res.Output.Live)
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	_, err := Run("nonexistent", lineOfFour())
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRunWithExpectedOutputMarksCorrect(t *testing.T) {
	res, err := Run("naive", lineOfFour(), WithExpected(Output{Dead: []int{0, 1, 2, 3}}))
	require.NoError(t, err)
	require.NotNil(t, res.Correct)
	assert.True(t, *res.Correct)
}

func TestRunWithExpectedOutputMarksIncorrect(t *testing.T) {
	res, err := Run("naive", lineOfFour(), WithExpected(Output{Dead: []int{0, 1, 2}, Open: []int{3}}))
	require.NoError(t, err)
	require.NotNil(t, res.Correct)
	assert.False(t, *res.Correct)
}

func TestRunWithZeroTimeoutNeverTimesOut(t *testing.T) {
	res, err := Run("bfgt", lineOfFour(), WithTimeout(0))
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
}

func TestRunWithElapsedTimeoutReportsTimeout(t *testing.T) {
	res, err := Run("jump", lineOfFour(), WithTimeout(time.Nanosecond))
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
}

func TestCompareAgreesOnLineOfFour(t *testing.T) {
	results, divergences, err := Compare(lineOfFour())
	require.NoError(t, err)
	assert.Len(t, results, len(AlgorithmNames()))
	assert.Empty(t, divergences)
}

func TestDecodeTransactionLogRoundTrips(t *testing.T) {
	raw := []byte(`[
		{"kind":"add","u":0,"v":1},
		{"kind":"close","v":0},
		{"kind":"live","v":1},
		{"kind":"not_reachable","u":0,"v":1}
	]`)
	txs, err := DecodeTransactionLog(raw)
	require.NoError(t, err)
	require.Len(t, txs, 4)
	assert.Equal(t, classify.TxAdd, txs[0].Kind)
	assert.Equal(t, classify.TxClose, txs[1].Kind)
	assert.Equal(t, classify.TxLive, txs[2].Kind)
	assert.Equal(t, classify.TxNotReachable, txs[3].Kind)
}

func TestDecodeTransactionLogRejectsUnknownKind(t *testing.T) {
	raw := []byte(`[{"kind":"teleport","v":0}]`)
	_, err := DecodeTransactionLog(raw)
	assert.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestDecodeTransactionLogRejectsMissingField(t *testing.T) {
	raw := []byte(`[{"kind":"add","u":0}]`)
	_, err := DecodeTransactionLog(raw)
	assert.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestDecodeExpectedOutputRoundTrips(t *testing.T) {
	raw := []byte(`{"open":[3],"unknown":[],"dead":[0,1,2],"live":[]}`)
	out, err := DecodeExpectedOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out.Open)
	assert.Equal(t, []int{0, 1, 2}, out.Dead)
}
