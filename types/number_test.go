package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var n Number

	require.NoError(t, json.Unmarshal([]byte(`"16987.01"`), &n))
	assert.Equal(t, "16987.01", n.String())

	require.NoError(t, json.Unmarshal([]byte(`16980`), &n))
	assert.Equal(t, "16980", n.String())

	require.NoError(t, json.Unmarshal([]byte(`0.002`), &n))
	assert.Equal(t, "0.002", n.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.True(t, n.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.True(t, n.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"volume"`), &n))
}

func TestNumberPrecisionPreserved(t *testing.T) {
	t.Parallel()
	// 0.1 is not representable as a binary float; the decimal string must
	// survive a decode/encode round trip untouched.
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`"0.10000000"`), &n))
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `"0.1"`, string(out))
	assert.True(t, n.Equal(decimal.RequireFromString("0.1")))
}

func TestNumberFromString(t *testing.T) {
	t.Parallel()
	n, err := NumberFromString("411.626")
	require.NoError(t, err)
	assert.Equal(t, "411.626", n.String())

	_, err = NumberFromString("not-a-number")
	assert.Error(t, err)
}

func TestNumberInStruct(t *testing.T) {
	t.Parallel()
	target := struct {
		Bid Number `json:"bid"`
		Ask Number `json:"ask"`
	}{}
	// CEX.IO tickers mix quoted and unquoted numerics in one payload.
	require.NoError(t, json.Unmarshal([]byte(`{"bid":16980,"ask":"16987.01"}`), &target))
	assert.Equal(t, "16980", target.Bid.String())
	assert.Equal(t, "16987.01", target.Ask.String())
}
