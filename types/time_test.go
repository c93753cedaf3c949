package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var testTime Time

	require.NoError(t, json.Unmarshal([]byte(`0`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`""`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	// seconds
	require.NoError(t, json.Unmarshal([]byte(`"1459161809"`), &testTime))
	assert.Equal(t, time.Unix(1459161809, 0), testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`1459161809`), &testTime))
	assert.Equal(t, time.Unix(1459161809, 0), testTime.Time())

	// milliseconds
	require.NoError(t, json.Unmarshal([]byte(`"1460020144872"`), &testTime))
	assert.Equal(t, time.UnixMilli(1460020144872), testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`1460020144872`), &testTime))
	assert.Equal(t, time.UnixMilli(1460020144872), testTime.Time())

	// fractional seconds are truncated
	require.NoError(t, json.Unmarshal([]byte(`"1459161809.5"`), &testTime))
	assert.Equal(t, time.Unix(1459161809, 0), testTime.Time())

	require.Error(t, json.Unmarshal([]byte(`"abcdefg"`), &testTime))
	require.Error(t, json.Unmarshal([]byte(`"14600201448721234"`), &testTime))
}

func TestTimeInStruct(t *testing.T) {
	t.Parallel()
	target := &struct {
		Timestamp Time `json:"timestamp"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":"1513107533"}`), target))
	assert.Equal(t, time.Unix(1513107533, 0), target.Timestamp.Time())

	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":1513107533}`), target))
	assert.Equal(t, time.Unix(1513107533, 0), target.Timestamp.Time())
}

func TestTimeMarshalJSON(t *testing.T) {
	t.Parallel()
	out, err := json.Marshal(Time(time.Unix(1459161809, 0).UTC()))
	require.NoError(t, err)
	assert.Equal(t, `"2016-03-28T10:43:29Z"`, string(out))
}
