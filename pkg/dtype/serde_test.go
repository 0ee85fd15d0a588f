package dtype

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dt   DataType
	}{
		{"scalar", Int32()},
		{"string", String()},
		{"boolean", Boolean()},
		{"categorical", Categorical()},
		{"unknown", Unknown()},
		{"datetime with zone", Datetime(Microseconds, "UTC")},
		{"datetime without zone", Datetime(Nanoseconds, "")},
		{"duration", Duration(Milliseconds)},
		{"decimal", Decimal(18, 4)},
		{"decimal placeholder", Decimal(0, 0)},
		{"list", List(Int64())},
		{"list placeholder", List(Null())},
		{"deeply nested", List(Array(List(Float32()), 3))},
		{"array", Array(UInt8(), 16)},
		{"object", Object("geometry")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.dt)
			require.NoError(t, err)

			var got DataType
			require.NoError(t, json.Unmarshal(data, &got))
			assert.True(t, got.Equal(tt.dt), "round-trip changed %s into %s", tt.dt, got)
		})
	}
}

func TestDataTypeJSONEncoding(t *testing.T) {
	data, err := json.Marshal(Int32())
	require.NoError(t, err)
	assert.Equal(t, `"int32"`, string(data))

	data, err = json.Marshal(List(Int32()))
	require.NoError(t, err)
	assert.Equal(t, `{"list":"int32"}`, string(data))
}

func TestDataTypeJSONRejectsUnknownNames(t *testing.T) {
	var dt DataType
	assert.Error(t, json.Unmarshal([]byte(`"int128"`), &dt))
	assert.Error(t, json.Unmarshal([]byte(`{"tuple":"int32"}`), &dt))
	assert.Error(t, json.Unmarshal([]byte(`{"datetime":{"unit":"fs"}}`), &dt))
}

func TestFieldJSONRoundTrip(t *testing.T) {
	f := NewField("readings", List(Float64()))
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var got Field
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Equal(f))
}
