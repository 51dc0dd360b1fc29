package outcome

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestSetUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Set
	}{
		{"numbers", `{"home":6,"guest":4}`, Set{6, 4}},
		{"text", `{"home":"7","guest":" 6 "}`, Set{7, 6}},
		{"garbage text", `{"home":"six","guest":"4"}`, Set{0, 4}},
		{"negative", `{"home":-3,"guest":6}`, Set{0, 6}},
		{"float", `{"home":6.0,"guest":2}`, Set{6, 2}},
		{"missing fields", `{}`, Set{}},
		{"null", `null`, Set{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Set
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s)
		})
	}

	t.Run("not an object", func(t *testing.T) {
		var s Set
		assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	})
}

func TestSetDecodeMsgpack(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := [3]Set{{6, 2}, {0, 0}, {10, 4}}
		data, err := msgpack.Marshal(in)
		require.NoError(t, err)

		var out [3]Set
		require.NoError(t, msgpack.Unmarshal(data, &out))
		assert.Equal(t, in, out)
		assert.Equal(t, Home, Resolve(out).Winner)
	})

	t.Run("text scores", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{"home": "6", "guest": "x"})
		require.NoError(t, err)
		var s Set
		require.NoError(t, msgpack.Unmarshal(data, &s))
		assert.Equal(t, Set{6, 0}, s)
	})

	t.Run("wrong shape", func(t *testing.T) {
		data, err := msgpack.Marshal("6:4")
		require.NoError(t, err)
		var s Set
		assert.Error(t, msgpack.Unmarshal(data, &s))
	})
}
