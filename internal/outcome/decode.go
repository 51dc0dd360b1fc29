package outcome

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// UnmarshalJSON accepts scores as numbers or as text. Anything unusable
// decodes to 0, so the resolver only ever sees non-negative integers.
func (s *Set) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("invalid set: %w", err)
	}
	s.fromMap(raw)
	return nil
}

// DecodeMsgpack is the msgpack counterpart of UnmarshalJSON.
func (s *Set) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterface()
	if err != nil {
		return err
	}
	raw, ok := v.(map[string]any)
	if !ok && v != nil {
		return fmt.Errorf("invalid set: %T", v)
	}
	s.fromMap(raw)
	return nil
}

func (s *Set) fromMap(raw map[string]any) {
	s.Home = scoreOf(raw["home"])
	s.Guest = scoreOf(raw["guest"])
}

func scoreOf(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case string:
		return ParseScore(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return clampScore(i)
		}
		if f, err := n.Float64(); err == nil {
			return scoreOf(f)
		}
		return 0
	case int8:
		return clampScore(int64(n))
	case int16:
		return clampScore(int64(n))
	case int32:
		return clampScore(int64(n))
	case int64:
		return clampScore(n)
	case int:
		return clampScore(int64(n))
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return clampScore(int64(n))
	case uint64:
		if n > math.MaxInt32 {
			return 0
		}
		return int(n)
	case float32:
		return scoreOf(float64(n))
	case float64:
		if n < 0 || n > math.MaxInt32 || math.IsNaN(n) {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}

func clampScore(n int64) int {
	if n < 0 || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}
