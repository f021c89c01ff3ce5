package lwwset

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
)

// Codec converts entry values to and from bytes for EncodeStore and
// DecodeStore. Timestamps and keys are encoded by the snapshot itself.
type Codec[V any] interface {
	Marshal(value V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

// BytesCodec stores []byte values as they are. The encoded snapshot aliases
// the values, so they must not be modified until encoding is done.
type BytesCodec struct{}

func (BytesCodec) Marshal(value []byte) ([]byte, error) { return value, nil }

func (BytesCodec) Unmarshal(data []byte) ([]byte, error) { return data, nil }

// StringCodec stores string values as their UTF-8 bytes.
type StringCodec struct{}

func (StringCodec) Marshal(value string) ([]byte, error) { return []byte(value), nil }

func (StringCodec) Unmarshal(data []byte) (string, error) { return string(data), nil }

// GobCodec encodes each value with its own gob stream. Interface-typed
// values need gob.Register for their concrete types.
type GobCodec[V any] struct{}

func (GobCodec[V]) Marshal(value V) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec[V]) Unmarshal(data []byte) (V, error) {
	var value V
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value)
	return value, err
}

// JSONCodec encodes values with encoding/json, for snapshots that are read
// outside Go.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Marshal(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (JSONCodec[V]) Unmarshal(data []byte) (V, error) {
	var value V
	err := json.Unmarshal(data, &value)
	return value, err
}
