package lwwset

import (
	"bytes"
	"cmp"
	"encoding/gob"
	"fmt"
	"slices"
)

const snapshotVersion = 1

type snapshot struct {
	Version int
	Records []snapshotRecord
}

type snapshotRecord struct {
	Key       string
	Value     []byte
	Timestamp int64
}

// EncodeStore serializes every entry of s. Records are sorted by key so equal
// stores encode to equal bytes. Sending or persisting the result is up to the
// caller.
func EncodeStore[K ~string, V any](codec Codec[V], s *Store[K, V]) ([]byte, error) {
	if codec == nil {
		return nil, fmt.Errorf("lwwset: codec cannot be nil")
	}
	records := make([]snapshotRecord, 0, s.Len())
	for key, entry := range s.Entries() {
		value, err := codec.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("lwwset: marshal %q: %w", string(key), err)
		}
		records = append(records, snapshotRecord{
			Key:       string(key),
			Value:     value,
			Timestamp: entry.Timestamp,
		})
	}
	slices.SortFunc(records, func(a, b snapshotRecord) int {
		return cmp.Compare(a.Key, b.Key)
	})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snapshot{
		Version: snapshotVersion,
		Records: records,
	}); err != nil {
		return nil, fmt.Errorf("lwwset: encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeStore rebuilds a Store from EncodeStore output by replaying Set for
// every record.
func DecodeStore[K ~string, V any](codec Codec[V], data []byte) (*Store[K, V], error) {
	if codec == nil {
		return nil, fmt.Errorf("lwwset: codec cannot be nil")
	}
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("lwwset: decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("lwwset: unsupported snapshot version %d", snap.Version)
	}
	s := NewStore[K, V]()
	for _, record := range snap.Records {
		value, err := codec.Unmarshal(record.Value)
		if err != nil {
			return nil, fmt.Errorf("lwwset: unmarshal %q: %w", record.Key, err)
		}
		s.Set(K(record.Key), NewEntry(value, record.Timestamp))
	}
	return s, nil
}
