package checkin

import (
	"encoding/json"
	"fmt"
)

// EncodeCollection serializes check-ins as a JSON array in the given order.
func EncodeCollection(items []CheckIn) ([]byte, error) {
	if items == nil {
		items = []CheckIn{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encoding check-ins: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a blob written by EncodeCollection.
func DecodeCollection(data []byte) ([]CheckIn, error) {
	var items []CheckIn
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}
	if items == nil {
		items = []CheckIn{}
	}
	return items, nil
}
