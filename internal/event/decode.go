package event

import "encoding/json"

// DecodePayload decodes an event payload into T. Payloads published through
// the in-process MemoryBus arrive as the concrete struct and pass the type
// assertion directly; payloads replayed from the dead-letter file or other
// serialized sources fall back to a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
