package request

import "encoding/json"

// EncodeBody converts the ordered key=value pairs into a flat JSON
// object of string entries. A key appearing more than once keeps the
// value of its last occurrence. Values are never coerced; a
// numeric-looking value stays a string.
func EncodeBody(pairs []KVPair) ([]byte, error) {
	body := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		body[pair.Key] = pair.Value
	}

	return json.Marshal(body)
}
