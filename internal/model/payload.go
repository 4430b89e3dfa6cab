package model

// Payload is an untyped event or object field map. Field names vary per
// contract, so consumers probe an ordered list of candidate keys instead of
// assuming a single name.
type Payload map[string]any

// Lookup returns the first value found under the candidate keys, in order.
// Keys that are absent or hold an empty string are skipped.
func (p Payload) Lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		value, ok := p[key]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		return value, true
	}
	return nil, false
}
