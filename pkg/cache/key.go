package cache

import (
	"encoding/json"
	"fmt"
)

// Key derives the cache key for a request to endpoint with params.
//
// The key format is "<endpoint>:<json>", where the JSON rendering of params
// has its object keys sorted at every level. Two parameter maps holding the
// same entries therefore always produce the same key. A nil params map
// yields "<endpoint>:" with an empty parameter portion; an empty non-nil map
// yields "<endpoint>:{}".
func Key(endpoint string, params map[string]any) string {
	if params == nil {
		return endpoint + ":"
	}
	// encoding/json writes map keys in sorted order.
	data, err := json.Marshal(params)
	if err != nil {
		// Params only ever hold strings and numbers; fall back to fmt's
		// map printing, which is also key-sorted.
		return fmt.Sprintf("%s:%v", endpoint, params)
	}
	return endpoint + ":" + string(data)
}
