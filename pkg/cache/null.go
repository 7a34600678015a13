package cache

// Null is a no-op store that never retains anything.
// It is used when caching is disabled; every lookup is a miss.
type Null struct{}

// NewNull creates a null store.
func NewNull() Store {
	return Null{}
}

// Get always returns a cache miss.
func (Null) Get(string) (any, bool) { return nil, false }

// Set does nothing.
func (Null) Set(string, any) {}

// Clear does nothing.
func (Null) Clear() {}

// Ensure Null implements Store.
var _ Store = Null{}
