package cache

// ScopedKeyer wraps a Keyer with a prefix, so that the CLI and the HTTP
// server (or separate tenants) can share one backend without sharing
// entries.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BuildKey returns the inner key with the prefix prepended.
func (k *ScopedKeyer) BuildKey(sourceHash string, opts BuildKeyOpts) string {
	return k.prefix + k.inner.BuildKey(sourceHash, opts)
}
