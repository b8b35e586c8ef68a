package cache

// ArtifactKeyOpts are the render parameters an artifact depends on besides
// the keymap table.
type ArtifactKeyOpts struct {
	Geometry  string  `json:"geometry"`
	Scale     float64 `json:"scale"`
	Format    string  `json:"format"`
	StyleHash string  `json:"style,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey addresses a rendered artifact by the hash of the keymap
	// table it was drawn from.
	ArtifactKey(tableHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", tableHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so several users of one cache
// backend keep separate namespaces:
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
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(tableHash, opts)
}
