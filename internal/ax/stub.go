//go:build !darwin || !cgo

package ax

// NewProvider reports that live menu introspection is unavailable; the
// collector degrades to the static and file-based sources with a warning.
func NewProvider() (Provider, error) {
	return nil, ErrUnsupported
}
