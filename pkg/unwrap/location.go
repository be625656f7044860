//go:build !loglocation

package unwrap

// locationFields is a no-op unless the loglocation build tag is active.
func locationFields() []Field {
	return nil
}
