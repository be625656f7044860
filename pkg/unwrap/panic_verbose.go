//go:build panicverbose

package unwrap

// terminate panics with the same text that was just logged.
func terminate(msg string) {
	panic(msg)
}
