//go:build !debug_heapsim

package memutils

// DebugValidate no-ops unless the debug_heapsim build tag is present.
func DebugValidate(validatable Validatable) {
}
