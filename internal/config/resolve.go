package config

import "strings"

// Resolve returns the last non-nil layer value, or def when every layer is unset.
func Resolve[T any](def T, layers ...*T) T {
	result := def
	for _, v := range layers {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveAndTrim is Resolve for strings, trimming the winner.
func ResolveAndTrim(def string, layers ...*string) string {
	return strings.TrimSpace(Resolve(def, layers...))
}
