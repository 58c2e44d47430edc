//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap round-trips a request DTO through JSON into a map and applies the
// given mutations, so validation tests can drop or corrupt single fields.
func DtoMap(t *testing.T, v any, mutations ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, mutate := range mutations {
		mutate(m)
	}
	return m
}
