//go:build debug

package editor

import "testing"

func TestAssertfDebugPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("assertf should panic in debug builds")
		}
	}()
	assertf(false, "selection size %d", 2)
}
