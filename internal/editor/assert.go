package editor

import (
	"fmt"
	"log"
)

// assertf reports a broken host contract. Debug builds panic; release builds
// log and keep drawing.
func assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if debugBuild {
		panic(msg)
	}
	log.Printf("editor: assertion failed: %s", msg)
}
