package o1heap

import (
	"os"
	"testing"
)

// TestMain enables assertion panics for the whole suite: the library
// defaults Debug to false so release builds stay silent on detected
// misuse, but the tests want every invariant violation to fail loudly.
func TestMain(m *testing.M) {
	Debug = true
	os.Exit(m.Run())
}
