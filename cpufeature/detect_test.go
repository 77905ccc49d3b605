package cpufeature_test

import (
	"testing"

	"github.com/arborist-go/phylocore/cpufeature"
)

func TestDetectIsStableAcrossCalls(t *testing.T) {
	first := cpufeature.Detect()
	for i := 0; i < 100; i++ {
		if cpufeature.Detect() != first {
			t.Fatalf("Detect() changed value across calls")
		}
	}
}
