package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/runtype/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("value %v at %s\n", ir.FromSlice([]*ir.Node{ir.FromInt(1)}), "root")
	if got := buf.String(); got != "value [1] at root\n" {
		t.Errorf("Logf wrote %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("RT_TEST_SWITCH", "true")
	if !boolEnv("RT_TEST_SWITCH") {
		t.Errorf("expected switch on")
	}
	t.Setenv("RT_TEST_SWITCH", "nope")
	if boolEnv("RT_TEST_SWITCH") {
		t.Errorf("unparsable value should be off")
	}
}
