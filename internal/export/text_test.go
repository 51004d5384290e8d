package export

import (
	"strings"
	"testing"

	"github.com/piwi3910/TrimCut/internal/model"
)

func TestFormatText(t *testing.T) {
	out := FormatText(buildTestResult())

	for _, want := range []string{
		"CUTTING PLAN (kerf 1/8\")",
		"Board A - 120\" stock, 1 cut(s), waste 20\"",
		"Kitchen / North [k1]",
		"30 1/2\"",
		"Hall [h1]",
		"SHOPPING LIST",
		"Total boards: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Index(out, "Board A") > strings.Index(out, "Board B") {
		t.Error("boards should be listed in order")
	}
	if strings.Contains(out, "UNPLACED") {
		t.Error("no unplaced section expected")
	}
}

func TestFormatText_EmptyAndUnplaced(t *testing.T) {
	out := FormatText(model.EmptyResult(0.125))
	if !strings.Contains(out, "No boards needed.") {
		t.Errorf("expected empty message, got:\n%s", out)
	}

	r := buildTestResult()
	r.Unplaced = []model.Cut{{MeasurementID: "bad", Length: 300}}
	out = FormatText(r)
	if !strings.Contains(out, "UNPLACED") || !strings.Contains(out, "300\" bad") {
		t.Errorf("expected unplaced section, got:\n%s", out)
	}
}
