package main

import (
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable("Inputs", []string{"Input", "Default"}, [][]string{{"max_subtitles", "2"}, {"language_tags"}}, []columnAlignment{alignLeft, alignRight})
	for _, want := range []string{"Inputs", "INPUT", "max_subtitles", "language_tags"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if renderTable("", nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
