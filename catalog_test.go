package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/llehouerou/encore/internal/catalog"
)

func TestPrintCatalog(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	var buf bytes.Buffer
	if err := printCatalog(&buf, "built-in sample", cat); err != nil {
		t.Fatalf("printCatalog() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"built-in sample", "Tracks:", "9 (", "Albums:", "Daily Mix 1", "Quiet Hours"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
