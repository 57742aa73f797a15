package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-script/pkg/script"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every script under testdata/fixtures through Run and
// snapshots its rendered result, mirroring the teacher's fixture-driven
// interpreter tests.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.script")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("expected at least one fixture script")
	}
	for _, path := range paths {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			result := script.Run(string(src))
			if result.Err != nil {
				t.Fatalf("Run(%s): %v", name, result.Err)
			}
			snaps.MatchSnapshot(t, result.Output, result.Value.String())
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
