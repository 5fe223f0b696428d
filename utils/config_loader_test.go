package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ooextract.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output.Basename != "spectra" || cfg.Extract.MemberPrefix != "ps_" || cfg.Extract.MinProcessedChildren != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
output:
  basename: leaves
extract:
  references: true
  sort_by_sample: true
logging:
  level: debug
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Output.Basename = "leaves"
	want.Extract.References = true
	want.Extract.SortBySample = true
	want.Logging.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
	if _, err := LoadConfig(writeConfig(t, "output: [unclosed")); err == nil {
		t.Error("bad yaml: expected error")
	}

	path := writeConfig(t, `
output:
  basename: ""
extract:
  min_processed_children: -1
logging:
  level: loud
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("invalid values: expected error")
	}
	for _, part := range []string{"basename", "min_processed_children", "logging.level"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %s", err, part)
		}
	}
}
