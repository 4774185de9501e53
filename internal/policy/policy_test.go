package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsLookup(t *testing.T) {
	set := Defaults()

	p, ok := set.Lookup("dc")
	if !ok {
		t.Fatal("expected dc to be known")
	}
	if p.AutoSealWaitYears != 10 {
		t.Fatalf("expected 10-year automatic sealing wait, got %d", p.AutoSealWaitYears)
	}
	if p.MotionSealMisdemeanorWaitYears != 5 {
		t.Fatalf("expected 5-year motion sealing wait, got %d", p.MotionSealMisdemeanorWaitYears)
	}
	if p.MotionSealFTAFelonyWaitYears != 8 {
		t.Fatalf("expected 8-year FTA felony wait, got %d", p.MotionSealFTAFelonyWaitYears)
	}
}

func TestUnknownJurisdictionFallsBack(t *testing.T) {
	set := Defaults()

	p, ok := set.Lookup("atlantis")
	if ok {
		t.Fatal("expected unknown jurisdiction to report false")
	}
	if p.Jurisdiction != "dc" {
		t.Fatalf("expected fallback to dc, got %s", p.Jurisdiction)
	}
}

func TestDecriminalizedForClassAndKeyword(t *testing.T) {
	set := Defaults()
	p, _ := set.Lookup("dc")

	if dec := p.DecriminalizedFor("marijuana_possession", ""); dec == nil {
		t.Fatal("expected class match")
	}
	if dec := p.DecriminalizedFor("", "Possession of Cannabis"); dec == nil {
		t.Fatal("expected keyword match on offense text")
	}
	if dec := p.DecriminalizedFor("", "Simple Assault"); dec != nil {
		t.Fatalf("expected no match, got %s", dec.Class)
	}
}

func TestLoadAppliesYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := []byte(`
jurisdictions:
  - jurisdiction: md
    courtName: Circuit Court for Montgomery County
    autoSealWaitYears: 7
    motionSealMisdemeanorWaitYears: 3
    motionSealFtaFelonyWaitYears: 6
    youthAgeMax: 21
    motionFilingFee: 50
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RELIEF_POLICY_CONFIG", path)

	set := Load()

	p, ok := set.Lookup("md")
	if !ok {
		t.Fatal("expected md jurisdiction from override file")
	}
	if p.AutoSealWaitYears != 7 {
		t.Fatalf("expected 7-year wait from override, got %d", p.AutoSealWaitYears)
	}

	// Built-in defaults survive alongside the override.
	if _, ok := set.Lookup("dc"); !ok {
		t.Fatal("expected dc defaults to remain")
	}
}

func TestLoadBadFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte("jurisdictions: [not, valid"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RELIEF_POLICY_CONFIG", path)

	set := Load()
	if _, ok := set.Lookup("dc"); !ok {
		t.Fatal("expected defaults after parse failure")
	}
}

func TestFeeForUnknownTypeIsZero(t *testing.T) {
	set := Defaults()
	p, _ := set.Lookup("dc")

	fee := p.FeeFor("no_such_document")
	if fee.Amount != 0 {
		t.Fatalf("expected zero fee, got %v", fee.Amount)
	}
}
