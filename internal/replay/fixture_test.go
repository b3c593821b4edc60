package replay

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
)

// #region fixture-tests

// TestFixture_SquatSession loads the squat_session fixture, runs Replay(),
// and compares every pinned verdict against the engine's output. This is the
// primary regression test — if geometry or thresholds change, this catches
// drift.
func TestFixture_SquatSession(t *testing.T) {
	fixturePath := filepath.Join("testdata", "squat_session.json")
	f, err := LoadFixture(fixturePath)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	if len(f.Frames) == 0 || len(f.Expected) == 0 {
		t.Fatal("fixture must carry frames and expectations")
	}

	results := Replay(f.ToFrames(), f.Config.ToRulesConfig())

	if len(results) != len(f.Frames) {
		t.Fatalf("expected %d results, got %d", len(f.Frames), len(results))
	}
	for _, m := range Compare(f, results) {
		t.Errorf("frame %d %s/%s: expected ok=%v, got ok=%v (%s)",
			m.FrameIndex, m.Rule, m.Side, m.Expected, m.Actual, m.Reason)
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestFixtureConfig_OverlaysOnDefaults(t *testing.T) {
	over := 0.3
	var fc FixtureConfig
	fc.Squat.MaxKneeOver = &over

	got := fc.ToRulesConfig()
	if got.Squat.MaxKneeOver != 0.3 {
		t.Errorf("expected knee-over override 0.3, got %v", got.Squat.MaxKneeOver)
	}
	if got.Posture != rules.DefaultPostureConfig() {
		t.Errorf("posture config should stay default, got %+v", got.Posture)
	}
}

// #endregion fixture-tests
