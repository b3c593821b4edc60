package rules

import (
	"math"
	"strings"
	"testing"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region helpers

// torsoFrame positions shoulders and hips so the mid-hip → mid-shoulder
// vector is exactly (dx, dy).
func torsoFrame(dx, dy float64) pose.Frame {
	return frameWith(map[pose.Joint]geom.Point{
		pose.LeftHip:       {X: 0.45, Y: 0.5},
		pose.RightHip:      {X: 0.55, Y: 0.5},
		pose.LeftShoulder:  {X: 0.45 + dx, Y: 0.5 + dy},
		pose.RightShoulder: {X: 0.55 + dx, Y: 0.5 + dy},
	})
}

// #endregion helpers

// #region posture-tests

func TestEvaluatePosture_Upright(t *testing.T) {
	verdict, err := EvaluatePosture(torsoFrame(0, -0.3), DefaultPostureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Tilt != 0.0 {
		t.Errorf("expected tilt 0 for vertical torso, got %v", verdict.Tilt)
	}
	if !verdict.OK {
		t.Errorf("expected pass, got %+v", verdict)
	}
}

func TestEvaluatePosture_Horizontal(t *testing.T) {
	verdict, err := EvaluatePosture(torsoFrame(0.3, 0), DefaultPostureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(verdict.Tilt-90.0) > 1e-9 {
		t.Errorf("expected tilt 90 for horizontal torso, got %v", verdict.Tilt)
	}
	if verdict.OK {
		t.Errorf("expected fail at 90°, got %+v", verdict)
	}
}

func TestEvaluatePosture_SlightLean(t *testing.T) {
	// ~11.3° lean: tan(11.3°) ≈ 0.2, still inside the 12° default.
	verdict, err := EvaluatePosture(torsoFrame(0.06, -0.3), DefaultPostureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.OK {
		t.Errorf("expected pass at ~11.3°, got %+v", verdict)
	}

	// ~16.7° lean fails.
	verdict, err = EvaluatePosture(torsoFrame(0.09, -0.3), DefaultPostureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.OK {
		t.Errorf("expected fail at ~16.7°, got %+v", verdict)
	}
}

func TestEvaluatePosture_Message(t *testing.T) {
	verdict, err := EvaluatePosture(torsoFrame(0, -0.3), DefaultPostureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(verdict.Message, "torso tilt 0.0°") {
		t.Errorf("unexpected message: %q", verdict.Message)
	}
	if !strings.Contains(verdict.Message, "<=12°") {
		t.Errorf("message should carry the threshold: %q", verdict.Message)
	}
}

func TestEvaluatePosture_DegenerateTorso(t *testing.T) {
	// Shoulders collapsed onto hips: zero-length torso vector resolves to
	// tilt 0 by the geometry convention, not an error.
	verdict, err := EvaluatePosture(torsoFrame(0, 0), DefaultPostureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Tilt != 0.0 || !verdict.OK {
		t.Errorf("expected degenerate torso to pass with tilt 0, got %+v", verdict)
	}
}

func TestEvaluatePosture_InvalidFrame(t *testing.T) {
	if _, err := EvaluatePosture(pose.Frame{}, DefaultPostureConfig()); err == nil {
		t.Fatal("expected error for empty frame")
	}
}

// #endregion posture-tests
