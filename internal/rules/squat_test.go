package rules

import (
	"math"
	"strings"
	"testing"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region squat-tests

func TestEvaluateSquat_GoodForm(t *testing.T) {
	verdict, err := EvaluateSquat(uprightSquatFrame(), DefaultSquatConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.OK || !verdict.Left.OK || !verdict.Right.OK {
		t.Fatalf("expected full pass, got %+v", verdict)
	}
	if math.Abs(verdict.Left.KneeAngle-90.0) > 1e-6 {
		t.Errorf("expected left knee ~90°, got %v", verdict.Left.KneeAngle)
	}
	if verdict.TorsoTilt != 0.0 {
		t.Errorf("expected torso tilt 0, got %v", verdict.TorsoTilt)
	}
	if verdict.Left.KneeOver != 0.0 {
		t.Errorf("expected knee over ankle, got %v", verdict.Left.KneeOver)
	}
}

func TestEvaluateSquat_ShallowKnee(t *testing.T) {
	f := uprightSquatFrame()
	// Straighten the left leg: hip, knee, ankle collinear → 180°.
	f.Landmarks[pose.LeftHip] = pose.Landmark{X: 0.53, Y: 0.3, Visibility: 1}
	f.Landmarks[pose.LeftShoulder] = pose.Landmark{X: 0.53, Y: 0.1, Visibility: 1}
	f.Landmarks[pose.RightShoulder] = pose.Landmark{X: 0.62, Y: 0.3, Visibility: 1}

	verdict, err := EvaluateSquat(f, DefaultSquatConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Left.OK {
		t.Errorf("expected left fail at %v°, got pass", verdict.Left.KneeAngle)
	}
	if verdict.Left.KneeAngle <= DefaultSquatConfig().MaxKneeAngle {
		t.Errorf("test setup broken: left knee %v not shallow", verdict.Left.KneeAngle)
	}
	if verdict.OK {
		t.Error("combined verdict must fail when one side fails")
	}
}

func TestEvaluateSquat_KneePastTolerance(t *testing.T) {
	f := uprightSquatFrame()
	// Push the left ankle back so the knee travels far past it.
	f.Landmarks[pose.LeftAnkle] = pose.Landmark{X: 0.33, Y: 0.7, Visibility: 1}

	verdict, err := EvaluateSquat(f, DefaultSquatConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Left.OK {
		t.Errorf("expected left fail with knee over %v, got pass", verdict.Left.KneeOver)
	}
	if math.Abs(verdict.Left.KneeOver-0.2) > 1e-9 {
		t.Errorf("expected signed knee-over 0.2, got %v", verdict.Left.KneeOver)
	}
	if !verdict.Right.OK {
		t.Errorf("right side should be unaffected, got %+v", verdict.Right)
	}
	if verdict.OK {
		t.Error("combined verdict must fail")
	}
}

func TestEvaluateSquat_LeaningTorsoFailsBothSides(t *testing.T) {
	f := uprightSquatFrame()
	// Shove both shoulders far forward: tilt well past 25°.
	f.Landmarks[pose.LeftShoulder] = pose.Landmark{X: 0.68, Y: 0.35, Visibility: 1}
	f.Landmarks[pose.RightShoulder] = pose.Landmark{X: 0.92, Y: 0.35, Visibility: 1}

	verdict, err := EvaluateSquat(f, DefaultSquatConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.TorsoTilt <= DefaultSquatConfig().MaxTorsoTilt {
		t.Fatalf("test setup broken: tilt %v not past threshold", verdict.TorsoTilt)
	}
	if verdict.Left.OK || verdict.Right.OK || verdict.OK {
		t.Errorf("torso lean must fail both sides, got %+v", verdict)
	}
}

func TestEvaluateSquat_Messages(t *testing.T) {
	verdict, err := EvaluateSquat(uprightSquatFrame(), DefaultSquatConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(verdict.Left.Message, "L knee") {
		t.Errorf("unexpected left message: %q", verdict.Left.Message)
	}
	if !strings.HasPrefix(verdict.Right.Message, "R knee") {
		t.Errorf("unexpected right message: %q", verdict.Right.Message)
	}
	if !strings.Contains(verdict.Message, "depth L:") {
		t.Errorf("unexpected combined message: %q", verdict.Message)
	}
}

func TestEvaluateSquat_InvalidFrame(t *testing.T) {
	short := pose.Frame{Landmarks: make([]pose.Landmark, pose.LandmarkCount-1)}
	if _, err := EvaluateSquat(short, DefaultSquatConfig()); err == nil {
		t.Fatal("expected error for malformed frame")
	}
}

// #endregion squat-tests
