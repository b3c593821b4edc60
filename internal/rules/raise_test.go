package rules

import (
	"testing"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region helpers

// tRaiseFrame holds both arms out level with the shoulders, fully extended.
func tRaiseFrame() map[pose.Joint]geom.Point {
	return map[pose.Joint]geom.Point{
		pose.LeftShoulder: {X: 0.4, Y: 0.3},
		pose.LeftElbow:    {X: 0.25, Y: 0.3},
		pose.LeftWrist:    {X: 0.1, Y: 0.3},

		pose.RightShoulder: {X: 0.6, Y: 0.3},
		pose.RightElbow:    {X: 0.75, Y: 0.3},
		pose.RightWrist:    {X: 0.9, Y: 0.3},
	}
}

// #endregion helpers

// #region raise-tests

func TestEvaluateRaise_LevelAndExtended(t *testing.T) {
	verdicts, err := EvaluateRaise(frameWith(tRaiseFrame()), DefaultRaiseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("expected 2 verdicts, got %d", len(verdicts))
	}
	for _, v := range verdicts {
		if !v.OK {
			t.Errorf("%s: expected pass, got %+v", v.Side, v)
		}
		if v.DY != 0 {
			t.Errorf("%s: expected dy 0, got %v", v.Side, v.DY)
		}
	}
}

func TestEvaluateRaise_WristDropped(t *testing.T) {
	points := tRaiseFrame()
	// Drop both wrists well below shoulder level; arms stay straight enough.
	points[pose.LeftWrist] = geom.Point{X: 0.1, Y: 0.55}
	points[pose.RightWrist] = geom.Point{X: 0.9, Y: 0.55}

	verdicts, err := EvaluateRaise(frameWith(points), DefaultRaiseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range verdicts {
		if v.OK {
			t.Errorf("%s: expected fail with dropped wrist, got %+v", v.Side, v)
		}
		if v.DY <= DefaultRaiseConfig().MaxWristOffset {
			t.Errorf("%s: test setup broken, dy %v not past tolerance", v.Side, v.DY)
		}
	}
}

func TestEvaluateRaise_BentElbow(t *testing.T) {
	points := tRaiseFrame()
	// Keep the left wrist level but fold the forearm back toward the body.
	points[pose.LeftWrist] = geom.Point{X: 0.35, Y: 0.3}

	verdicts, err := EvaluateRaise(frameWith(points), DefaultRaiseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdicts[0].OK {
		t.Errorf("left: expected fail with folded elbow, got %+v", verdicts[0])
	}
	if !verdicts[1].OK {
		t.Errorf("right: expected pass, got %+v", verdicts[1])
	}
}

func TestEvaluateRaise_OffsetToleranceInclusive(t *testing.T) {
	// All y values are exact binary fractions, so dy computes to exactly
	// 0.0625 with no rounding. The arm is a straight line (180°).
	points := tRaiseFrame()
	points[pose.LeftShoulder] = geom.Point{X: 0.4, Y: 0.25}
	points[pose.LeftElbow] = geom.Point{X: 0.25, Y: 0.28125}
	points[pose.LeftWrist] = geom.Point{X: 0.1, Y: 0.3125}

	config := DefaultRaiseConfig()
	config.MaxWristOffset = 0.0625

	verdicts, err := EvaluateRaise(frameWith(points), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdicts[0].OK {
		t.Errorf("dy exactly at tolerance must pass, got %+v", verdicts[0])
	}

	config.MaxWristOffset = 0.0624
	verdicts, _ = EvaluateRaise(frameWith(points), config)
	if verdicts[0].OK {
		t.Error("dy above tolerance must fail")
	}
}

func TestEvaluateRaise_InvalidFrame(t *testing.T) {
	if _, err := EvaluateRaise(pose.Frame{}, DefaultRaiseConfig()); err == nil {
		t.Fatal("expected error for empty frame")
	}
}

// #endregion raise-tests
