package rules

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region evaluate-squat

// EvaluateSquat checks squat form: knee angle (hip-knee-ankle) per side,
// shared torso tilt, and the signed knee-over-ankle x offset (a side-view
// heuristic whose sign depends on camera orientation). The combined verdict
// is the AND of both sides.
func EvaluateSquat(frame pose.Frame, config SquatConfig) (SquatVerdict, error) {
	tilt, err := torsoTilt(frame)
	if err != nil {
		return SquatVerdict{}, err
	}

	left, err := squatSide(frame, SideLeft, tilt, config)
	if err != nil {
		return SquatVerdict{}, err
	}
	right, err := squatSide(frame, SideRight, tilt, config)
	if err != nil {
		return SquatVerdict{}, err
	}

	ok := left.OK && right.OK
	return SquatVerdict{
		Left:      left,
		Right:     right,
		TorsoTilt: tilt,
		OK:        ok,
		Message: fmt.Sprintf("torso %.1f° (<= %g°), depth L:%.1f R:%.1f",
			tilt, config.MaxTorsoTilt, left.KneeAngle, right.KneeAngle),
	}, nil
}

// #endregion evaluate-squat

// #region squat-side

func squatSide(frame pose.Frame, side Side, tilt float64, config SquatConfig) (SquatSideVerdict, error) {
	hipJ, kneeJ, ankleJ := legJoints(side)

	hip, err := frame.PointAt(hipJ)
	if err != nil {
		return SquatSideVerdict{}, err
	}
	knee, err := frame.PointAt(kneeJ)
	if err != nil {
		return SquatSideVerdict{}, err
	}
	ankle, err := frame.PointAt(ankleJ)
	if err != nil {
		return SquatSideVerdict{}, err
	}

	kneeAngle := geom.AngleAtVertex(hip, knee, ankle)
	kneeOver := knee.X - ankle.X

	ok := kneeAngle <= config.MaxKneeAngle &&
		math.Abs(kneeOver) <= config.MaxKneeOver &&
		tilt <= config.MaxTorsoTilt

	label := "L"
	if side == SideRight {
		label = "R"
	}
	return SquatSideVerdict{
		Side:      side,
		KneeAngle: kneeAngle,
		KneeOver:  kneeOver,
		OK:        ok,
		Message:   fmt.Sprintf("%s knee %.1f°, over %.3f", label, kneeAngle, kneeOver),
	}, nil
}

// legJoints returns the hip/knee/ankle joints for a side.
func legJoints(side Side) (pose.Joint, pose.Joint, pose.Joint) {
	if side == SideLeft {
		return pose.LeftHip, pose.LeftKnee, pose.LeftAnkle
	}
	return pose.RightHip, pose.RightKnee, pose.RightAnkle
}

// #endregion squat-side
