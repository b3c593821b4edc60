package rules

import (
	"fmt"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region evaluate-posture

// EvaluatePosture estimates torso lean from the mid-hip → mid-shoulder
// vector against vertical. Smaller deviation means a more upright back.
func EvaluatePosture(frame pose.Frame, config PostureConfig) (PostureVerdict, error) {
	tilt, err := torsoTilt(frame)
	if err != nil {
		return PostureVerdict{}, err
	}
	ok := tilt <= config.MaxTilt
	return PostureVerdict{
		Tilt:    tilt,
		OK:      ok,
		Message: fmt.Sprintf("torso tilt %.1f° (<=%g° recommended)", tilt, config.MaxTilt),
	}, nil
}

// #endregion evaluate-posture

// #region torso-helpers

// torsoTilt computes the angle between the mid-hip → mid-shoulder vector and
// vertical. Shared by the posture and squat rules.
func torsoTilt(frame pose.Frame) (float64, error) {
	leftSh, err := frame.PointAt(pose.LeftShoulder)
	if err != nil {
		return 0, err
	}
	rightSh, err := frame.PointAt(pose.RightShoulder)
	if err != nil {
		return 0, err
	}
	leftHip, err := frame.PointAt(pose.LeftHip)
	if err != nil {
		return 0, err
	}
	rightHip, err := frame.PointAt(pose.RightHip)
	if err != nil {
		return 0, err
	}

	midShoulder := geom.Midpoint(leftSh, rightSh)
	midHip := geom.Midpoint(leftHip, rightHip)
	return geom.TiltFromVertical(midShoulder.Sub(midHip)), nil
}

// #endregion torso-helpers
