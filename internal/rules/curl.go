package rules

import (
	"fmt"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region evaluate-curl

// EvaluateCurl checks the elbow angle (shoulder-elbow-wrist) per side.
// Known limitation: a single frame cannot distinguish a held position from a
// completed repetition, so the pass band is deliberately wide — it catches
// hyperextension and over-curl, nothing more.
func EvaluateCurl(frame pose.Frame, config CurlConfig) ([]CurlVerdict, error) {
	verdicts := make([]CurlVerdict, 0, len(Sides))
	for _, side := range Sides {
		shoulder, elbow, wrist, err := armPoints(frame, side)
		if err != nil {
			return nil, err
		}
		angle := geom.AngleAtVertex(shoulder, elbow, wrist)
		ok := angle >= config.MinAngle && angle <= config.MaxAngle
		verdicts = append(verdicts, CurlVerdict{
			Side:    side,
			Angle:   angle,
			OK:      ok,
			Message: fmt.Sprintf("%s elbow angle %.1f°", side, angle),
		})
	}
	return verdicts, nil
}

// #endregion evaluate-curl

// #region arm-helpers

// armJoints returns the shoulder/elbow/wrist joints for a side.
func armJoints(side Side) (pose.Joint, pose.Joint, pose.Joint) {
	if side == SideLeft {
		return pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist
	}
	return pose.RightShoulder, pose.RightElbow, pose.RightWrist
}

// armPoints resolves the arm triangle for a side.
func armPoints(frame pose.Frame, side Side) (shoulder, elbow, wrist geom.Point, err error) {
	sh, el, wr := armJoints(side)
	if shoulder, err = frame.PointAt(sh); err != nil {
		return
	}
	if elbow, err = frame.PointAt(el); err != nil {
		return
	}
	wrist, err = frame.PointAt(wr)
	return
}

// #endregion arm-helpers
