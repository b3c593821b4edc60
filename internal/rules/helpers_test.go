package rules

import (
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region test-helpers

// frameWith builds a well-formed 33-landmark frame with the given joints
// placed and full visibility; every other landmark sits at the origin.
func frameWith(points map[pose.Joint]geom.Point) pose.Frame {
	lms := make([]pose.Landmark, pose.LandmarkCount)
	for j, p := range points {
		lms[j] = pose.Landmark{X: p.X, Y: p.Y, Visibility: 1.0}
	}
	f, err := pose.NewFrame(0, lms)
	if err != nil {
		panic(err)
	}
	return f
}

// zeroFrame is an all-zero but well-formed frame, the shape the estimator
// emits when no body is detected.
func zeroFrame() pose.Frame {
	return frameWith(nil)
}

// uprightSquatFrame is a deep, upright squat that passes every squat check:
// both knee angles at 90, knees over ankles, torso vertical.
func uprightSquatFrame() pose.Frame {
	return frameWith(map[pose.Joint]geom.Point{
		pose.LeftShoulder:  {X: 0.38, Y: 0.2},
		pose.RightShoulder: {X: 0.62, Y: 0.2},
		pose.LeftHip:       {X: 0.38, Y: 0.5},
		pose.RightHip:      {X: 0.62, Y: 0.5},
		pose.LeftKnee:      {X: 0.53, Y: 0.5},
		pose.RightKnee:     {X: 0.77, Y: 0.5},
		pose.LeftAnkle:     {X: 0.53, Y: 0.7},
		pose.RightAnkle:    {X: 0.77, Y: 0.7},
	})
}

// #endregion test-helpers
