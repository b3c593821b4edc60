package rules

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region evaluate-raise

// EvaluateRaise checks the lateral raise per side: the wrist must sit level
// with the shoulder (small vertical offset in normalized coordinates) with
// the arm near-extended. Same single-frame limitation as the curl rule.
func EvaluateRaise(frame pose.Frame, config RaiseConfig) ([]RaiseVerdict, error) {
	verdicts := make([]RaiseVerdict, 0, len(Sides))
	for _, side := range Sides {
		shoulder, elbow, wrist, err := armPoints(frame, side)
		if err != nil {
			return nil, err
		}
		// y is normalized 0 top → 1 bottom, so level means small abs diff.
		dy := math.Abs(wrist.Y - shoulder.Y)
		elbowAngle := geom.AngleAtVertex(shoulder, elbow, wrist)
		ok := dy <= config.MaxWristOffset && elbowAngle >= config.MinElbowAngle
		verdicts = append(verdicts, RaiseVerdict{
			Side:       side,
			DY:         dy,
			ElbowAngle: elbowAngle,
			OK:         ok,
			Message:    fmt.Sprintf("%s wrist-shoulder dy=%.3f, elbow_ang=%.1f°", side, dy, elbowAngle),
		})
	}
	return verdicts, nil
}

// #endregion evaluate-raise
