package rules

import "github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"

// #region frame-evaluation

// FrameEvaluation holds every rule's outcome for one frame. A rule slot is
// populated on success; on failure it stays empty and a typed EvalError is
// recorded instead. Produced fresh per frame, no history.
type FrameEvaluation struct {
	FrameIndex int
	Curl       []CurlVerdict
	Raise      []RaiseVerdict
	Posture    *PostureVerdict
	Squat      *SquatVerdict
	Errors     []*EvalError
}

// Err returns the recorded error for a rule, or nil if it evaluated cleanly.
func (fe *FrameEvaluation) Err(rule RuleName) *EvalError {
	for _, e := range fe.Errors {
		if e.Rule == rule {
			return e
		}
	}
	return nil
}

// #endregion frame-evaluation

// #region evaluate-frame

// EvaluateFrame runs every rule evaluator on one frame. Rules are isolated:
// a failure to compute one (bad landmark count, inaccessible joint) records
// an EvalError for that rule only and never blocks the others.
func EvaluateFrame(frame pose.Frame, config Config) FrameEvaluation {
	out := FrameEvaluation{FrameIndex: frame.Index}

	if verdicts, err := EvaluateCurl(frame, config.Curl); err != nil {
		out.Errors = append(out.Errors, &EvalError{Rule: RuleCurl, Err: err})
	} else {
		out.Curl = verdicts
	}

	if verdicts, err := EvaluateRaise(frame, config.Raise); err != nil {
		out.Errors = append(out.Errors, &EvalError{Rule: RuleRaise, Err: err})
	} else {
		out.Raise = verdicts
	}

	if verdict, err := EvaluatePosture(frame, config.Posture); err != nil {
		out.Errors = append(out.Errors, &EvalError{Rule: RulePosture, Err: err})
	} else {
		out.Posture = &verdict
	}

	if verdict, err := EvaluateSquat(frame, config.Squat); err != nil {
		out.Errors = append(out.Errors, &EvalError{Rule: RuleSquat, Err: err})
	} else {
		out.Squat = &verdict
	}

	return out
}

// #endregion evaluate-frame
