package replay

import (
	"fmt"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/series"
)

// #region types

// Mismatch records one divergence between a fixture expectation and the
// verdict the engine actually produced.
type Mismatch struct {
	FrameIndex int
	Rule       string
	Side       string
	Expected   bool
	Actual     bool
	Reason     string
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalFrames   int
	RuleErrors    int
	PassesByRule  map[string]int
	TotalsByRule  map[string]int
	SmoothedTilts []float64
}

// #endregion types

// #region replay

// Replay evaluates each recorded frame through the rule engine. Operates
// entirely in-memory; per-rule error isolation applies exactly as it does in
// the live pipeline, so malformed recorded frames produce error entries
// rather than aborting the run.
func Replay(frames []pose.Frame, config rules.Config) []rules.FrameEvaluation {
	results := make([]rules.FrameEvaluation, 0, len(frames))
	for _, frame := range frames {
		results = append(results, rules.EvaluateFrame(frame, config))
	}
	return results
}

// Compare checks every fixture expectation against the replay results and
// returns the divergences. An expectation that names a frame or rule slot
// the engine never produced is itself a mismatch.
func Compare(f *Fixture, results []rules.FrameEvaluation) []Mismatch {
	byIndex := make(map[int]rules.FrameEvaluation, len(results))
	for _, fe := range results {
		byIndex[fe.FrameIndex] = fe
	}

	var mismatches []Mismatch
	for _, exp := range f.Expected {
		fe, ok := byIndex[exp.FrameIndex]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				FrameIndex: exp.FrameIndex, Rule: exp.Rule, Side: exp.Side,
				Expected: exp.OK,
				Reason:   "frame not replayed",
			})
			continue
		}
		actual, found := lookupVerdict(fe, rules.RuleName(exp.Rule), rules.Side(exp.Side))
		if !found {
			reason := "no verdict produced"
			if e := fe.Err(rules.RuleName(exp.Rule)); e != nil {
				reason = fmt.Sprintf("rule errored: %v", e)
			}
			mismatches = append(mismatches, Mismatch{
				FrameIndex: exp.FrameIndex, Rule: exp.Rule, Side: exp.Side,
				Expected: exp.OK,
				Reason:   reason,
			})
			continue
		}
		if actual != exp.OK {
			mismatches = append(mismatches, Mismatch{
				FrameIndex: exp.FrameIndex, Rule: exp.Rule, Side: exp.Side,
				Expected: exp.OK,
				Actual:   actual,
				Reason:   "verdict differs",
			})
		}
	}
	return mismatches
}

// lookupVerdict resolves one rule/side slot in a frame evaluation.
func lookupVerdict(fe rules.FrameEvaluation, rule rules.RuleName, side rules.Side) (bool, bool) {
	switch rule {
	case rules.RuleCurl:
		for _, v := range fe.Curl {
			if v.Side == side {
				return v.OK, true
			}
		}
	case rules.RuleRaise:
		for _, v := range fe.Raise {
			if v.Side == side {
				return v.OK, true
			}
		}
	case rules.RulePosture:
		if fe.Posture != nil {
			return fe.Posture.OK, true
		}
	case rules.RuleSquat:
		if fe.Squat == nil {
			return false, false
		}
		switch side {
		case rules.SideLeft:
			return fe.Squat.Left.OK, true
		case rules.SideRight:
			return fe.Squat.Right.OK, true
		default:
			return fe.Squat.OK, true
		}
	}
	return false, false
}

// #endregion replay

// #region summary

// Summarize computes aggregate stats from replay results, including the
// smoothed torso-tilt trace used when eyeballing a session.
func Summarize(results []rules.FrameEvaluation, smoothWindow int) ReplaySummary {
	s := ReplaySummary{
		TotalFrames:  len(results),
		PassesByRule: make(map[string]int),
		TotalsByRule: make(map[string]int),
	}

	var tilts []float64
	for _, fe := range results {
		s.RuleErrors += len(fe.Errors)
		for _, v := range fe.Curl {
			s.TotalsByRule[string(rules.RuleCurl)]++
			if v.OK {
				s.PassesByRule[string(rules.RuleCurl)]++
			}
		}
		for _, v := range fe.Raise {
			s.TotalsByRule[string(rules.RuleRaise)]++
			if v.OK {
				s.PassesByRule[string(rules.RuleRaise)]++
			}
		}
		if fe.Posture != nil {
			s.TotalsByRule[string(rules.RulePosture)]++
			if fe.Posture.OK {
				s.PassesByRule[string(rules.RulePosture)]++
			}
			tilts = append(tilts, fe.Posture.Tilt)
		}
		if fe.Squat != nil {
			s.TotalsByRule[string(rules.RuleSquat)]++
			if fe.Squat.OK {
				s.PassesByRule[string(rules.RuleSquat)]++
			}
		}
	}

	s.SmoothedTilts = series.MovingAverage(tilts, smoothWindow)
	return s
}

// #endregion summary
