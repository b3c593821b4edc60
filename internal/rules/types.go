package rules

import "fmt"

// #region side

// Side qualifies a per-side verdict.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Sides lists both sides in evaluation order.
var Sides = []Side{SideLeft, SideRight}

// #endregion side

// #region rule-name

// RuleName identifies one evaluator within a frame evaluation.
type RuleName string

const (
	RuleCurl    RuleName = "bicep_curl"
	RuleRaise   RuleName = "lateral_raise"
	RulePosture RuleName = "back_posture"
	RuleSquat   RuleName = "squat"
)

// AllRules lists every rule the aggregator runs, in order.
var AllRules = []RuleName{RuleCurl, RuleRaise, RulePosture, RuleSquat}

// #endregion rule-name

// #region configs

// CurlConfig holds thresholds for the elbow-flexion check.
type CurlConfig struct {
	MinAngle float64 `yaml:"min_angle"` // degrees, inclusive
	MaxAngle float64 `yaml:"max_angle"` // degrees, inclusive
}

// DefaultCurlConfig returns the stock curl band. The band is wide because a
// single frame cannot confirm a full repetition; it only flags angles outside
// any plausible curl position.
func DefaultCurlConfig() CurlConfig {
	return CurlConfig{MinAngle: 30.0, MaxAngle: 170.0}
}

// RaiseConfig holds thresholds for the lateral-raise check.
type RaiseConfig struct {
	MaxWristOffset float64 `yaml:"max_wrist_offset"` // normalized y units
	MinElbowAngle  float64 `yaml:"min_elbow_angle"`  // degrees
}

// DefaultRaiseConfig returns the stock lateral-raise thresholds.
func DefaultRaiseConfig() RaiseConfig {
	return RaiseConfig{MaxWristOffset: 0.08, MinElbowAngle: 150.0}
}

// PostureConfig holds the torso-lean threshold.
type PostureConfig struct {
	MaxTilt float64 `yaml:"max_tilt"` // degrees from vertical
}

// DefaultPostureConfig returns the stock upright-back threshold.
func DefaultPostureConfig() PostureConfig {
	return PostureConfig{MaxTilt: 12.0}
}

// SquatConfig holds thresholds for the squat check. KneeOver tolerance is a
// side-view heuristic; tune per camera.
type SquatConfig struct {
	MaxKneeAngle float64 `yaml:"max_knee_angle"` // degrees; at or below means deep enough
	MaxKneeOver  float64 `yaml:"max_knee_over"`  // normalized x units, absolute
	MaxTorsoTilt float64 `yaml:"max_torso_tilt"` // degrees
}

// DefaultSquatConfig returns the stock squat thresholds.
func DefaultSquatConfig() SquatConfig {
	return SquatConfig{MaxKneeAngle: 100.0, MaxKneeOver: 0.12, MaxTorsoTilt: 25.0}
}

// Config bundles all rule thresholds.
type Config struct {
	Curl    CurlConfig    `yaml:"curl"`
	Raise   RaiseConfig   `yaml:"raise"`
	Posture PostureConfig `yaml:"posture"`
	Squat   SquatConfig   `yaml:"squat"`
}

// DefaultConfig returns stock thresholds for every rule.
func DefaultConfig() Config {
	return Config{
		Curl:    DefaultCurlConfig(),
		Raise:   DefaultRaiseConfig(),
		Posture: DefaultPostureConfig(),
		Squat:   DefaultSquatConfig(),
	}
}

// #endregion configs

// #region verdicts

// CurlVerdict is the elbow-flexion judgment for one side.
type CurlVerdict struct {
	Side    Side
	Angle   float64
	OK      bool
	Message string
}

// RaiseVerdict is the lateral-raise judgment for one side.
type RaiseVerdict struct {
	Side       Side
	DY         float64 // |wrist.y - shoulder.y| in normalized units
	ElbowAngle float64
	OK         bool
	Message    string
}

// PostureVerdict is the torso-lean judgment (unqualified by side).
type PostureVerdict struct {
	Tilt    float64
	OK      bool
	Message string
}

// SquatSideVerdict is one side's squat judgment.
type SquatSideVerdict struct {
	Side      Side
	KneeAngle float64
	KneeOver  float64 // signed; camera-orientation-dependent
	OK        bool
	Message   string
}

// SquatVerdict combines both sides with the shared torso measurement.
// OK is the AND of both sides.
type SquatVerdict struct {
	Left      SquatSideVerdict
	Right     SquatSideVerdict
	TorsoTilt float64
	OK        bool
	Message   string
}

// #endregion verdicts

// #region eval-error

// EvalError records a single rule's computation failure. The failing rule's
// slot stays empty while every other rule still reports normally.
type EvalError struct {
	Rule RuleName
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.Rule, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// #endregion eval-error
