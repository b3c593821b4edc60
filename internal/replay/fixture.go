package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a recorded
// landmark sequence plus the verdicts the rule engine is expected to produce.
type Fixture struct {
	Description string            `json:"description"`
	Config      FixtureConfig     `json:"config"`
	Frames      []FixtureFrame    `json:"frames"`
	Expected    []FixtureExpected `json:"expected"`
}

// FixtureFrame is one recorded pose frame.
type FixtureFrame struct {
	FrameIndex int             `json:"frame_index"`
	Landmarks  []pose.Landmark `json:"landmarks"`
}

// FixtureExpected pins one rule/side verdict at one frame. Side is empty for
// the posture rule and for the combined squat verdict.
type FixtureExpected struct {
	FrameIndex int    `json:"frame_index"`
	Rule       string `json:"rule"`
	Side       string `json:"side"`
	OK         bool   `json:"ok"`
}

// FixtureConfig carries per-fixture threshold overrides. Absent fields keep
// the defaults, so a fixture only pins the thresholds it exercises.
type FixtureConfig struct {
	Curl struct {
		MinAngle *float64 `json:"min_angle"`
		MaxAngle *float64 `json:"max_angle"`
	} `json:"curl"`
	Raise struct {
		MaxWristOffset *float64 `json:"max_wrist_offset"`
		MinElbowAngle  *float64 `json:"min_elbow_angle"`
	} `json:"raise"`
	Posture struct {
		MaxTilt *float64 `json:"max_tilt"`
	} `json:"posture"`
	Squat struct {
		MaxKneeAngle *float64 `json:"max_knee_angle"`
		MaxKneeOver  *float64 `json:"max_knee_over"`
		MaxTorsoTilt *float64 `json:"max_torso_tilt"`
	} `json:"squat"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToFrames converts the fixture's frames to domain frames. Frames with a bad
// landmark count are passed through unvalidated so the engine's own error
// isolation is what a fixture exercises.
func (f *Fixture) ToFrames() []pose.Frame {
	frames := make([]pose.Frame, len(f.Frames))
	for i, ff := range f.Frames {
		frames[i] = pose.Frame{Index: ff.FrameIndex, Landmarks: ff.Landmarks}
	}
	return frames
}

// ToRulesConfig overlays the fixture's overrides on the default thresholds.
func (fc *FixtureConfig) ToRulesConfig() rules.Config {
	config := rules.DefaultConfig()
	overlay(&config.Curl.MinAngle, fc.Curl.MinAngle)
	overlay(&config.Curl.MaxAngle, fc.Curl.MaxAngle)
	overlay(&config.Raise.MaxWristOffset, fc.Raise.MaxWristOffset)
	overlay(&config.Raise.MinElbowAngle, fc.Raise.MinElbowAngle)
	overlay(&config.Posture.MaxTilt, fc.Posture.MaxTilt)
	overlay(&config.Squat.MaxKneeAngle, fc.Squat.MaxKneeAngle)
	overlay(&config.Squat.MaxKneeOver, fc.Squat.MaxKneeOver)
	overlay(&config.Squat.MaxTorsoTilt, fc.Squat.MaxTorsoTilt)
	return config
}

func overlay(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// #endregion fixture-loader
