package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
)

// #region file-config

// fileConfig mirrors rules.Config with every threshold optional, so a file
// can override a single value and leave the rest at defaults.
type fileConfig struct {
	Curl struct {
		MinAngle *float64 `yaml:"min_angle"`
		MaxAngle *float64 `yaml:"max_angle"`
	} `yaml:"curl"`
	Raise struct {
		MaxWristOffset *float64 `yaml:"max_wrist_offset"`
		MinElbowAngle  *float64 `yaml:"min_elbow_angle"`
	} `yaml:"raise"`
	Posture struct {
		MaxTilt *float64 `yaml:"max_tilt"`
	} `yaml:"posture"`
	Squat struct {
		MaxKneeAngle *float64 `yaml:"max_knee_angle"`
		MaxKneeOver  *float64 `yaml:"max_knee_over"`
		MaxTorsoTilt *float64 `yaml:"max_torso_tilt"`
	} `yaml:"squat"`
}

// #endregion file-config

// #region load

// Load reads a YAML threshold file and overlays it on the defaults.
// An empty path returns the defaults unchanged. Thresholds are
// camera-dependent (the knee-over check especially), so deployments ship a
// per-camera file rather than patching constants.
func Load(path string) (rules.Config, error) {
	config := rules.DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&config.Curl.MinAngle, fc.Curl.MinAngle)
	overlay(&config.Curl.MaxAngle, fc.Curl.MaxAngle)
	overlay(&config.Raise.MaxWristOffset, fc.Raise.MaxWristOffset)
	overlay(&config.Raise.MinElbowAngle, fc.Raise.MinElbowAngle)
	overlay(&config.Posture.MaxTilt, fc.Posture.MaxTilt)
	overlay(&config.Squat.MaxKneeAngle, fc.Squat.MaxKneeAngle)
	overlay(&config.Squat.MaxKneeOver, fc.Squat.MaxKneeOver)
	overlay(&config.Squat.MaxTorsoTilt, fc.Squat.MaxTorsoTilt)

	if err := validate(config); err != nil {
		return rules.DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// #endregion load

// #region helpers

func overlay(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func validate(c rules.Config) error {
	if c.Curl.MinAngle < 0 || c.Curl.MaxAngle > 180 || c.Curl.MinAngle > c.Curl.MaxAngle {
		return fmt.Errorf("curl band [%g, %g] invalid", c.Curl.MinAngle, c.Curl.MaxAngle)
	}
	if c.Raise.MaxWristOffset < 0 {
		return fmt.Errorf("raise wrist offset %g negative", c.Raise.MaxWristOffset)
	}
	if c.Posture.MaxTilt < 0 || c.Posture.MaxTilt > 180 {
		return fmt.Errorf("posture tilt %g out of range", c.Posture.MaxTilt)
	}
	if c.Squat.MaxKneeAngle < 0 || c.Squat.MaxKneeAngle > 180 {
		return fmt.Errorf("squat knee angle %g out of range", c.Squat.MaxKneeAngle)
	}
	if c.Squat.MaxKneeOver < 0 {
		return fmt.Errorf("squat knee-over tolerance %g negative", c.Squat.MaxKneeOver)
	}
	return nil
}

// #endregion helpers
