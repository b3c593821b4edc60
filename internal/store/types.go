package store

import "time"

// #region session

// Session identifies one evaluated video (or live stream) run.
type Session struct {
	ID         string
	Source     string // video path or estimator address
	ConfigJSON string // thresholds active for the run
	StartedAt  time.Time
}

// #endregion session

// #region frame-row

// FrameRow is one persisted rule outcome: a verdict row carries OK plus its
// measurements, an error row carries the error text with OK false.
type FrameRow struct {
	SessionID  string
	FrameIndex int
	Rule       string
	Side       string // "left" | "right" | "" for unqualified rules
	OK         bool
	Measures   map[string]float64
	Message    string
	Error      string
	CreatedAt  time.Time
}

// #endregion frame-row

// #region pass-rate

// PassRate aggregates one rule/side combination across a session.
type PassRate struct {
	Rule   string
	Side   string
	Total  int
	Passed int
	Errors int
}

// #endregion pass-rate
