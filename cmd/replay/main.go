package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/config"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/replay"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to form_sessions.db (DB mode)")
	sessionID := flag.String("session", "", "session to re-check (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	configPath := flag.String("config", "", "YAML threshold overrides (DB mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/form_sessions.db --session id [--config thresholds.yaml]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		if *sessionID == "" {
			fmt.Fprintln(os.Stderr, "--session is required with --db")
			os.Exit(2)
		}
		exitCode = runDBMode(*dbPath, *sessionID, *configPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results := replay.Replay(f.ToFrames(), f.Config.ToRulesConfig())
	mismatches := replay.Compare(f, results)

	fmt.Printf("%-7s| %-15s| %-7s| %-9s| %s\n", "Frame", "Rule", "Side", "Expected", "Match")
	fmt.Printf("-------+----------------+--------+----------+------\n")

	byKey := make(map[string]replay.Mismatch, len(mismatches))
	for _, m := range mismatches {
		byKey[fmt.Sprintf("%d/%s/%s", m.FrameIndex, m.Rule, m.Side)] = m
	}
	for _, exp := range f.Expected {
		match := "OK"
		if m, bad := byKey[fmt.Sprintf("%d/%s/%s", exp.FrameIndex, exp.Rule, exp.Side)]; bad {
			match = "DIFF (" + m.Reason + ")"
		}
		fmt.Printf("%-7d| %-15s| %-7s| %-9v| %s\n", exp.FrameIndex, exp.Rule, exp.Side, exp.OK, match)
	}

	fmt.Printf("\nSummary: %d expectations, %d match, %d diverge\n",
		len(f.Expected), len(f.Expected)-len(mismatches), len(mismatches))

	if len(mismatches) > 0 {
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

// runDBMode re-applies thresholds to a session's stored measurements and
// compares the recomputed verdicts against what was stored. The store keeps
// measurements, not landmarks, so geometry is not recomputed; this checks
// threshold drift, not estimator drift.
func runDBMode(dbPath, sessionID, configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}

	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	if _, err := st.GetSession(sessionID); err != nil {
		fmt.Fprintf(os.Stderr, "session lookup: %v\n", err)
		return 2
	}

	rows, err := st.DB().Query(
		`SELECT frame_index, rule, COALESCE(side, ''), ok, measures_json
		 FROM frame_results
		 WHERE session_id = ? AND error IS NULL AND measures_json IS NOT NULL
		 ORDER BY frame_index ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query results: %v\n", err)
		return 2
	}
	defer rows.Close()

	type resultRow struct {
		frameIndex int
		rule       string
		side       string
		storedOK   bool
		measures   map[string]float64
	}
	var results []resultRow
	// Torso tilt lives on the combined squat row but gates the side verdicts.
	torsoByFrame := make(map[int]float64)

	for rows.Next() {
		var r resultRow
		var ok int
		var measuresJSON string
		if err := rows.Scan(&r.frameIndex, &r.rule, &r.side, &ok, &measuresJSON); err != nil {
			fmt.Fprintf(os.Stderr, "scan row: %v\n", err)
			return 2
		}
		r.storedOK = ok == 1
		if err := json.Unmarshal([]byte(measuresJSON), &r.measures); err != nil {
			fmt.Fprintf(os.Stderr, "parse measures: %v\n", err)
			return 2
		}
		if r.rule == string(rules.RuleSquat) && r.side == "" {
			torsoByFrame[r.frameIndex] = r.measures["torso_tilt"]
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "iterate rows: %v\n", err)
		return 2
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no stored results for session")
		return 2
	}

	// Recompute side verdicts first so the combined squat row can AND them.
	squatSideOK := make(map[string]bool)
	for _, r := range results {
		if r.rule == string(rules.RuleSquat) && r.side != "" {
			ok := r.measures["knee_angle"] <= cfg.Squat.MaxKneeAngle &&
				math.Abs(r.measures["knee_over"]) <= cfg.Squat.MaxKneeOver &&
				torsoByFrame[r.frameIndex] <= cfg.Squat.MaxTorsoTilt
			squatSideOK[fmt.Sprintf("%d/%s", r.frameIndex, r.side)] = ok
		}
	}

	fmt.Printf("%-7s| %-15s| %-7s| %-7s| %-9s| %s\n", "Frame", "Rule", "Side", "Stored", "Replayed", "Match")
	fmt.Printf("-------+----------------+--------+--------+----------+------\n")

	matches := 0
	for _, r := range results {
		var replayed bool
		switch rules.RuleName(r.rule) {
		case rules.RuleCurl:
			a := r.measures["angle"]
			replayed = a >= cfg.Curl.MinAngle && a <= cfg.Curl.MaxAngle
		case rules.RuleRaise:
			replayed = r.measures["dy"] <= cfg.Raise.MaxWristOffset &&
				r.measures["elbow_angle"] >= cfg.Raise.MinElbowAngle
		case rules.RulePosture:
			replayed = r.measures["tilt"] <= cfg.Posture.MaxTilt
		case rules.RuleSquat:
			if r.side != "" {
				replayed = squatSideOK[fmt.Sprintf("%d/%s", r.frameIndex, r.side)]
			} else {
				replayed = squatSideOK[fmt.Sprintf("%d/left", r.frameIndex)] &&
					squatSideOK[fmt.Sprintf("%d/right", r.frameIndex)]
			}
		}

		match := "DIFF"
		if replayed == r.storedOK {
			match = "OK"
			matches++
		}
		fmt.Printf("%-7d| %-15s| %-7s| %-7v| %-9v| %s\n", r.frameIndex, r.rule, r.side, r.storedOK, replayed, match)
	}

	diverge := len(results) - matches
	fmt.Printf("\nSummary: %d rows, %d match, %d diverge\n", len(results), matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion db-mode
