package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/report"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/series"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to form_sessions.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	smooth := flag.Int("smooth", 5, "moving-average window for smoothed traces")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/form_sessions.db [--last N] [--session id] [--smooth N] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *sessionID != "" {
		if err := runDetailMode(st, *sessionID, *smooth, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID string `json:"session_id"`
	Source    string `json:"source"`
	StartedAt string `json:"started_at"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	sessions, err := st.ListSessions(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	listRows := make([]listRow, len(sessions))
	for i, sess := range sessions {
		listRows[i] = listRow{
			SessionID: sess.ID,
			Source:    sess.Source,
			StartedAt: sess.StartedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(listRows)
	}

	fmt.Printf("%-38s  %-30s  %s\n", "Session", "Source", "Started")
	for _, r := range listRows {
		fmt.Printf("%-38s  %-30s  %s\n", r.SessionID, r.Source, r.StartedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type measureDetail struct {
	Name     string             `json:"name"`
	Stats    report.SeriesStats `json:"stats"`
	Smoothed []float64          `json:"smoothed,omitempty"`
}

type detailOutput struct {
	SessionID string           `json:"session_id"`
	Source    string           `json:"source"`
	StartedAt string           `json:"started_at"`
	PassRates []store.PassRate `json:"pass_rates"`
	Measures  []measureDetail  `json:"measures"`
}

// measureTraces lists the per-session traces worth summarizing.
var measureTraces = []struct {
	name    string
	rule    rules.RuleName
	side    rules.Side
	measure string
}{
	{"left elbow angle", rules.RuleCurl, rules.SideLeft, "angle"},
	{"right elbow angle", rules.RuleCurl, rules.SideRight, "angle"},
	{"torso tilt", rules.RulePosture, "", "tilt"},
	{"left knee angle", rules.RuleSquat, rules.SideLeft, "knee_angle"},
	{"right knee angle", rules.RuleSquat, rules.SideRight, "knee_angle"},
}

func runDetailMode(st *store.Store, sessionID string, smooth int, jsonOut bool) error {
	sess, err := st.GetSession(sessionID)
	if err != nil {
		return err
	}
	rates, err := st.PassRates(sessionID)
	if err != nil {
		return err
	}

	out := detailOutput{
		SessionID: sess.ID,
		Source:    sess.Source,
		StartedAt: sess.StartedAt.Format("2006-01-02T15:04:05Z"),
		PassRates: rates,
	}
	for _, tr := range measureTraces {
		values, err := st.RuleSeries(sessionID, tr.rule, tr.side, tr.measure)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			continue
		}
		out.Measures = append(out.Measures, measureDetail{
			Name:     tr.name,
			Stats:    report.Describe(values),
			Smoothed: series.MovingAverage(values, smooth),
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Session:  %s\n", out.SessionID)
	fmt.Printf("Source:   %s\n", out.Source)
	fmt.Printf("Started:  %s\n", out.StartedAt)

	fmt.Printf("\nPass rates:\n")
	fmt.Printf("  %-15s %-6s %8s %8s %8s\n", "Rule", "Side", "Total", "Passed", "Errors")
	for _, pr := range out.PassRates {
		side := pr.Side
		if side == "" {
			side = "—"
		}
		fmt.Printf("  %-15s %-6s %8d %8d %8d\n", pr.Rule, side, pr.Total, pr.Passed, pr.Errors)
	}

	fmt.Printf("\nMeasurements:\n")
	fmt.Printf("  %-20s %6s %10s %10s %10s %10s\n", "Trace", "N", "Mean", "StdDev", "Min", "Max")
	for _, m := range out.Measures {
		fmt.Printf("  %-20s %6d %10.2f %10.2f %10.2f %10.2f\n",
			m.Name, m.Stats.Count, m.Stats.Mean, m.Stats.StdDev, m.Stats.Min, m.Stats.Max)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
