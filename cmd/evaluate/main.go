package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/config"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/estimator"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/store"
)

// #region main
func main() {
	video := flag.String("video", "", "video path, as seen by the estimator sidecar")
	configPath := flag.String("config", "", "YAML threshold overrides (optional)")
	dbPath := flag.String("db", envOr("FORM_DB", "form_sessions.db"), "session database path")
	addr := flag.String("estimator", envOr("ESTIMATOR_ADDR", "localhost:50052"), "pose estimator gRPC address")
	detectConf := flag.Float64("min-detection", 0.5, "sidecar detection confidence")
	trackConf := flag.Float64("min-tracking", 0.5, "sidecar tracking confidence")
	flag.Parse()

	if *video == "" {
		fmt.Fprintln(os.Stderr, "usage: evaluate --video path/to/video.mp4 [--config thresholds.yaml] [--db form_sessions.db] [--estimator host:port]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	client, err := estimator.NewClient(*addr)
	if err != nil {
		log.Fatalf("failed to connect to estimator at %s: %v", *addr, err)
	}
	defer client.Close()

	configJSON, _ := json.Marshal(cfg)
	sess, err := st.CreateSession(*video, string(configJSON))
	if err != nil {
		log.Fatalf("create session: %v", err)
	}

	fmt.Printf("Form evaluator ready.\n")
	fmt.Printf("  DB: %s | Estimator: %s | Session: %s\n", *dbPath, *addr, sess.ID)

	params := estimator.StreamParams{
		VideoPath:              *video,
		MinDetectionConfidence: float32(*detectConf),
		MinTrackingConfidence:  float32(*trackConf),
	}

	frames := 0
	ruleErrors := 0
	err = client.StreamLandmarks(context.Background(), params, func(frame pose.Frame) error {
		fe := rules.EvaluateFrame(frame, cfg)
		if err := st.SaveFrame(sess.ID, fe); err != nil {
			return err
		}
		frames++
		ruleErrors += len(fe.Errors)
		printVerdicts(fe)
		return nil
	})
	if err != nil {
		log.Fatalf("stream error after %d frames: %v", frames, err)
	}

	fmt.Printf("\nEvaluated %d frames (%d rule errors).\n\n", frames, ruleErrors)
	printPassRates(st, sess.ID)
}

// #endregion main

// #region output
func printVerdicts(fe rules.FrameEvaluation) {
	mark := func(ok bool) string {
		if ok {
			return "ok  "
		}
		return "FAIL"
	}
	for _, v := range fe.Curl {
		fmt.Printf("[%05d] %s %-15s %s\n", fe.FrameIndex, mark(v.OK), rules.RuleCurl, v.Message)
	}
	for _, v := range fe.Raise {
		fmt.Printf("[%05d] %s %-15s %s\n", fe.FrameIndex, mark(v.OK), rules.RuleRaise, v.Message)
	}
	if fe.Posture != nil {
		fmt.Printf("[%05d] %s %-15s %s\n", fe.FrameIndex, mark(fe.Posture.OK), rules.RulePosture, fe.Posture.Message)
	}
	if fe.Squat != nil {
		fmt.Printf("[%05d] %s %-15s %s\n", fe.FrameIndex, mark(fe.Squat.OK), rules.RuleSquat, fe.Squat.Message)
	}
	for _, e := range fe.Errors {
		fmt.Printf("[%05d] err  %-15s %v\n", fe.FrameIndex, e.Rule, e.Err)
	}
}

func printPassRates(st *store.Store, sessionID string) {
	rates, err := st.PassRates(sessionID)
	if err != nil {
		log.Printf("pass rates: %v", err)
		return
	}

	fmt.Printf("%-15s %-6s %8s %8s %8s\n", "Rule", "Side", "Total", "Passed", "Errors")
	for _, pr := range rates {
		side := pr.Side
		if side == "" {
			side = "—"
		}
		fmt.Printf("%-15s %-6s %8d %8d %8d\n", pr.Rule, side, pr.Total, pr.Passed, pr.Errors)
	}
	fmt.Printf("\nSession: %s\n", sessionID)
}

// #endregion output

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
