package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/report"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to form_sessions.db")
	sessionID := flag.String("session", "", "session to chart")
	outPath := flag.String("out", "report.html", "output HTML path")
	smooth := flag.Int("smooth", 5, "moving-average window for smoothed traces")
	flag.Parse()

	if *dbPath == "" || *sessionID == "" {
		fmt.Fprintln(os.Stderr, "usage: report --db path/to/form_sessions.db --session id [--out report.html] [--smooth N]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := report.WriteSessionReport(out, st, *sessionID, *smooth); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

// #endregion main
