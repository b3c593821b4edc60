package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	source       TEXT NOT NULL,
	config_json  TEXT,
	started_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS frame_results (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	frame_index   INTEGER NOT NULL,
	rule          TEXT NOT NULL,
	side          TEXT,
	ok            INTEGER NOT NULL,
	measures_json TEXT,
	message       TEXT,
	error         TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_frame_results_session
	ON frame_results(session_id, frame_index);
`

// #endregion schema

// #region store-struct

// Store persists sessions and per-frame rule outcomes in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region create-session

// CreateSession registers a new evaluation run.
func (s *Store) CreateSession(source, configJSON string) (Session, error) {
	sess := Session{
		ID:         uuid.New().String(),
		Source:     source,
		ConfigJSON: configJSON,
		StartedAt:  time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, source, config_json, started_at)
		 VALUES (?, ?, ?, ?)`,
		sess.ID, sess.Source, nullIfEmpty(sess.ConfigJSON),
		sess.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// #endregion create-session

// #region save-frame

// SaveFrame flattens one frame evaluation into result rows, atomically.
// Verdict rows carry measurements; rule errors become rows with the error
// text so a session replays exactly as it was observed.
func (s *Store) SaveFrame(sessionID string, fe rules.FrameEvaluation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	insert := func(rule rules.RuleName, side rules.Side, ok bool, measures map[string]float64, message, errText string) error {
		measuresJSON := ""
		if len(measures) > 0 {
			b, err := json.Marshal(measures)
			if err != nil {
				return fmt.Errorf("marshal measures: %w", err)
			}
			measuresJSON = string(b)
		}
		_, err := tx.Exec(
			`INSERT INTO frame_results (session_id, frame_index, rule, side, ok, measures_json, message, error, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sessionID, fe.FrameIndex, string(rule), nullIfEmpty(string(side)),
			boolToInt(ok), nullIfEmpty(measuresJSON), nullIfEmpty(message),
			nullIfEmpty(errText), now,
		)
		if err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
		return nil
	}

	for _, v := range fe.Curl {
		m := map[string]float64{"angle": v.Angle}
		if err := insert(rules.RuleCurl, v.Side, v.OK, m, v.Message, ""); err != nil {
			return err
		}
	}
	for _, v := range fe.Raise {
		m := map[string]float64{"dy": v.DY, "elbow_angle": v.ElbowAngle}
		if err := insert(rules.RuleRaise, v.Side, v.OK, m, v.Message, ""); err != nil {
			return err
		}
	}
	if fe.Posture != nil {
		m := map[string]float64{"tilt": fe.Posture.Tilt}
		if err := insert(rules.RulePosture, "", fe.Posture.OK, m, fe.Posture.Message, ""); err != nil {
			return err
		}
	}
	if fe.Squat != nil {
		for _, sv := range []rules.SquatSideVerdict{fe.Squat.Left, fe.Squat.Right} {
			m := map[string]float64{"knee_angle": sv.KneeAngle, "knee_over": sv.KneeOver}
			if err := insert(rules.RuleSquat, sv.Side, sv.OK, m, sv.Message, ""); err != nil {
				return err
			}
		}
		m := map[string]float64{"torso_tilt": fe.Squat.TorsoTilt}
		if err := insert(rules.RuleSquat, "", fe.Squat.OK, m, fe.Squat.Message, ""); err != nil {
			return err
		}
	}
	for _, e := range fe.Errors {
		if err := insert(e.Rule, "", false, nil, "", e.Err.Error()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// #endregion save-frame

// #region get-session

// GetSession retrieves a session by ID.
func (s *Store) GetSession(id string) (Session, error) {
	var sess Session
	var configJSON sql.NullString
	var startedStr string
	err := s.db.QueryRow(
		`SELECT session_id, source, config_json, started_at FROM sessions WHERE session_id = ?`, id,
	).Scan(&sess.ID, &sess.Source, &configJSON, &startedStr)
	if err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	if configJSON.Valid {
		sess.ConfigJSON = configJSON.String
	}
	sess.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	return sess, nil
}

// ListSessions returns the most recent sessions.
func (s *Store) ListSessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT session_id, source, config_json, started_at
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var configJSON sql.NullString
		var startedStr string
		if err := rows.Scan(&sess.ID, &sess.Source, &configJSON, &startedStr); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if configJSON.Valid {
			sess.ConfigJSON = configJSON.String
		}
		sess.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		out = append(out, sess)
	}
	return out, rows.Err()
}

// #endregion get-session

// #region series

// RuleSeries extracts one measurement ordered by frame index, for smoothing
// and charting. side may be empty for unqualified rules; frames where the
// rule errored are skipped.
func (s *Store) RuleSeries(sessionID string, rule rules.RuleName, side rules.Side, measure string) ([]float64, error) {
	rows, err := s.db.Query(
		`SELECT measures_json FROM frame_results
		 WHERE session_id = ? AND rule = ? AND COALESCE(side, '') = ? AND error IS NULL
		 ORDER BY frame_index ASC`,
		sessionID, string(rule), string(side),
	)
	if err != nil {
		return nil, fmt.Errorf("query series: %w", err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var measuresJSON sql.NullString
		if err := rows.Scan(&measuresJSON); err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		if !measuresJSON.Valid {
			continue
		}
		var m map[string]float64
		if err := json.Unmarshal([]byte(measuresJSON.String), &m); err != nil {
			return nil, fmt.Errorf("unmarshal measures: %w", err)
		}
		if v, ok := m[measure]; ok {
			out = append(out, v)
		}
	}
	return out, rows.Err()
}

// #endregion series

// #region pass-rates

// PassRates aggregates verdicts per rule/side for a session. Error rows
// count toward Total and Errors but not Passed.
func (s *Store) PassRates(sessionID string) ([]PassRate, error) {
	rows, err := s.db.Query(
		`SELECT rule, COALESCE(side, ''), COUNT(*),
		        SUM(CASE WHEN ok = 1 THEN 1 ELSE 0 END),
		        SUM(CASE WHEN error IS NOT NULL THEN 1 ELSE 0 END)
		 FROM frame_results WHERE session_id = ?
		 GROUP BY rule, COALESCE(side, '')
		 ORDER BY rule, side`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query pass rates: %w", err)
	}
	defer rows.Close()

	var out []PassRate
	for rows.Next() {
		var pr PassRate
		if err := rows.Scan(&pr.Rule, &pr.Side, &pr.Total, &pr.Passed, &pr.Errors); err != nil {
			return nil, fmt.Errorf("scan pass rate: %w", err)
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

// #endregion pass-rates

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
