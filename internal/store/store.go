// Package store is the persistence adapter: Postgres holds published
// puzzle records, Redis caches each puzzle's achievable-word set and a
// session's cumulative answer state between HTTP requests.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/crossplay/wordquest/internal/models"
	"github.com/crossplay/wordquest/pkg/constraint"
)

// ErrNotFound is returned when a lookup finds no matching row or key.
var ErrNotFound = errors.New("store: not found")

// ErrSessionStale is returned when a session-state update loses a race
// with a concurrent writer under optimistic locking.
var ErrSessionStale = errors.New("store: session state changed concurrently")

// sessionTTL matches a puzzle's one-day lifecycle.
const sessionTTL = 24 * time.Hour

// wordSetTTL is long because a published puzzle's achievable-word set
// never changes once computed.
const wordSetTTL = 7 * 24 * time.Hour

// Store is the Postgres + Redis persistence adapter.
type Store struct {
	DB    *sql.DB
	Redis *redis.Client
}

// New opens and pings both backing stores.
func New(postgresURL, redisURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("store: parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("store: ping redis: %w", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

func (s *Store) Close() error {
	if err := s.DB.Close(); err != nil {
		return err
	}
	return s.Redis.Close()
}

// InitSchema creates the puzzles table if it does not already exist.
func (s *Store) InitSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS puzzles (
		sequence    SERIAL PRIMARY KEY,
		date        DATE UNIQUE NOT NULL,
		board       VARCHAR(16) NOT NULL,
		words       JSONB NOT NULL,
		total_score INTEGER NOT NULL,
		threshold   INTEGER NOT NULL,
		created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_date ON puzzles(date);
	`
	_, err := s.DB.Exec(schema)
	return err
}

// CreatePuzzle inserts a newly built puzzle, relying on the UNIQUE
// constraint on date to make the insert idempotent per day.
func (s *Store) CreatePuzzle(p *models.PuzzleRow) error {
	wordsJSON, err := json.Marshal(p.Words)
	if err != nil {
		return fmt.Errorf("store: marshal words: %w", err)
	}

	_, err = s.DB.Exec(`
		INSERT INTO puzzles (date, board, words, total_score, threshold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO NOTHING
	`, p.Date, p.Board, wordsJSON, p.TotalScore, p.Threshold, p.CreatedAt)
	return err
}

// GetPuzzleByDate fetches the puzzle published for date (YYYY-MM-DD).
func (s *Store) GetPuzzleByDate(date string) (*models.PuzzleRow, error) {
	p := &models.PuzzleRow{}
	var wordsJSON []byte

	err := s.DB.QueryRow(`
		SELECT date, board, words, total_score, threshold, created_at
		FROM puzzles WHERE date = $1
	`, date).Scan(&p.Date, &p.Board, &wordsJSON, &p.TotalScore, &p.Threshold, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(wordsJSON, &p.Words); err != nil {
		return nil, fmt.Errorf("store: unmarshal words: %w", err)
	}
	return p, nil
}

// ListRecent returns up to limit of the most recently created puzzles,
// newest first, for the admin CLI's operational spot-checks.
func (s *Store) ListRecent(limit int) ([]*models.PuzzleRow, error) {
	rows, err := s.DB.Query(`
		SELECT date, board, words, total_score, threshold, created_at
		FROM puzzles ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PuzzleRow
	for rows.Next() {
		p := &models.PuzzleRow{}
		var wordsJSON []byte
		if err := rows.Scan(&p.Date, &p.Board, &wordsJSON, &p.TotalScore, &p.Threshold, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(wordsJSON, &p.Words); err != nil {
			return nil, fmt.Errorf("store: unmarshal words: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// wordSetKey is the Redis key caching a date's achievable-word set.
func wordSetKey(date string) string { return "wordset:" + date }

// CacheWordSet stores the precomputed dictionary-achievable word set for
// a puzzle date, so the HTTP adapter never has to re-run the Path
// Enumerator against every dictionary word per request.
func (s *Store) CacheWordSet(ctx context.Context, date string, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, wordSetKey(date), data, wordSetTTL).Err()
}

// GetWordSet returns the cached achievable-word set for date, or
// ErrNotFound if nothing is cached.
func (s *Store) GetWordSet(ctx context.Context, date string) ([]string, error) {
	data, err := s.Redis.Get(ctx, wordSetKey(date)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// SessionState is a session's cumulative progress against one day's
// puzzle: the words accepted so far, in submission order, and the
// cumulative AnswerConstraintSet their acceptance has narrowed down to.
type SessionState struct {
	Date          string            `json:"date"`
	AcceptedWords []string          `json:"acceptedWords"`
	Entries       []constraintEntry `json:"cumulative"`
}

// constraintEntry is the JSON-safe form of a constraint.PathConstraint,
// since the rune fields marshal fine but the zero-value ambiguity between
// "no letter" and the rune '\x00' is worth naming explicitly here.
type constraintEntry struct {
	Kind   constraint.Kind `json:"kind"`
	First  rune            `json:"first"`
	Second rune            `json:"second"`
}

func toEntries(s constraint.Set) []constraintEntry {
	items := s.Slice()
	out := make([]constraintEntry, len(items))
	for i, pc := range items {
		out[i] = constraintEntry{Kind: pc.Kind, First: pc.First, Second: pc.Second}
	}
	return out
}

func fromEntries(entries []constraintEntry) constraint.Set {
	items := make([]constraint.PathConstraint, len(entries))
	for i, e := range entries {
		items[i] = constraint.PathConstraint{Kind: e.Kind, First: e.First, Second: e.Second}
	}
	return constraint.NewSet(items...)
}

// Cumulative decodes the session's stored constraint set.
func (st *SessionState) Cumulative() constraint.Set {
	return fromEntries(st.Entries)
}

// SetCumulative replaces the session's stored constraint set.
func (st *SessionState) SetCumulative(s constraint.Set) {
	st.Entries = toEntries(s)
}

// newSessionState seeds a fresh session for date with the Unconstrained
// constraint, matching the Validation Pipeline's starting state.
func newSessionState(date string) *SessionState {
	st := &SessionState{Date: date}
	st.SetCumulative(constraint.NewSet(constraint.Unconstrained))
	return st
}

func sessionKey(sessionID string) string { return "session:" + sessionID }

// GetOrCreateSession fetches a session's cached state for date, creating
// and caching a fresh one if none exists yet.
func (s *Store) GetOrCreateSession(ctx context.Context, sessionID, date string) (*SessionState, error) {
	st, err := s.getSession(ctx, sessionID)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	st = newSessionState(date)
	if err := s.putSession(ctx, sessionID, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Store) getSession(ctx context.Context, sessionID string) (*SessionState, error) {
	data, err := s.Redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var st SessionState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Store) putSession(ctx context.Context, sessionID string, st *SessionState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, sessionKey(sessionID), data, sessionTTL).Err()
}

// UpdateSession atomically reads a session's current state, lets mutate
// compute the next state, and writes it back — using Redis WATCH so a
// double-submitted request never silently loses an accepted word to a
// race with itself.
func (s *Store) UpdateSession(ctx context.Context, sessionID string, mutate func(*SessionState) (*SessionState, error)) (*SessionState, error) {
	key := sessionKey(sessionID)

	var result *SessionState
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		var current *SessionState
		switch {
		case err == redis.Nil:
			return fmt.Errorf("store: session %s not found: %w", sessionID, ErrNotFound)
		case err != nil:
			return err
		default:
			current = &SessionState{}
			if err := json.Unmarshal(data, current); err != nil {
				return err
			}
		}

		next, err := mutate(current)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, sessionTTL)
			return nil
		})
		if err != nil {
			return err
		}
		result = next
		return nil
	}

	err := s.Redis.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil, ErrSessionStale
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
