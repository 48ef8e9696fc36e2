// Package models holds the shared wire and storage types that cross
// package boundaries between the persistence, HTTP, and session layers.
package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PuzzleRow is one day's persisted puzzle: its board, canonical five-word
// AnswerGroup and its total score, and the threshold it was accepted at.
type PuzzleRow struct {
	Date       string    `json:"date"` // YYYY-MM-DD
	Board      string    `json:"board"` // row-major, e.g. "hissc*lole*dseeo"
	Words      []string  `json:"words"`
	TotalScore int       `json:"totalScore"`
	Threshold  int       `json:"threshold"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SubmittedAnswerResult is one word's outcome from a play-time answer
// submission, as returned to the client.
type SubmittedAnswerResult struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
	Score int    `json:"score,omitempty"`
}

// AnswerSubmissionResponse is the full response to a POST answers request:
// per-word results plus the current rendered wildcard notation.
type AnswerSubmissionResponse struct {
	Results        []SubmittedAnswerResult `json:"results"`
	TotalScore     int                      `json:"totalScore"`
	WildcardFirst  string                   `json:"wildcardFirst"`
	WildcardSecond string                   `json:"wildcardSecond"`
}

// SessionClaims is the payload of an anonymous play-session JWT: just
// enough identity to scope a session's cumulative answer state server-side
// without any account system.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
