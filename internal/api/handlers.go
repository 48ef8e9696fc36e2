// Package api holds the Gin handlers exposing the puzzle engine over HTTP:
// fetching a day's board, submitting answers against it, and reading the
// current wildcard notation for a play session.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crossplay/wordquest/internal/auth"
	"github.com/crossplay/wordquest/internal/dictionary"
	"github.com/crossplay/wordquest/internal/models"
	"github.com/crossplay/wordquest/internal/store"
	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/notation"
	"github.com/crossplay/wordquest/pkg/validation"
)

// requestTimeout bounds how long a single handler may hold its Redis calls
// open; the Postgres lookups take no context and are not bounded by it.
const requestTimeout = 5 * time.Second

// Handlers wires the puzzle engine into Gin routes.
type Handlers struct {
	store    *store.Store
	dict     *dictionary.Dictionary
	sessions *auth.SessionService
}

func NewHandlers(st *store.Store, dict *dictionary.Dictionary, sessions *auth.SessionService) *Handlers {
	return &Handlers{store: st, dict: dict, sessions: sessions}
}

// PuzzleResponse is the public view of a day's puzzle: the board only,
// never the answer group.
type PuzzleResponse struct {
	Date         string `json:"date"`
	Board        string `json:"board"`
	SessionToken string `json:"sessionToken"`
}

// GetPuzzle handles GET /puzzles/:date: it fetches the puzzle's board and
// issues a fresh anonymous session token scoped to it.
func (h *Handlers) GetPuzzle(c *gin.Context) {
	date := c.Param("date")

	row, err := h.store.GetPuzzleByDate(date)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no puzzle for that date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load puzzle"})
		return
	}

	sessionID := uuid.New().String()
	token, err := h.sessions.IssueSession(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()
	if _, err := h.store.GetOrCreateSession(ctx, sessionID, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	c.JSON(http.StatusOK, PuzzleResponse{Date: date, Board: row.Board, SessionToken: token})
}

// AnswerRequest is the body of POST /puzzles/:date/answers.
type AnswerRequest struct {
	SessionToken string `json:"sessionToken" binding:"required"`
	Word         string `json:"word" binding:"required"`
}

// SubmitAnswer handles POST /puzzles/:date/answers: it runs one step of
// the Validation Pipeline against the session's cumulative constraint
// state and reports the updated wildcard notation.
func (h *Handlers) SubmitAnswer(c *gin.Context) {
	date := c.Param("date")

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.sessions.ValidateSession(req.SessionToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	row, err := h.store.GetPuzzleByDate(date)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no puzzle for that date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load puzzle"})
		return
	}

	b, err := board.ParseRowMajor(row.Board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored board is malformed"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	current, err := h.store.GetOrCreateSession(ctx, claims.SessionID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	attempt := append(append([]string{}, current.AcceptedWords...), req.Word)
	report := validation.Validate(b, h.dict, attempt)
	outcome := report.Answers[len(report.Answers)-1]

	result := models.SubmittedAnswerResult{Word: req.Word, Valid: outcome.Valid}
	if outcome.Valid {
		result.Score = outcome.Score

		updated, err := h.store.UpdateSession(ctx, claims.SessionID, func(st *store.SessionState) (*store.SessionState, error) {
			st.AcceptedWords = append(st.AcceptedWords, req.Word)
			st.SetCumulative(report.Constraint)
			return st, nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist answer"})
			return
		}
		current = updated
	}

	display := notation.Render(current.Cumulative())
	c.JSON(http.StatusOK, models.AnswerSubmissionResponse{
		Results:        []models.SubmittedAnswerResult{result},
		TotalScore:     totalScore(current, b, h.dict),
		WildcardFirst:  display.First,
		WildcardSecond: display.Second,
	})
}

// totalScore replays the Validation Pipeline over every accepted word and
// sums the resulting scores, each word scored against the cumulative
// constraint in force when it was accepted. It recomputes from the accepted
// list on every call rather than keeping a running sum of per-submission
// scores.
func totalScore(st *store.SessionState, b *board.Board, dict validation.Dictionary) int {
	if len(st.AcceptedWords) == 0 {
		return 0
	}
	report := validation.Validate(b, dict, st.AcceptedWords)
	sum := 0
	for _, a := range report.Answers {
		sum += a.Score
	}
	return sum
}

// NotationRequest is the query parameters of GET /puzzles/:date/notation.
type NotationRequest struct {
	SessionToken string `form:"sessionToken" binding:"required"`
}

// GetNotation handles GET /puzzles/:date/notation: it reports the current
// wildcard display for a session without submitting a new word.
func (h *Handlers) GetNotation(c *gin.Context) {
	date := c.Param("date")

	var req NotationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.sessions.ValidateSession(req.SessionToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	current, err := h.store.GetOrCreateSession(ctx, claims.SessionID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	display := notation.Render(current.Cumulative())
	c.JSON(http.StatusOK, gin.H{
		"wildcardFirst":  display.First,
		"wildcardSecond": display.Second,
	})
}

// RegisterRoutes mounts the puzzle routes on router.
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/puzzles/:date", h.GetPuzzle)
	router.POST("/puzzles/:date/answers", h.SubmitAnswer)
	router.GET("/puzzles/:date/notation", h.GetNotation)
}
