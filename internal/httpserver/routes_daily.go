// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's round (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's round
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on win.
// Deterministic word selection is based on date + salt.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/puzzleword/go-server/internal/daily"
	"github.com/puzzleword/go-server/internal/game"
	"github.com/puzzleword/go-server/internal/puzzle"
	"github.com/puzzleword/go-server/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily round.
type dailySession struct {
	Round     *game.Round
	UserID    string
	Date      string
	WordIndex int
	Start     time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key and deterministic word index.
func (d *dailyServer) dateKeyNow() (date string, idx int) {
	now := time.Now().UTC()
	return daily.DateKey(now), daily.WordIndex(now, d.salt, words.Count())
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	RoundID string `json:"roundId"`
	Date    string `json:"date"`
	Hint    string `json:"hint,omitempty"`
	Length  int    `json:"length,omitempty"`
	Played  bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the round.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	date, idx := d.dateKeyNow()

	word, err := puzzle.SelectAt(idx)
	if err != nil {
		http.Error(w, `{"error":"no_puzzle_word"}`, http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{RoundID: "", Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{
			RoundID: sess.Round.ID, Date: date,
			Hint: sess.Round.Hint.Masked(), Length: sess.Round.Word.Len(),
		})
		return
	}
	sess := &dailySession{
		Round:     game.StartRound(word, puzzle.ComputeHint(word)),
		UserID:    uid,
		Date:      date,
		WordIndex: idx,
		Start:     time.Now(),
	}
	d.sessions[key] = sess
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		RoundID: sess.Round.ID, Date: date,
		Hint: sess.Round.Hint.Masked(), Length: sess.Round.Word.Len(),
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	RoundID string `json:"roundId"`
	Guess   string `json:"guess"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Correct bool   `json:"correct"`
	State   string `json:"state"` // in_progress | won | locked
	Guesses int    `json:"guesses"`
}

// handleGuess validates and applies a guess for today's daily session.
// - Ensures a matching session for the caller and round ID.
// - Reports "locked" once the session is finished.
// - Delegates validation and matching to the guess engine.
// - Persists the result to DB on a win.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if p.RoundID == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	date, _ := d.dateKeyNow()

	// Find session.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.Round.ID != p.RoundID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	d.mu.Lock()
	res, err := sess.Round.SubmitGuess(p.Guess)
	guesses := sess.Round.Guesses
	d.mu.Unlock()
	if err != nil {
		var state *game.InvalidStateError
		if errors.As(err, &state) {
			_ = json.NewEncoder(w).Encode(dailyGuessRes{State: "locked", Guesses: guesses})
			return
		}
		writeEngineError(w, err)
		return
	}

	// Persist and return.
	if res.Correct {
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, WordIndex: sess.WordIndex, Guesses: guesses, ElapsedMs: elapsed,
		})
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Correct: true, State: "won", Guesses: guesses})
		return
	}
	_ = json.NewEncoder(w).Encode(dailyGuessRes{State: "in_progress", Guesses: guesses})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
