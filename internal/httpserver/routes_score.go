// apps/go-server/internal/httpserver/routes_score.go
//
// HTTP routes for the scoring engine.
//   - GET  /categories         → the 13 categories in canonical order
//   - POST /score              → options for every category given dice + sheet
//   - POST /score/{category}   → score for a single category
//
// Invalid dice and unknown categories are client errors (400); an unknown
// category in the path is a 404.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/apps/go-server/internal/scoring"
)

func (s *Server) mountScoring(r chi.Router) {
	r.Get("/categories", s.handleCategories)
	r.Route("/score", func(r chi.Router) {
		r.Post("/", s.handleScoreAll)
		r.Post("/{category}", s.handleScoreOne)
	})
}

// categoryRes describes one category for GET /categories.
type categoryRes struct {
	Category scoring.Category `json:"category"`
	Name     string           `json:"name"`
	Section  scoring.Section  `json:"section"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := scoring.Categories()
	out := make([]categoryRes, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryRes{Category: c, Name: c.Name(), Section: c.Section()})
	}
	writeJSON(w, http.StatusOK, out)
}

// scoreReq is the payload for POST /score and POST /score/{category}.
type scoreReq struct {
	Dice  []int         `json:"dice"`
	Sheet scoring.Sheet `json:"sheet"` // optional; ignored by /score/{category}
}

// scoreAllRes is returned by POST /score.
type scoreAllRes struct {
	Options []scoring.CategoryScoreOption `json:"options"`
	Totals  scoring.Totals                `json:"totals"`
}

// scoreOneRes is returned by POST /score/{category}.
type scoreOneRes struct {
	Category scoring.Category `json:"category"`
	Score    int              `json:"score"`
}

// handleScoreAll scores the dice in every category against the sheet.
func (s *Server) handleScoreAll(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreReq(w, r)
	if !ok {
		return
	}
	opts, err := scoring.AllCategoryOptions(scoring.Hand(req.Dice), req.Sheet)
	if err != nil {
		writeScoringError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreAllRes{Options: opts, Totals: req.Sheet.Totals()})
}

// handleScoreOne scores the dice in the category named by the path.
func (s *Server) handleScoreOne(w http.ResponseWriter, r *http.Request) {
	c, err := scoring.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_category")
		return
	}
	req, ok := decodeScoreReq(w, r)
	if !ok {
		return
	}
	score, err := scoring.ScoreForCategory(scoring.Hand(req.Dice), c)
	if err != nil {
		writeScoringError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreOneRes{Category: c, Score: score})
}

// decodeScoreReq reads the body; on failure it has already written the response.
func decodeScoreReq(w http.ResponseWriter, r *http.Request) (scoreReq, bool) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, scoring.ErrUnknownCategory) {
			writeError(w, http.StatusBadRequest, "unknown_category")
			return req, false
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return req, false
	}
	return req, true
}

// writeScoringError maps engine errors to status codes.
func writeScoringError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidHand):
		writeError(w, http.StatusBadRequest, "invalid_hand")
	case errors.Is(err, scoring.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, "unknown_category")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("scoring failed")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
