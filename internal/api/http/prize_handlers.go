package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusconnect/studia/internal/prize"
)

func PublishPrizeHandler(ledger *prize.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title          string       `json:"title"`
			Description    string       `json:"description"`
			PointsRequired int          `json:"pointsRequired"`
			Target         prize.Target `json:"target"`
			StudentID      string       `json:"studentId,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var p prize.Prize
		if req.Target == prize.TargetStudent {
			p = prize.NewForStudent(req.Title, req.Description, req.PointsRequired, req.StudentID)
		} else {
			p = prize.New(req.Title, req.Description, req.PointsRequired)
		}
		if err := ledger.Publish(r.Context(), chi.URLParam(r, "courseID"), p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func ListPrizesHandler(ledger *prize.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prizes, err := ledger.Prizes(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if prizes == nil {
			prizes = []prize.Prize{}
		}
		writeJSON(w, http.StatusOK, prizes)
	}
}

func ClaimedPrizesHandler(ledger *prize.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		learnerID := r.URL.Query().Get("learnerId")
		if learnerID == "" {
			http.Error(w, "learnerId required", http.StatusBadRequest)
			return
		}
		claimed, err := ledger.Claimed(r.Context(), chi.URLParam(r, "courseID"), learnerID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if claimed == nil {
			claimed = []string{}
		}
		writeJSON(w, http.StatusOK, claimed)
	}
}

func ClaimPrizeHandler(ledger *prize.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LearnerID string `json:"learnerId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.LearnerID == "" {
			http.Error(w, "learnerId required", http.StatusBadRequest)
			return
		}
		err := ledger.Claim(r.Context(),
			chi.URLParam(r, "courseID"), req.LearnerID, chi.URLParam(r, "prizeID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
