package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/studia/internal/assignment"
	"github.com/campusconnect/studia/internal/challenge"
	"github.com/campusconnect/studia/internal/course"
	"github.com/campusconnect/studia/internal/prize"
	"github.com/campusconnect/studia/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto status codes: lookup misses are
// 404, state conflicts are 409, bad input is 400.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case course.IsNotFound(err),
		challenge.IsNotFound(err),
		assignment.IsNotFound(err),
		prize.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, challenge.ErrAlreadyCompleted),
		errors.Is(err, challenge.ErrPendingReview),
		errors.Is(err, assignment.ErrAlreadySubmitted),
		errors.Is(err, assignment.ErrPastDue),
		errors.Is(err, assignment.ErrReviewNotOpen),
		errors.Is(err, prize.ErrNotEligible):
		http.Error(w, err.Error(), http.StatusConflict)
	case isBadInput(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func isBadInput(err error) bool {
	var unanswered *quiz.UnansweredError
	var kindErr *challenge.KindError
	return errors.As(err, &unanswered) || errors.As(err, &kindErr)
}
