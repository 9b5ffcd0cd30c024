package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campusconnect/studia/internal/assignment"
	"github.com/campusconnect/studia/internal/quiz"
)

type assignmentRequest struct {
	Kind      assignment.Kind `json:"kind"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Questions []quiz.Question `json:"questions,omitempty"`
	// RawQuestions accepts hand-edited question JSON as a string;
	// malformed input degrades to no questions.
	RawQuestions string    `json:"rawQuestions,omitempty"`
	DueDate      time.Time `json:"dueDate"`
}

func (req assignmentRequest) build() assignment.Assignment {
	a := assignment.New(req.Kind, req.Title, req.Content, req.DueDate)
	a.Questions = req.Questions
	if len(a.Questions) == 0 && req.RawQuestions != "" {
		a.Questions = assignment.ParseQuestions(req.RawQuestions)
	}
	return a
}

func PublishAssignmentHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		a := req.build()
		if err := tracker.Publish(r.Context(), chi.URLParam(r, "courseID"), a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

func ListAssignmentsHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assignments, err := tracker.Assignments(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if assignments == nil {
			assignments = []assignment.Assignment{}
		}
		writeJSON(w, http.StatusOK, assignments)
	}
}

func UpdateAssignmentHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		a := req.build()
		a.ID = chi.URLParam(r, "assignmentID")
		if err := tracker.Update(r.Context(), chi.URLParam(r, "courseID"), a); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func DeleteAssignmentHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := tracker.Delete(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "assignmentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SubmitAssignmentHandler accepts either quiz answers or a free-text
// answer, depending on the assignment kind.
func SubmitAssignmentHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LearnerID string      `json:"learnerId"`
			Answers   map[int]int `json:"answers,omitempty"`
			Answer    string      `json:"answer,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.LearnerID == "" {
			http.Error(w, "learnerId required", http.StatusBadRequest)
			return
		}
		courseID := chi.URLParam(r, "courseID")
		assignmentID := chi.URLParam(r, "assignmentID")

		if req.Answers != nil {
			result, err := tracker.SubmitQuiz(r.Context(), courseID, req.LearnerID, assignmentID, req.Answers)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, result)
			return
		}
		if err := tracker.SubmitText(r.Context(), courseID, req.LearnerID, assignmentID, req.Answer); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReviewAssignmentHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		learnerID := r.URL.Query().Get("learnerId")
		if learnerID == "" {
			http.Error(w, "learnerId required", http.StatusBadRequest)
			return
		}
		c, err := tracker.Review(r.Context(),
			chi.URLParam(r, "courseID"), learnerID, chi.URLParam(r, "assignmentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func AssignmentStatusHandler(tracker *assignment.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		learnerID := r.URL.Query().Get("learnerId")
		if learnerID == "" {
			http.Error(w, "learnerId required", http.StatusBadRequest)
			return
		}
		status, err := tracker.Status(r.Context(),
			chi.URLParam(r, "courseID"), learnerID, chi.URLParam(r, "assignmentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]assignment.Status{"status": status})
	}
}
