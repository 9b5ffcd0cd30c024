package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusconnect/studia/internal/course"
)

func CreateCourseHandler(catalog *course.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Teacher     string `json:"teacher"`
			Code        string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			http.Error(w, "title required", http.StatusBadRequest)
			return
		}
		crs := course.New(req.Title, req.Description, req.Teacher, req.Code)
		if err := catalog.Create(r.Context(), crs); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, crs)
	}
}

func ListCoursesHandler(catalog *course.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := catalog.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		if courses == nil {
			courses = []course.Course{}
		}
		writeJSON(w, http.StatusOK, courses)
	}
}

func GetCourseHandler(catalog *course.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crs, err := catalog.Get(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, crs)
	}
}

func DeleteCourseHandler(catalog *course.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := catalog.Delete(r.Context(), chi.URLParam(r, "courseID")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// JoinCourseHandler resolves a join code and enrolls the learner in
// one step.
func JoinCourseHandler(catalog *course.Catalog, roster *course.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Code      string `json:"code"`
			LearnerID string `json:"learnerId"`
			Name      string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Code == "" || req.LearnerID == "" {
			http.Error(w, "code and learnerId required", http.StatusBadRequest)
			return
		}
		crs, err := catalog.FindByCode(r.Context(), req.Code)
		if err != nil {
			writeErr(w, err)
			return
		}
		learner := course.Learner{ID: req.LearnerID, Name: req.Name}
		if err := roster.Enroll(r.Context(), crs.ID, learner); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, crs)
	}
}

func EnrollHandler(roster *course.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LearnerID string `json:"learnerId"`
			Name      string `json:"name"`
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
		learner := course.Learner{ID: req.LearnerID, Name: req.Name}
		if err := roster.Enroll(r.Context(), courseID, learner); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListLearnersHandler(roster *course.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		learners, err := roster.Learners(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if learners == nil {
			learners = []course.Learner{}
		}
		writeJSON(w, http.StatusOK, learners)
	}
}

func LeaderboardHandler(roster *course.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := roster.Leaderboard(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if board == nil {
			board = []course.Learner{}
		}
		writeJSON(w, http.StatusOK, board)
	}
}
