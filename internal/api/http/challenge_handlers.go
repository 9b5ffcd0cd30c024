package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusconnect/studia/internal/challenge"
	"github.com/campusconnect/studia/internal/content"
	"github.com/campusconnect/studia/internal/quiz"
)

func PublishChallengeHandler(tracker *challenge.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Kind        challenge.Kind `json:"kind"`
			Title       string         `json:"title"`
			Description string         `json:"description"`
			Topic       string         `json:"topic"`
			Points      int            `json:"points"`
			Quiz        *quiz.Quiz     `json:"quiz,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		c := challenge.New(req.Kind, req.Title, req.Description, req.Topic, req.Points)
		c.Quiz = req.Quiz
		if err := tracker.Publish(r.Context(), chi.URLParam(r, "courseID"), c); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

func ListChallengesHandler(tracker *challenge.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challenges, err := tracker.Challenges(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if challenges == nil {
			challenges = []challenge.Challenge{}
		}
		writeJSON(w, http.StatusOK, challenges)
	}
}

func DeleteChallengeHandler(tracker *challenge.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := tracker.Delete(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "challengeID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func AttemptQuizHandler(tracker *challenge.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LearnerID string      `json:"learnerId"`
			Answers   map[int]int `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.LearnerID == "" {
			http.Error(w, "learnerId required", http.StatusBadRequest)
			return
		}
		attempt, err := tracker.CompleteQuiz(r.Context(),
			chi.URLParam(r, "courseID"), req.LearnerID,
			chi.URLParam(r, "challengeID"), req.Answers)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, attempt)
	}
}

// SubmitArtifactHandler files a pending submission. When moderation is
// requested the AI verdict rides along as advisory feedback for the
// reviewing teacher; a rejection there never blocks the submission.
func SubmitArtifactHandler(tracker *challenge.Tracker, gateway *content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LearnerID       string `json:"learnerId"`
			ArtifactDataURI string `json:"artifactDataUri"`
			Moderate        bool   `json:"moderate"`
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
		challengeID := chi.URLParam(r, "challengeID")

		feedback := ""
		if req.Moderate {
			c, err := tracker.Challenge(r.Context(), courseID, challengeID)
			if err != nil {
				writeErr(w, err)
				return
			}
			verdict, err := gateway.ModerateSubmission(r.Context(), content.ModerationInput{
				PhotoDataURI: req.ArtifactDataURI,
				Topic:        c.Topic,
				Description:  c.Description,
			})
			if err != nil {
				log.Printf("moderation unavailable for challenge %s: %v", challengeID, err)
			} else {
				feedback = verdict.Feedback
			}
		}

		sub, err := tracker.SubmitArtifact(r.Context(), courseID, req.LearnerID, challengeID, req.ArtifactDataURI, feedback)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sub)
	}
}

func PendingSubmissionsHandler(tracker *challenge.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := tracker.PendingSubmissions(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if pending == nil {
			pending = []challenge.Submission{}
		}
		writeJSON(w, http.StatusOK, pending)
	}
}

func ReviewSubmissionHandler(tracker *challenge.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Approve  bool   `json:"approve"`
			Feedback string `json:"feedback"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sub, err := tracker.Review(r.Context(),
			chi.URLParam(r, "courseID"), chi.URLParam(r, "submissionID"),
			req.Approve, req.Feedback)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}
