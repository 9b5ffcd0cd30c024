package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusconnect/studia/internal/content"
)

func GenerateQuizChallengeHandler(gateway *content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic string `json:"topic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Topic == "" {
			http.Error(w, "topic required", http.StatusBadRequest)
			return
		}
		q, err := gateway.GenerateQuizChallenge(r.Context(), req.Topic)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

func GenerateChallengeDetailsHandler(gateway *content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic      string             `json:"topic"`
			Difficulty content.Difficulty `json:"difficulty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !req.Difficulty.Valid() {
			http.Error(w, "difficulty must be easy, medium or hard", http.StatusBadRequest)
			return
		}
		details, err := gateway.GenerateChallengeDetails(r.Context(), req.Topic, req.Difficulty)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, details)
	}
}

func GenerateContentHandler(gateway *content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req content.ContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !req.ContentType.Valid() {
			http.Error(w, "contentType must be quiz, survey or assignment", http.StatusBadRequest)
			return
		}
		generated, err := gateway.GenerateContent(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, generated)
	}
}

func ModerateHandler(gateway *content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req content.ModerationInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.PhotoDataURI == "" {
			http.Error(w, "photoDataUri required", http.StatusBadRequest)
			return
		}
		verdict, err := gateway.ModerateSubmission(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, verdict)
	}
}
