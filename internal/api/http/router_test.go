package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/studia/internal/assignment"
	"github.com/campusconnect/studia/internal/challenge"
	"github.com/campusconnect/studia/internal/content"
	"github.com/campusconnect/studia/internal/course"
	"github.com/campusconnect/studia/internal/llm"
	"github.com/campusconnect/studia/internal/prize"
	"github.com/campusconnect/studia/internal/quiz"
	"github.com/campusconnect/studia/internal/store"
)

func newTestServer(t *testing.T, provider llm.Provider) *httptest.Server {
	t.Helper()
	collections := store.NewMemoryCollections()
	roster := course.NewRoster(collections, store.NopEvents{})
	svc := Services{
		Catalog:     course.NewCatalog(collections),
		Roster:      roster,
		Challenges:  challenge.NewTracker(challenge.NewStorage(collections), roster),
		Assignments: assignment.NewTracker(assignment.NewStorage(collections)),
		Prizes:      prize.NewLedger(collections, roster),
		Content:     content.NewService(provider, content.DefaultConfig()),
	}
	srv := httptest.NewServer(NewRouter(svc, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func testQuiz() *quiz.Quiz {
	q := &quiz.Quiz{Title: "Fractions"}
	for i := 0; i < 5; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			Text:               fmt.Sprintf("Question %d", i+1),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: 2,
			Explanation:        "because",
		})
	}
	return q
}

func TestChallengeFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	var crs course.Course
	resp := doJSON(t, "POST", srv.URL+"/courses", map[string]string{
		"title": "Algebra I", "teacher": "t1", "code": "ALG1",
	}, &crs)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, "POST", srv.URL+"/courses/join", map[string]string{
		"code": "alg1", "learnerId": "s1", "name": "Ana",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var c challenge.Challenge
	resp = doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/challenges", map[string]any{
		"kind": "quiz", "title": "Fractions quiz", "topic": "fractions",
		"points": 120, "quiz": testQuiz(),
	}, &c)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var attempt challenge.AttemptResult
	resp = doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/challenges/"+c.ID+"/attempt", map[string]any{
		"learnerId": "s1",
		"answers":   map[int]int{0: 2, 1: 2, 2: 2, 3: 2, 4: 2},
	}, &attempt)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, attempt.Passed)
	assert.Equal(t, 120, attempt.PointsAwarded)

	var board []course.Learner
	resp = doJSON(t, "GET", srv.URL+"/courses/"+crs.ID+"/leaderboard", nil, &board)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, board, 1)
	assert.Equal(t, 120, board[0].Points)

	resp = doJSON(t, "DELETE", srv.URL+"/courses/"+crs.ID+"/challenges/"+c.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var remaining []challenge.Challenge
	resp = doJSON(t, "GET", srv.URL+"/courses/"+crs.ID+"/challenges", nil, &remaining)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, remaining)

	// Earned points survive the deletion.
	resp = doJSON(t, "GET", srv.URL+"/courses/"+crs.ID+"/leaderboard", nil, &board)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, board, 1)
	assert.Equal(t, 120, board[0].Points)

	resp = doJSON(t, "DELETE", srv.URL+"/courses/"+crs.ID+"/challenges/"+c.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPrizeClaimOverHTTP(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	var crs course.Course
	doJSON(t, "POST", srv.URL+"/courses", map[string]string{"title": "Bio", "code": "B1"}, &crs)
	doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/learners", map[string]string{"learnerId": "s1", "name": "Ana"}, nil)

	var p prize.Prize
	resp := doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/prizes", map[string]any{
		"title": "Homework pass", "pointsRequired": 100,
	}, &p)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Not enough points yet.
	resp = doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/prizes/"+p.ID+"/claim", map[string]string{"learnerId": "s1"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAssignmentPastDueOverHTTP(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	var crs course.Course
	doJSON(t, "POST", srv.URL+"/courses", map[string]string{"title": "Bio", "code": "B2"}, &crs)

	var a assignment.Assignment
	resp := doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/assignments", map[string]any{
		"kind": "survey", "title": "Feedback", "content": "How was it?",
		"dueDate": time.Now().UTC().Add(-time.Hour),
	}, &a)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, "POST", srv.URL+"/courses/"+crs.ID+"/assignments/"+a.ID+"/submit", map[string]string{
		"learnerId": "s1", "answer": "late answer",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var status map[string]assignment.Status
	resp = doJSON(t, "GET", srv.URL+"/courses/"+crs.ID+"/assignments/"+a.ID+"/status?learnerId=s1", nil, &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, assignment.StatusMissed, status["status"])
}

func TestGenerateQuizChallengeOverHTTP(t *testing.T) {
	generated, err := json.Marshal(testQuiz())
	require.NoError(t, err)
	provider := llm.NewMockProvider(llm.MockResponse{Content: generated})
	srv := newTestServer(t, provider)

	var q quiz.Quiz
	resp := doJSON(t, "POST", srv.URL+"/generate/quiz-challenge", map[string]string{"topic": "fractions"}, &q)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, q.Questions, 5)
}

func TestUnknownCourseIs404(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	resp := doJSON(t, "GET", srv.URL+"/courses/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
