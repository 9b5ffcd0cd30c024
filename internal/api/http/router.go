package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/campusconnect/studia/internal/assignment"
	"github.com/campusconnect/studia/internal/challenge"
	"github.com/campusconnect/studia/internal/content"
	"github.com/campusconnect/studia/internal/course"
	"github.com/campusconnect/studia/internal/prize"
)

// Services bundles the engine services the API exposes.
type Services struct {
	Catalog     *course.Catalog
	Roster      *course.Roster
	Challenges  *challenge.Tracker
	Assignments *assignment.Tracker
	Prizes      *prize.Ledger
	Content     *content.Service
}

// NewRouter mounts the REST surface. Learner identity arrives as a
// plain identifier; authentication sits in front of this router.
func NewRouter(svc Services, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/courses", func(cr chi.Router) {
		cr.Post("/", CreateCourseHandler(svc.Catalog))
		cr.Get("/", ListCoursesHandler(svc.Catalog))
		cr.Post("/join", JoinCourseHandler(svc.Catalog, svc.Roster))

		cr.Route("/{courseID}", func(sr chi.Router) {
			sr.Get("/", GetCourseHandler(svc.Catalog))
			sr.Delete("/", DeleteCourseHandler(svc.Catalog))

			sr.Post("/learners", EnrollHandler(svc.Roster))
			sr.Get("/learners", ListLearnersHandler(svc.Roster))
			sr.Get("/leaderboard", LeaderboardHandler(svc.Roster))

			sr.Post("/challenges", PublishChallengeHandler(svc.Challenges))
			sr.Get("/challenges", ListChallengesHandler(svc.Challenges))
			sr.Delete("/challenges/{challengeID}", DeleteChallengeHandler(svc.Challenges))
			sr.Post("/challenges/{challengeID}/attempt", AttemptQuizHandler(svc.Challenges))
			sr.Post("/challenges/{challengeID}/submissions", SubmitArtifactHandler(svc.Challenges, svc.Content))
			sr.Get("/submissions", PendingSubmissionsHandler(svc.Challenges))
			sr.Post("/submissions/{submissionID}/review", ReviewSubmissionHandler(svc.Challenges))

			sr.Post("/assignments", PublishAssignmentHandler(svc.Assignments))
			sr.Get("/assignments", ListAssignmentsHandler(svc.Assignments))
			sr.Put("/assignments/{assignmentID}", UpdateAssignmentHandler(svc.Assignments))
			sr.Delete("/assignments/{assignmentID}", DeleteAssignmentHandler(svc.Assignments))
			sr.Post("/assignments/{assignmentID}/submit", SubmitAssignmentHandler(svc.Assignments))
			sr.Get("/assignments/{assignmentID}/review", ReviewAssignmentHandler(svc.Assignments))
			sr.Get("/assignments/{assignmentID}/status", AssignmentStatusHandler(svc.Assignments))

			sr.Post("/prizes", PublishPrizeHandler(svc.Prizes))
			sr.Get("/prizes", ListPrizesHandler(svc.Prizes))
			sr.Get("/prizes/claims", ClaimedPrizesHandler(svc.Prizes))
			sr.Post("/prizes/{prizeID}/claim", ClaimPrizeHandler(svc.Prizes))
		})
	})

	r.Route("/generate", func(gr chi.Router) {
		gr.Post("/quiz-challenge", GenerateQuizChallengeHandler(svc.Content))
		gr.Post("/challenge-details", GenerateChallengeDetailsHandler(svc.Content))
		gr.Post("/content", GenerateContentHandler(svc.Content))
		gr.Post("/moderate", ModerateHandler(svc.Content))
	})

	return r
}
