package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	api "github.com/campusconnect/studia/internal/api/http"
	"github.com/campusconnect/studia/internal/assignment"
	"github.com/campusconnect/studia/internal/challenge"
	"github.com/campusconnect/studia/internal/content"
	"github.com/campusconnect/studia/internal/course"
	"github.com/campusconnect/studia/internal/llm"
	"github.com/campusconnect/studia/internal/prize"
	"github.com/campusconnect/studia/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("origins", "http://localhost:3000", "Comma-separated allowed CORS origins")
}

// runServe opens the store, builds the engine services and serves the
// API until interrupted.
func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	collections := st.Collections()
	events := st.EventRepo()

	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), events)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	roster := course.NewRoster(collections, events)
	svc := api.Services{
		Catalog:     course.NewCatalog(collections),
		Roster:      roster,
		Challenges:  challenge.NewTracker(challenge.NewStorage(collections), roster),
		Assignments: assignment.NewTracker(assignment.NewStorage(collections)),
		Prizes:      prize.NewLedger(collections, roster),
		Content:     content.NewService(provider, content.DefaultConfig()),
	}

	// Flags live on the serve command; the bare root command falls
	// back to the same defaults.
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = ":8080"
	}
	origins, _ := cmd.Flags().GetString("origins")
	if origins == "" {
		origins = "http://localhost:3000"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(svc, strings.Split(origins, ",")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("studia listening on %s (db %s)", addr, dbPath)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
