package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusconnect/studia/internal/store"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "List recent point awards",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryPointAwards(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query point awards: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No point awards found.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-12s  %-6s  %-7s  %s\n",
			"Timestamp", "Course", "Learner", "Pts", "Total", "Reason")
		fmt.Println(strings.Repeat("─", 90))

		for _, e := range events {
			fmt.Printf("%-19s  %-12s  %-12s  %-6d  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.CourseID, 12),
				truncate(e.LearnerID, 12),
				e.Points,
				e.TotalAfter,
				e.Reason,
			)
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func init() {
	pointsCmd.Flags().Int("limit", 20, "Maximum awards to show")
}
