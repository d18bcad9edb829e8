package main

import (
	"fmt"
	"time"

	"painting_crm/internal/usecase"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		orgID string
		days  int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo leads, jobs, subcontractors and reviews for one organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, closeFn, err := a.repositories(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			sum, err := usecase.NewSeedUseCase(repos, a.logger, seed).Seed(cmd.Context(), orgID, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d subcontractors, %d leads, %d jobs, %d reviews\n",
				orgID, sum.Subcontractors, sum.Leads, sum.Jobs, sum.Reviews)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization id to seed (required)")
	cmd.Flags().IntVar(&days, "days", 400, "days of history to generate")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}
