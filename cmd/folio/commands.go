package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sushihentaime/folio/internal/content"
	"github.com/sushihentaime/folio/internal/trainingservice"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Inspect the portfolio content",
		Long:          "Validate the portfolio dataset and print the training views derived from it as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("fixture", "", "YAML dataset to use instead of the built-in content")

	root.AddCommand(
		newValidateCommand(),
		newWeeklyCommand(),
		newSummaryCommand(),
		newPersonalBestsCommand(),
	)

	return root
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset for integrity errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			if err := content.Validate(store); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"valid": true,
				"counts": map[string]int{
					"blog_posts":     len(store.BlogPosts),
					"music_posts":    len(store.MusicPosts),
					"personal_bests": len(store.PersonalBests),
					"friends":        len(store.Friends),
					"training":       len(store.Training),
				},
			})
		},
	}
}

func newWeeklyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Print distance per Sunday-anchored week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), trainingservice.NewTrainingService(store, nil).Weekly())
		},
	}
}

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise training over a timeframe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeframe, _ := cmd.Flags().GetString("timeframe")
			rawRef, _ := cmd.Flags().GetString("ref")

			ref := time.Now().UTC()
			if rawRef != "" {
				d, err := content.ParseDate(rawRef)
				if err != nil {
					return err
				}
				ref = d
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			summary, err := trainingservice.NewTrainingService(store, nil).Summary(timeframe, ref)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().String("timeframe", "30", `number of days or "all"`)
	cmd.Flags().String("ref", "", "reference date as YYYY-MM-DD (default today)")

	return cmd
}

func newPersonalBestsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pbs",
		Short: "Print personal bests from the shortest race to the longest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), trainingservice.NewTrainingService(store, nil).PersonalBests())
		},
	}
}

func loadStore(cmd *cobra.Command) (*content.Store, error) {
	path, _ := cmd.Flags().GetString("fixture")
	if path == "" {
		return content.Default, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open fixture: %w", err)
	}
	defer f.Close()

	return content.LoadFixture(f)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}
