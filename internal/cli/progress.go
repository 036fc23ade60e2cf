package cli

import (
	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Run progress commands",
	}

	cmd.AddCommand(newProgressGetCmd())
	cmd.AddCommand(newProgressSubmitCmd())

	return cmd
}

func newProgressGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show best score and wave",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ProgressResult

			if err := client.Get("/api/progress", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProgressSubmitCmd() *cobra.Command {
	var wave, score int64

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a finished run",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int64{
				"wave":  wave,
				"score": score,
			}

			if err := client.Post("/api/progress", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Run submitted")
			return nil
		},
	}

	cmd.Flags().Int64Var(&wave, "wave", 0, "Wave reached (required)")
	cmd.Flags().Int64Var(&score, "score", 0, "Score achieved (required)")
	_ = cmd.MarkFlagRequired("wave")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
