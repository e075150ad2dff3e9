package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/glprec/precision"
)

var (
	runParallel int
	runPerturb  float64
)

var runCmd = &cobra.Command{
	Use:   "run <caselist.yaml>",
	Short: "Sweep a YAML case list",
	Long: `Run loads a case list, expands it into builtin/type/precision cases
and checks every sampled output against its reference interval.

Without a GL implementation attached the reference executor produces
admitted outputs, so a clean run checks the oracle against itself;
--perturb injects an absolute error into every output to exercise the
failure reporting.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runParallel, "parallel", 4, "cases run at once")
	runCmd.Flags().Float64Var(&runPerturb, "perturb", 0, "absolute error added to every output")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	list, err := precision.LoadCaseList(args[0])
	if err != nil {
		return err
	}
	cases, err := list.Expand()
	if err != nil {
		return err
	}
	slog.Info("case list loaded", "name", list.Name, "cases", len(cases))

	r := &precision.Runner{
		Executor: &precision.ReferenceExecutor{Perturb: runPerturb},
		Log:      slog.Default(),
		Parallel: runParallel,
	}
	results, err := r.Run(cmd.Context(), cases)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Failure != nil {
			fmt.Printf("FAIL %s\n%s\n", res.Case.Name(), res.Failure)
		}
	}
	passed, failed := precision.Summarize(results)
	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	return nil
}
