// Command glprec is the GLSL built-in precision oracle CLI.
//
// Usage:
//
//	glprec run cases.yaml              # sweep a YAML case list
//	glprec eval sin float highp 1.0    # one-off evaluation
//	glprec list                        # modeled built-ins
//	glprec repl                        # interactive queries
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "glprec",
	Short: "Precision oracle for GLSL built-in functions",
	Long: `glprec computes the interval of outputs a conforming GLSL
implementation may produce for a built-in function application, and
sweeps sampled conformance cases against those intervals.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
