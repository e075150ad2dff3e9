package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/glprec"
	"github.com/gogpu/glprec/expr"
)

var evalCmd = &cobra.Command{
	Use:   "eval <builtin> <type> <precision> <arg>...",
	Short: "Evaluate one built-in application and print the interval",
	Long: `Eval computes the admitted output interval of one built-in
application. Scalar arguments are plain numbers, vector components are
comma-separated and matrix columns semicolon-separated:

  glprec eval sin float highp 1.0
  glprec eval dot vec3 mediump 1,2,3 4,5,6
  glprec eval inverse mat2 highp 2,0;0,4`,
	Args: cobra.MinimumNArgs(3),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	points, err := parsePoints(args[3:])
	if err != nil {
		return err
	}
	v, err := glprec.EvaluateBuiltin(args[0], args[1], args[2], points)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func parsePoints(args []string) ([]expr.Point, error) {
	points := make([]expr.Point, len(args))
	for i, a := range args {
		p, err := parsePoint(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}

func parsePoint(s string) (expr.Point, error) {
	if strings.Contains(s, ";") {
		var m expr.MatrixPoint
		for _, col := range strings.Split(s, ";") {
			c, err := parseComponents(col)
			if err != nil {
				return nil, err
			}
			m = append(m, c)
		}
		return m, nil
	}
	if strings.Contains(s, ",") {
		c, err := parseComponents(s)
		if err != nil {
			return nil, err
		}
		return expr.VectorPoint(c), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return expr.ScalarPoint(v), nil
}

func parseComponents(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
