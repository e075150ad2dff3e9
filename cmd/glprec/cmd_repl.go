package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/gogpu/glprec"
	"github.com/gogpu/glprec/builtins"
)

const (
	replPrompt  = "glprec> "
	historyName = ".glprec_history"
	replHelp    = `Queries are "<builtin> <type> <precision> <arg>...":
  sin float highp 1.0
  dot vec3 mediump 1,2,3 4,5,6
  inverse mat2 highp 2,0;0,4

Commands:
  :help         Show this help
  :list         List the modeled built-ins
  :quit         Exit
`
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive oracle queries",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	fmt.Println("glprec REPL. Ctrl+D to exit, :help for commands.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyName)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Println()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if replCommand(line) {
				break
			}
			continue
		}
		ln.AppendHistory(line)
		out, err := replQuery(line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(out)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

func replCommand(line string) (exit bool) {
	switch strings.Fields(line)[0] {
	case ":quit", ":exit":
		return true
	case ":list":
		for _, name := range builtins.Names() {
			fmt.Println(name)
		}
	case ":help":
		fmt.Print(replHelp)
	default:
		fmt.Println("unknown command; :help lists them")
	}
	return false
}

func replQuery(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", errors.New("want <builtin> <type> <precision> <arg>...")
	}
	points, err := parsePoints(fields[3:])
	if err != nil {
		return "", err
	}
	v, err := glprec.EvaluateBuiltin(fields[0], fields[1], fields[2], points)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
