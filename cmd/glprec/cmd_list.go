package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/glprec/builtins"
	"github.com/gogpu/glprec/expr"
)

var listTypes bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the modeled built-ins",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listTypes, "types", false, "show the types each built-in instantiates at")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	for _, name := range builtins.Names() {
		if !listTypes {
			fmt.Println(name)
			continue
		}
		var at []string
		for t := expr.Float; t <= expr.Mat4; t++ {
			if _, ok := builtins.Lookup(name, t); ok {
				at = append(at, t.String())
			}
		}
		fmt.Printf("%-15s %s\n", name, strings.Join(at, " "))
	}
	return nil
}
