package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/usecase"
)

func listCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tabs, calculations and their inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			tabs := usecase.NewCalculator(defaultConfig()).Tabs()
			if format == "json" {
				return printListJSON(cmd.OutOrStdout(), tabs)
			}
			printList(cmd.OutOrStdout(), tabs)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printList(w io.Writer, tabs []domain.Tab) {
	for i, tab := range tabs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		mode := "replace"
		if tab.Results == domain.ResultsAppend {
			mode = "append"
		}
		fmt.Fprintf(w, "%s — %s (results: %s)\n", tab.ID, tab.Title, mode)

		for _, calc := range tab.Calculations() {
			flags := make([]string, 0, len(calc.Inputs))
			for _, key := range calc.Inputs {
				flags = append(flags, "--"+flagName(key))
			}
			fmt.Fprintf(w, "  - %-20s %s\n", calc.ID, calc.Title)
			if len(flags) > 0 {
				fmt.Fprintf(w, "    inputs: %s\n", strings.Join(flags, " "))
			}
		}
	}
}

type listedField struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Unit     string `json:"unit,omitempty"`
	Default  string `json:"default,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

type listedCalc struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Inputs []listedField `json:"inputs"`
}

type listedTab struct {
	ID           domain.TabID `json:"id"`
	Title        string       `json:"title"`
	Calculations []listedCalc `json:"calculations"`
}

func printListJSON(w io.Writer, tabs []domain.Tab) error {
	out := make([]listedTab, 0, len(tabs))
	for _, tab := range tabs {
		lt := listedTab{ID: tab.ID, Title: tab.Title}
		for _, calc := range tab.Calculations() {
			lc := listedCalc{ID: calc.ID, Title: calc.Title, Inputs: []listedField{}}
			for _, key := range calc.Inputs {
				f, ok := tab.Field(key)
				if !ok {
					continue
				}
				lc.Inputs = append(lc.Inputs, listedField{
					Key:      f.Key,
					Label:    f.Label,
					Unit:     f.Unit,
					Default:  f.Default,
					Optional: f.Optional,
				})
			}
			lt.Calculations = append(lt.Calculations, lc)
		}
		out = append(out, lt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
