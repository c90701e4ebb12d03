package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/infra/logger"
	"github.com/tazomatalax/lab-calculator/internal/usecase"
)

// tabCmd groups the calculations of one tab, e.g. `labcalc dilution od`.
func tabCmd(root *rootFlags, tab domain.Tab) *cobra.Command {
	c := &cobra.Command{
		Use:   string(tab.ID),
		Short: tab.Title,
	}
	for _, calc := range tab.Calculations() {
		c.AddCommand(calcCmd(root, tab, calc))
	}
	return c
}

func calcCmd(root *rootFlags, tab domain.Tab, calc domain.Calculation) *cobra.Command {
	var format string
	values := make(map[string]*string, len(calc.Inputs))

	c := &cobra.Command{
		Use:   calc.ID,
		Short: calc.Title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			lab, err := loadLab(root.config)
			if err != nil {
				return err
			}
			cleanup := openLog(lab, root.debug)
			defer cleanup()

			raw := make(map[string]string, len(values))
			for key, v := range values {
				raw[key] = *v
			}

			calculator := usecase.NewCalculator(lab.cfg, usecase.WithLogger(logger.L()))
			report, err := calculator.Evaluate(cmd.Context(), tab.ID, calc.ID, raw)
			if err != nil {
				return errors.New(domain.UserMessage(err))
			}

			return printReport(cmd.OutOrStdout(), report, format)
		},
	}

	for _, key := range calc.Inputs {
		f, ok := tab.Field(key)
		if !ok {
			continue
		}
		v := new(string)
		values[key] = v
		c.Flags().StringVar(v, flagName(key), f.Default, flagUsage(f))
	}
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func flagUsage(f domain.Field) string {
	usage := f.Label
	if f.Unit != "" {
		usage += " (" + f.Unit + ")"
	}
	if f.Optional {
		usage += "; optional"
	}
	return usage
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printReport(w io.Writer, report domain.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty", "":
		_, err := fmt.Fprintln(w, report.Text)
		return err
	default:
		return checkFormat(format)
	}
}
