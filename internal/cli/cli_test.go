package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tazomatalax/lab-calculator/internal/buildinfo"
	"github.com/tazomatalax/lab-calculator/internal/domain"
)

func writeLabConfig(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "labcalc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"dilution", "c1v1", "continuous", "fedbatch", "list", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"debug", "config"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag", flag)
		}
	}
}

func TestCalcCmd_FlagsFollowInputs(t *testing.T) {
	cmd := newRootCmd()
	sub, _, err := cmd.Find([]string{"dilution", "dilute-volume"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, flag := range []string{"current-od", "target-od", "final-volume", "format"} {
		if sub.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on dilute-volume", flag)
		}
	}
	if sub.Flags().Lookup("absorbance") != nil {
		t.Errorf("did not expect --absorbance on dilute-volume")
	}
	if got := sub.Flags().Lookup("final-volume").DefValue; got != "10.0" {
		t.Errorf("expected field default as flag default, got %q", got)
	}
}

func TestFlagName(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"absorbance", "absorbance"},
		{"dilution_factor", "dilution-factor"},
		{"sss_util", "sss-util"},
		{"c1", "c1"},
	}
	for _, c := range cases {
		if got := flagName(c.key); got != c.want {
			t.Errorf("flagName(%q) = %q, want %q", c.key, got, c.want)
		}
	}
}

// --- calculations ---

func TestCalc_PrettyOutput(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	out, err := runCLI(t, "--config", cfg, "dilution", "od", "--absorbance", "0.5", "--dilution-factor", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	want := "OD Calculation Results:\n\nAbsorbance: 0.5000\nDilution Factor: 10.00\nCalculated OD: 5.0000\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}

	if _, err := os.Stat(filepath.Join(filepath.Dir(cfg), "logs", "labcalc.log")); err != nil {
		t.Fatalf("expected log file under configured logs dir: %v", err)
	}
}

func TestCalc_JSONOutput(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	out, err := runCLI(t, "--config", cfg, "continuous", "dilution-rate", "--flow-rate", "2", "--volume", "1", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if report.Tab != domain.TabContinuous || report.Calculation != "dilution-rate" {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if len(report.Values) != 1 || report.Values[0].Value != 2 {
		t.Fatalf("unexpected values: %+v", report.Values)
	}
	if report.Text != "Dilution Rate (D): 2.0000" {
		t.Fatalf("unexpected text: %q", report.Text)
	}
}

func TestCalc_ConfigDecimalsApply(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  format:\n    value_decimals: 1\n  paths:\n    logs_dir: logs\n")

	out, err := runCLI(t, "--config", cfg, "continuous", "dilution-rate", "--flow-rate", "2", "--volume", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Dilution Rate (D): 2.0" {
		t.Fatalf("expected configured decimals, got %q", out)
	}
}

func TestCalc_DomainErrorIsUserMessage(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	_, err := runCLI(t, "--config", cfg, "continuous", "dilution-rate", "--flow-rate", "2", "--volume", "0")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Volume must be greater than zero." {
		t.Fatalf("unexpected error: %q", err.Error())
	}
}

func TestCalc_ParseError(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	_, err := runCLI(t, "--config", cfg, "dilution", "od", "--absorbance", "abc")
	if err == nil || !strings.Contains(err.Error(), "Absorbance") {
		t.Fatalf("expected parse error naming the field, got %v", err)
	}
}

func TestCalc_OverflowIsLabelledFailure(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	out, err := runCLI(t, "--config", cfg, "fedbatch", "biomass-exp", "--x0", "1", "--mu", "10", "--xt-t", "100", "--format", "json")
	if err == nil {
		t.Fatalf("expected error, got output:\n%s", out)
	}
	if err.Error() != "Result is out of range." {
		t.Fatalf("unexpected error: %q", err.Error())
	}
}

func TestCalc_ZeroTargetOD(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	_, err := runCLI(t, "--config", cfg, "dilution", "dilute-volume", "--current-od", "2", "--target-od", "0", "--final-volume", "10", "--format", "json")
	if err == nil || err.Error() != "Target OD must be greater than zero." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCalc_UnknownFormat(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  paths:\n    logs_dir: logs\n")

	_, err := runCLI(t, "--config", cfg, "dilution", "od", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected error to mention format, got: %v", err)
	}
}

func TestCalc_InvalidConfigFails(t *testing.T) {
	cfg := writeLabConfig(t, "labcalc:\n  defaults:\n    tab: nope\n")

	_, err := runCLI(t, "--config", cfg, "dilution", "od")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestCalc_MissingConfigFlagFails(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "labcalc.yaml"), "dilution", "od")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

// --- list / init / version ---

func TestList_Pretty(t *testing.T) {
	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"dilution", "c1v1", "fedbatch", "biomass-exp", "--dilution-factor", "results: append"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in list output, got:\n%s", want, out)
		}
	}
}

func TestList_JSON(t *testing.T) {
	out, err := runCLI(t, "list", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var tabs []listedTab
	if err := json.Unmarshal([]byte(out), &tabs); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(tabs) != 4 || tabs[1].ID != domain.TabConcentration {
		t.Fatalf("unexpected tabs: %+v", tabs)
	}
	solve := tabs[1].Calculations[0]
	if solve.ID != "solve" || len(solve.Inputs) != 4 || !solve.Inputs[0].Optional {
		t.Fatalf("unexpected c1v1 listing: %+v", solve)
	}
}

func TestInit_WritesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lab")

	out, err := runCLI(t, "init", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, "labcalc.yaml")) {
		t.Errorf("expected config path in output, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "labcalc.yaml")); err != nil {
		t.Fatalf("expected labcalc.yaml: %v", err)
	}

	cmd := initCmd()
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != buildinfo.String() {
		t.Fatalf("unexpected version output: %q", out)
	}
}

// --- printReport ---

func TestPrintReport_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, domain.Report{Text: "x"}, ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
	if buf.String() != "x\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLoadLab_DefaultsWithoutConfig(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	lab, err := loadLab("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lab.root != "" || lab.cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults without root, got %+v", lab)
	}
}
