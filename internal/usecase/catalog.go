package usecase

import (
	"fmt"
	"strings"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/formula/concentration"
	"github.com/tazomatalax/lab-calculator/internal/formula/continuous"
	"github.com/tazomatalax/lab-calculator/internal/formula/dilution"
	"github.com/tazomatalax/lab-calculator/internal/formula/fedbatch"
)

type evaluator func(in inputs) (domain.Report, error)

type catalogTab struct {
	tab   domain.Tab
	evals map[string]evaluator
}

// numField bounds are checked by ParseField, never by the formulas.
func numField(key, label, unit, def string, upper float64) domain.Field {
	return domain.Field{Key: key, Label: label, Unit: unit, Default: def, Min: 0, Max: upper}
}

func optionalField(key, label string, upper float64) domain.Field {
	f := numField(key, label, "", "", upper)
	f.Optional = true
	return f
}

func calculation(id, title, button string, in ...string) domain.Calculation {
	return domain.Calculation{ID: id, Title: title, Button: button, Inputs: in}
}

func buildCatalog(f formatter) []catalogTab {
	return []catalogTab{
		dilutionTab(f),
		concentrationTab(f),
		continuousTab(f),
		fedBatchTab(f),
	}
}

func dilutionTab(f formatter) catalogTab {
	tab := domain.Tab{
		ID:      domain.TabDilution,
		Title:   "Dilution Calculator",
		Results: domain.ResultsReplace,
		Sections: []domain.Section{
			{
				Title: "OD Calculation",
				Fields: []domain.Field{
					numField("absorbance", "Absorbance", "", "0.0", 100),
					numField("dilution_factor", "Dilution factor", "", "1.0", 10000),
				},
				Calculation: calculation("od", "OD from absorbance", "Calculate OD", "absorbance", "dilution_factor"),
			},
			{
				Title: "Dilution Preparation",
				Fields: []domain.Field{
					numField("current_od", "Current OD", "", "0.0", 100),
					numField("target_od", "Target OD", "", "0.0", 100),
					numField("final_volume", "Final volume", "mL", "10.0", 10000),
				},
				Calculation: calculation("dilute-volume", "Dilution by volume", "Calculate Dilution",
					"current_od", "target_od", "final_volume"),
			},
			{
				Title: "Dilution by Factor",
				Calculation: calculation("dilute-factor", "Dilution by factor", "Calculate Dilution (factor)",
					"current_od", "target_od", "final_volume"),
			},
			{
				Title: "Dilution Factor from Volumes",
				Fields: []domain.Field{
					numField("sample_volume", "Sample volume", "mL", "", 10000),
					numField("diluent_volume", "Diluent volume", "mL", "", 10000),
				},
				Calculation: calculation("factor-from-volumes", "Dilution factor from volumes", "Calculate Dilution Factor",
					"sample_volume", "diluent_volume"),
			},
		},
	}

	evals := map[string]evaluator{
		"od": func(in inputs) (domain.Report, error) {
			abs, df := in.f("absorbance"), in.f("dilution_factor")
			od := dilution.OD(abs, df)
			r := domain.Report{
				Values: []domain.Quantity{f.value("od", "OD", "", od)},
				Text: fmt.Sprintf("OD Calculation Results:\n\nAbsorbance: %s\nDilution Factor: %s\nCalculated OD: %s",
					f.val(abs), f.ratio(df), f.val(od)),
				Fill: map[string]string{"current_od": f.val(od)},
			}
			return r, nil
		},
		"dilute-volume": func(in inputs) (domain.Report, error) {
			cur, tgt, final := in.f("current_od"), in.f("target_od"), in.f("final_volume")
			p, err := dilution.ByVolume(cur, tgt, final)
			if err != nil {
				return domain.Report{}, err
			}
			return domain.Report{
				Values: planValues(f, p, "culture_volume"),
				Text: fmt.Sprintf("Dilution Results:\n\n"+
					"Current OD: %s\nTarget OD: %s\nFinal volume: %s mL\n\n"+
					"Add %s mL of culture\nAdd %s mL of diluent\n\n"+
					"Dilution factor: 1:%s",
					f.val(cur), f.val(tgt), f.vol(final),
					f.vol(p.SampleVolume), f.vol(p.DiluentVolume),
					f.ratio(p.DilutionFactor)),
			}, nil
		},
		"dilute-factor": func(in inputs) (domain.Report, error) {
			cur, tgt, final := in.f("current_od"), in.f("target_od"), in.f("final_volume")
			p, err := dilution.ByFactor(cur, tgt, final)
			if err != nil {
				return domain.Report{}, err
			}
			return domain.Report{
				Values: planValues(f, p, "sample_volume"),
				Text: fmt.Sprintf("Dilution by Factor Results:\n\n"+
					"Current OD: %s\nTarget OD: %s\nFinal volume: %s mL\n\n"+
					"Dilution factor: 1:%s\n\n"+
					"Add %s mL of sample\nAdd %s mL of diluent",
					f.val(cur), f.val(tgt), f.vol(final),
					f.ratio(p.DilutionFactor),
					f.vol(p.SampleVolume), f.vol(p.DiluentVolume)),
			}, nil
		},
		"factor-from-volumes": func(in inputs) (domain.Report, error) {
			sample, diluent := in.f("sample_volume"), in.f("diluent_volume")
			df, err := dilution.FactorFromVolumes(sample, diluent)
			if err != nil {
				return domain.Report{}, err
			}
			return domain.Report{
				Values: []domain.Quantity{f.ratioValue("dilution_factor", "DF", df)},
				Text: fmt.Sprintf("Dilution Factor Results:\n\n"+
					"Sample volume: %s mL\nDiluent volume: %s mL\nTotal volume: %s mL\n\n"+
					"Dilution factor: 1:%s",
					f.vol(sample), f.vol(diluent), f.vol(sample+diluent), f.ratio(df)),
			}, nil
		},
	}

	return catalogTab{tab: tab, evals: evals}
}

func planValues(f formatter, p dilution.Plan, sampleName string) []domain.Quantity {
	return []domain.Quantity{
		f.volume(sampleName, "Vs", p.SampleVolume),
		f.volume("diluent_volume", "Vd", p.DiluentVolume),
		f.ratioValue("dilution_factor", "DF", p.DilutionFactor),
	}
}

var c1v1Labels = map[concentration.Variable]string{
	concentration.C1: "Concentration 1 (C1)",
	concentration.V1: "Volume 1 (V1)",
	concentration.C2: "Concentration 2 (C2)",
	concentration.V2: "Volume 2 (V2)",
}

func concentrationTab(f formatter) catalogTab {
	tab := domain.Tab{
		ID:                domain.TabConcentration,
		Title:             "C1V1 Calculator",
		Results:           domain.ResultsReplace,
		MarkFieldsOnError: true,
		Sections: []domain.Section{
			{
				Title: "C1V1 = C2V2 Calculator",
				Fields: []domain.Field{
					optionalField("c1", c1v1Labels[concentration.C1], 10000),
					optionalField("v1", c1v1Labels[concentration.V1], 10000),
					optionalField("c2", c1v1Labels[concentration.C2], 10000),
					optionalField("v2", c1v1Labels[concentration.V2], 10000),
				},
				Calculation: calculation("solve", "Solve the missing value", "Calculate", "c1", "v1", "c2", "v2"),
			},
		},
	}

	evals := map[string]evaluator{
		"solve": func(in inputs) (domain.Report, error) {
			s, err := concentration.SolveMissing(concentration.Values{
				C1: in["c1"], V1: in["v1"], C2: in["c2"], V2: in["v2"],
			})
			if err != nil {
				return domain.Report{}, err
			}

			solved := f.val(s.Value())
			var b strings.Builder
			b.WriteString("C1V1 = C2V2 Results:\n\n")
			for _, t := range []struct {
				v   concentration.Variable
				val float64
			}{
				{concentration.C1, s.C1}, {concentration.V1, s.V1},
				{concentration.C2, s.C2}, {concentration.V2, s.V2},
			} {
				fmt.Fprintf(&b, "%s: %s\n", c1v1Labels[t.v], f.val(t.val))
			}
			fmt.Fprintf(&b, "\nSolved %s: %s", c1v1Labels[s.Solved], solved)

			return domain.Report{
				Values: []domain.Quantity{
					f.value(string(s.Solved), strings.ToUpper(string(s.Solved)), "", s.Value()),
				},
				Text: b.String(),
				Fill: map[string]string{string(s.Solved): solved},
			}, nil
		},
	}

	return catalogTab{tab: tab, evals: evals}
}

func continuousTab(f formatter) catalogTab {
	tab := domain.Tab{
		ID:      domain.TabContinuous,
		Title:   "Continuous Bioreactor",
		Results: domain.ResultsAppend,
		Sections: []domain.Section{
			{
				Title: "Dilution Rate Calculation",
				Fields: []domain.Field{
					numField("flow_rate", "Flow Rate (F)", "", "", 10000),
					numField("volume", "Volume (V)", "", "", 10000),
				},
				Calculation: calculation("dilution-rate", "Dilution rate", "Calculate Dilution Rate", "flow_rate", "volume"),
			},
			{
				Title: "Steady-State Biomass Concentration",
				Fields: []domain.Field{
					numField("mu_max", "Maximum Specific Growth Rate (μmax)", "", "", 100),
					numField("sss", "Steady-State Substrate Concentration (Sss)", "", "", 10000),
					numField("ks", "Half-Saturation Constant (Ks)", "", "", 10000),
				},
				Calculation: calculation("biomass", "Steady-state biomass", "Calculate Biomass Concentration",
					"mu_max", "sss", "ks"),
			},
			{
				Title: "Substrate Utilization Rate",
				Fields: []domain.Field{
					numField("sin", "Substrate Concentration in Feed (Sin)", "", "", 10000),
					numField("sss_util", "Steady-State Substrate Concentration (Sss)", "", "", 10000),
					numField("xss", "Steady-State Biomass Concentration (Xss)", "", "", 10000),
				},
				Calculation: calculation("substrate-rate", "Substrate utilization rate", "Calculate Substrate Utilization Rate",
					"flow_rate", "volume", "sin", "sss_util", "xss"),
			},
			{
				Title: "Productivity",
				Fields: []domain.Field{
					numField("pss", "Steady-State Product Concentration (Pss)", "", "", 10000),
				},
				Calculation: calculation("productivity", "Productivity", "Calculate Productivity", "flow_rate", "volume", "pss"),
			},
		},
	}

	evals := map[string]evaluator{
		"dilution-rate": single(f, "dilution_rate", "D", "Dilution Rate", func(in inputs) (float64, error) {
			return continuous.DilutionRate(in.f("flow_rate"), in.f("volume"))
		}),
		"biomass": single(f, "xss", "Xss", "Steady-State Biomass Concentration", func(in inputs) (float64, error) {
			return continuous.SteadyStateBiomass(in.f("mu_max"), in.f("sss"), in.f("ks"))
		}),
		"substrate-rate": single(f, "rs", "rs", "Substrate Utilization Rate", func(in inputs) (float64, error) {
			return continuous.SubstrateUtilizationRate(in.f("flow_rate"), in.f("volume"),
				in.f("sin"), in.f("sss_util"), in.f("xss"))
		}),
		"productivity": single(f, "productivity", "P", "Productivity", func(in inputs) (float64, error) {
			return continuous.Productivity(in.f("flow_rate"), in.f("volume"), in.f("pss"))
		}),
	}

	return catalogTab{tab: tab, evals: evals}
}

func fedBatchTab(f formatter) catalogTab {
	tab := domain.Tab{
		ID:      domain.TabFedBatch,
		Title:   "Fed-Batch Bioreactor",
		Results: domain.ResultsAppend,
		Sections: []domain.Section{
			{
				Title: "Substrate Feeding Rate",
				Fields: []domain.Field{
					numField("sf", "Substrate Concentration in Feed (Sf)", "", "", 10000),
					numField("s", "Substrate Concentration in Reactor (S)", "", "", 10000),
					numField("t", "Time (t)", "h", "", 10000),
				},
				Calculation: calculation("feeding-rate", "Substrate feeding rate", "Calculate Feeding Rate", "sf", "s", "t"),
			},
			{
				Title: "Biomass Concentration",
				Fields: []domain.Field{
					numField("x0", "Initial Biomass Concentration (X0)", "", "", 10000),
					numField("mu", "Specific Growth Rate (μ)", "", "", 100),
					numField("xt_t", "Time (t)", "h", "", 10000),
				},
				Calculation: calculation("biomass", "Biomass at time (linear)", "Calculate Biomass Concentration",
					"x0", "mu", "xt_t"),
			},
			{
				Title: "Biomass Concentration (exponential reference)",
				Calculation: calculation("biomass-exp", "Biomass at time (exponential)", "Calculate Exponential Biomass",
					"x0", "mu", "xt_t"),
			},
			{
				Title: "Product Formation Rate",
				Fields: []domain.Field{
					numField("dp", "Change in Product Concentration (dP)", "", "", 10000),
					numField("dt", "Change in Time (dt)", "h", "", 10000),
				},
				Calculation: calculation("product-rate", "Product formation rate", "Calculate Product Formation Rate", "dp", "dt"),
			},
			{
				Title: "Yield Coefficient",
				Fields: []domain.Field{
					numField("delta_x", "Change in Biomass Concentration (ΔX)", "", "", 10000),
					numField("delta_s", "Change in Substrate Concentration (ΔS)", "", "", 10000),
				},
				Calculation: calculation("yield", "Yield coefficient", "Calculate Yield Coefficient", "delta_x", "delta_s"),
			},
		},
	}

	evals := map[string]evaluator{
		"feeding-rate": single(f, "feeding_rate", "Fs", "Substrate Feeding Rate", func(in inputs) (float64, error) {
			return fedbatch.FeedingRate(in.f("sf"), in.f("s"), in.f("t"))
		}),
		"biomass": single(f, "xt", "Xt", "Biomass Concentration", func(in inputs) (float64, error) {
			return fedbatch.BiomassAtTime(in.f("x0"), in.f("mu"), in.f("xt_t")), nil
		}),
		"biomass-exp": single(f, "xt", "Xt", "Biomass Concentration, exponential", func(in inputs) (float64, error) {
			return fedbatch.BiomassAtTimeExponential(in.f("x0"), in.f("mu"), in.f("xt_t")), nil
		}),
		"product-rate": single(f, "product_rate", "rp", "Product Formation Rate", func(in inputs) (float64, error) {
			return fedbatch.ProductFormationRate(in.f("dp"), in.f("dt"))
		}),
		"yield": single(f, "yield", "YX/S", "Yield Coefficient", func(in inputs) (float64, error) {
			return fedbatch.YieldCoefficient(in.f("delta_x"), in.f("delta_s"))
		}),
	}

	return catalogTab{tab: tab, evals: evals}
}

// single adapts a one-value formula into an evaluator printing "Title (symbol): value".
func single(f formatter, name, symbol, title string, fn func(inputs) (float64, error)) evaluator {
	return func(in inputs) (domain.Report, error) {
		v, err := fn(in)
		if err != nil {
			return domain.Report{}, err
		}
		return domain.Report{
			Values: []domain.Quantity{f.value(name, symbol, "", v)},
			Text:   fmt.Sprintf("%s (%s): %s", title, symbol, f.val(v)),
		}, nil
	}
}
