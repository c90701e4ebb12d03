package dilution

import (
	"errors"
	"math"
	"testing"

	"github.com/tazomatalax/lab-calculator/internal/domain"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= tol }

func TestOD(t *testing.T) {
	if got := OD(0.5, 10); got != 5.0 {
		t.Fatalf("expected 5.0, got %v", got)
	}
	if got := OD(0.25, 1); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestByVolume(t *testing.T) {
	p, err := ByVolume(2.0, 0.5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(p.SampleVolume, 2.5) {
		t.Fatalf("expected culture 2.5, got %v", p.SampleVolume)
	}
	if !near(p.DiluentVolume, 7.5) {
		t.Fatalf("expected diluent 7.5, got %v", p.DiluentVolume)
	}
	if !near(p.DilutionFactor, 4) {
		t.Fatalf("expected factor 4, got %v", p.DilutionFactor)
	}
}

func TestByFactor(t *testing.T) {
	p, err := ByFactor(2.0, 0.5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(p.SampleVolume, 2.5) || !near(p.DiluentVolume, 7.5) || !near(p.DilutionFactor, 4) {
		t.Fatalf("unexpected plan %+v", p)
	}
}

func TestByVolumeAndByFactorAgree(t *testing.T) {
	cases := []struct{ current, target, final float64 }{
		{2.0, 0.5, 10},
		{1.234, 0.1, 50},
		{0.9, 0.899, 1},
		{80, 0.05, 1000},
		{3.3, 1.1, 0.5},
		{1e-3, 1e-6, 25},
	}
	for _, c := range cases {
		v, err := ByVolume(c.current, c.target, c.final)
		if err != nil {
			t.Fatalf("ByVolume(%v): %v", c, err)
		}
		f, err := ByFactor(c.current, c.target, c.final)
		if err != nil {
			t.Fatalf("ByFactor(%v): %v", c, err)
		}
		if !near(v.SampleVolume, f.SampleVolume) {
			t.Errorf("%+v: culture %v != sample %v", c, v.SampleVolume, f.SampleVolume)
		}
		if !near(v.DiluentVolume, f.DiluentVolume) {
			t.Errorf("%+v: diluent %v != %v", c, v.DiluentVolume, f.DiluentVolume)
		}
		if v.DilutionFactor != f.DilutionFactor {
			t.Errorf("%+v: factor %v != %v", c, v.DilutionFactor, f.DilutionFactor)
		}
	}
}

func TestDilutionGuards(t *testing.T) {
	cases := []struct {
		name            string
		current, target float64
		field           string
	}{
		{"zero current", 0, 0, "current_od"},
		{"negative current", -1, -2, "current_od"},
		{"target equals current", 1, 1, "target_od"},
		{"target above current", 1, 2, "target_od"},
		{"zero target", 1, 0, "target_od"},
		{"negative target", 1, -0.5, "target_od"},
	}

	plans := map[string]func(float64, float64, float64) (Plan, error){
		"ByVolume": ByVolume,
		"ByFactor": ByFactor,
	}

	for fname, fn := range plans {
		for _, c := range cases {
			p, err := fn(c.current, c.target, 10)
			if err == nil {
				t.Fatalf("%s/%s: expected error, got %+v", fname, c.name, p)
			}
			if !domain.IsKind(err, domain.KindInvalidInput) {
				t.Fatalf("%s/%s: expected invalid input, got %v", fname, c.name, err)
			}
			var oe *domain.OpError
			if !errors.As(err, &oe) || oe.Field != c.field {
				t.Fatalf("%s/%s: expected field %s, got %v", fname, c.name, c.field, err)
			}
			if p != (Plan{}) {
				t.Fatalf("%s/%s: expected zero plan on failure", fname, c.name)
			}
		}
	}
}

func TestFactorFromVolumes(t *testing.T) {
	got, err := FactorFromVolumes(5, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4.0 {
		t.Fatalf("expected 4.0, got %v", got)
	}

	got, err = FactorFromVolumes(1, 0)
	if err != nil || got != 1 {
		t.Fatalf("expected 1, got %v err=%v", got, err)
	}
}

func TestFactorFromVolumesRejectsNonPositiveSample(t *testing.T) {
	for _, s := range []float64{0, -1} {
		if _, err := FactorFromVolumes(s, 10); !domain.IsKind(err, domain.KindInvalidInput) {
			t.Fatalf("sample=%v: expected invalid input, got %v", s, err)
		}
	}
}

func TestIdempotent(t *testing.T) {
	a, errA := ByVolume(1.7, 0.3, 12)
	b, errB := ByVolume(1.7, 0.3, 12)
	if a != b || errA != nil || errB != nil {
		t.Fatalf("expected identical results, got %+v/%v and %+v/%v", a, errA, b, errB)
	}
	if OD(0.31, 7) != OD(0.31, 7) {
		t.Fatalf("OD not stable")
	}
}
