package scenario

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"

	"regiondeck/internal/geom"
)

func testModel() *Model {
	ds := &Dataset{
		Params: Params{Adoption: 0.2, CostPerSession: 100, SessionReduction: 0.5},
		Regions: map[string]Metrics{
			"A": {Name: "Alpha", Referrals: 1000, WaitDays: 21, RecoveryRate: 0.5, MeanSessions: 8},
		},
		National: []YearPair{{Year: "2021", Referrals: 1.69, Accessed: 1.17}},
		Sessions: []YearValue{{Year: "2021", Value: 7.9}},
	}
	col := &geom.Collection{Features: []geom.Feature{
		{Code: "A", Name: "Alpha Region", Geometry: orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}},
	}}
	return NewModel(col, ds)
}

func TestEvaluate(t *testing.T) {
	m := testModel()
	o, ok := m.Evaluate("A", 0.2)
	if !ok {
		t.Fatal("expected a row for A")
	}
	if o.DigitalReferrals != 200 {
		t.Errorf("digital referrals = %v, want 200", o.DigitalReferrals)
	}
	if o.SessionsFreed != 800 { // 200 * 8 * 0.5
		t.Errorf("sessions freed = %v, want 800", o.SessionsFreed)
	}
	if o.CostAvoided != 80000 {
		t.Errorf("cost avoided = %v, want 80000", o.CostAvoided)
	}
	if math.Abs(o.Recovered-100) > 1e-9 {
		t.Errorf("recovered = %v, want 100", o.Recovered)
	}
}

func TestEvaluateUnknownRegion(t *testing.T) {
	m := testModel()
	if _, ok := m.Evaluate("missing", 0.2); ok {
		t.Fatal("unknown code must report false, not zeroes that look real")
	}
}

func TestNamePrefersBoundary(t *testing.T) {
	m := testModel()
	if got := m.Name("A"); got != "Alpha Region" {
		t.Fatalf("Name(A) = %q", got)
	}
}

func TestLoadDataset(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.json")
	body := `{
	  "params": {"adoption_fraction": 0.25, "cost_per_session": 98},
	  "regions": {"A": {"name": "Alpha", "referrals": 1200, "wait_days": 18, "recovery_rate": 0.51, "mean_sessions": 7.9}},
	  "national": [{"year": "2020", "referrals": 1.46, "accessed": 1.02}],
	  "sessions": [{"year": "2020", "value": 7.5}]
	}`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := LoadDataset(p)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Params.Adoption != 0.25 {
		t.Errorf("adoption = %v", ds.Params.Adoption)
	}
	if ds.Params.SessionReduction != 0.5 {
		t.Errorf("session reduction default = %v, want 0.5", ds.Params.SessionReduction)
	}
	if len(ds.National) != 1 || ds.National[0].Accessed != 1.02 {
		t.Errorf("national = %+v", ds.National)
	}
}

func TestLoadDatasetRejectsBadAdoption(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(p, []byte(`{"params": {"adoption_fraction": 1.5}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDataset(p); err == nil {
		t.Fatal("adoption outside [0,1] must be rejected")
	}
}

func TestFormatting(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Money(820), "£820"},
		{Money(82_000), "£82k"},
		{Money(8_200_000), "£8.2m"},
		{Money(8_200_000_000), "£8.2bn"},
		{Percent(0.51), "51%"},
		{Count(1234567), "1,234,567"},
		{Count(900), "900"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}
