// Package scenario supplies the numbers the charts and text panels consume:
// the per-region tabular dataset, its join against the boundary collection,
// and the adoption-fraction arithmetic.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"regiondeck/internal/geom"
)

// Params are the global defaults shipped with the dataset.
type Params struct {
	Adoption         float64 `json:"adoption_fraction"`
	CostPerSession   float64 `json:"cost_per_session"`
	SessionReduction float64 `json:"session_reduction"` // fraction of sessions a digital course replaces
}

// Metrics is one region's row of the tabular input.
type Metrics struct {
	Name         string  `json:"name"`
	Referrals    float64 `json:"referrals"`
	WaitDays     float64 `json:"wait_days"`
	RecoveryRate float64 `json:"recovery_rate"`
	MeanSessions float64 `json:"mean_sessions"`
}

// YearPair is one period of the national reference series.
type YearPair struct {
	Year      string  `json:"year"`
	Referrals float64 `json:"referrals"` // millions
	Accessed  float64 `json:"accessed"`  // millions
}

// YearValue is one period of the national mean-sessions series.
type YearValue struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// Dataset is the full tabular input, loaded once before first render.
type Dataset struct {
	Params   Params             `json:"params"`
	Regions  map[string]Metrics `json:"regions"`
	National []YearPair         `json:"national"`
	Sessions []YearValue        `json:"sessions"`
}

func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if ds.Params.Adoption < 0 || ds.Params.Adoption > 1 {
		return nil, fmt.Errorf("adoption fraction %v outside [0, 1]", ds.Params.Adoption)
	}
	if ds.Params.SessionReduction == 0 {
		ds.Params.SessionReduction = 0.5
	}
	return &ds, nil
}

// Model joins the dataset against the boundary collection. Codes present on
// only one side are reported, not fatal: such regions are drawn but carry no
// numbers.
type Model struct {
	ds    *Dataset
	names map[string]string // code -> boundary display name
}

func NewModel(col *geom.Collection, ds *Dataset) *Model {
	m := &Model{ds: ds, names: make(map[string]string)}
	for _, code := range col.Codes() {
		f, _ := col.Find(code)
		m.names[code] = f.Name
		if _, ok := ds.Regions[code]; !ok {
			log.Warn("boundary region has no dataset row", "code", code)
		}
	}
	for code := range ds.Regions {
		if _, ok := m.names[code]; !ok {
			log.Warn("dataset row has no boundary region", "code", code)
		}
	}
	return m
}

func (m *Model) Params() Params        { return m.ds.Params }
func (m *Model) National() []YearPair  { return m.ds.National }
func (m *Model) Sessions() []YearValue { return m.ds.Sessions }

// Region returns one region's metrics by code.
func (m *Model) Region(code string) (Metrics, bool) {
	r, ok := m.ds.Regions[code]
	return r, ok
}

// Name prefers the boundary display name, falling back to the dataset row.
func (m *Model) Name(code string) string {
	if n := m.names[code]; n != "" {
		return n
	}
	if r, ok := m.ds.Regions[code]; ok {
		return r.Name
	}
	return code
}

// Outcome is the derived scenario for one region at a given adoption
// fraction.
type Outcome struct {
	DigitalReferrals float64 // referrals moved to the digital pathway
	SessionsFreed    float64 // clinician sessions released
	CostAvoided      float64 // currency units
	Recovered        float64 // expected recoveries on the digital pathway
}

// Evaluate is pure formula arithmetic over one region's row; it reports
// false when the code has no dataset row.
func (m *Model) Evaluate(code string, adoption float64) (Outcome, bool) {
	r, ok := m.ds.Regions[code]
	if !ok {
		return Outcome{}, false
	}
	digital := r.Referrals * adoption
	freed := digital * r.MeanSessions * m.ds.Params.SessionReduction
	return Outcome{
		DigitalReferrals: digital,
		SessionsFreed:    freed,
		CostAvoided:      freed * m.ds.Params.CostPerSession,
		Recovered:        digital * r.RecoveryRate,
	}, true
}
