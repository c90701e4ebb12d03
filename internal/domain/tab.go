package domain

// TabID identifies one calculator tab.
type TabID string

const (
	TabDilution      TabID = "dilution"
	TabConcentration TabID = "c1v1"
	TabContinuous    TabID = "continuous"
	TabFedBatch      TabID = "fedbatch"
)

// TabIDs lists the tabs in display order.
func TabIDs() []TabID {
	return []TabID{TabDilution, TabConcentration, TabContinuous, TabFedBatch}
}

// KnownTab reports whether id names a tab.
func KnownTab(id TabID) bool {
	for _, t := range TabIDs() {
		if t == id {
			return true
		}
	}
	return false
}

// ResultMode controls how a tab shows successive results.
type ResultMode int

const (
	// ResultsReplace shows only the latest result.
	ResultsReplace ResultMode = iota
	// ResultsAppend keeps a timestamped log of every result.
	ResultsAppend
)

// Field is one numeric text input of a form.
// Min and Max are enforced by the shell boundary, never by the formulas.
type Field struct {
	Key      string
	Label    string
	Unit     string
	Default  string
	Optional bool
	Min      float64
	Max      float64
}

// Bounded reports whether Min and Max describe a range.
func (f Field) Bounded() bool {
	return f.Max > f.Min
}

// Calculation binds a formula to the field keys it reads.
// Inputs may reference fields owned by other sections of the same tab.
type Calculation struct {
	ID     string
	Title  string
	Button string
	Inputs []string
}

// Section groups the fields a calculation owns with its calculate button.
type Section struct {
	Title       string
	Fields      []Field
	Calculation Calculation
}

// Tab is one calculator form.
type Tab struct {
	ID       TabID
	Title    string
	Sections []Section
	Results  ResultMode

	// MarkFieldsOnError sets every field to an error marker when a calculation fails.
	MarkFieldsOnError bool
}

// Fields returns every field of the tab in display order.
func (t Tab) Fields() []Field {
	var out []Field
	for _, s := range t.Sections {
		out = append(out, s.Fields...)
	}
	return out
}

// Field looks up a field by key.
func (t Tab) Field(key string) (Field, bool) {
	for _, s := range t.Sections {
		for _, f := range s.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Calculation looks up a calculation by id.
func (t Tab) Calculation(id string) (Calculation, bool) {
	for _, s := range t.Sections {
		if s.Calculation.ID == id {
			return s.Calculation, true
		}
	}
	return Calculation{}, false
}

// Calculations returns the calculations of the tab in display order.
func (t Tab) Calculations() []Calculation {
	out := make([]Calculation, 0, len(t.Sections))
	for _, s := range t.Sections {
		out = append(out, s.Calculation)
	}
	return out
}
