package materials

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/interp"
)

// Table identifies which backing store owns a material name. The three
// name spaces do not overlap.
type Table int

const (
	TableRefractory Table = iota + 1
	TableASHRAE
	TableBuilding
)

func (t Table) String() string {
	switch t {
	case TableRefractory:
		return "refractory"
	case TableASHRAE:
		return "ASHRAE"
	case TableBuilding:
		return "building"
	default:
		return "unknown"
	}
}

//go:embed data/ashrae.csv
var ashraeCSV []byte

//go:embed data/building.csv
var buildingCSV []byte

// ashraeRow is an ASHRAE handbook entry. Pointer fields are absent in
// the handbook for many products; conductivity may instead be derivable
// from the thermal resistance of a standard thickness.
type ashraeRow struct {
	Name      string   `csv:"name"`
	Category  string   `csv:"category"`
	Rho       *float64 `csv:"rho,omitempty"`
	Cp        *float64 `csv:"cp,omitempty"`
	K         *float64 `csv:"k,omitempty"`
	R         *float64 `csv:"r,omitempty"`
	Thickness *float64 `csv:"thickness_mm,omitempty"`
}

// buildingRow is a building-materials entry with constant properties.
type buildingRow struct {
	Name string  `csv:"name"`
	Rho  float64 `csv:"rho"`
	K    float64 `csv:"k"`
	Cp   float64 `csv:"cp"`
}

// refractoryInterp holds the fitted piecewise-linear predictors for one
// refractory's temperature tables.
type refractoryInterp struct {
	k  interp.PiecewiseLinear
	cp interp.PiecewiseLinear
}

var (
	loadOnce sync.Once

	ashrae      map[string]*ashraeRow
	building    map[string]*buildingRow
	refractory  map[string]*refractoryInterp
	provenance  map[string]Table
	sortedNames []string
)

// load builds the merged name index and the refractory interpolators.
// Static data; any inconsistency is a packaging defect, so it panics.
func load() {
	loadOnce.Do(func() {
		var aRows []*ashraeRow
		if err := gocsv.UnmarshalBytes(ashraeCSV, &aRows); err != nil {
			panic(fmt.Sprintf("materials: bad ashrae table: %v", err))
		}
		var bRows []*buildingRow
		if err := gocsv.UnmarshalBytes(buildingCSV, &bRows); err != nil {
			panic(fmt.Sprintf("materials: bad building table: %v", err))
		}

		n := len(refractories) + len(aRows) + len(bRows)
		ashrae = make(map[string]*ashraeRow, len(aRows))
		building = make(map[string]*buildingRow, len(bRows))
		refractory = make(map[string]*refractoryInterp, len(refractories))
		provenance = make(map[string]Table, n)
		sortedNames = make([]string, 0, n)

		refNames := make([]string, 0, len(refractories))
		for name := range refractories {
			refNames = append(refNames, name)
		}
		sort.Strings(refNames)
		for _, name := range refNames {
			e := refractories[name]
			ri := &refractoryInterp{}
			if err := ri.k.Fit(refractoryTs[:], e.k[:]); err != nil {
				panic(fmt.Sprintf("materials: refractory %q k table: %v", name, err))
			}
			if err := ri.cp.Fit(refractoryTs[:], e.cp[:]); err != nil {
				panic(fmt.Sprintf("materials: refractory %q cp table: %v", name, err))
			}
			refractory[name] = ri
			provenance[name] = TableRefractory
			sortedNames = append(sortedNames, name)
		}
		for _, row := range aRows {
			ashrae[row.Name] = row
			provenance[row.Name] = TableASHRAE
			sortedNames = append(sortedNames, row.Name)
		}
		for _, row := range bRows {
			building[row.Name] = row
			provenance[row.Name] = TableBuilding
			sortedNames = append(sortedNames, row.Name)
		}
	})
}

// Names returns every material name across the three backing tables.
func Names() []string {
	load()
	out := make([]string, len(sortedNames))
	copy(out, sortedNames)
	return out
}

// Source returns the table a canonical material name belongs to, or
// zero when the name is not an exact key.
func Source(name string) Table {
	load()
	return provenance[name]
}
