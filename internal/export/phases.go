// Package export renders stored records into the tabbed workbook layout the
// downstream planning tool imports. Phase 1 covers machine metadata,
// downtime configuration and parameter specifications; later phases are
// placeholders in the layout contract and produce no tabs yet.
package export

import (
	"strings"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

// Tab is one worksheet: ordered columns plus rows of cell values.
type Tab struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// BuildTabs maps records to worksheet rows for the requested phases.
func BuildTabs(machine string, alarms []entity.AlarmRecord, parameters []entity.ParameterRecord, phases []int) []Tab {
	var tabs []Tab
	for _, phase := range phases {
		if phase == 1 {
			tabs = append(tabs, buildPhase1(machine, alarms, parameters)...)
		}
		// Phases 2 and 3 are reserved in the import contract.
	}
	return tabs
}

func buildPhase1(machine string, alarms []entity.AlarmRecord, parameters []entity.ParameterRecord) []Tab {
	machineTab := Tab{
		Name:    "Machine Details",
		Columns: []string{"Machine *", "Description"},
		Rows:    [][]any{{machine, "Main unit"}},
	}
	oeeTab := Tab{
		Name:    "OEE",
		Columns: []string{"Machine *", "Calculation Type"},
		Rows:    [][]any{{machine, "Standard"}},
	}

	downtime := Tab{
		Name: "Downtime Configuration",
		Columns: []string{
			"Machine *", "Reason 1 *", "Reason 2", "Reason 3", "Reason 4",
			"Category Type *", "Fault Code *", "Fault Name *",
		},
	}
	for _, r := range alarms {
		m := r.Machine
		if m == "" {
			m = machine
		}
		downtime.Rows = append(downtime.Rows, []any{
			m,
			r.ReasonLevel1,
			r.ReasonLevel2,
			firstNonEmpty(r.ReasonLevel3, r.Cause),
			firstNonEmpty(r.ReasonLevel4, r.Action),
			r.CategoryType,
			padFaultCode(r.AlarmID),
			r.Description,
		})
	}

	specs := Tab{
		Name: "Parameter Specifications",
		Columns: []string{
			"Machine *", "Parameter Desc *", "Product Desc *",
			"LRL", "LSL", "LWL", "Target", "UWL", "USL", "URL",
		},
	}
	for _, p := range parameters {
		m := p.Machine
		if m == "" {
			m = machine
		}
		product := p.ProductDesc
		if product == "" {
			product = "All"
		}
		specs.Rows = append(specs.Rows, []any{
			m, p.Description, product,
			floatCell(p.LRL), floatCell(p.LSL), floatCell(p.LWL),
			floatCell(p.Target),
			floatCell(p.UWL), floatCell(p.USL), floatCell(p.URL),
		})
	}

	return []Tab{machineTab, oeeTab, downtime, specs}
}

// padFaultCode left-pads alarm codes to four digits; the import side treats
// the column as text, so "0282" survives as-is.
func padFaultCode(alarmID string) string {
	if len(alarmID) >= 4 {
		return alarmID
	}
	return strings.Repeat("0", 4-len(alarmID)) + alarmID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// floatCell unwraps an optional numeric; empty cells stay blank rather than
// rendering a zero.
func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
