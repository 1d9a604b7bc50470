package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

func TestPadFaultCode(t *testing.T) {
	assert.Equal(t, "0007", padFaultCode("7"))
	assert.Equal(t, "0282", padFaultCode("282"))
	assert.Equal(t, "0282", padFaultCode("0282"))
	assert.Equal(t, "12345", padFaultCode("12345"), "codes at or over four digits pass through")
}

func TestBuildTabsPhase1Layout(t *testing.T) {
	target := 120.0
	lsl := 100.0
	usl := 140.0
	tabs := BuildTabs("KHS_Filler",
		[]entity.AlarmRecord{{
			AlarmID:      "282",
			Description:  "Drive fault",
			Cause:        "Fan blocked",
			Action:       "Clean fan",
			ReasonLevel1: "Basic Machine and Safety Faults",
			ReasonLevel2: "Electrical",
			CategoryType: "Unplanned Downtime",
		}},
		[]entity.ParameterRecord{{
			Description: "Stroke",
			Target:      &target,
			LSL:         &lsl,
			USL:         &usl,
			Unit:        "mm",
		}},
		[]int{1},
	)

	require.Len(t, tabs, 4)
	assert.Equal(t, "Machine Details", tabs[0].Name)
	assert.Equal(t, "OEE", tabs[1].Name)
	assert.Equal(t, "Downtime Configuration", tabs[2].Name)
	assert.Equal(t, "Parameter Specifications", tabs[3].Name)

	downtime := tabs[2]
	require.Len(t, downtime.Rows, 1)
	row := downtime.Rows[0]
	assert.Equal(t, "KHS_Filler", row[0], "machine defaults from the export target")
	assert.Equal(t, "Basic Machine and Safety Faults", row[1])
	assert.Equal(t, "Fan blocked", row[3], "reason 3 falls back to cause")
	assert.Equal(t, "Clean fan", row[4], "reason 4 falls back to action")
	assert.Equal(t, "0282", row[6], "fault code padded to four digits")
	assert.Equal(t, "Drive fault", row[7])

	specs := tabs[3]
	require.Len(t, specs.Rows, 1)
	specRow := specs.Rows[0]
	assert.Equal(t, "Stroke", specRow[1])
	assert.Equal(t, "All", specRow[2], "product description defaults to All")
	assert.Equal(t, 100.0, specRow[4])
	assert.Equal(t, 120.0, specRow[6])
	assert.Equal(t, 140.0, specRow[8])
	assert.Equal(t, "", specRow[3], "unset limits render blank, not zero")
}

func TestBuildTabsReservedPhasesProduceNoTabs(t *testing.T) {
	tabs := BuildTabs("KHS_Filler", nil, nil, []int{2, 3})
	assert.Empty(t, tabs)
}

func TestBuildTabsRecordMachineWins(t *testing.T) {
	tabs := BuildTabs("Fallback",
		[]entity.AlarmRecord{{AlarmID: "1", Description: "x", Machine: "KHS_Capper"}},
		nil, []int{1})

	downtime := tabs[2]
	require.Len(t, downtime.Rows, 1)
	assert.Equal(t, "KHS_Capper", downtime.Rows[0][0])
}
