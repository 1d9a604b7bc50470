package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractParameterTolerance(t *testing.T) {
	e := NewParameterExtractor(nil, nil)
	params := e.Extract("Clamping force 2000 +/- 50 kN")

	require.Len(t, params, 1)
	p := params[0]
	assert.Equal(t, "Clamping force", p.Description)
	assert.Equal(t, "kN", p.Unit)
	require.NotNil(t, p.Target)
	require.NotNil(t, p.LSL)
	require.NotNil(t, p.USL)
	assert.InDelta(t, 2000, *p.Target, 1e-9)
	assert.InDelta(t, 1950, *p.LSL, 1e-9)
	assert.InDelta(t, 2050, *p.USL, 1e-9)
}

func TestExtractParameterRangeMidpoint(t *testing.T) {
	e := NewParameterExtractor(nil, nil)
	params := e.Extract("Temperature range 180 - 220 C")

	require.Len(t, params, 1)
	p := params[0]
	assert.Equal(t, "Temperature range", p.Description)
	assert.Equal(t, "C", p.Unit)
	require.NotNil(t, p.Target)
	assert.InDelta(t, 200, *p.Target, 1e-9)
	assert.InDelta(t, 180, *p.LSL, 1e-9)
	assert.InDelta(t, 220, *p.USL, 1e-9)
}

func TestExtractParameterSingleValue(t *testing.T) {
	e := NewParameterExtractor(nil, nil)
	params := e.Extract("Stroke 120 mm")

	require.Len(t, params, 1)
	p := params[0]
	assert.Equal(t, "Stroke", p.Description)
	assert.Equal(t, "mm", p.Unit)
	require.NotNil(t, p.Target)
	assert.InDelta(t, 120, *p.Target, 1e-9)
	assert.Nil(t, p.LSL)
	assert.Nil(t, p.USL)
}

func TestExtractParameterCompoundUnit(t *testing.T) {
	e := NewParameterExtractor(nil, nil)
	params := e.Extract("Belt speed 0.5 m/s")

	require.Len(t, params, 1)
	assert.Equal(t, "m/s", params[0].Unit)
}

func TestExtractParameterLastOccurrenceWins(t *testing.T) {
	// Revised spec tables later in a manual supersede earlier ones,
	// unlike alarm dedup which keeps the first block.
	text := "Filling pressure 3 bar\nFilling pressure 4 bar\n"

	e := NewParameterExtractor(nil, nil)
	params := e.Extract(text)

	require.Len(t, params, 1)
	require.NotNil(t, params[0].Target)
	assert.InDelta(t, 4, *params[0].Target, 1e-9)
}

func TestExtractParameterNoiseLinesSkipped(t *testing.T) {
	// Lines carrying alarm-block markers are artifacts, not specifications.
	text := "Cause: pressure below 3 bar\n" +
		"Remedy: raise supply to 4 bar\n" +
		"Reaction: machine stops after 10 s\n" +
		"Filling pressure 3 bar\n"

	e := NewParameterExtractor(nil, nil)
	params := e.Extract(text)

	require.Len(t, params, 1)
	assert.Equal(t, "Filling pressure", params[0].Description)
}

func TestExtractParameterProseRejected(t *testing.T) {
	e := NewParameterExtractor(nil, nil)
	params := e.Extract("The machine operates at speeds up to 5000 units")
	assert.Empty(t, params)
}

func TestExtractParameterShortDescriptionRejected(t *testing.T) {
	e := NewParameterExtractor(nil, nil)
	params := e.Extract("at 50 mm")
	assert.Empty(t, params)
}

func TestExtractParameterOrderPreserved(t *testing.T) {
	text := "Stroke 120 mm\nFilling pressure 3 bar\nStroke 130 mm\n"

	e := NewParameterExtractor(nil, nil)
	params := e.Extract(text)

	require.Len(t, params, 2)
	assert.Equal(t, "Stroke", params[0].Description)
	assert.InDelta(t, 130, *params[0].Target, 1e-9)
	assert.Equal(t, "Filling pressure", params[1].Description)
}
