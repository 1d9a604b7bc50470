package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextKeepsParagraphsIntact(t *testing.T) {
	para1 := strings.Repeat("a", 30)
	para2 := strings.Repeat("b", 30)
	para3 := strings.Repeat("c", 30)
	text := para1 + "\n\n" + para2 + "\n\n" + para3

	chunks := chunkText(text, 70)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], para1)
	assert.Contains(t, chunks[0], para2)
	assert.Contains(t, chunks[1], para3)
	for _, c := range chunks {
		assert.NotContains(t, c, "ab", "a paragraph must never be split")
	}
}

func TestChunkTextOversizedParagraphIsItsOwnChunk(t *testing.T) {
	big := strings.Repeat("x", 500)
	chunks := chunkText("small one\n\n"+big, 100)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[1], big)
}

func TestChunkTextSkipsBlankParagraphs(t *testing.T) {
	chunks := chunkText("first\n\n\n\n  \n\nsecond", 4000)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "first")
	assert.Contains(t, chunks[0], "second")
}

func TestChunkTextEmptyInput(t *testing.T) {
	assert.Empty(t, chunkText("", 4000))
	assert.Empty(t, chunkText("   \n\n  ", 4000))
}
