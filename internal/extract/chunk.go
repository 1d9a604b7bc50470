package extract

import "strings"

// chunkText splits text on blank-line paragraph boundaries and reassembles
// paragraphs into chunks under the size budget. A paragraph is never split,
// so a single oversized paragraph becomes its own oversized chunk rather
// than being cut mid-block.
func chunkText(text string, chunkSize int) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if current.Len()+len(p) >= chunkSize && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(p)
		current.WriteString("\n\n")
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
