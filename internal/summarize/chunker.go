package summarize

import "github.com/startwise/eventscribe/internal/model"

// Chunk splits text into consecutive non-overlapping windows of at most
// maxTokens tokens, decoded back to text. For L tokens the result has
// ceil(L/maxTokens) chunks; all but the last hold exactly maxTokens. A
// text shorter than the window yields one chunk; an empty text yields
// none.
func Chunk(tok Tokenizer, text string, maxTokens int) []string {
	tokens := tok.Encode(text)
	if len(tokens) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(tokens); start += maxTokens {
		end := start + maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, tok.Decode(tokens[start:end]))
	}
	return chunks
}

// ChunkRows populates each row's Chunks field from its Transcript.
func ChunkRows(tok Tokenizer, table *model.Table, maxTokens int) {
	for i := range table.Rows {
		table.Rows[i].Chunks = Chunk(tok, table.Rows[i].Transcript, maxTokens)
	}
}
