package token

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// vocab is the WordPiece vocabulary: one token per line of a vocab.txt
// file, as shipped with BART/BERT-family checkpoints.
type vocab struct {
	tokens map[string]struct{}
}

func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab: %w", err)
	}
	defer f.Close()

	v := &vocab{tokens: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tok := strings.TrimRight(scanner.Text(), "\r\n")
		if tok == "" {
			continue
		}
		v.tokens[tok] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}
	if len(v.tokens) == 0 {
		return nil, fmt.Errorf("vocab %s is empty", path)
	}
	return v, nil
}

func (v *vocab) contains(tok string) bool {
	_, ok := v.tokens[tok]
	return ok
}
