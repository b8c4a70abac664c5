// Package loader reads the show catalog, either from the embedded dataset
// compiled into the binary or from an external JSONL file. The dataset is
// fixed and fully known up front, so any malformed or invalid line is a
// fatal load error rather than something to skip past.
package loader

import (
	"bufio"
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yonster100/brainrot/pkg/model"
)

//go:embed shows.jsonl
var embedded embed.FS

// LoadEmbedded parses the dataset compiled into the binary.
func LoadEmbedded() ([]model.ShowRecord, error) {
	f, err := embedded.Open("shows.jsonl")
	if err != nil {
		return nil, fmt.Errorf("open embedded dataset: %w", err)
	}
	defer f.Close()
	return parse(f, "embedded shows.jsonl")
}

// LoadFile parses an external JSONL dataset, one show per line.
func LoadFile(path string) ([]model.ShowRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, name string) ([]model.ShowRecord, error) {
	var shows []model.ShowRecord
	seenIDs := make(map[string]int)
	seenNames := make(map[string]int)

	scanner := bufio.NewScanner(r)
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		// Strip UTF-8 BOM if present on the first line
		if lineNum == 1 {
			line = stripBOM(line)
		}

		var rec model.ShowRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, lineNum, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, lineNum, err)
		}

		if prev, dup := seenIDs[rec.ID]; dup {
			return nil, fmt.Errorf("%s line %d: duplicate id %s (first seen line %d)", name, lineNum, rec.ID, prev)
		}
		if prev, dup := seenNames[rec.TVShow]; dup {
			return nil, fmt.Errorf("%s line %d: duplicate show %q (first seen line %d)", name, lineNum, rec.TVShow, prev)
		}
		seenIDs[rec.ID] = lineNum
		seenNames[rec.TVShow] = lineNum

		shows = append(shows, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(shows) == 0 {
		return nil, fmt.Errorf("%s: no shows found", name)
	}

	return shows, nil
}

// stripBOM removes the UTF-8 Byte Order Mark if present
func stripBOM(b []byte) []byte {
	if bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) {
		return b[3:]
	}
	return b
}
