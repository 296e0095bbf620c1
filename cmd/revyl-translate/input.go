package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/revyl/translate/internal/translate"
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// readLines reads and decodes the line definitions in path.
func readLines(cmd *cobra.Command, path string) ([]translate.TestLine, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	lines, err := translate.ParseLines(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: no lines", path)
	}
	return lines, nil
}

// readResults reads the execution results in path: one JSON object per
// line, either alone or in an array ordered like the lines.
func readResults(cmd *cobra.Command, path string, count int) ([][]byte, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w: not valid JSON", path, translate.ErrInvalidResult)
	}

	doc := gjson.ParseBytes(data)
	var results [][]byte
	if doc.IsArray() {
		for _, r := range doc.Array() {
			results = append(results, []byte(r.Raw))
		}
	} else {
		results = [][]byte{[]byte(doc.Raw)}
	}

	if len(results) != count {
		return nil, fmt.Errorf("%s: %d results for %d lines", path, len(results), count)
	}
	return results, nil
}
