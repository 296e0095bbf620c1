package translate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseLine decodes a single line definition from YAML or JSON.
func ParseLine(data []byte) (TestLine, error) {
	var line TestLine
	if err := yaml.Unmarshal(data, &line); err != nil {
		return TestLine{}, fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}
	if line.Type == "" {
		return TestLine{}, fmt.Errorf("%w: missing type", ErrInvalidLine)
	}
	return line, nil
}

// ParseLines decodes a list of line definitions from YAML or JSON.
// A document holding a single line mapping is accepted as a list of one.
func ParseLines(data []byte) ([]TestLine, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	var lines []TestLine
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&lines); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLine, err)
		}
	case yaml.MappingNode:
		var line TestLine
		if err := root.Decode(&line); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLine, err)
		}
		lines = []TestLine{line}
	default:
		return nil, fmt.Errorf("%w: expected a line or a list of lines", ErrInvalidLine)
	}

	for i, l := range lines {
		if l.Type == "" {
			return nil, fmt.Errorf("%w: line %d: missing type", ErrInvalidLine, i+1)
		}
	}
	return lines, nil
}
