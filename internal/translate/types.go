package translate

// TestLine is one step of a test definition.
//
// Only the fields relevant to Type are read; see TranslateLine for the
// supported line types.
type TestLine struct {
	Type     string `json:"type" yaml:"type"`
	LineID   string `json:"lineId,omitempty" yaml:"lineId,omitempty"`
	Excluded bool   `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	// Condition is checked by assert and wait lines, and ends repeated
	// click, press and runSnippet lines ("until").
	Condition *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`

	// Then is what happens after an assert line fails: "fail" (default),
	// "exit", "warning" or "success".
	Then string `json:"then,omitempty" yaml:"then,omitempty"`

	Count   int `json:"count,omitempty" yaml:"count,omitempty"`
	Delay   int `json:"delay,omitempty" yaml:"delay,omitempty"`
	Timeout int `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// IDs are the remote control buttons pressed by a press line.
	IDs []string `json:"ids,omitempty" yaml:"ids,omitempty"`

	// Val holds the line's main value: text to send, URL to open,
	// milliseconds to sleep, command to execute or comment text.
	Val string `json:"val,omitempty" yaml:"val,omitempty"`

	Target *Target `json:"target,omitempty" yaml:"target,omitempty"`

	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Distance  int    `json:"distance,omitempty" yaml:"distance,omitempty"`
	Duration  int    `json:"duration,omitempty" yaml:"duration,omitempty"`

	Relaunch  bool   `json:"relaunch,omitempty" yaml:"relaunch,omitempty"`
	SnippetID string `json:"snippetId,omitempty" yaml:"snippetId,omitempty"`

	// Response is the expected HTTP response of a pollUrl line.
	Response string `json:"response,omitempty" yaml:"response,omitempty"`
}

// Target is the element or window a click, sendText or swipe line acts on.
type Target struct {
	Type        string `json:"type" yaml:"type"`
	ElementID   string `json:"elementId,omitempty" yaml:"elementId,omitempty"`
	Val         string `json:"val,omitempty" yaml:"val,omitempty"`
	Coordinates *Point `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// Point is a screen position in pixels.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Condition is the assertion part of a line.
type Condition struct {
	Subject Subject `json:"subject" yaml:"subject"`

	// Type is the comparator or check, e.g. "=", "~", "exists", "has".
	Type string `json:"type" yaml:"type"`
	Val  any    `json:"val,omitempty" yaml:"val,omitempty"`

	// Expression is the JavaScript evaluated for javascript subjects.
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// Properties are checked by "has" conditions on elements.
	Properties []ElementProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Subject names what a condition is about.
type Subject struct {
	Type      string `json:"type" yaml:"type"`
	ElementID string `json:"elementId,omitempty" yaml:"elementId,omitempty"`
	Val       string `json:"val,omitempty" yaml:"val,omitempty"`
}

// ElementProperty is one expected property of an element.
type ElementProperty struct {
	Property  string `json:"property" yaml:"property"`
	Type      string `json:"type" yaml:"type"`
	Val       any    `json:"val,omitempty" yaml:"val,omitempty"`
	Deviation int    `json:"deviation,omitempty" yaml:"deviation,omitempty"`
}
