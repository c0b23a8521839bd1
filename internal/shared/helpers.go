// Package shared provides pure helper functions used across multiple
// packages in the openlego codebase: the bijective XPath-to-parameter-name
// transform and the text codec for leaf element values.
package shared

import (
	"fmt"
	"strconv"
	"strings"

	"openlego/internal/types"
)

// ParamFromXPath converts a leaf XPath to a flat parameter name. The
// leading slash is stripped and positional predicates are folded into the
// segment: "/cpacs/wing/x[2]" becomes "cpacs/wing/x:2". The transform is
// bijective as long as element names contain no colons.
func ParamFromXPath(xpath string) string {
	trimmed := strings.TrimPrefix(xpath, "/")
	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		tag, index := SplitSegment(segment)
		if index > 0 {
			segments[i] = fmt.Sprintf("%s:%d", tag, index)
		}
	}
	return strings.Join(segments, "/")
}

// XPathFromParam inverts ParamFromXPath.
func XPathFromParam(param string) string {
	segments := strings.Split(param, "/")
	for i, segment := range segments {
		if colon := strings.LastIndex(segment, ":"); colon >= 0 {
			if index, err := strconv.Atoi(segment[colon+1:]); err == nil && index > 0 {
				segments[i] = fmt.Sprintf("%s[%d]", segment[:colon], index)
			}
		}
	}
	return "/" + strings.Join(segments, "/")
}

// LastSegment returns the final XPath segment with any positional
// predicate stripped, e.g. "/a/b/x[2]" yields "x".
func LastSegment(xpath string) string {
	segments := strings.Split(strings.TrimPrefix(xpath, "/"), "/")
	tag, _ := SplitSegment(segments[len(segments)-1])
	return tag
}

// SplitSegment separates an XPath segment into its tag and 1-based
// positional predicate. Segments without a predicate yield index 0.
func SplitSegment(segment string) (string, int) {
	open := strings.LastIndex(segment, "[")
	if open < 0 || !strings.HasSuffix(segment, "]") {
		return segment, 0
	}
	index, err := strconv.Atoi(segment[open+1 : len(segment)-1])
	if err != nil || index < 1 {
		return segment, 0
	}
	return segment[:open], index
}

// ParseValueText classifies leaf text. A parseable float is a continuous
// scalar, a semicolon-separated list of floats is a continuous vector,
// anything else stays discrete with the raw text preserved.
func ParseValueText(text string) types.Value {
	trimmed := strings.TrimSpace(text)
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return types.Scalar(v)
	}
	if strings.Contains(trimmed, ";") {
		parts := strings.Split(trimmed, ";")
		floats := make([]float64, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return types.Discrete(text)
			}
			floats = append(floats, v)
		}
		return types.Vector(floats)
	}
	return types.Discrete(text)
}

// FormatValueText renders a value back to leaf text. Vectors use the
// semicolon convention, scalars the shortest float representation.
func FormatValueText(value types.Value) string {
	if !value.IsContinuous() {
		return value.Raw
	}
	parts := make([]string, len(value.Floats))
	for i, f := range value.Floats {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
