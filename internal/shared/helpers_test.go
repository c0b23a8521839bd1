package shared

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openlego/internal/types"
)

func TestParamFromXPath(t *testing.T) {
	tests := []struct {
		xpath string
		param string
	}{
		{"/cpacs/wing/span", "cpacs/wing/span"},
		{"/a/b", "a/b"},
		{"/cpacs/wing[2]/x", "cpacs/wing:2/x"},
		{"/cpacs/wing/x[12]", "cpacs/wing/x:12"},
		{"/root", "root"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.param, ParamFromXPath(tt.xpath)); diff != "" {
			t.Fatalf("unexpected param for %s (-want +got):\n%s", tt.xpath, diff)
		}
	}
}

func TestXPathFromParamRoundTrip(t *testing.T) {
	xpaths := []string{
		"/cpacs/wing/span",
		"/cpacs/wing[2]/x",
		"/cpacs/wing/x[12]",
		"/a/b/c/d/e",
		"/root",
	}
	for _, xpath := range xpaths {
		require.Equal(t, xpath, XPathFromParam(ParamFromXPath(xpath)))
	}
}

func TestSplitSegment(t *testing.T) {
	tests := []struct {
		segment string
		tag     string
		index   int
	}{
		{"wing", "wing", 0},
		{"wing[2]", "wing", 2},
		{"wing[0]", "wing[0]", 0},
		{"wing[x]", "wing[x]", 0},
	}
	for _, tt := range tests {
		tag, index := SplitSegment(tt.segment)
		assert.Equal(t, tt.tag, tag)
		assert.Equal(t, tt.index, index)
	}
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "x", LastSegment("/a/b/x[2]"))
	assert.Equal(t, "span", LastSegment("/cpacs/wing/span"))
}

func TestParseValueText(t *testing.T) {
	tests := []struct {
		text  string
		value types.Value
	}{
		{"2.0", types.Scalar(2.0)},
		{" -3.5 ", types.Scalar(-3.5)},
		{"1.0;2.0;3.0", types.Vector([]float64{1, 2, 3})},
		{"1; 2 ;3", types.Vector([]float64{1, 2, 3})},
		{"NACA0012", types.Discrete("NACA0012")},
		{"1.0;foo", types.Discrete("1.0;foo")},
		{"", types.Discrete("")},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.value, ParseValueText(tt.text)); diff != "" {
			t.Fatalf("unexpected value for %q (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestFormatValueTextRoundTrip(t *testing.T) {
	values := []types.Value{
		types.Scalar(2.5),
		types.Vector([]float64{1.5, -2, 1e-9}),
		types.Discrete("NACA0012"),
	}
	for _, value := range values {
		if diff := cmp.Diff(value, ParseValueText(FormatValueText(value))); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
