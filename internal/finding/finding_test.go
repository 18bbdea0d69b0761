package finding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructured(t *testing.T) {
	size3 := 3
	size1 := 1

	tests := []struct {
		name string
		line string
		want Structured
	}{
		{
			name: "Function finding without size",
			line: "foo.py:10: unused function 'helper' (90% confidence)",
			want: Structured{
				RawLine:    "foo.py:10: unused function 'helper' (90% confidence)",
				Path:       "foo.py",
				Line:       10,
				Kind:       "function",
				Name:       "helper",
				Confidence: 90,
			},
		},
		{
			name: "Variable finding with plural size clause",
			line: "pkg/mod.py:7: unused variable 'x' (60% confidence, 3 lines)",
			want: Structured{
				RawLine:    "pkg/mod.py:7: unused variable 'x' (60% confidence, 3 lines)",
				Path:       "pkg/mod.py",
				Line:       7,
				Kind:       "variable",
				Name:       "x",
				Confidence: 60,
				Size:       &size3,
			},
		},
		{
			name: "Singular size clause",
			line: "a.py:1: unused import 'os' (95% confidence, 1 line)",
			want: Structured{
				RawLine:    "a.py:1: unused import 'os' (95% confidence, 1 line)",
				Path:       "a.py",
				Line:       1,
				Kind:       "import",
				Name:       "os",
				Confidence: 95,
				Size:       &size1,
			},
		},
		{
			name: "Multi-word kind",
			line: "b.py:4: unused class attribute 'slots' (80% confidence)",
			want: Structured{
				RawLine:    "b.py:4: unused class attribute 'slots' (80% confidence)",
				Path:       "b.py",
				Line:       4,
				Kind:       "class attribute",
				Name:       "slots",
				Confidence: 80,
			},
		},
		{
			name: "Path containing colons",
			line: "src/py:3:stuff.py:12: unused function 'f' (70% confidence)",
			want: Structured{
				RawLine:    "src/py:3:stuff.py:12: unused function 'f' (70% confidence)",
				Path:       "src/py:3:stuff.py",
				Line:       12,
				Kind:       "function",
				Name:       "f",
				Confidence: 70,
			},
		},
		{
			name: "Surrounding whitespace is trimmed",
			line: "  foo.py:10: unused function 'helper' (90% confidence)  ",
			want: Structured{
				RawLine:    "foo.py:10: unused function 'helper' (90% confidence)",
				Path:       "foo.py",
				Line:       10,
				Kind:       "function",
				Name:       "helper",
				Confidence: 90,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			require.IsType(t, Structured{}, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnstructuredRecovery(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "Scanner warning", line: "vulture: warning: something odd happened"},
		{name: "Truncated output", line: "foo.py:10: unused function 'helper"},
		{name: "Unexpected wording", line: "foo.py:10: dead function 'helper' (90% confidence)"},
		{name: "Extra prefix", line: "NOTE foo.py:10: unused function 'helper' (90% confidence)"},
		{name: "Missing confidence suffix", line: "foo.py:10: unused function 'helper'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			require.IsType(t, Unstructured{}, got)
			assert.Equal(t, tt.line, got.Raw())
		})
	}
}

func TestKeys(t *testing.T) {
	structured := Parse("foo.py:10: unused function 'helper' (90% confidence)")
	assert.Equal(t, "foo.py:10:function:helper", structured.Key())

	// Identity ignores confidence and size: the two scans may report them
	// differently for the same logical symbol.
	withSize := Parse("foo.py:10: unused function 'helper' (62% confidence, 4 lines)")
	assert.Equal(t, structured.Key(), withSize.Key())

	raw := Parse("some diagnostic line")
	rawAgain := Parse("some diagnostic line")
	assert.Equal(t, "raw::some diagnostic line", raw.Key())
	assert.Equal(t, raw.Key(), rawAgain.Key())

	// A raw line that happens to spell out a structured key must not collide.
	collider := Parse("foo.py:10:function:helper")
	assert.NotEqual(t, structured.Key(), collider.Key())
}

func TestParseLinesSkipsBlank(t *testing.T) {
	findings := ParseLines([]string{
		"foo.py:10: unused function 'helper' (90% confidence)",
		"   ",
		"garbage line",
	})
	require.Len(t, findings, 2)
	assert.IsType(t, Structured{}, findings[0])
	assert.IsType(t, Unstructured{}, findings[1])
}

func TestSortOrdering(t *testing.T) {
	findings := []Finding{
		Parse("b.py:2: unused variable 'y' (50% confidence)"),
		Parse("unparseable noise"),
		Parse("a.py:20: unused function 'g' (80% confidence)"),
		Parse("a.py:3: unused function 'f' (80% confidence)"),
		Parse("another noise line"),
	}

	Sort(findings)

	raws := make([]string, 0, len(findings))
	for _, f := range findings {
		raws = append(raws, f.Raw())
	}
	// Unstructured findings sort by raw text with empty path/line/kind/name,
	// placing them before any structured finding.
	assert.Equal(t, []string{
		"another noise line",
		"unparseable noise",
		"a.py:3: unused function 'f' (80% confidence)",
		"a.py:20: unused function 'g' (80% confidence)",
		"b.py:2: unused variable 'y' (50% confidence)",
	}, raws)
}

func TestBuildLookupLaterWins(t *testing.T) {
	first := Parse("foo.py:10: unused function 'helper' (90% confidence)")
	second := Parse("foo.py:10: unused function 'helper' (95% confidence)")

	lookup := BuildLookup([]Finding{first, second})
	require.Len(t, lookup, 1)
	assert.Equal(t, second, lookup["foo.py:10:function:helper"])
}

func TestSerialize(t *testing.T) {
	structured := Serialize(Parse("foo.py:10: unused function 'helper' (90% confidence)"))
	require.NotNil(t, structured.Path)
	assert.Equal(t, "foo.py", *structured.Path)
	require.NotNil(t, structured.Line)
	assert.Equal(t, 10, *structured.Line)
	require.NotNil(t, structured.Confidence)
	assert.Equal(t, 90, *structured.Confidence)
	assert.Nil(t, structured.Size)
	assert.Equal(t, "foo.py:10:function:helper", structured.Key)

	unstructured := Serialize(Parse("noise"))
	assert.Equal(t, "noise", unstructured.Raw)
	assert.Nil(t, unstructured.Path)
	assert.Nil(t, unstructured.Line)
	assert.Nil(t, unstructured.SymbolKind)
	assert.Nil(t, unstructured.SymbolName)
	assert.Nil(t, unstructured.Confidence)
	assert.Nil(t, unstructured.Size)
	assert.Equal(t, "raw::noise", unstructured.Key)
}
