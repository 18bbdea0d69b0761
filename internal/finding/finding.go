// Package finding holds the domain model for one reported unused symbol and
// the stable identity used to match the same symbol across two scanner passes.
package finding

import (
	"fmt"
	"sort"
)

// Finding is one reported occurrence of an unused symbol. It is a closed sum:
// Structured for lines matching the scanner's output grammar, Unstructured for
// everything else. Findings are immutable once constructed.
type Finding interface {
	// Key returns the identity used to match findings across scans. It is a
	// mapping key only and is never displayed.
	Key() string
	// Raw returns the original scanner output line.
	Raw() string

	isFinding()
}

// Structured is a finding that matched the scanner's output grammar.
type Structured struct {
	RawLine    string
	Path       string
	Line       int
	Kind       string
	Name       string
	Confidence int
	// Size is the count of lines in the dead block; nil for single-line findings.
	Size *int
}

func (f Structured) isFinding() {}

func (f Structured) Raw() string { return f.RawLine }

// Key identifies a structured finding by (path, line, kind, name). Confidence
// and size may legitimately differ between the two scans for the same symbol,
// so they are excluded.
func (f Structured) Key() string {
	return fmt.Sprintf("%s:%d:%s:%s", f.Path, f.Line, f.Kind, f.Name)
}

// Unstructured carries a line that failed the grammar verbatim, so no finding
// is ever silently dropped.
type Unstructured struct {
	RawLine string
}

func (f Unstructured) isFinding() {}

func (f Unstructured) Raw() string { return f.RawLine }

// Key collapses unstructured findings with byte-identical raw text into one
// identity, across scans included. This is intended dedup behavior.
func (f Unstructured) Key() string {
	return "raw::" + f.RawLine
}

// sortTuple flattens a finding into the ordering tuple
// (path-or-empty, line-or-zero, kind-or-empty, name-or-empty, raw).
func sortTuple(f Finding) (string, int, string, string, string) {
	switch v := f.(type) {
	case Structured:
		return v.Path, v.Line, v.Kind, v.Name, v.RawLine
	default:
		return "", 0, "", "", f.Raw()
	}
}

// Sort orders findings deterministically, independent of map iteration order.
func Sort(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		pi, li, ki, ni, ri := sortTuple(findings[i])
		pj, lj, kj, nj, rj := sortTuple(findings[j])
		if pi != pj {
			return pi < pj
		}
		if li != lj {
			return li < lj
		}
		if ki != kj {
			return ki < kj
		}
		if ni != nj {
			return ni < nj
		}
		return ri < rj
	})
}

// BuildLookup maps findings by identity key. On a key collision within one scan
// the later finding overwrites the earlier; the scanner is not expected to emit
// true duplicates within one run.
func BuildLookup(findings []Finding) map[string]Finding {
	lookup := make(map[string]Finding, len(findings))
	for _, f := range findings {
		lookup[f.Key()] = f
	}
	return lookup
}

// Record is the serialized form of a finding used in machine-readable reports.
// Absent fields render as JSON null.
type Record struct {
	Raw        string  `json:"raw"`
	Path       *string `json:"path"`
	Line       *int    `json:"line"`
	SymbolKind *string `json:"symbol_kind"`
	SymbolName *string `json:"symbol_name"`
	Confidence *int    `json:"confidence"`
	Size       *int    `json:"size"`
	Key        string  `json:"key"`
}

// Serialize converts a finding into its report record, full field set plus key.
func Serialize(f Finding) Record {
	record := Record{
		Raw: f.Raw(),
		Key: f.Key(),
	}
	if s, ok := f.(Structured); ok {
		path, line, kind, name, confidence := s.Path, s.Line, s.Kind, s.Name, s.Confidence
		record.Path = &path
		record.Line = &line
		record.SymbolKind = &kind
		record.SymbolName = &name
		record.Confidence = &confidence
		record.Size = s.Size
	}
	return record
}
