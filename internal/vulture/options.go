package vulture

import "strconv"

// Options is the flag set forwarded identically to both scanner passes.
type Options struct {
	ConfigPath       string
	Exclude          string
	IgnoreNames      string
	IgnoreDecorators string
	// MinConfidence below zero means unset.
	MinConfidence int
	SortBySize    bool
	Verbose       bool
}

// CommonFlags maps the options onto vulture's argv form, omitting unset
// optionals and keeping a fixed order for reproducible commands.
func (o Options) CommonFlags() []string {
	var flags []string
	if o.ConfigPath != "" {
		flags = append(flags, "--config", o.ConfigPath)
	}
	if o.Exclude != "" {
		flags = append(flags, "--exclude", o.Exclude)
	}
	if o.IgnoreNames != "" {
		flags = append(flags, "--ignore-names", o.IgnoreNames)
	}
	if o.IgnoreDecorators != "" {
		flags = append(flags, "--ignore-decorators", o.IgnoreDecorators)
	}
	if o.MinConfidence >= 0 {
		flags = append(flags, "--min-confidence", strconv.Itoa(o.MinConfidence))
	}
	if o.SortBySize {
		flags = append(flags, "--sort-by-size")
	}
	if o.Verbose {
		flags = append(flags, "--verbose")
	}
	return flags
}
