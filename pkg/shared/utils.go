package shared

import (
	"regexp"
	"strings"
)

// DedupeInOrder removes later duplicates while preserving first-seen order.
// It is used to normalize repeated path flags so repeated runs with the same
// input produce identical scanner commands.
func DedupeInOrder(items []string) []string {
	deduped := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		deduped = append(deduped, item)
	}
	return deduped
}

var shellSafePattern = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

// ShellQuote returns a POSIX shell-safe representation of a single argument.
func ShellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	if shellSafePattern.MatchString(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}

// ShellJoin renders an argv slice as a copy-pasteable shell command line.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = ShellQuote(arg)
	}
	return strings.Join(quoted, " ")
}
