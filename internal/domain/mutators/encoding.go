package mutators

import (
	"fmt"
	"strings"

	m "lfichef.dev/pkg/lfichef/internal/model"
)

// Substitution tables per technique. Each table also maps '%' so that a
// technique applied after another re-encodes the percent signs the first one
// introduced; that is what makes composed variants distinct and is exactly
// how double-url encoding arises from url encoding applied twice.
var (
	urlTable = map[rune]string{
		'/':  "%2f",
		'\\': "%5c",
		'.':  "%2e",
		':':  "%3a",
		'%':  "%25",
	}
	unicodeTable = map[rune]string{
		'/':  "%u002f",
		'\\': "%u005c",
		'.':  "%u002e",
		':':  "%u003a",
		'%':  "%u0025",
	}
	overlongTable = map[rune]string{
		'/':  "%c0%af",
		'\\': "%c0%5c",
		'.':  "%c0%ae",
		':':  "%c0%3a",
		'%':  "%c0%a5",
	}
)

// ParseEncodingSet parses a technique string such as "udbo" (any order, any
// subset) into an ordered encoding set. Repeated letters are kept once, at
// their first position.
func ParseEncodingSet(arg string) ([]m.Encoding, error) {
	encodings := make([]m.Encoding, 0, len(arg))
	seen := make(map[m.Encoding]bool, len(arg))

	for _, r := range arg {
		enc := m.Encoding(r)

		switch enc {
		case m.EncodingURL, m.EncodingDoubleURL, m.EncodingUnicode, m.EncodingOverlongUTF8:
		default:
			return nil, fmt.Errorf("%w: %q (expected letters from udbo)", m.ErrUnknownEncodingToken, string(r))
		}

		if seen[enc] {
			continue
		}

		seen[enc] = true
		encodings = append(encodings, enc)
	}

	return encodings, nil
}

// EncodedVariant is one encoded payload together with the technique letters
// that produced it, in application order.
type EncodedVariant struct {
	Path       m.CanonicalPath
	Techniques string
}

// EncodingTransformer applies the requested encoding techniques to a path.
// Colons are only substituted for windows targets; unix payloads had any
// drive token stripped during sanitization.
type EncodingTransformer struct {
	encodings   []m.Encoding
	encodeColon bool
}

// NewEncodingTransformer creates a transformer for the ordered encoding set.
func NewEncodingTransformer(encodings []m.Encoding, os m.TargetOS) EncodingTransformer {
	return EncodingTransformer{
		encodings:   encodings,
		encodeColon: os == m.OSWindows,
	}
}

// Transform produces one variant per non-empty subset of the configured
// techniques. Subsets are enumerated in binary-mask order over the argument
// positions and the techniques inside a subset are composed in argument
// order, so "ud" yields u, d and u-then-d. An empty set yields nil; the
// pipeline keeps the unencoded path itself.
func (t EncodingTransformer) Transform(path m.CanonicalPath) []EncodedVariant {
	count := len(t.encodings)
	if count == 0 {
		return nil
	}

	variants := make([]EncodedVariant, 0, (1<<count)-1)

	for mask := 1; mask < 1<<count; mask++ {
		encoded := path

		var letters strings.Builder

		for i, enc := range t.encodings {
			if mask&(1<<i) == 0 {
				continue
			}

			encoded = t.encodeOne(encoded, enc)
			letters.WriteByte(byte(enc))
		}

		variants = append(variants, EncodedVariant{Path: encoded, Techniques: letters.String()})
	}

	return variants
}

func (t EncodingTransformer) encodeOne(path m.CanonicalPath, enc m.Encoding) m.CanonicalPath {
	switch enc {
	case m.EncodingURL:
		return t.substitute(path, urlTable)
	case m.EncodingDoubleURL:
		return t.substitute(t.substitute(path, urlTable), urlTable)
	case m.EncodingUnicode:
		return t.substitute(path, unicodeTable)
	case m.EncodingOverlongUTF8:
		return t.substitute(path, overlongTable)
	default:
		return path
	}
}

func (t EncodingTransformer) substitute(path m.CanonicalPath, table map[rune]string) m.CanonicalPath {
	var out strings.Builder

	out.Grow(len(path) * 3)

	for _, r := range string(path) {
		if r == ':' && !t.encodeColon {
			out.WriteRune(r)
			continue
		}

		if replacement, ok := table[r]; ok {
			out.WriteString(replacement)
			continue
		}

		out.WriteRune(r)
	}

	return m.CanonicalPath(out.String())
}
