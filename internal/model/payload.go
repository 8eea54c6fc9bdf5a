// Package model defines the data structures for LFI wordlist mutation.
package model

import "fmt"

// Path represents a file system path on the host running the tool.
type Path string

// RawPath is one trimmed line from the input wordlist, exactly as supplied.
type RawPath string

// CanonicalPath is a payload path normalized to one target OS's separator
// and drive-letter conventions.
type CanonicalPath string

// TargetOS identifies the operating system family a wordlist targets.
type TargetOS string

const (
	// OSMac targets macOS hosts (forward-slash separators).
	OSMac TargetOS = "mac"
	// OSLinux targets Linux hosts (forward-slash separators).
	OSLinux TargetOS = "linux"
	// OSWindows targets Windows hosts (backslash separators, drive letters).
	OSWindows TargetOS = "windows"
)

// ParseTargetOS validates a user-supplied OS name.
func ParseTargetOS(value string) (TargetOS, error) {
	switch TargetOS(value) {
	case OSMac, OSLinux, OSWindows:
		return TargetOS(value), nil
	default:
		return "", fmt.Errorf("unknown target OS %q (expected mac, linux or windows)", value)
	}
}

// Encoding identifies one character-encoding evasion technique.
type Encoding byte

const (
	// EncodingURL percent-encodes path characters (%2f, %5c, ...).
	EncodingURL Encoding = 'u'
	// EncodingDoubleURL percent-encodes twice (%252f, ...).
	EncodingDoubleURL Encoding = 'd'
	// EncodingUnicode renders path characters as 16-bit escapes (%u002f, ...).
	EncodingUnicode Encoding = 'b'
	// EncodingOverlongUTF8 renders path characters as non-minimal UTF-8 (%c0%af, ...).
	EncodingOverlongUTF8 Encoding = 'o'
)

// NullByteMode selects where a null-byte sequence is injected.
type NullByteMode string

const (
	// NullByteNone disables null-byte injection.
	NullByteNone NullByteMode = "none"
	// NullBytePrepend places the null byte before the payload.
	NullBytePrepend NullByteMode = "prepend"
	// NullByteAppend places the null byte after the payload.
	NullByteAppend NullByteMode = "append"
	// NullByteBoth emits the prepend and the append variants.
	NullByteBoth NullByteMode = "both"
)

// TokenPair is one traversal unit: the token that climbs a directory and the
// separator glued to it when the prefix is built.
type TokenPair struct {
	Traversal string
	Separator string
}

// TraversalSpec describes which recursion depths to generate and which token
// pairs to build the prefixes from. A zero Start disables the stage.
type TraversalSpec struct {
	Start  int
	End    int
	Tokens []TokenPair
}

// Enabled reports whether traversal expansion was requested.
func (s TraversalSpec) Enabled() bool {
	return s.Start >= 1
}

// MutationRecord is one produced output line together with the techniques
// that shaped it, so consumers can tally per-stage counts.
type MutationRecord struct {
	Payload string
	// Depth is the traversal recursion depth, 0 for the passthrough variant.
	Depth int
	// Encodings holds the composed technique letters in application order,
	// empty when the payload was not encoded.
	Encodings string
	// NullByte is the placement applied to this record, NullByteNone if none.
	NullByte NullByteMode
}
