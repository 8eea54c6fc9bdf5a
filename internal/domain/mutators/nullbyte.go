package mutators

import (
	"fmt"

	m "lfichef.dev/pkg/lfichef/internal/model"
)

// NullByteToken is the encoded null byte injected into payloads.
const NullByteToken = "%00"

// ParseNullByteMode parses the single-letter mode argument (p, a or b). An
// empty argument disables the stage.
func ParseNullByteMode(arg string) (m.NullByteMode, error) {
	switch arg {
	case "":
		return m.NullByteNone, nil
	case "p":
		return m.NullBytePrepend, nil
	case "a":
		return m.NullByteAppend, nil
	case "b":
		return m.NullByteBoth, nil
	default:
		return "", fmt.Errorf("unknown null byte mode %q (expected p, a or b)", arg)
	}
}

// NullByteVariant is one injected payload together with the placement used.
type NullByteVariant struct {
	Path      m.CanonicalPath
	Placement m.NullByteMode
}

// NullByteInjector places a null-byte sequence around payloads.
type NullByteInjector struct {
	mode m.NullByteMode
}

// NewNullByteInjector creates an injector for the given mode.
func NewNullByteInjector(mode m.NullByteMode) NullByteInjector {
	return NullByteInjector{mode: mode}
}

// Inject returns the null-byte variants for the path: one for prepend or
// append, exactly two (prepend then append) for both, none when disabled.
// The pipeline keeps the uninjected path itself.
func (i NullByteInjector) Inject(path m.CanonicalPath) []NullByteVariant {
	switch i.mode {
	case m.NullBytePrepend:
		return []NullByteVariant{prepended(path)}
	case m.NullByteAppend:
		return []NullByteVariant{appended(path)}
	case m.NullByteBoth:
		return []NullByteVariant{prepended(path), appended(path)}
	default:
		return nil
	}
}

func prepended(path m.CanonicalPath) NullByteVariant {
	return NullByteVariant{
		Path:      m.CanonicalPath(NullByteToken + string(path)),
		Placement: m.NullBytePrepend,
	}
}

func appended(path m.CanonicalPath) NullByteVariant {
	return NullByteVariant{
		Path:      m.CanonicalPath(string(path) + NullByteToken),
		Placement: m.NullByteAppend,
	}
}
