// Package domain contains the core wordlist sanitization and mutation logic.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "lfichef.dev/pkg/lfichef/internal/model"
)

var (
	drivePrefixRe    = regexp.MustCompile(`^[A-Za-z]:`)
	repeatedSlashRe  = regexp.MustCompile(`/{2,}`)
	repeatedBackslRe = regexp.MustCompile(`\\{2,}`)
	validDriveLetter = regexp.MustCompile(`^[A-Za-z]$`)
)

// Sanitizer normalizes raw wordlist paths for one target OS. Implementations
// are pure: the same input always yields the same canonical path.
type Sanitizer interface {
	Sanitize(raw m.RawPath) m.CanonicalPath
}

type sanitizer struct {
	os    m.TargetOS
	drive string
}

// NewSanitizer creates a Sanitizer for the target OS. A non-empty drive
// letter is only meaningful for Windows and must be a single [A-Za-z] rune.
func NewSanitizer(os m.TargetOS, drive string) (Sanitizer, error) {
	if drive != "" && !validDriveLetter.MatchString(drive) {
		return nil, fmt.Errorf("%w: %q is not a single A-Z letter", m.ErrInvalidDriveLetter, drive)
	}

	return &sanitizer{os: os, drive: drive}, nil
}

// Sanitize converts one raw path into the target OS's canonical form:
// separator direction, separator collapsing and drive-letter handling.
// Sanitizing an already-canonical path is a no-op.
func (s *sanitizer) Sanitize(raw m.RawPath) m.CanonicalPath {
	path := strings.TrimSpace(string(raw))

	if s.os == m.OSWindows {
		return m.CanonicalPath(s.sanitizeWindows(path))
	}

	return m.CanonicalPath(sanitizeUnix(path))
}

func sanitizeUnix(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	path = repeatedSlashRe.ReplaceAllString(path, "/")

	// Unix payloads never carry a drive token.
	return drivePrefixRe.ReplaceAllString(path, "")
}

func (s *sanitizer) sanitizeWindows(path string) string {
	path = strings.ReplaceAll(path, "/", `\`)
	path = repeatedBackslRe.ReplaceAllString(path, `\`)

	hasDrive := drivePrefixRe.MatchString(path)

	switch {
	case s.drive == "" && hasDrive:
		path = path[2:]
	case s.drive != "" && !hasDrive:
		path = s.drive + ":" + path
	}
	// An existing drive prefix wins over the configured letter; the payload
	// author knew which volume the path lives on.

	return path
}
