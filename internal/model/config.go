package model

// Mode is the program's mode of operation.
type Mode string

const (
	// ModeGenerate expands each sanitized path into evasion mutations.
	ModeGenerate Mode = "generate"
	// ModeSanitize only normalizes paths for the target OS.
	ModeSanitize Mode = "sanitize"
)

// RunConfig is the fully parsed configuration for one run. All user input has
// been validated by the time a RunConfig exists; building one fails before
// any output is written.
type RunConfig struct {
	Mode    Mode
	OS      TargetOS
	InFile  Path
	OutFile Path

	// Drive is the Windows drive letter for sanitize mode, empty when unset.
	Drive string

	// Traversal, Encodings and NullByte configure the generate-mode stages.
	// A disabled stage degenerates to identity in the pipeline.
	Traversal TraversalSpec
	Encodings []Encoding
	NullByte  NullByteMode
}
