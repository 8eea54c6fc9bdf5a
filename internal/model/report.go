package model

import "time"

// RunReport summarizes one completed run. It is displayed by the UI and can
// be persisted as YAML with the report store.
type RunReport struct {
	Mode      string    `yaml:"mode"`
	OS        string    `yaml:"os"`
	InFile    string    `yaml:"in_file"`
	OutFile   string    `yaml:"out_file"`
	StartedAt time.Time `yaml:"started_at"`
	Duration  string    `yaml:"duration"`

	LinesRead    int `yaml:"lines_read"`
	LinesWritten int `yaml:"lines_written"`

	// Per-stage variant counts over all written records. A record can be
	// counted by several stages when techniques were composed.
	TraversalVariants int `yaml:"traversal_variants"`
	EncodingVariants  int `yaml:"encoding_variants"`
	NullByteVariants  int `yaml:"null_byte_variants"`
}
