package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

// ReportStore persists run reports.
type ReportStore interface {
	Save(path m.Path, report m.RunReport) error
	Load(path m.Path) (m.RunReport, error)
}

type yamlReportStore struct{}

// NewReportStore creates a YAML-backed report store.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

// Save marshals the report and writes it to path.
func (s *yamlReportStore) Save(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write run report: %w", err)
	}

	return nil
}

// Load reads and unmarshals the report at path.
func (s *yamlReportStore) Load(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read run report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("unmarshal run report: %w", err)
	}

	return report, nil
}
