package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"machinereport/sysinfo"
)

// WriteYAML encodes r as a YAML document.
func WriteYAML(w io.Writer, r sysinfo.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}
