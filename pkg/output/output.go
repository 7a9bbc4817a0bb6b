package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format formato de salida de la CLI.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat interpreta el flag --output.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("formato de salida no soportado: %q (json|yaml)", s)
	}
}

// Printer escribe datos en el formato configurado.
type Printer struct {
	format Format
	writer io.Writer
}

// NewPrinter crea un printer sobre stdout.
func NewPrinter(format Format) *Printer {
	return &Printer{format: format, writer: os.Stdout}
}

// SetWriter cambia el destino (tests, archivos).
func (p *Printer) SetWriter(w io.Writer) {
	p.writer = w
}

// Print serializa data.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatYAML:
		enc := yaml.NewEncoder(p.writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(p.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
}
