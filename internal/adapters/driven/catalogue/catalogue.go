// Package catalogue loads payslip records from a YAML catalogue, either
// the one bundled with the binary or a file named in the settings.
package catalogue

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.RecordSource = (*Source)(nil)

//go:embed payslips.yaml
var bundled []byte

// idNamespace scopes the name-based ids given to entries without one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/custodia-labs/payslip-cli/catalogue"))

// file is the on-disk catalogue layout.
type file struct {
	Payslips []entry `yaml:"payslips"`
}

type entry struct {
	ID       string `yaml:"id"`
	FromDate string `yaml:"fromDate"`
	ToDate   string `yaml:"toDate"`
	File     string `yaml:"file"`
}

// Source reads payslips from a YAML catalogue.
type Source struct {
	path string
}

// New creates a source for the catalogue at path. An empty path selects
// the bundled catalogue.
func New(path string) *Source {
	return &Source{path: path}
}

// Path returns the catalogue file path, or empty for the bundled one.
func (s *Source) Path() string {
	return s.path
}

// Load reads and validates every record.
func (s *Source) Load(ctx context.Context) ([]domain.Payslip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := bundled
	if s.path != "" {
		var err error
		if data, err = os.ReadFile(s.path); err != nil {
			return nil, fmt.Errorf("read catalogue: %w", err)
		}
	}

	payslips, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalogue: loaded %d payslips from %s", len(payslips), s.describe())
	return payslips, nil
}

func (s *Source) describe() string {
	if s.path == "" {
		return "bundled catalogue"
	}
	return s.path
}

// Parse decodes a catalogue document. Entries without an id get a random
// one; entries with unparseable dates or a period that ends before it
// starts are rejected.
func Parse(data []byte) ([]domain.Payslip, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidInput, "catalogue is not valid YAML", err)
	}

	payslips := make([]domain.Payslip, 0, len(doc.Payslips))
	for i, e := range doc.Payslips {
		p := domain.Payslip{
			ID:       strings.TrimSpace(e.ID),
			FromDate: strings.TrimSpace(e.FromDate),
			ToDate:   strings.TrimSpace(e.ToDate),
			File:     strings.TrimSpace(e.File),
		}
		if p.ID == "" {
			p.ID = derivedID(p)
		}
		if err := validate(p); err != nil {
			return nil, domain.NewAppError(domain.ErrCodeInvalidInput,
				fmt.Sprintf("catalogue entry %d: %v", i+1, err), domain.ErrInvalidInput)
		}
		payslips = append(payslips, p)
	}
	return payslips, nil
}

// derivedID names an entry by its content so the id survives restarts.
func derivedID(p domain.Payslip) string {
	return uuid.NewSHA1(idNamespace, []byte(p.File+"|"+p.FromDate+"|"+p.ToDate)).String()
}

func validate(p domain.Payslip) error {
	from, err := domain.ParseDate(p.FromDate)
	if err != nil {
		return fmt.Errorf("invalid fromDate %q", p.FromDate)
	}
	to, err := domain.ParseDate(p.ToDate)
	if err != nil {
		return fmt.Errorf("invalid toDate %q", p.ToDate)
	}
	if from.After(to) {
		return fmt.Errorf("fromDate %s is after toDate %s", p.FromDate, p.ToDate)
	}
	if p.File == "" {
		return errors.New("missing file name")
	}
	return nil
}
