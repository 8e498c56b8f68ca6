// Package file reads and writes professional catalogs stored as TOML.
// A default catalog is embedded in the binary.
package file

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

//go:embed default.toml
var defaultCatalog []byte

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Ensure Writer implements the interface.
var _ driven.CatalogWriter = (*Writer)(nil)

// catalogFile is the on-disk shape of a TOML catalog.
type catalogFile struct {
	Professionals []record `toml:"professionals" validate:"dive"`
}

// record is one [[professionals]] table.
type record struct {
	ID          int     `toml:"id" validate:"gte=0"`
	Name        string  `toml:"name" validate:"required"`
	Category    string  `toml:"category" validate:"required"`
	Subcategory string  `toml:"subcategory"`
	Location    string  `toml:"location" validate:"required"`
	Price       int     `toml:"price" validate:"gte=0"`
	PriceUnit   string  `toml:"price_unit"`
	Rating      float64 `toml:"rating" validate:"gte=0,lte=5"`
	Reviews     int     `toml:"reviews" validate:"gte=0"`
	Image       string  `toml:"image,omitempty"`
}

func (r record) professional() domain.Professional {
	return domain.Professional{
		ID:          r.ID,
		Name:        r.Name,
		Category:    domain.Category(r.Category),
		Subcategory: r.Subcategory,
		Location:    domain.Location(r.Location),
		Price:       r.Price,
		PriceUnit:   r.PriceUnit,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Image:       r.Image,
	}
}

func fromProfessional(p domain.Professional) record {
	return record{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Subcategory: p.Subcategory,
		Location:    string(p.Location),
		Price:       p.Price,
		PriceUnit:   p.PriceUnit,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Image:       p.Image,
	}
}

// Source reads a TOML catalog from a file, or the embedded default.
type Source struct {
	path     string
	validate *validator.Validate
}

// NewSource creates a source for the TOML file at path.
func NewSource(path string) *Source {
	return &Source{
		path:     path,
		validate: validator.New(),
	}
}

// NewEmbeddedSource creates a source for the catalog compiled into the binary.
func NewEmbeddedSource() *Source {
	return NewSource("")
}

// Name returns the file path, or "embedded".
func (s *Source) Name() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}

// Load parses and validates the catalog.
func (s *Source) Load(ctx context.Context) ([]domain.Professional, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultCatalog
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, err
		}
	}

	return s.decode(data)
}

func (s *Source) decode(data []byte) ([]domain.Professional, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	if err := s.validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, describe(err))
	}

	out := make([]domain.Professional, 0, len(f.Professionals))
	for _, r := range f.Professionals {
		out = append(out, r.professional())
	}
	return out, nil
}

// describe turns validator errors into "field rule" pairs.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Writer writes catalogs as TOML files.
type Writer struct {
	path string
}

// NewWriter creates a writer for the TOML file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write replaces the file with entries.
func (w *Writer) Write(ctx context.Context, entries []domain.Professional) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := catalogFile{Professionals: make([]record, 0, len(entries))}
	for _, p := range entries {
		f.Professionals = append(f.Professionals, fromProfessional(p))
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(w.path, data, 0644)
}
