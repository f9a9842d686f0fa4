package schemes

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Type tells whether a scheme is processed in-app or on an external portal
type Type string

const (
	TypeInternal   Type = "internal"
	TypeGovernment Type = "government"
)

// ErrInvalidCatalog wraps every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid scheme catalog")

// Scheme is a named loan product
type Scheme struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Description   string  `json:"description" yaml:"description"`
	Link          string  `json:"link" yaml:"link"`
	InterestRate  float64 `json:"interest_rate" yaml:"interest_rate"`
	MaxLoanAmount float64 `json:"max_loan_amount" yaml:"max_loan_amount"`
	Type          Type    `json:"type" yaml:"type"`
}

// IsGovernment reports whether applications for s are filed on an external portal
func (s *Scheme) IsGovernment() bool {
	return s != nil && s.Type == TypeGovernment
}

// Catalog is an ordered, read-only list of schemes
type Catalog struct {
	schemes []Scheme
}

// NewCatalog validates the list and builds a catalog from it
func NewCatalog(list []Scheme) (*Catalog, error) {
	seen := make(map[string]struct{}, len(list))
	for i, s := range list {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: scheme #%d has no id", ErrInvalidCatalog, i+1)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scheme %q has no name", ErrInvalidCatalog, s.ID)
		}
		if s.Type != TypeInternal && s.Type != TypeGovernment {
			return nil, fmt.Errorf("%w: scheme %q has unknown type %q", ErrInvalidCatalog, s.ID, s.Type)
		}
		if s.InterestRate < 0 || s.MaxLoanAmount < 0 {
			return nil, fmt.Errorf("%w: scheme %q has negative rate or maximum", ErrInvalidCatalog, s.ID)
		}
	}

	out := make([]Scheme, len(list))
	copy(out, list)
	return &Catalog{schemes: out}, nil
}

// Get looks a scheme up by id
func (c *Catalog) Get(id string) (*Scheme, bool) {
	for i := range c.schemes {
		if c.schemes[i].ID == id {
			s := c.schemes[i]
			return &s, true
		}
	}
	return nil, false
}

// All returns a copy of every scheme in catalog order
func (c *Catalog) All() []Scheme {
	out := make([]Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Internal returns the schemes processed in-app
func (c *Catalog) Internal() []Scheme {
	return c.filter(TypeInternal)
}

// Government returns the schemes handled on an external portal
func (c *Catalog) Government() []Scheme {
	return c.filter(TypeGovernment)
}

func (c *Catalog) filter(t Type) []Scheme {
	var out []Scheme
	for _, s := range c.schemes {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{schemes: []Scheme{
		{
			ID:            "s1",
			Name:          "UDHAAR SETU QuickLoan",
			Description:   "A quick and easy loan for your immediate business needs, with flexible repayment options.",
			InterestRate:  7,
			MaxLoanAmount: 50000,
			Type:          TypeInternal,
			Link:          "#",
		},
		{
			ID:            "s2",
			Name:          "Pradhan Mantri MUDRA Yojana (PMMY)",
			Description:   "A flagship scheme to provide loans up to ₹10 lakh to non-corporate, non-farm small/micro enterprises.",
			InterestRate:  9.75,
			MaxLoanAmount: 1000000,
			Type:          TypeGovernment,
			Link:          "https://www.mudra.org.in/",
		},
		{
			ID:            "s3",
			Name:          "Stand-Up India Scheme",
			Description:   "Facilitates bank loans between ₹10 lakh and ₹1 Crore to at least one Scheduled Caste (SC) or Scheduled Tribe (ST) borrower and at least one woman borrower per bank branch for setting up a greenfield enterprise.",
			InterestRate:  8.5,
			MaxLoanAmount: 10000000,
			Type:          TypeGovernment,
			Link:          "https://www.standupmitra.in/",
		},
	}}
}

type catalogFile struct {
	Schemes []Scheme `yaml:"schemes"`
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode schemes: %w", err)
	}
	return NewCatalog(file.Schemes)
}

// Load reads a catalog from path. An empty path yields Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schemes file: %w", err)
	}
	return Parse(data)
}
