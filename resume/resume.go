// Package resume defines the conventional data shape for resume and
// cover-letter documents: personal info plus experience, education, skills
// and certifications lists. The template evaluator treats all data as
// opaque mappings and sequences; this package is the producer-side
// convention, with loaders, a JSON Schema export for form validation, and
// conversion into the evaluator's context form.
package resume

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when resume data fails basic validation.
var ErrInvalid = errors.New("invalid resume data")

// Resume is a full resume document.
//
// Dates are strings by convention, "2006-01" or "2006-01-02"; the
// formatDate template helper accepts both. An empty End marks a current
// position.
type Resume struct {
	Personal       PersonalInfo    `json:"personal" yaml:"personal"`
	Summary        string          `json:"summary,omitempty" yaml:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty" yaml:"education,omitempty"`
	Skills         []string        `json:"skills,omitempty" yaml:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty" yaml:"certifications,omitempty"`
}

// PersonalInfo is the contact header of a document.
type PersonalInfo struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Experience is one position in the work history.
type Experience struct {
	Company    string   `json:"company" yaml:"company"`
	Role       string   `json:"role" yaml:"role"`
	Location   string   `json:"location,omitempty" yaml:"location,omitempty"`
	Start      string   `json:"start,omitempty" yaml:"start,omitempty"`
	End        string   `json:"end,omitempty" yaml:"end,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Education is one degree or program.
type Education struct {
	School string `json:"school" yaml:"school"`
	Degree string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Field  string `json:"field,omitempty" yaml:"field,omitempty"`
	Start  string `json:"start,omitempty" yaml:"start,omitempty"`
	End    string `json:"end,omitempty" yaml:"end,omitempty"`
}

// Certification is one professional certification.
type Certification struct {
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
}

// CoverLetter is a cover-letter document sharing the resume's personal
// header.
type CoverLetter struct {
	Personal  PersonalInfo `json:"personal" yaml:"personal"`
	Recipient string       `json:"recipient,omitempty" yaml:"recipient,omitempty"`
	Company   string       `json:"company,omitempty" yaml:"company,omitempty"`
	Role      string       `json:"role,omitempty" yaml:"role,omitempty"`
	Date      string       `json:"date,omitempty" yaml:"date,omitempty"`
	Body      string       `json:"body" yaml:"body"`
}

// Validate checks the fields templates cannot render without.
func (r *Resume) Validate() error {
	if r.Personal.Name == "" {
		return fmt.Errorf("%w: personal.name is required", ErrInvalid)
	}
	return nil
}
