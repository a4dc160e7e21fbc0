package register

import (
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const maxNameLength = 255

// CreateRegisterInput is the raw create-register payload. IsActive defaults to true.
type CreateRegisterInput struct {
	Name        string `schema:"name"`
	Description string `schema:"description"`
	IsActive    string `schema:"is_active"`
}

// Validate checks all fields, collects all errors and returns the register to store.
func (i CreateRegisterInput) Validate() (domain.Register, error) {
	var errs domain.FieldErrors

	reg := domain.Register{
		Name:        errs.Text("name", i.Name, true, maxNameLength),
		Description: errs.Text("description", i.Description, false, 0),
		IsActive:    true,
	}
	if active := errs.TriState("is_active", i.IsActive); active != nil {
		reg.IsActive = *active
	}

	if err := errs.Err(); err != nil {
		return domain.Register{}, err
	}
	return reg, nil
}

// SearchInput holds the optional search filters.
type SearchInput struct {
	Query      string `schema:"query"`
	BundleType string `schema:"bundle_type"`
	Completed  string `schema:"completed"`
}

// Validate parses the filters. Blank values impose no constraint.
func (i SearchInput) Validate() (domain.RegisterSearchFilter, error) {
	var errs domain.FieldErrors

	f := domain.RegisterSearchFilter{
		BundleType: errs.Bundle("bundle_type", i.BundleType, false),
		Completed:  errs.TriState("completed", i.Completed),
		Limit:      domain.MaxListResults,
	}
	if q := errs.Text("query", i.Query, false, maxNameLength); q != "" {
		f.Query = &q
	}

	if err := errs.Err(); err != nil {
		return domain.RegisterSearchFilter{}, err
	}
	return f, nil
}
