package pricing

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML catalog and validates it. Links left empty in the
// document inherit the built-in defaults, so a deployment only overrides
// what actually differs.
func Load(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	defaults := DefaultCatalog().Links
	if catalog.Links.MonthlyPaymentLink == "" {
		catalog.Links.MonthlyPaymentLink = defaults.MonthlyPaymentLink
	}
	if catalog.Links.YearlyPaymentLink == "" {
		catalog.Links.YearlyPaymentLink = defaults.YearlyPaymentLink
	}
	if catalog.Links.CustomerPortal == "" {
		catalog.Links.CustomerPortal = defaults.CustomerPortal
	}
	if catalog.Links.GithubReleases == "" {
		catalog.Links.GithubReleases = defaults.GithubReleases
	}
	if catalog.Links.SalesEmail == "" {
		catalog.Links.SalesEmail = defaults.SalesEmail
	}
	if catalog.Links.SupportEmail == "" {
		catalog.Links.SupportEmail = defaults.SupportEmail
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadFile loads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	defer f.Close()
	return Load(f)
}
