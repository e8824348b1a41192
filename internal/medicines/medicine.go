// Package medicines resolves free-text queries against read-only medicine
// reference data: a dataset bundled into the binary, with a remotely fetched
// CSV document as fallback.
package medicines

import "strings"

// Medicine is an immutable reference record. Comma-separated list fields
// (brand names, diseases, uses) keep their raw form; splitting is left to
// the presentation layer.
type Medicine struct {
	Name            string `json:"name"`
	GenericName     string `json:"generic_name"`
	BrandNames      string `json:"brand_names"`
	DiseasesTreated string `json:"diseases_treated"`
	PrimaryUses     string `json:"primary_uses"`
	Dosage          string `json:"dosage"`
	SideEffects     string `json:"side_effects"`
	Interactions    string `json:"interactions"`
	Storage         string `json:"storage"`
	Price           string `json:"price"`
	Availability    string `json:"availability"`
}

// Search returns the first record whose name, generic name, brand names, or
// treated diseases contain the query, case-insensitively, in dataset order.
func Search(query string, dataset []Medicine) (Medicine, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Medicine{}, false
	}

	for _, m := range dataset {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.GenericName), q) ||
			strings.Contains(strings.ToLower(m.BrandNames), q) ||
			strings.Contains(strings.ToLower(m.DiseasesTreated), q) {
			return m, true
		}
	}
	return Medicine{}, false
}
