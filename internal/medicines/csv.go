package medicines

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a medicine dataset: first row is headers, each following
// row maps values positionally to them. Quoted fields containing commas are
// handled properly. Rows shorter than the header leave the remaining fields
// empty; unknown headers are ignored.
func ParseCSV(r io.Reader) ([]Medicine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var dataset []Medicine
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		var m Medicine
		for i, name := range header {
			var value string
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			setField(&m, name, value)
		}
		dataset = append(dataset, m)
	}
	return dataset, nil
}

func setField(m *Medicine, header, value string) {
	switch header {
	case "name":
		m.Name = value
	case "generic_name":
		m.GenericName = value
	case "brand_names":
		m.BrandNames = value
	case "diseases_treated":
		m.DiseasesTreated = value
	case "primary_uses":
		m.PrimaryUses = value
	case "dosage":
		m.Dosage = value
	case "side_effects":
		m.SideEffects = value
	case "interactions":
		m.Interactions = value
	case "storage":
		m.Storage = value
	case "price":
		m.Price = value
	case "availability":
		m.Availability = value
	}
}
