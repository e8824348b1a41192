package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Aneeb1231/rxease/internal/medicines"
)

// SearchMedicine looks up a medicine by name, generic name, brand or treated
// disease and prints the first match. Works without login.
func (a *App) SearchMedicine(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Enter medicine or disease name", os.Stdout)
	if err != nil {
		return err
	}

	m, err := a.catalog.Lookup(ctx, query)
	if err != nil {
		if errors.Is(err, medicines.ErrNotFound) {
			fmt.Printf("No medicine found for %q.\n", query)
			return nil
		}
		fmt.Println("Medicine lookup failed.")
		return err
	}

	for _, f := range []struct{ label, value string }{
		{"Name", m.Name},
		{"Generic name", m.GenericName},
		{"Brand names", m.BrandNames},
		{"Treats", m.DiseasesTreated},
		{"Primary uses", m.PrimaryUses},
		{"Dosage", m.Dosage},
		{"Side effects", m.SideEffects},
		{"Interactions", m.Interactions},
		{"Storage", m.Storage},
		{"Price", m.Price},
		{"Availability", m.Availability},
	} {
		if f.value != "" {
			fmt.Printf("%s: %s\n", f.label, f.value)
		}
	}
	return nil
}
