package models

// SideEffectsNone is stored when the user leaves the side-effects field blank.
const SideEffectsNone = "None reported"

// Prescription is a doctor-issued prescription record owned by the
// authenticated user.
type Prescription struct {
	ID             string `json:"_id,omitempty"`
	PatientName    string `json:"patientName"`
	DoctorName     string `json:"doctorName"`
	Date           string `json:"date"` // calendar date, YYYY-MM-DD
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage"`
	Instructions   string `json:"instructions"`
	SideEffects    string `json:"sideEffects,omitempty"`
}

func (p Prescription) EntityID() string { return p.ID }

// MissingFields reports which required fields are blank.
func (p Prescription) MissingFields() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"patientName", p.PatientName},
		{"doctorName", p.DoctorName},
		{"date", p.Date},
		{"medicationName", p.MedicationName},
		{"dosage", p.Dosage},
		{"instructions", p.Instructions},
	} {
		if isBlank(f.value) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Normalized returns a copy with the side-effects sentinel applied.
func (p Prescription) Normalized() Prescription {
	if isBlank(p.SideEffects) {
		p.SideEffects = SideEffectsNone
	}
	return p
}
