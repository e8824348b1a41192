package models

// Profile is the user's extended identity. Every field is optional; updates
// are merged field by field so a partial edit never blanks unrelated data.
type Profile struct {
	Name             string `json:"name,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	BloodGroup       string `json:"bloodGroup,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	ProfileImage     string `json:"profileImage,omitempty"`
}

// Merge returns a copy of p with every non-blank field of update applied.
func (p Profile) Merge(update Profile) Profile {
	apply := func(dst *string, src string) {
		if !isBlank(src) {
			*dst = src
		}
	}
	apply(&p.Name, update.Name)
	apply(&p.Email, update.Email)
	apply(&p.Phone, update.Phone)
	apply(&p.Address, update.Address)
	apply(&p.DateOfBirth, update.DateOfBirth)
	apply(&p.BloodGroup, update.BloodGroup)
	apply(&p.Allergies, update.Allergies)
	apply(&p.MedicalHistory, update.MedicalHistory)
	apply(&p.EmergencyContact, update.EmergencyContact)
	apply(&p.ProfileImage, update.ProfileImage)
	return p
}
