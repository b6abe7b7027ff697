package domain

// SalonService is an entry of the salon's service catalog.
// The catalog backs the chat flow prompts; the booking record itself keeps
// the service as free text.
type SalonService struct {
	ID              string
	Name            string
	DurationMinutes int
}

// SalonServices is the fixed catalog of services offered by the salon
var SalonServices = []SalonService{
	{ID: "manicura", Name: "Manicura", DurationMinutes: 45},
	{ID: "pedicura", Name: "Pedicura", DurationMinutes: 60},
	{ID: "esmaltado-semipermanente", Name: "Esmaltado Semipermanente", DurationMinutes: 45},
	{ID: "sistema-soft-gel", Name: "Sistema Soft Gel", DurationMinutes: 90},
	{ID: "nivelacion", Name: "Nivelación", DurationMinutes: 60},
	{ID: "retoques", Name: "Retoques", DurationMinutes: 30},
	{ID: "retiro-material", Name: "Retiro de Material", DurationMinutes: 30},
}

// ServiceNames returns the catalog names in presentation order
func ServiceNames() []string {
	names := make([]string, len(SalonServices))
	for i, s := range SalonServices {
		names[i] = s.Name
	}
	return names
}
