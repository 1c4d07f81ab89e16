package medication

import (
	"github.com/clinica/clinica/internal/validate"
)

// TreatmentSummary is the denormalized treatment snapshot embedded in
// medication reads.
type TreatmentSummary struct {
	ID          int    `json:"id_tratamiento"`
	IDPaciente  int    `json:"id_paciente"`
	IDDoctor    int    `json:"id_doctor"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// Medication is the API record for GET /medicamentos.
type Medication struct {
	ID            int              `json:"id_medicamento"`
	Nombre        string           `json:"nombre"`
	Descripcion   string           `json:"descripcion"`
	Dosis         string           `json:"dosis"`
	Frecuencia    string           `json:"frecuencia"`
	IDTratamiento int              `json:"id_tratamiento"`
	Tratamiento   TreatmentSummary `json:"tratamiento"`
	CreatedAt     string           `json:"createdAt,omitempty"`
	UpdatedAt     string           `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (m Medication) RecordID() int { return m.ID }

// Write is the payload accepted by POST and PUT /medicamentos.
type Write struct {
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	Dosis         string `json:"dosis"`
	Frecuencia    string `json:"frecuencia"`
	IDTratamiento int    `json:"id_tratamiento"`
}

// Form is the in-memory editing shape.
type Form struct {
	Nombre        string
	Descripcion   string
	Dosis         string
	Frecuencia    string
	IDTratamiento int
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(m *Medication) Form {
	return Form{
		Nombre:        m.Nombre,
		Descripcion:   m.Descripcion,
		Dosis:         m.Dosis,
		Frecuencia:    m.Frecuencia,
		IDTratamiento: m.IDTratamiento,
	}
}

// Validate checks the form.
func (f Form) Validate() error {
	var es validate.Errors
	es.Length("nombre", f.Nombre, 3, 100)
	es.Length("descripcion", f.Descripcion, 5, 500)
	es.Length("dosis", f.Dosis, 1, 50)
	es.Length("frecuencia", f.Frecuencia, 3, 100)
	es.PositiveID("id_tratamiento", f.IDTratamiento)
	return es.ErrOrNil()
}

// Write maps the form into the wire payload.
func (f Form) Write() Write {
	return Write{
		Nombre:        f.Nombre,
		Descripcion:   f.Descripcion,
		Dosis:         f.Dosis,
		Frecuencia:    f.Frecuencia,
		IDTratamiento: f.IDTratamiento,
	}
}
