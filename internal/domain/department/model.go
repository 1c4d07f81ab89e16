package department

import (
	"github.com/clinica/clinica/internal/validate"
)

// Department is the API record for GET /departamentos. Jefe is a loose person
// id: the backend does not check it against existing doctors, and neither do we.
type Department struct {
	ID          int    `json:"id_departamento"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Jefe        int    `json:"jefe"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (d Department) RecordID() int { return d.ID }

// Write is the payload accepted by POST and PUT /departamentos.
type Write struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Jefe        int    `json:"jefe"`
}

// Form is the in-memory editing shape.
type Form struct {
	Nombre      string
	Descripcion string
	Jefe        int
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(d *Department) Form {
	return Form{Nombre: d.Nombre, Descripcion: d.Descripcion, Jefe: d.Jefe}
}

// Validate checks the form.
func (f Form) Validate() error {
	var es validate.Errors
	es.Length("nombre", f.Nombre, 3, 100)
	es.Length("descripcion", f.Descripcion, 5, 500)
	es.PositiveID("jefe", f.Jefe)
	return es.ErrOrNil()
}

// Write maps the form into the wire payload.
func (f Form) Write() Write {
	return Write{Nombre: f.Nombre, Descripcion: f.Descripcion, Jefe: f.Jefe}
}
