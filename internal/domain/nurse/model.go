package nurse

import (
	"github.com/clinica/clinica/internal/validate"
)

// Nurse is the API record for GET /enfermeras. Unlike doctors, contact fields
// are required, and each nurse is tied to an owning account.
type Nurse struct {
	ID                int    `json:"id_enfermera"`
	Nombre            string `json:"nombre"`
	Apellido          string `json:"apellido"`
	Telefono          string `json:"telefono"`
	CorreoElectronico string `json:"correo_electronico"`
	UsuarioID         int    `json:"usuario_id"`
	CreatedAt         string `json:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (n Nurse) RecordID() int { return n.ID }

// FullName renders "Nombre Apellido" for list rows.
func (n Nurse) FullName() string { return n.Nombre + " " + n.Apellido }

// Write is the payload accepted by POST and PUT /enfermeras.
type Write struct {
	Nombre            string `json:"nombre"`
	Apellido          string `json:"apellido"`
	Telefono          string `json:"telefono"`
	CorreoElectronico string `json:"correo_electronico"`
	UsuarioID         int    `json:"usuario_id"`
}

// Form is the in-memory editing shape. It matches Write field for field; the
// nurse record has no nullable or date fields to convert.
type Form struct {
	Nombre            string
	Apellido          string
	Telefono          string
	CorreoElectronico string
	UsuarioID         int
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(n *Nurse) Form {
	return Form{
		Nombre:            n.Nombre,
		Apellido:          n.Apellido,
		Telefono:          n.Telefono,
		CorreoElectronico: n.CorreoElectronico,
		UsuarioID:         n.UsuarioID,
	}
}

// Validate checks the form; phone and email are required here.
func (f Form) Validate() error {
	var es validate.Errors
	es.PersonName("nombre", f.Nombre)
	es.PersonName("apellido", f.Apellido)
	es.Phone("telefono", f.Telefono)
	es.Email("correo_electronico", f.CorreoElectronico)
	es.PositiveID("usuario_id", f.UsuarioID)
	return es.ErrOrNil()
}

// Write maps the form into the wire payload.
func (f Form) Write() Write {
	return Write{
		Nombre:            f.Nombre,
		Apellido:          f.Apellido,
		Telefono:          f.Telefono,
		CorreoElectronico: f.CorreoElectronico,
		UsuarioID:         f.UsuarioID,
	}
}
