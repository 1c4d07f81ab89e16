package doctor

import (
	"github.com/clinica/clinica/internal/domain/shape"
	"github.com/clinica/clinica/internal/validate"
)

// Doctor is the API record for GET /doctores.
type Doctor struct {
	ID                int     `json:"id_doctor"`
	Nombre            string  `json:"nombre"`
	Apellido          string  `json:"apellido"`
	Especialidad      string  `json:"especialidad"`
	HorarioAtencion   string  `json:"horario_atencion"`
	Telefono          *string `json:"telefono"`
	CorreoElectronico *string `json:"correo_electronico"`
	Direccion         *string `json:"direccion"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (d Doctor) RecordID() int { return d.ID }

// FullName renders "Nombre Apellido" for list rows and selects.
func (d Doctor) FullName() string { return d.Nombre + " " + d.Apellido }

// Write is the payload accepted by POST and PUT /doctores.
type Write struct {
	Nombre            string  `json:"nombre"`
	Apellido          string  `json:"apellido"`
	Especialidad      string  `json:"especialidad"`
	HorarioAtencion   string  `json:"horario_atencion"`
	Telefono          *string `json:"telefono"`
	CorreoElectronico *string `json:"correo_electronico"`
	Direccion         *string `json:"direccion"`
}

// Form is the in-memory editing shape.
type Form struct {
	Nombre            string
	Apellido          string
	Especialidad      string
	HorarioAtencion   string
	Telefono          string
	CorreoElectronico string
	Direccion         string
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(d *Doctor) Form {
	return Form{
		Nombre:            d.Nombre,
		Apellido:          d.Apellido,
		Especialidad:      d.Especialidad,
		HorarioAtencion:   d.HorarioAtencion,
		Telefono:          shape.Deref(d.Telefono),
		CorreoElectronico: shape.Deref(d.CorreoElectronico),
		Direccion:         shape.Deref(d.Direccion),
	}
}

// Validate checks the form; contact fields are optional for doctors.
func (f Form) Validate() error {
	var es validate.Errors
	es.PersonName("nombre", f.Nombre)
	es.PersonName("apellido", f.Apellido)
	es.Length("especialidad", f.Especialidad, 3, 100)
	es.Length("horario_atencion", f.HorarioAtencion, 3, 100)
	if f.Telefono != "" {
		es.Phone("telefono", f.Telefono)
	}
	if f.CorreoElectronico != "" {
		es.Email("correo_electronico", f.CorreoElectronico)
	}
	if f.Direccion != "" {
		es.Length("direccion", f.Direccion, 5, 100)
	}
	return es.ErrOrNil()
}

// Write maps the form back into the wire payload.
func (f Form) Write() Write {
	return Write{
		Nombre:            f.Nombre,
		Apellido:          f.Apellido,
		Especialidad:      f.Especialidad,
		HorarioAtencion:   f.HorarioAtencion,
		Telefono:          shape.NullIfEmpty(f.Telefono),
		CorreoElectronico: shape.NullIfEmpty(f.CorreoElectronico),
		Direccion:         shape.NullIfEmpty(f.Direccion),
	}
}
