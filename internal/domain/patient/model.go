package patient

import (
	"time"

	"github.com/clinica/clinica/internal/domain/shape"
	"github.com/clinica/clinica/internal/validate"
)

// Patient is the API record for GET /pacientes. Contact fields and the
// medical history are nullable on the wire.
type Patient struct {
	ID                int     `json:"id_paciente"`
	Nombre            string  `json:"nombre"`
	Apellido          string  `json:"apellido"`
	FechaNacimiento   string  `json:"fecha_nacimiento"`
	Direccion         *string `json:"direccion"`
	Telefono          *string `json:"telefono"`
	CorreoElectronico *string `json:"correo_electronico"`
	HistoriaMedica    *string `json:"historia_medica,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (p Patient) RecordID() int { return p.ID }

// FullName renders "Nombre Apellido" for list rows and selects.
func (p Patient) FullName() string { return p.Nombre + " " + p.Apellido }

// Write is the payload accepted by POST and PUT /pacientes. Empty optional
// fields are null, never "".
type Write struct {
	Nombre            string  `json:"nombre"`
	Apellido          string  `json:"apellido"`
	FechaNacimiento   string  `json:"fecha_nacimiento"`
	Direccion         *string `json:"direccion"`
	Telefono          *string `json:"telefono"`
	CorreoElectronico *string `json:"correo_electronico"`
	HistoriaMedica    *string `json:"historia_medica"`
}

// Form is the in-memory editing shape: the birth date is a time.Time and
// nullable wire fields are plain strings.
type Form struct {
	Nombre            string
	Apellido          string
	FechaNacimiento   time.Time
	Direccion         string
	Telefono          string
	CorreoElectronico string
	HistoriaMedica    string
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(p *Patient) (Form, error) {
	born, err := shape.ParseDate(p.FechaNacimiento)
	if err != nil {
		return Form{}, err
	}
	return Form{
		Nombre:            p.Nombre,
		Apellido:          p.Apellido,
		FechaNacimiento:   born,
		Direccion:         shape.Deref(p.Direccion),
		Telefono:          shape.Deref(p.Telefono),
		CorreoElectronico: shape.Deref(p.CorreoElectronico),
		HistoriaMedica:    shape.Deref(p.HistoriaMedica),
	}, nil
}

// Validate checks the form. Contact fields are optional; when present they
// must be well formed.
func (f Form) Validate() error {
	var es validate.Errors
	es.PersonName("nombre", f.Nombre)
	es.PersonName("apellido", f.Apellido)

	if f.FechaNacimiento.IsZero() {
		es.Add("fecha_nacimiento", "the birth date is required")
	} else {
		now := time.Now()
		if f.FechaNacimiento.After(now) {
			es.Add("fecha_nacimiento", "the birth date cannot be in the future")
		}
		if f.FechaNacimiento.Before(now.AddDate(-120, 0, 0)) {
			es.Add("fecha_nacimiento", "the birth date cannot be more than 120 years ago")
		}
	}

	if f.Direccion != "" {
		es.Length("direccion", f.Direccion, 5, 100)
	}
	if f.Telefono != "" {
		es.Phone("telefono", f.Telefono)
	}
	if f.CorreoElectronico != "" {
		es.Email("correo_electronico", f.CorreoElectronico)
	}
	if f.HistoriaMedica != "" {
		es.Length("historia_medica", f.HistoriaMedica, 5, 2000)
	}
	return es.ErrOrNil()
}

// Write maps the form back into the wire payload.
func (f Form) Write() Write {
	return Write{
		Nombre:            f.Nombre,
		Apellido:          f.Apellido,
		FechaNacimiento:   shape.FormatDate(f.FechaNacimiento),
		Direccion:         shape.NullIfEmpty(f.Direccion),
		Telefono:          shape.NullIfEmpty(f.Telefono),
		CorreoElectronico: shape.NullIfEmpty(f.CorreoElectronico),
		HistoriaMedica:    shape.NullIfEmpty(f.HistoriaMedica),
	}
}
