package appointment

import (
	"time"

	"github.com/clinica/clinica/internal/domain/shape"
	"github.com/clinica/clinica/internal/validate"
)

// PatientSummary is the denormalized patient snapshot embedded in appointment
// and treatment reads. It is a copy taken at write time; the backend never
// refreshes it when the patient record changes, and neither do we.
type PatientSummary struct {
	ID       int    `json:"id_paciente"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// DoctorSummary is the denormalized doctor snapshot embedded in appointment
// and treatment reads.
type DoctorSummary struct {
	ID           int    `json:"id_doctor"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Especialidad string `json:"especialidad"`
}

// Appointment is the API record for GET /citas. The backend emits the embedded
// summaries under capitalized keys here (and lowercase ones on treatments).
type Appointment struct {
	ID           int            `json:"id_cita"`
	IDPaciente   int            `json:"id_paciente"`
	IDDoctor     int            `json:"id_doctor"`
	FechaHora    string         `json:"fecha_hora"`
	MotivoCita   string         `json:"motivo_cita"`
	NotasMedicas *string        `json:"notas_medicas"`
	Paciente     PatientSummary `json:"Paciente"`
	Doctor       DoctorSummary  `json:"Doctor"`
	CreatedAt    string         `json:"createdAt,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (a Appointment) RecordID() int { return a.ID }

// Write is the payload accepted by POST and PUT /citas.
type Write struct {
	IDPaciente   int     `json:"id_paciente"`
	IDDoctor     int     `json:"id_doctor"`
	FechaHora    string  `json:"fecha_hora"`
	MotivoCita   string  `json:"motivo_cita"`
	NotasMedicas *string `json:"notas_medicas"`
}

// Form is the in-memory editing shape: the timestamp is a time.Time.
type Form struct {
	IDPaciente   int
	IDDoctor     int
	FechaHora    time.Time
	MotivoCita   string
	NotasMedicas string
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(a *Appointment) (Form, error) {
	when, err := shape.ParseDateTime(a.FechaHora)
	if err != nil {
		return Form{}, err
	}
	return Form{
		IDPaciente:   a.IDPaciente,
		IDDoctor:     a.IDDoctor,
		FechaHora:    when,
		MotivoCita:   a.MotivoCita,
		NotasMedicas: shape.Deref(a.NotasMedicas),
	}, nil
}

// Validate checks the form. The appointment date may be today but never a day
// in the past.
func (f Form) Validate() error {
	var es validate.Errors
	es.PositiveID("id_paciente", f.IDPaciente)
	es.PositiveID("id_doctor", f.IDDoctor)

	if f.FechaHora.IsZero() {
		es.Add("fecha_hora", "the appointment date and time are required")
	} else if f.FechaHora.Before(shape.StartOfDay(time.Now())) {
		es.Add("fecha_hora", "the appointment cannot be in the past")
	}

	es.Length("motivo_cita", f.MotivoCita, 3, 255)
	if f.NotasMedicas != "" {
		es.Length("notas_medicas", f.NotasMedicas, 1, 1000)
	}
	return es.ErrOrNil()
}

// Write maps the form back into the wire payload.
func (f Form) Write() Write {
	return Write{
		IDPaciente:   f.IDPaciente,
		IDDoctor:     f.IDDoctor,
		FechaHora:    shape.FormatDateTime(f.FechaHora),
		MotivoCita:   f.MotivoCita,
		NotasMedicas: shape.NullIfEmpty(f.NotasMedicas),
	}
}
