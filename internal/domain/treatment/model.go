package treatment

import (
	"time"

	"github.com/clinica/clinica/internal/domain/appointment"
	"github.com/clinica/clinica/internal/domain/shape"
	"github.com/clinica/clinica/internal/validate"
)

// Treatment is the API record for GET /tratamientos. The embedded summaries
// arrive under lowercase keys here, unlike on appointments.
type Treatment struct {
	ID          int                        `json:"id_tratamiento"`
	IDPaciente  int                        `json:"id_paciente"`
	IDDoctor    int                        `json:"id_doctor"`
	Descripcion string                     `json:"descripcion"`
	FechaInicio string                     `json:"fecha_inicio"`
	FechaFin    string                     `json:"fecha_fin"`
	Paciente    appointment.PatientSummary `json:"paciente"`
	Doctor      appointment.DoctorSummary  `json:"doctor"`
	CreatedAt   string                     `json:"createdAt,omitempty"`
	UpdatedAt   string                     `json:"updatedAt,omitempty"`
}

// RecordID returns the server-assigned id.
func (t Treatment) RecordID() int { return t.ID }

// Write is the payload accepted by POST and PUT /tratamientos.
type Write struct {
	IDPaciente  int    `json:"id_paciente"`
	IDDoctor    int    `json:"id_doctor"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// Form is the in-memory editing shape: both dates are time.Time.
type Form struct {
	IDPaciente  int
	IDDoctor    int
	Descripcion string
	FechaInicio time.Time
	FechaFin    time.Time
}

// FormFrom maps a fetched record into the editing shape.
func FormFrom(t *Treatment) (Form, error) {
	start, err := shape.ParseDate(t.FechaInicio)
	if err != nil {
		return Form{}, err
	}
	end, err := shape.ParseDate(t.FechaFin)
	if err != nil {
		return Form{}, err
	}
	return Form{
		IDPaciente:  t.IDPaciente,
		IDDoctor:    t.IDDoctor,
		Descripcion: t.Descripcion,
		FechaInicio: start,
		FechaFin:    end,
	}, nil
}

// Validate checks the form. The end date may equal the start date but never
// precede it; that failure is attached to fecha_fin.
func (f Form) Validate() error {
	var es validate.Errors
	es.PositiveID("id_paciente", f.IDPaciente)
	es.PositiveID("id_doctor", f.IDDoctor)
	es.Length("descripcion", f.Descripcion, 5, 500)

	if f.FechaInicio.IsZero() {
		es.Add("fecha_inicio", "the start date is required")
	}
	if f.FechaFin.IsZero() {
		es.Add("fecha_fin", "the end date is required")
	}
	if !f.FechaInicio.IsZero() && !f.FechaFin.IsZero() && f.FechaFin.Before(f.FechaInicio) {
		es.Add("fecha_fin", "the end date cannot precede the start date")
	}
	return es.ErrOrNil()
}

// Write maps the form back into the wire payload.
func (f Form) Write() Write {
	return Write{
		IDPaciente:  f.IDPaciente,
		IDDoctor:    f.IDDoctor,
		Descripcion: f.Descripcion,
		FechaInicio: shape.FormatDate(f.FechaInicio),
		FechaFin:    shape.FormatDate(f.FechaFin),
	}
}
