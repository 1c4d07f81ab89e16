package treatment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/clinica/clinica/internal/validate"
)

func TestDateRoundTrip(t *testing.T) {
	rec := &Treatment{
		ID:          1,
		IDPaciente:  3,
		IDDoctor:    2,
		Descripcion: "Fisioterapia lumbar",
		FechaInicio: "2024-08-15",
		FechaFin:    "2024-09-15",
	}

	form, err := FormFrom(rec)
	if err != nil {
		t.Fatalf("FormFrom: %v", err)
	}
	w := form.Write()
	if w.FechaInicio != "2024-08-15" || w.FechaFin != "2024-09-15" {
		t.Errorf("date round trip changed values: %q / %q", w.FechaInicio, w.FechaFin)
	}
}

func TestEmbeddedSummariesDecode(t *testing.T) {
	// Lowercase embedded keys on treatments, unlike appointments.
	data := []byte(`{
		"id_tratamiento": 4,
		"id_paciente": 3,
		"id_doctor": 2,
		"descripcion": "Fisioterapia",
		"fecha_inicio": "2024-08-15",
		"fecha_fin": "2024-09-15",
		"paciente": {"id_paciente": 3, "nombre": "Ana", "apellido": "Ruiz"},
		"doctor": {"id_doctor": 2, "nombre": "Luis", "apellido": "García", "especialidad": "Cardiología"}
	}`)

	var tr Treatment
	if err := json.Unmarshal(data, &tr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tr.Paciente.Nombre != "Ana" || tr.Doctor.Especialidad != "Cardiología" {
		t.Errorf("unexpected summaries: %+v / %+v", tr.Paciente, tr.Doctor)
	}
}

func TestValidateEndBeforeStart(t *testing.T) {
	f := Form{
		IDPaciente:  3,
		IDDoctor:    2,
		Descripcion: "Fisioterapia lumbar",
		FechaInicio: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	err := f.Validate()
	es, ok := err.(validate.Errors)
	if !ok {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	fe := es.Field("fecha_fin")
	if fe == nil {
		t.Fatalf("expected failure attached to fecha_fin, got %v", es)
	}
	if es.Field("fecha_inicio") != nil {
		t.Error("the failure must not be attached to fecha_inicio")
	}
}

func TestValidateEndEqualsStart(t *testing.T) {
	day := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	f := Form{
		IDPaciente:  3,
		IDDoctor:    2,
		Descripcion: "Dosis única supervisada",
		FechaInicio: day,
		FechaFin:    day,
	}
	if err := f.Validate(); err != nil {
		t.Errorf("equal dates must be accepted: %v", err)
	}
}

func TestValidateMissingDates(t *testing.T) {
	f := Form{IDPaciente: 3, IDDoctor: 2, Descripcion: "Fisioterapia lumbar"}
	err := f.Validate()
	es, ok := err.(validate.Errors)
	if !ok {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if es.Field("fecha_inicio") == nil || es.Field("fecha_fin") == nil {
		t.Errorf("expected failures on both dates, got %v", es)
	}
}
