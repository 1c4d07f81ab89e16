package doctor

import (
	"testing"

	"github.com/clinica/clinica/internal/validate"
)

func TestFormFromAndBack(t *testing.T) {
	tel := "+34 600 123 456"
	rec := &Doctor{
		ID:              2,
		Nombre:          "Luis",
		Apellido:        "García",
		Especialidad:    "Cardiología",
		HorarioAtencion: "L-V 09:00-14:00",
		Telefono:        &tel,
	}

	form := FormFrom(rec)
	if form.Telefono != tel {
		t.Errorf("expected dereferenced phone, got %q", form.Telefono)
	}
	if form.CorreoElectronico != "" {
		t.Error("null email must map to empty string")
	}

	w := form.Write()
	if w.CorreoElectronico != nil {
		t.Error("empty email must serialize as null")
	}
	if w.Telefono == nil || *w.Telefono != tel {
		t.Error("phone must survive the round trip")
	}
	if w.HorarioAtencion != "L-V 09:00-14:00" {
		t.Errorf("horario_atencion changed: %q", w.HorarioAtencion)
	}
}

func TestValidate(t *testing.T) {
	valid := Form{
		Nombre:          "Luis",
		Apellido:        "García",
		Especialidad:    "Cardiología",
		HorarioAtencion: "L-V 09:00-14:00",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := valid
	f.Especialidad = "ab"
	err := f.Validate()
	es, ok := err.(validate.Errors)
	if !ok || es.Field("especialidad") == nil {
		t.Errorf("expected failure on especialidad, got %v", err)
	}

	f = valid
	f.CorreoElectronico = "bad"
	err = f.Validate()
	es, ok = err.(validate.Errors)
	if !ok || es.Field("correo_electronico") == nil {
		t.Errorf("expected failure on correo_electronico, got %v", err)
	}
}
