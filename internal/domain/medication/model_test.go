package medication

import (
	"encoding/json"
	"testing"

	"github.com/clinica/clinica/internal/validate"
)

func TestEmbeddedTreatmentDecode(t *testing.T) {
	data := []byte(`{
		"id_medicamento": 8,
		"nombre": "Ibuprofeno",
		"descripcion": "Antiinflamatorio no esteroideo",
		"dosis": "400mg",
		"frecuencia": "Cada 8 horas",
		"id_tratamiento": 4,
		"tratamiento": {
			"id_tratamiento": 4,
			"id_paciente": 3,
			"id_doctor": 2,
			"descripcion": "Fisioterapia",
			"fecha_inicio": "2024-08-15",
			"fecha_fin": "2024-09-15"
		}
	}`)

	var m Medication
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Tratamiento.ID != 4 || m.Tratamiento.FechaInicio != "2024-08-15" {
		t.Errorf("unexpected embedded treatment: %+v", m.Tratamiento)
	}
}

func TestValidate(t *testing.T) {
	valid := Form{
		Nombre:        "Ibuprofeno",
		Descripcion:   "Antiinflamatorio no esteroideo",
		Dosis:         "400mg",
		Frecuencia:    "Cada 8 horas",
		IDTratamiento: 4,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*Form)
		badField string
	}{
		{"empty dose", func(f *Form) { f.Dosis = "" }, "dosis"},
		{"short frequency", func(f *Form) { f.Frecuencia = "x" }, "frecuencia"},
		{"no treatment", func(f *Form) { f.IDTratamiento = 0 }, "id_tratamiento"},
		{"short name", func(f *Form) { f.Nombre = "ab" }, "nombre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := f.Validate()
			es, ok := err.(validate.Errors)
			if !ok || es.Field(tt.badField) == nil {
				t.Errorf("expected failure on %s, got %v", tt.badField, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rec := &Medication{ID: 8, Nombre: "Ibuprofeno", Descripcion: "AINE oral", Dosis: "400mg", Frecuencia: "Cada 8 horas", IDTratamiento: 4}
	w := FormFrom(rec).Write()
	if w.Nombre != rec.Nombre || w.IDTratamiento != rec.IDTratamiento || w.Dosis != rec.Dosis {
		t.Errorf("round trip changed payload: %+v", w)
	}
}
