// Package apitest runs an in-memory clinic backend for tests. It speaks
// the same REST contract as the real API: bearer-guarded CRUD over the
// seven collections, {message} bodies on updates and deletes, and the
// denormalized relation summaries the list endpoints carry.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

// Token is the bearer issued by the fake login endpoint.
const Token = "test-token"

// Default operator credentials accepted by POST /auth/login.
const (
	Email    = "admin@clinica.com"
	Password = "admin123"
)

type collection struct {
	idField string
	next    int
	rows    map[int]map[string]any
}

// Server is a fake clinic backend bound to an httptest listener.
type Server struct {
	echo *echo.Echo
	http *httptest.Server

	mu       sync.Mutex
	cols     map[string]*collection
	gets     map[string]int
	failCode int
	failMsg  string
}

var collections = map[string]string{
	"pacientes":     "id_paciente",
	"doctores":      "id_doctor",
	"enfermeras":    "id_enfermera",
	"departamentos": "id_departamento",
	"citas":         "id_cita",
	"tratamientos":  "id_tratamiento",
	"medicamentos":  "id_medicamento",
}

// New starts the fake backend. Call Close when done.
func New() *Server {
	s := &Server{
		echo: echo.New(),
		cols: make(map[string]*collection),
		gets: make(map[string]int),
	}
	s.echo.HideBanner = true
	for name, idField := range collections {
		s.cols[name] = &collection{idField: idField, next: 1, rows: make(map[int]map[string]any)}
	}

	s.echo.Use(s.observe)
	s.echo.POST("/auth/login", s.login)
	for name := range collections {
		g := s.echo.Group("/"+name, s.requireBearer)
		g.GET("", s.list(name))
		g.GET("/:id", s.get(name))
		g.POST("", s.create(name))
		g.PUT("/:id", s.update(name))
		g.DELETE("/:id", s.remove(name))
	}

	s.http = httptest.NewServer(s.echo)
	return s
}

// URL is the base address of the fake backend.
func (s *Server) URL() string { return s.http.URL }

func (s *Server) Close() { s.http.Close() }

// GetCount reports how many GET requests hit the given path, e.g.
// "/pacientes" or "/pacientes/3". Cache tests use it to prove when the
// client went back to the network.
func (s *Server) GetCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets[path]
}

// FailNext makes the next guarded request fail with the given status
// and message body, then restores normal behavior.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCode = status
	s.failMsg = message
}

// Seed inserts a row into a collection and returns its assigned id.
func (s *Server) Seed(name string, row map[string]any) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.cols[name]
	id := col.next
	col.next++
	copied := make(map[string]any, len(row)+1)
	for k, v := range row {
		copied[k] = v
	}
	copied[col.idField] = id
	col.rows[id] = copied
	return id
}

// Rows returns a snapshot of a collection, keyed by id.
func (s *Server) Rows(name string) map[int]map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]map[string]any)
	for id, row := range s.cols[name].rows {
		copied := make(map[string]any, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out[id] = copied
	}
	return out
}

func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		if c.Request().Method == http.MethodGet {
			s.gets[c.Request().URL.Path]++
		}
		code, msg := s.failCode, s.failMsg
		s.failCode, s.failMsg = 0, ""
		s.mu.Unlock()
		if code != 0 && c.Request().URL.Path != "/auth/login" {
			return c.JSON(code, echo.Map{"message": msg})
		}
		return next(c)
	}
}

func (s *Server) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token no proporcionado"})
		}
		if strings.TrimPrefix(auth, "Bearer ") != Token {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token inválido"})
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Solicitud inválida"})
	}
	if creds.Email != Email || creds.Password != Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Credenciales inválidas"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login exitoso",
		"token":   Token,
		"usuario": echo.Map{"id": 1, "rol": "admin", "email": Email, "nombre": "Admin"},
	})
}

func (s *Server) list(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.cols[name]
		out := make([]map[string]any, 0, len(col.rows))
		for _, row := range col.rows {
			out = append(out, s.embellishLocked(name, row))
		}
		return c.JSON(http.StatusOK, out)
	}
}

func (s *Server) get(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))
		s.mu.Lock()
		defer s.mu.Unlock()
		row, ok := s.cols[name].rows[id]
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Registro no encontrado"})
		}
		return c.JSON(http.StatusOK, s.embellishLocked(name, row))
	}
}

func (s *Server) create(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		row := map[string]any{}
		if err := c.Bind(&row); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Solicitud inválida"})
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.cols[name]
		id := col.next
		col.next++
		row[col.idField] = id
		col.rows[id] = row
		return c.JSON(http.StatusCreated, s.embellishLocked(name, row))
	}
}

func (s *Server) update(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))
		patch := map[string]any{}
		if err := c.Bind(&patch); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Solicitud inválida"})
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.cols[name]
		row, ok := col.rows[id]
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Registro no encontrado"})
		}
		for k, v := range patch {
			if k == col.idField {
				continue
			}
			row[k] = v
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Registro actualizado correctamente"})
	}
}

func (s *Server) remove(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.cols[name]
		if _, ok := col.rows[id]; !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Registro no encontrado"})
		}
		delete(col.rows, id)
		return c.JSON(http.StatusOK, echo.Map{"message": "Registro eliminado correctamente"})
	}
}

// embellishLocked attaches the relation summaries a real list response
// carries. Appointments embed under capitalized keys, treatments and
// medications under lowercase ones, matching the backend.
func (s *Server) embellishLocked(name string, row map[string]any) map[string]any {
	out := make(map[string]any, len(row)+2)
	for k, v := range row {
		out[k] = v
	}
	switch name {
	case "citas":
		if p := s.summaryLocked("pacientes", row["id_paciente"]); p != nil {
			out["Paciente"] = p
		}
		if d := s.summaryLocked("doctores", row["id_doctor"]); d != nil {
			out["Doctor"] = d
		}
	case "tratamientos":
		if p := s.summaryLocked("pacientes", row["id_paciente"]); p != nil {
			out["paciente"] = p
		}
		if d := s.summaryLocked("doctores", row["id_doctor"]); d != nil {
			out["doctor"] = d
		}
	case "medicamentos":
		if t := s.summaryLocked("tratamientos", row["id_tratamiento"]); t != nil {
			out["tratamiento"] = t
		}
	}
	return out
}

func (s *Server) summaryLocked(name string, rawID any) map[string]any {
	id := asInt(rawID)
	if id == 0 {
		return nil
	}
	row, ok := s.cols[name].rows[id]
	if !ok {
		return nil
	}
	copied := make(map[string]any, len(row))
	for k, v := range row {
		copied[k] = v
	}
	return copied
}

// asInt normalizes ids, which arrive as float64 after JSON decoding.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
