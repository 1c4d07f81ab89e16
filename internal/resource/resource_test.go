package resource

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinica/clinica/internal/apitest"
	"github.com/clinica/clinica/internal/platform/api"
	"github.com/clinica/clinica/internal/platform/cache"
	"github.com/clinica/clinica/internal/platform/notify"
	"github.com/clinica/clinica/internal/platform/session"
)

type patientRow struct {
	ID       int    `json:"id_paciente"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

func (p patientRow) RecordID() int { return p.ID }

type patientWrite struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

func testClient(t *testing.T, srv *apitest.Server) *Client[patientRow, patientWrite] {
	t.Helper()
	sess, err := session.Open(filepath.Join(t.TempDir(), "auth-storage.json"))
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	_ = sess.SetSession(session.User{ID: 1}, apitest.Token)

	client, err := api.New(srv.URL(), sess)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	deps := Deps{
		API:    client,
		Cache:  cache.New(),
		Notify: notify.New(zerolog.Nop()),
	}
	return New[patientRow, patientWrite](deps, Descriptor{
		Path:    "/pacientes",
		Key:     "pacientes",
		Label:   "patient",
		ListTTL: 5 * time.Minute,
		ItemTTL: 5 * time.Minute,
	})
}

func TestListServesCacheInsideStaleWindow(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.Seed("pacientes", map[string]any{"nombre": "Ana", "apellido": "Ruiz"})

	c := testClient(t, srv)
	ctx := context.Background()

	first, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) != 1 || first[0].Nombre != "Ana" {
		t.Fatalf("unexpected list: %+v", first)
	}
	if _, err := c.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := srv.GetCount("/pacientes"); got != 1 {
		t.Errorf("expected 1 network fetch inside stale window, got %d", got)
	}
}

func TestCreateInvalidatesList(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c := testClient(t, srv)
	ctx := context.Background()

	if _, err := c.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	rec, err := c.Create(ctx, patientWrite{Nombre: "Ana", Apellido: "Ruiz"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("expected server-assigned id")
	}

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected refreshed list with the new record, got %+v", list)
	}
	if got := srv.GetCount("/pacientes"); got != 2 {
		t.Errorf("expected list re-fetch after create, got %d fetches", got)
	}
	if note, ok := c.deps.Notify.Last(); !ok || note.Message != "patient created" {
		t.Errorf("expected success notification, got %+v", note)
	}
}

func TestDeleteClearsBothKeys(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	id := srv.Seed("pacientes", map[string]any{"nombre": "Ana", "apellido": "Ruiz"})

	c := testClient(t, srv)
	ctx := context.Background()

	if _, err := c.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := c.Get(ctx, id); err != nil {
		t.Fatalf("Get: %v", err)
	}

	msg, err := c.Delete(ctx, id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if msg.Message == "" {
		t.Error("expected server message on delete")
	}
	if _, ok := c.deps.Cache.Get(cache.ListKey("pacientes")); ok {
		t.Error("expected list key invalidated")
	}
	if _, ok := c.deps.Cache.Get(cache.ItemKey("pacientes", id)); ok {
		t.Error("expected item key invalidated")
	}
}

func TestUpdateInvalidatesEvenWhenUnchanged(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	id := srv.Seed("pacientes", map[string]any{"nombre": "Ana", "apellido": "Ruiz"})

	c := testClient(t, srv)
	ctx := context.Background()
	if _, err := c.Get(ctx, id); err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Same values as stored; invalidation happens regardless.
	if _, err := c.Update(ctx, id, patientWrite{Nombre: "Ana", Apellido: "Ruiz"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, ok := c.deps.Cache.Get(cache.ItemKey("pacientes", id)); ok {
		t.Error("expected item key invalidated after unchanged update")
	}
	if _, err := c.Get(ctx, id); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := srv.GetCount("/pacientes/1"); got != 2 {
		t.Errorf("expected item re-fetch after update, got %d fetches", got)
	}
}

func TestGetWithoutIDSkipsNetwork(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c := testClient(t, srv)

	if _, err := c.Get(context.Background(), 0); err == nil {
		t.Fatal("expected error for id 0")
	}
	if got := srv.GetCount("/pacientes/0"); got != 0 {
		t.Errorf("expected no network call, got %d", got)
	}
}

func TestCachedFallsBackToListRows(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	id := srv.Seed("pacientes", map[string]any{"nombre": "Ana", "apellido": "Ruiz"})

	c := testClient(t, srv)
	if _, ok := c.Cached(id); ok {
		t.Fatal("expected cache miss before any fetch")
	}

	if _, err := c.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	rec, ok := c.Cached(id)
	if !ok || rec.Nombre != "Ana" {
		t.Fatalf("expected cached list row, got %+v ok=%v", rec, ok)
	}
	if got := srv.GetCount("/pacientes/1"); got != 0 {
		t.Errorf("Cached must not hit the network, got %d", got)
	}
}

func TestCreateErrorNotifiesWithServerMessage(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c := testClient(t, srv)

	srv.FailNext(http.StatusBadRequest, "El nombre es obligatorio")
	_, err := c.Create(context.Background(), patientWrite{})
	if err == nil {
		t.Fatal("expected create error")
	}
	note, ok := c.deps.Notify.Last()
	if !ok || note.Level != notify.LevelError || note.Message != "El nombre es obligatorio" {
		t.Errorf("expected server message surfaced, got %+v", note)
	}
}
