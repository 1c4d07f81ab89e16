// Package resource implements the shared read/write contract every entity
// client follows: reads are served from a TTL cache inside the entity's stale
// window, and every successful write invalidates the affected cache keys so
// the next read re-fetches from the server. Cached values are never patched
// with local state; the server response is the only source of truth.
package resource

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/clinica/clinica/internal/platform/api"
	"github.com/clinica/clinica/internal/platform/cache"
	"github.com/clinica/clinica/internal/platform/notify"
)

// Message is the body of update and delete responses. The backend deliberately
// returns no record on writes; callers re-fetch instead of trusting local state.
type Message struct {
	Message string `json:"message"`
}

// Descriptor binds a client to one REST collection.
type Descriptor struct {
	// Path is the collection endpoint, e.g. "/pacientes".
	Path string
	// Key scopes this entity's cache entries, e.g. "pacientes".
	Key string
	// Label names one record in notifications, e.g. "patient".
	Label string
	// ListTTL and ItemTTL are the stale windows for list and by-id reads.
	ListTTL time.Duration
	ItemTTL time.Duration
}

// Deps are the shared collaborators injected into every entity client.
type Deps struct {
	API    *api.Client
	Cache  *cache.Store
	Notify *notify.Notifier
}

// Client is the generic entity client. R is the read (API record) shape and W
// the write payload shape accepted by create/update.
type Client[R any, W any] struct {
	deps Deps
	desc Descriptor
}

// New creates a Client for the described collection.
func New[R any, W any](deps Deps, desc Descriptor) *Client[R, W] {
	return &Client[R, W]{deps: deps, desc: desc}
}

// Descriptor returns the client's collection metadata.
func (c *Client[R, W]) Descriptor() Descriptor {
	return c.desc
}

// List returns all records, served from cache inside the stale window.
func (c *Client[R, W]) List(ctx context.Context) ([]R, error) {
	key := cache.ListKey(c.desc.Key)
	if v, ok := c.deps.Cache.Get(key); ok {
		if list, ok := v.([]R); ok {
			return list, nil
		}
	}

	var list []R
	if err := c.deps.API.Get(ctx, c.desc.Path, &list); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.desc.Label, err)
	}
	c.deps.Cache.Set(key, list, c.desc.ListTTL)
	return list, nil
}

// Get returns one record by id, served from cache inside the stale window.
// A non-positive id fails immediately without touching the network.
func (c *Client[R, W]) Get(ctx context.Context, id int) (*R, error) {
	if id <= 0 {
		return nil, fmt.Errorf("cannot fetch %s without an id", c.desc.Label)
	}

	key := cache.ItemKey(c.desc.Key, id)
	if v, ok := c.deps.Cache.Get(key); ok {
		if rec, ok := v.(*R); ok {
			return rec, nil
		}
	}

	var rec R
	if err := c.deps.API.Get(ctx, c.itemPath(id), &rec); err != nil {
		return nil, fmt.Errorf("get %s %d: %w", c.desc.Label, id, err)
	}
	c.deps.Cache.Set(key, &rec, c.desc.ItemTTL)
	return &rec, nil
}

// Cached returns the record for id from cache only, without any network call.
// The list detail view uses this to open instantly from already-fetched data.
func (c *Client[R, W]) Cached(id int) (*R, bool) {
	if id <= 0 {
		return nil, false
	}
	if v, ok := c.deps.Cache.Get(cache.ItemKey(c.desc.Key, id)); ok {
		if rec, ok := v.(*R); ok {
			return rec, true
		}
	}
	// Fall back to the cached list; detail dialogs are opened from list rows.
	if v, ok := c.deps.Cache.Get(cache.ListKey(c.desc.Key)); ok {
		if list, ok := v.([]R); ok {
			for i := range list {
				if idOf(list[i]) == id {
					return &list[i], true
				}
			}
		}
	}
	return nil, false
}

// Create posts a new record. On success the list cache is invalidated before
// returning, so the next list read reflects the server-assigned record.
func (c *Client[R, W]) Create(ctx context.Context, payload W) (*R, error) {
	var rec R
	if err := c.deps.API.Post(ctx, c.desc.Path, payload, &rec); err != nil {
		c.deps.Notify.Error(api.Message(err, "could not create "+c.desc.Label))
		return nil, fmt.Errorf("create %s: %w", c.desc.Label, err)
	}
	c.deps.Cache.Delete(cache.ListKey(c.desc.Key))
	c.deps.Notify.Success(c.desc.Label + " created")
	return &rec, nil
}

// Update puts changed fields for id. On success both the list and the record
// cache keys are invalidated; the response carries only the server's message.
func (c *Client[R, W]) Update(ctx context.Context, id int, payload W) (Message, error) {
	var msg Message
	if err := c.deps.API.Put(ctx, c.itemPath(id), payload, &msg); err != nil {
		c.deps.Notify.Error(api.Message(err, "could not update "+c.desc.Label))
		return Message{}, fmt.Errorf("update %s %d: %w", c.desc.Label, id, err)
	}
	c.deps.Cache.Delete(cache.ListKey(c.desc.Key))
	c.deps.Cache.Delete(cache.ItemKey(c.desc.Key, id))
	c.deps.Notify.Success(c.desc.Label + " updated")
	return msg, nil
}

// Delete removes the record. On success both the list and the record cache
// keys are invalidated, so a cached detail cannot outlive its record.
func (c *Client[R, W]) Delete(ctx context.Context, id int) (Message, error) {
	var msg Message
	if err := c.deps.API.Delete(ctx, c.itemPath(id), &msg); err != nil {
		c.deps.Notify.Error(api.Message(err, "could not delete "+c.desc.Label))
		return Message{}, fmt.Errorf("delete %s %d: %w", c.desc.Label, id, err)
	}
	c.deps.Cache.Delete(cache.ListKey(c.desc.Key))
	c.deps.Cache.Delete(cache.ItemKey(c.desc.Key, id))
	c.deps.Notify.Success(c.desc.Label + " deleted")
	return msg, nil
}

func (c *Client[R, W]) itemPath(id int) string {
	return c.desc.Path + "/" + strconv.Itoa(id)
}

// Identifiable lets Cached match list rows by id without reflection.
type Identifiable interface {
	RecordID() int
}

func idOf(rec any) int {
	if r, ok := rec.(Identifiable); ok {
		return r.RecordID()
	}
	return 0
}
