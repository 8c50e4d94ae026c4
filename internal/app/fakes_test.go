package app_test

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"hotel_manager/internal/domain"
)

// ---- fakes ----

type fakeCatalogAPI struct {
	hotels    []domain.HotelSummary
	err       error
	listCalls int32
	created   []domain.HotelSummary
	updated   map[string]domain.HotelSummary
	deleted   []string
}

func (f *fakeCatalogAPI) List(ctx context.Context, token string) ([]domain.HotelSummary, error) {
	atomic.AddInt32(&f.listCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.hotels, nil
}

func (f *fakeCatalogAPI) Get(ctx context.Context, token, id string) (domain.HotelSummary, error) {
	if f.err != nil {
		return domain.HotelSummary{}, f.err
	}
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.HotelSummary{}, domain.ErrNotFound
}

func (f *fakeCatalogAPI) Create(ctx context.Context, token string, h domain.HotelSummary) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, h)
	return "new-id", nil
}

func (f *fakeCatalogAPI) Update(ctx context.Context, token, id string, h domain.HotelSummary) error {
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = map[string]domain.HotelSummary{}
	}
	f.updated[id] = h
	return nil
}

func (f *fakeCatalogAPI) Delete(ctx context.Context, token, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeCache round-trips through JSON like the real adapter, so cached
// values do not alias the source.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type fakeBookingAPI struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeBookingAPI) MyBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeAuthAPI struct {
	id          domain.Identity
	loginErr    error
	registerErr error
	registered  []domain.RegisterProfile
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if f.loginErr != nil {
		return domain.Identity{}, f.loginErr
	}
	return f.id, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, p domain.RegisterProfile) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, p)
	return nil
}

// memSessions is an in-memory SessionStore with the same absent/clear
// semantics as the Redis one.
type memSessions struct {
	mu  sync.Mutex
	id  domain.Identity
	set bool
}

func (m *memSessions) Set(ctx context.Context, id domain.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id, m.set = id, true
	return nil
}

func (m *memSessions) Get(ctx context.Context) (domain.Identity, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return domain.Identity{}, false, nil
	}
	return m.id, true, nil
}

func (m *memSessions) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id, m.set = domain.Identity{}, false
	return nil
}

type fakeUploader struct {
	mu        sync.Mutex
	err       error
	single    []string // file names seen by UploadSingle
	batches   [][]string
	urlPrefix string
	block     chan struct{} // when non-nil, uploads wait until closed
	started   chan struct{} // when non-nil, closed once an upload begins
	startOnce sync.Once
}

func (u *fakeUploader) markStarted() {
	if u.started != nil {
		u.startOnce.Do(func() { close(u.started) })
	}
}

func (u *fakeUploader) UploadSingle(ctx context.Context, token string, f domain.UploadFile) (string, error) {
	u.markStarted()
	if u.block != nil {
		<-u.block
	}
	if u.err != nil {
		return "", u.err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.single = append(u.single, f.Name)
	return u.urlPrefix + f.Name, nil
}

func (u *fakeUploader) UploadMany(ctx context.Context, token string, fs []domain.UploadFile) ([]string, error) {
	u.markStarted()
	if u.block != nil {
		<-u.block
	}
	if u.err != nil {
		return nil, u.err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	names := make([]string, len(fs))
	urls := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
		urls[i] = u.urlPrefix + f.Name
	}
	u.batches = append(u.batches, names)
	return urls, nil
}
