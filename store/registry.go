package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/models"
)

// Stores is the application context of one gateway session: every
// state slice the storefront owns, each behind its own store. Handlers
// receive this object instead of reaching for globals.
type Stores struct {
	ID      string
	Session *SessionStore
	Cart    *CartStore
	Catalog *CatalogStore
	Orders  *OrderStore
	Attrs   *AttributeStore
	Notify  *Notifier

	lastSeen time.Time
}

// Registry owns the session -> Stores map and their persistence. A nil
// db disables persistence (tests run this way).
type Registry struct {
	mu       sync.Mutex
	db       *gorm.DB
	client   *backend.Client
	sessions map[string]*Stores
}

func NewRegistry(db *gorm.DB, client *backend.Client) *Registry {
	return &Registry{
		db:       db,
		client:   client,
		sessions: make(map[string]*Stores),
	}
}

func (r *Registry) build(id string) *Stores {
	var onSession func(models.Session)
	var onCart func(models.Cart)
	if r.db != nil {
		db := r.db
		onSession = func(sess models.Session) { saveSession(db, sess) }
		onCart = func(cart models.Cart) { saveCart(db, id, cart) }
	}

	return &Stores{
		ID:       id,
		Session:  NewSessionStore(id, r.client, onSession),
		Cart:     NewCartStore(onCart),
		Catalog:  NewCatalogStore(r.client),
		Orders:   NewOrderStore(r.client),
		Attrs:    NewAttributeStore(r.client),
		Notify:   NewNotifier(),
		lastSeen: time.Now(),
	}
}

// Create starts a fresh session and persists its initial record.
func (r *Registry) Create() *Stores {
	st := r.build(uuid.NewString())

	r.mu.Lock()
	r.sessions[st.ID] = st
	r.mu.Unlock()

	if r.db != nil {
		saveSession(r.db, st.Session.Snapshot())
	}
	return st
}

// Get returns an existing session's stores and refreshes its idle
// clock.
func (r *Registry) Get(id string) (*Stores, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.sessions[id]
	if ok {
		st.lastSeen = time.Now()
	}
	return st, ok
}

// RestoreAll rebuilds sessions from their persisted records at startup.
// Records with missing or expired tokens come back not-authenticated.
func (r *Registry) RestoreAll() error {
	if r.db == nil {
		return nil
	}
	records, carts, err := loadSessions(r.db)
	if err != nil {
		return err
	}

	restored := 0
	for _, rec := range records {
		st := r.build(rec.ID)
		st.Session.Restore(rec)
		if cart, ok := carts[rec.ID]; ok {
			st.Cart.Replace(cart)
		}
		r.mu.Lock()
		r.sessions[rec.ID] = st
		r.mu.Unlock()
		restored++
	}
	log.Printf("✅ Restored %d session(s)", restored)
	return nil
}

// Sweep drops sessions idle beyond ttl from memory and storage.
// Returns how many were removed.
func (r *Registry) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	removed := 0

	r.mu.Lock()
	for id, st := range r.sessions {
		if st.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	r.mu.Unlock()

	if r.db != nil {
		ids, err := staleSessionIDs(r.db, cutoff)
		if err != nil {
			log.Printf("❌ Failed to list stale sessions: %v", err)
			return removed
		}
		for _, id := range ids {
			if err := deleteSession(r.db, id); err != nil {
				log.Printf("❌ Failed to remove stale session %s: %v", id, err)
			}
		}
	}
	return removed
}

// StartSweeper purges idle sessions at a fixed interval.
func (r *Registry) StartSweeper(interval, ttl time.Duration) {
	go func() {
		for {
			time.Sleep(interval)
			if removed := r.Sweep(ttl); removed > 0 {
				log.Printf("🗑️ Removed %d stale session(s)", removed)
			}
		}
	}()
}
