// Package memory is an in-process implementation of ports.UnitOfWork.
//
// Committed state lives in plain maps behind one RWMutex. A unit of work
// stages its writes and publishes them atomically on Commit. Row locks are
// emulated with a keyed mutex: GetForUpdate (and Add for unique keys) takes the
// row's lock and holds it until Commit or Rollback, which gives the same
// per-item serialization as SELECT ... FOR UPDATE in postgres.
//
// It backs the "memory" storage driver and the application tests.
package memory

import (
	"sync"
	"time"
)

type orderRow struct {
	id        string
	item      string
	quantity  int
	supplier  string
	status    int
	createdAt time.Time
	seq       int64
}

type deliveryRow struct {
	id        string
	customer  string
	item      string
	driver    string
	status    int
	createdAt time.Time
	seq       int64
}

type auditRow struct {
	id         string
	recordedAt time.Time
	message    string
}

type stockRow struct {
	quantity int
	version  int64
}

type userRow struct {
	username     string
	passwordHash string
	role         string
}

// Store holds committed state shared by every unit of work it creates.
type Store struct {
	mu         sync.RWMutex
	orders     map[string]orderRow
	deliveries map[string]deliveryRow
	stock      map[string]stockRow
	audit      []auditRow
	users      map[string]userRow
	seq        int64

	locks *keyedMutex
}

func NewStore() *Store {
	return &Store{
		orders:     map[string]orderRow{},
		deliveries: map[string]deliveryRow{},
		stock:      map[string]stockRow{},
		users:      map[string]userRow{},
		locks:      newKeyedMutex(),
	}
}

// publish applies a finished transaction's staged writes.
func (s *Store) publish(t *tx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range t.orders {
		if _, exists := s.orders[id]; !exists {
			s.seq++
			row.seq = s.seq
		} else {
			row.seq = s.orders[id].seq
		}
		s.orders[id] = row
	}
	for id, row := range t.deliveries {
		if _, exists := s.deliveries[id]; !exists {
			s.seq++
			row.seq = s.seq
		} else {
			row.seq = s.deliveries[id].seq
		}
		s.deliveries[id] = row
	}
	for item, row := range t.stock {
		s.stock[item] = row
	}
	for username, row := range t.users {
		s.users[username] = row
	}
	for username := range t.deletedUsers {
		delete(s.users, username)
	}
	s.audit = append(s.audit, t.audit...)
}

// keyedMutex hands out one mutex per key. Keys are never removed; the key
// space is bounded by the number of rows ever locked.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[string]*sync.Mutex{}}
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// tx is the staged state of one unit of work.
type tx struct {
	store        *Store
	held         map[string]*sync.Mutex
	orders       map[string]orderRow
	deliveries   map[string]deliveryRow
	stock        map[string]stockRow
	users        map[string]userRow
	deletedUsers map[string]struct{}
	audit        []auditRow
}

func newTx(store *Store) *tx {
	return &tx{
		store:        store,
		held:         map[string]*sync.Mutex{},
		orders:       map[string]orderRow{},
		deliveries:   map[string]deliveryRow{},
		stock:        map[string]stockRow{},
		users:        map[string]userRow{},
		deletedUsers: map[string]struct{}{},
	}
}

// lock takes key's row lock once per transaction.
func (t *tx) lock(key string) {
	if _, ok := t.held[key]; ok {
		return
	}
	m := t.store.locks.get(key)
	m.Lock()
	t.held[key] = m
}

func (t *tx) release() {
	for key, m := range t.held {
		m.Unlock()
		delete(t.held, key)
	}
}

func (t *tx) commit() {
	t.store.publish(t)
	t.release()
}
