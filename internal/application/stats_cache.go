package application

import (
	"sync"
	"time"
)

// statsCacheEntry representa una entrada en el caché de estadísticas
type statsCacheEntry struct {
	value     any
	timestamp time.Time
}

// StatsCache implementa un caché simple en memoria para las estadísticas
// agregadas, que se recalculan sobre la colección completa en cada consulta.
// Los servicios lo invalidan en cada escritura.
type StatsCache struct {
	cache map[string]*statsCacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewStatsCache crea un nuevo caché de estadísticas
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{
		cache: make(map[string]*statsCacheEntry),
		ttl:   ttl,
	}
}

// Get obtiene un valor del caché si existe y no ha expirado
func (sc *StatsCache) Get(key string) (any, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	entry, exists := sc.cache[key]
	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > sc.ttl {
		return nil, false
	}

	return entry.value, true
}

// Set guarda un valor en el caché
func (sc *StatsCache) Set(key string, value any) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.cache[key] = &statsCacheEntry{
		value:     value,
		timestamp: time.Now(),
	}
}

// Invalidate elimina una entrada del caché
func (sc *StatsCache) Invalidate(key string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	delete(sc.cache, key)
}

// Clear limpia todo el caché
func (sc *StatsCache) Clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.cache = make(map[string]*statsCacheEntry)
}

// Size retorna el número de entradas en el caché
func (sc *StatsCache) Size() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return len(sc.cache)
}
