package application

import (
	"fmt"
	"sync"
	"time"
)

// rateLimitEntry representa una entrada en el rate limiter
type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter limita por ventana de tiempo los envíos del formulario público
// de postulación, identificados por IP
type RateLimiter struct {
	limits map[string]*rateLimitEntry
	mu     sync.Mutex
	window time.Duration
	limit  int
}

// NewRateLimiter crea un nuevo rate limiter.
// window: duración de la ventana; limit: envíos permitidos por ventana.
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		limits: make(map[string]*rateLimitEntry),
		window: window,
		limit:  limit,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow verifica si se permite un envío para el identificador dado
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.limits[identifier]

	if !exists || now.After(entry.resetTime) {
		rl.limits[identifier] = &rateLimitEntry{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true, nil
	}

	if entry.count >= rl.limit {
		timeUntilReset := entry.resetTime.Sub(now)
		return false, fmt.Errorf("límite de envíos excedido. Intenta de nuevo en %v", timeUntilReset.Round(time.Second))
	}

	entry.count++
	return true, nil
}

// cleanupLoop limpia entradas expiradas periódicamente
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.limits {
		if now.After(entry.resetTime) {
			delete(rl.limits, key)
		}
	}
}
