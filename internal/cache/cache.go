package cache

import (
	"sync"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// Key identifie un bundle de paroles en cache. La préférence verbatim fait
// partie de la clé : un même morceau fetché avec et sans verbatim donne deux
// bundles différents côté provider.
type Key struct {
	Source         model.Source
	SongID         string
	PreferVerbatim bool
}

// BundleCache : cache explicite de bundles de paroles, pour éviter les
// re-fetchs réseau côté orchestration. Contrat : clé exposée (Key), pas
// d'état ambiant, invalidation à la main. Le moteur de rendu lui-même ne
// cache rien.
type BundleCache struct {
	mu      sync.RWMutex
	entries map[Key]model.Lyrics
}

func New() *BundleCache {
	return &BundleCache{entries: make(map[Key]model.Lyrics)}
}

// Lookup retourne le bundle en cache pour la clé donnée, s'il existe.
func (c *BundleCache) Lookup(key Key) (model.Lyrics, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lyrics, found := c.entries[key]
	return lyrics, found
}

// Store enregistre (ou écrase) le bundle pour la clé donnée.
func (c *BundleCache) Store(key Key, lyrics model.Lyrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = lyrics
}

// Invalidate supprime l'entrée pour la clé donnée, si présente.
func (c *BundleCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateSong supprime toutes les entrées d'un morceau, quelle que soit la
// préférence verbatim.
func (c *BundleCache) InvalidateSong(source model.Source, songID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, Key{Source: source, SongID: songID, PreferVerbatim: false})
	delete(c.entries, Key{Source: source, SongID: songID, PreferVerbatim: true})
}

// Purge vide entièrement le cache.
func (c *BundleCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]model.Lyrics)
}

// Len retourne le nombre d'entrées en cache.
func (c *BundleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
