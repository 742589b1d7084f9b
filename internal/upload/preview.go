package upload

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Scheme prefixes locally generated display URLs. URLs without it came from
// the server and must never be revoked.
const Scheme = "mem://"

// Registry issues temporary display URLs for in-memory files, standing in
// for the browser's object-URL machinery. Each URL is owned by the draft
// that created it and must be released exactly once when that draft is
// discarded.
type Registry struct {
	mu    sync.Mutex
	blobs map[string]*File
}

func NewRegistry() *Registry {
	return &Registry{blobs: make(map[string]*File)}
}

// Grant registers f and returns its display URL.
func (r *Registry) Grant(f *File) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	url := Scheme + uuid.New().String()
	r.blobs[url] = f
	return url
}

// Revoke releases a locally generated URL. Server URLs and already-revoked
// URLs are ignored.
func (r *Registry) Revoke(url string) {
	if !IsLocal(url) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, url)
}

// Resolve returns the file behind a display URL while it is still alive.
func (r *Registry) Resolve(url string) (*File, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.blobs[url]
	return f, ok
}

// Alive reports how many granted URLs have not been revoked yet.
func (r *Registry) Alive() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blobs)
}

func IsLocal(url string) bool {
	return strings.HasPrefix(url, Scheme)
}
