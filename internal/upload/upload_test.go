package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAcceptsAllowedType(t *testing.T) {
	f := &File{Name: "a.png", ContentType: "image/png", Data: []byte("png")}
	assert.Empty(t, Check(f, ImageTypes, 10))
}

func TestCheckRejectsDisallowedType(t *testing.T) {
	f := &File{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
	msg := Check(f, ImageTypes, 10)
	assert.Equal(t, "File type not allowed for doc.pdf. Allowed types: image/jpeg, image/png, image/gif, image/webp", msg)
}

func TestCheckRejectsOversize(t *testing.T) {
	f := &File{Name: "big.pdf", ContentType: "application/pdf", Data: make([]byte, 10*1024*1024+1)}
	assert.Equal(t, "File big.pdf exceeds 10MB limit", Check(f, DownloadTypes, 10))
}

func TestCheckSizeExactlyAtLimit(t *testing.T) {
	f := &File{Name: "edge.pdf", ContentType: "application/pdf", Data: make([]byte, 10*1024*1024)}
	assert.Empty(t, Check(f, DownloadTypes, 10))
}

func TestTypeSniffsWhenUndeclared(t *testing.T) {
	f := &File{Name: "sniffed", Data: []byte("%PDF-1.4\n")}
	assert.Equal(t, "application/pdf", f.Type())
}

func TestRegistryGrantResolveRevoke(t *testing.T) {
	r := NewRegistry()
	f := &File{Name: "a.png", ContentType: "image/png"}

	url := r.Grant(f)
	require.True(t, IsLocal(url))

	got, ok := r.Resolve(url)
	require.True(t, ok)
	assert.Same(t, f, got)

	r.Revoke(url)
	_, ok = r.Resolve(url)
	assert.False(t, ok)
	assert.Zero(t, r.Alive())
}

func TestRevokeIgnoresServerURL(t *testing.T) {
	r := NewRegistry()
	r.Grant(&File{Name: "a.png"})

	r.Revoke("https://cdn.example.com/a.jpg")
	assert.Equal(t, 1, r.Alive())
}

func TestRevokeTwiceIsHarmless(t *testing.T) {
	r := NewRegistry()
	url := r.Grant(&File{Name: "a.png"})
	r.Revoke(url)
	r.Revoke(url)
	assert.Zero(t, r.Alive())
}

func TestGrantURLsAreDistinct(t *testing.T) {
	r := NewRegistry()
	a := r.Grant(&File{Name: "a.png"})
	b := r.Grant(&File{Name: "a.png"})
	assert.NotEqual(t, a, b)
}
