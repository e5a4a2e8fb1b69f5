// ABOUTME: On-disk cache of synthesized speech
// ABOUTME: Keys WAV files by MD5 of the spoken text, writes atomically
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Cache stores converted WAV files keyed by the text they speak.
// Repeated requests for the same text skip synthesis and conversion
// entirely.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Key returns the cache key for text
func (c *Cache) Key(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Path returns where the WAV for text lives or would live
func (c *Cache) Path(text string) string {
	return filepath.Join(c.dir, c.Key(text)+".wav")
}

// Lookup returns the cached WAV path for text and whether it exists
func (c *Cache) Lookup(text string) (string, bool) {
	path := c.Path(text)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Store writes wav for text. The write goes to a uniquely named temp
// file first and is renamed into place, so concurrent callers never
// observe a partial file.
func (c *Cache) Store(text string, wav []byte) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("cache dir: %w", err)
	}

	tmp := filepath.Join(c.dir, uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, wav, 0o644); err != nil {
		return "", fmt.Errorf("cache write: %w", err)
	}

	path := c.Path(text)
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("cache rename: %w", err)
	}
	return path, nil
}
