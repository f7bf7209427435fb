package hill

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes Ciphers by key string. Building a Cipher costs a factorial
// number of operations in the key order, so concurrent requests for the same
// key share one construction. Failed constructions are not cached.
//
// A Cache is safe for concurrent use. The zero value is not usable; call
// NewCache.
type Cache struct {
	opts  []Option
	group singleflight.Group

	mu      sync.RWMutex
	ciphers map[string]*Cipher
}

// NewCache returns an empty cache whose Ciphers are built with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{opts: opts, ciphers: make(map[string]*Cipher)}
}

// Get returns the Cipher for key, building it on first use.
func (c *Cache) Get(key string) (*Cipher, error) {
	c.mu.RLock()
	ciph, ok := c.ciphers[key]
	c.mu.RUnlock()
	if ok {
		return ciph, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.ciphers[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		built, err := NewCipher(key, c.opts...)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.ciphers[key] = built
		c.mu.Unlock()

		return built, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Cipher), nil
}

// Len reports the number of cached Ciphers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.ciphers)
}
