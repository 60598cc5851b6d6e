package provider

import (
	"sort"
	"sync"

	"github.com/catalogfs/cloudauth"
)

var mmu sync.RWMutex
var m map[string]cloudauth.ClientFactory

// Register a new client factory in provider map
func Register(name string, f cloudauth.ClientFactory) {
	mmu.Lock()
	m[name] = f
	mmu.Unlock()
}

// Unregister unregisters a client factory from provider map
func Unregister(name string) {
	mmu.Lock()
	delete(m, name)
	mmu.Unlock()
}

// UnregisterAll unregisters all client factories from provider map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]cloudauth.ClientFactory)
	mmu.Unlock()
}

// Factory returns the client factory by provider name
func Factory(name string) cloudauth.ClientFactory {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[name]
}

// RegisteredProviders returns an array of provider names
func RegisteredProviders() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

func init() {
	m = make(map[string]cloudauth.ClientFactory)
}
