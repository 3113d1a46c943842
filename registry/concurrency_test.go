package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/registry"
)

// TestConcurrentConstruct: goroutines racing on the same construction all
// receive the one interned object.
func TestConcurrentConstruct(t *testing.T) {
	r := registry.New()
	p := points(t, r, 2)

	const num = 200
	got := make([]*core.Object, num)
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			a, b := p[0], p[1]
			if i%2 == 1 {
				a, b = b, a
			}
			objs, err := r.Construct(midpoint, pair(a, b))
			assert.NoError(t, err)
			got[i] = objs[0]
		}(i)
	}
	wg.Wait()

	for _, o := range got {
		require.Same(t, got[0], o)
	}
	assert.Equal(t, 3, r.Len())
}

// TestConcurrentConstructAndRead mixes interning with lookups to surface races
// under -race.
func TestConcurrentConstructAndRead(t *testing.T) {
	r := registry.New()
	p := points(t, r, 6)

	var wg sync.WaitGroup
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			wg.Add(2)
			go func(a, b *core.Object) {
				defer wg.Done()
				_, err := r.Construct(midpoint, pair(a, b))
				assert.NoError(t, err)
			}(p[i], p[j])
			go func(a, b *core.Object) {
				defer wg.Done()
				_, _ = r.Lookup(midpoint, pair(a, b), 0)
				_ = r.Len()
			}(p[i], p[j])
		}
	}
	wg.Wait()

	// 6 loose + C(6,2) midpoints
	assert.Equal(t, 21, r.Len())
}
