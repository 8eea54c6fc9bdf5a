package pkg_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"lfichef.dev/pkg/lfichef/pkg"
)

func TestLineDup_Add(t *testing.T) {
	dup := pkg.NewLineDup()

	assert.True(t, dup.Add("/etc/passwd"))
	assert.True(t, dup.Add("/etc/shadow"))
	assert.False(t, dup.Add("/etc/passwd"))
	assert.Equal(t, 2, dup.Len())
}

func TestLineDup_Reset(t *testing.T) {
	dup := pkg.NewLineDup()

	assert.True(t, dup.Add("/etc/passwd"))
	dup.Reset()

	assert.Equal(t, 0, dup.Len())
	assert.True(t, dup.Add("/etc/passwd"))
}

func TestLineDup_Concurrent(t *testing.T) {
	dup := pkg.NewLineDup()

	var wg sync.WaitGroup

	for worker := 0; worker < 8; worker++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				dup.Add(fmt.Sprintf("line-%d", i))
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, dup.Len())
}
