package mutators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lfichef.dev/pkg/lfichef/internal/domain/mutators"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

func TestParseNullByteMode(t *testing.T) {
	tests := []struct {
		arg  string
		want m.NullByteMode
	}{
		{"", m.NullByteNone},
		{"p", m.NullBytePrepend},
		{"a", m.NullByteAppend},
		{"b", m.NullByteBoth},
	}

	for _, tt := range tests {
		t.Run("parses "+tt.arg, func(t *testing.T) {
			got, err := mutators.ParseNullByteMode(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown mode fails", func(t *testing.T) {
		_, err := mutators.ParseNullByteMode("x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "x")
	})
}

func TestNullByteInjector_Inject(t *testing.T) {
	const path = m.CanonicalPath("../etc/passwd")

	t.Run("none yields nothing", func(t *testing.T) {
		injector := mutators.NewNullByteInjector(m.NullByteNone)
		assert.Empty(t, injector.Inject(path))
	})

	t.Run("prepend yields one leading variant", func(t *testing.T) {
		variants := mutators.NewNullByteInjector(m.NullBytePrepend).Inject(path)
		require.Len(t, variants, 1)
		assert.Equal(t, m.CanonicalPath("%00../etc/passwd"), variants[0].Path)
		assert.Equal(t, m.NullBytePrepend, variants[0].Placement)
	})

	t.Run("append yields one trailing variant", func(t *testing.T) {
		variants := mutators.NewNullByteInjector(m.NullByteAppend).Inject(path)
		require.Len(t, variants, 1)
		assert.Equal(t, m.CanonicalPath("../etc/passwd%00"), variants[0].Path)
		assert.Equal(t, m.NullByteAppend, variants[0].Placement)
	})

	t.Run("both yields exactly the two positional variants", func(t *testing.T) {
		variants := mutators.NewNullByteInjector(m.NullByteBoth).Inject(path)
		require.Len(t, variants, 2)
		assert.Equal(t, m.CanonicalPath("%00../etc/passwd"), variants[0].Path)
		assert.Equal(t, m.CanonicalPath("../etc/passwd%00"), variants[1].Path)
	})
}
