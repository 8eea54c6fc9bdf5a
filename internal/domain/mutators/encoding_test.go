package mutators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lfichef.dev/pkg/lfichef/internal/domain/mutators"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

func TestParseEncodingSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		encodings, err := mutators.ParseEncodingSet("")
		require.NoError(t, err)
		assert.Empty(t, encodings)
	})

	t.Run("keeps argument order", func(t *testing.T) {
		encodings, err := mutators.ParseEncodingSet("dbou")
		require.NoError(t, err)
		assert.Equal(t, []m.Encoding{
			m.EncodingDoubleURL, m.EncodingUnicode, m.EncodingOverlongUTF8, m.EncodingURL,
		}, encodings)
	})

	t.Run("repeated letters collapse to first occurrence", func(t *testing.T) {
		encodings, err := mutators.ParseEncodingSet("uud")
		require.NoError(t, err)
		assert.Equal(t, []m.Encoding{m.EncodingURL, m.EncodingDoubleURL}, encodings)
	})

	t.Run("unknown letter fails", func(t *testing.T) {
		_, err := mutators.ParseEncodingSet("uz")
		assert.ErrorIs(t, err, m.ErrUnknownEncodingToken)
		assert.Contains(t, err.Error(), "z")
	})
}

func TestEncodingTransformer_SingleTechniques(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		want     string
	}{
		{"url", "u", "%2fetc%2fpasswd"},
		{"double url", "d", "%252fetc%252fpasswd"},
		{"16-bit unicode", "b", "%u002fetc%u002fpasswd"},
		{"overlong utf-8", "o", "%c0%afetc%c0%afpasswd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encodings, err := mutators.ParseEncodingSet(tt.encoding)
			require.NoError(t, err)

			variants := mutators.NewEncodingTransformer(encodings, m.OSLinux).Transform("/etc/passwd")
			require.Len(t, variants, 1)
			assert.Equal(t, m.CanonicalPath(tt.want), variants[0].Path)
			assert.Equal(t, tt.encoding, variants[0].Techniques)
		})
	}
}

func TestEncodingTransformer_PowerSet(t *testing.T) {
	t.Run("empty set yields nothing", func(t *testing.T) {
		transformer := mutators.NewEncodingTransformer(nil, m.OSLinux)
		assert.Empty(t, transformer.Transform("/etc/passwd"))
	})

	t.Run("two techniques yield three variants in mask order", func(t *testing.T) {
		encodings, err := mutators.ParseEncodingSet("ud")
		require.NoError(t, err)

		variants := mutators.NewEncodingTransformer(encodings, m.OSLinux).Transform("/etc/passwd")
		require.Len(t, variants, 3)

		assert.Equal(t, "u", variants[0].Techniques)
		assert.Equal(t, "d", variants[1].Techniques)
		assert.Equal(t, "ud", variants[2].Techniques)

		// d re-encodes the percent signs u introduced.
		assert.Equal(t, m.CanonicalPath("%2fetc%2fpasswd"), variants[0].Path)
		assert.Equal(t, m.CanonicalPath("%252fetc%252fpasswd"), variants[1].Path)
		assert.Equal(t, m.CanonicalPath("%25252fetc%25252fpasswd"), variants[2].Path)
	})

	t.Run("k techniques yield 2^k-1 distinct variants", func(t *testing.T) {
		encodings, err := mutators.ParseEncodingSet("udbo")
		require.NoError(t, err)

		variants := mutators.NewEncodingTransformer(encodings, m.OSLinux).Transform("a/b.c")
		require.Len(t, variants, 15)

		distinct := make(map[m.CanonicalPath]struct{}, len(variants))
		for _, v := range variants {
			distinct[v.Path] = struct{}{}
		}
		assert.Len(t, distinct, 15)
	})
}

func TestEncodingTransformer_ColonHandling(t *testing.T) {
	encodings, err := mutators.ParseEncodingSet("u")
	require.NoError(t, err)

	t.Run("windows encodes the drive colon", func(t *testing.T) {
		variants := mutators.NewEncodingTransformer(encodings, m.OSWindows).Transform(`c:\boot.ini`)
		require.Len(t, variants, 1)
		assert.Equal(t, m.CanonicalPath(`c%3a%5cboot%2eini`), variants[0].Path)
	})

	t.Run("linux leaves colons alone", func(t *testing.T) {
		variants := mutators.NewEncodingTransformer(encodings, m.OSLinux).Transform("a:b/c")
		require.Len(t, variants, 1)
		assert.Equal(t, m.CanonicalPath("a:b%2fc"), variants[0].Path)
	})
}
