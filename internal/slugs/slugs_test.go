package slugs_test

import (
	"strings"
	"testing"

	"blog/internal/slugs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSuffix string

func (f fixedSuffix) Suffix(n int) string { return string(f)[:n] }

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Tech News":          "tech-news",
		"Hello World":        "hello-world",
		"  Go   is   fun!  ": "go-is-fun",
		"Already-Slugged":    "already-slugged",
		"Ünïcode Tïtle":      "unicode-title",
		"Numbers 2 and 3.5":  "numbers-2-and-3-5",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugs.Normalize(in), "normalize(%q)", in)
	}
}

func TestShortUUID_Suffix(t *testing.T) {
	gen := slugs.ShortUUID{}
	for i := 0; i < 50; i++ {
		s := gen.Suffix(slugs.PostSuffixLength)
		require.Len(t, s, 2)
		for _, r := range s {
			assert.True(t, strings.ContainsRune(slugs.Alphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestPostSlug(t *testing.T) {
	assert.Equal(t, "hello-world-ab", slugs.PostSlug("Hello World", fixedSuffix("abcdef")))

	s := slugs.PostSlug("Hello World", slugs.ShortUUID{})
	assert.True(t, strings.HasPrefix(s, "hello-world-"))
	assert.Len(t, s, len("hello-world-")+2)
}
