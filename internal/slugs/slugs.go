// Package slugs derives URL-safe identifiers for categories and posts.
package slugs

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

// Alphabet is the set of characters a disambiguating suffix is drawn from.
const Alphabet = shortuuid.DefaultAlphabet

// PostSuffixLength is the number of random characters appended to a post slug.
const PostSuffixLength = 2

// SuffixGenerator supplies short unpredictable codes.
type SuffixGenerator interface {
	Suffix(n int) string
}

// ShortUUID draws suffixes from a base57-encoded random UUID.
type ShortUUID struct{}

// Suffix returns the first n characters of a fresh short UUID.
func (ShortUUID) Suffix(n int) string {
	code := shortuuid.DefaultEncoder.Encode(uuid.New())
	if n > len(code) {
		n = len(code)
	}
	return code[:n]
}

// Normalize converts text into a lowercase, hyphen separated identifier.
func Normalize(text string) string {
	return slug.Make(text)
}

// PostSlug builds the slug of a post: the normalized title plus a random suffix.
func PostSlug(title string, gen SuffixGenerator) string {
	return Normalize(title) + "-" + gen.Suffix(PostSuffixLength)
}
