package keywords

import (
	"strings"
	"unicode"
)

// choseong is the leading-consonant jamo table indexed by
// (syllable - 0xAC00) / 588.
var choseong = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
)

// InitialSkeleton reduces a string to its initial-consonant skeleton:
// each Hangul syllable becomes its leading jamo, Latin letters are
// lower-cased, digits pass through, everything else is dropped.
// "스타벅스" becomes "ㅅㅌㅂㅅ".
func InitialSkeleton(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= hangulBase && r <= hangulEnd:
			b.WriteRune(choseong[(r-hangulBase)/588])
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsHangul reports whether the string contains at least one Hangul syllable.
func IsHangul(s string) bool {
	for _, r := range s {
		if r >= hangulBase && r <= hangulEnd {
			return true
		}
	}
	return false
}
