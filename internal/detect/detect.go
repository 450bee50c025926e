// Package detect classifies text into a small closed set of language codes
// using character-range heuristics. It is a cheap pre-filter for pre-filling
// the source-language field, not a real classifier: Latin-script languages
// other than English are all reported as "en", and the Chinese/Japanese split
// leans on a handful of common Chinese function-word characters.
package detect

import "github.com/kazukinakai/neural-translator/internal/domain"

// Common Chinese function-word characters used to tell zh from ja when a text
// contains CJK ideographs but no kana. Known-imprecise heuristic, kept as-is.
var chineseFunctionChars = map[rune]struct{}{
	'的': {}, '是': {}, '在': {}, '有': {}, '了': {}, '和': {},
}

func isHiragana(r rune) bool { return r >= 0x3040 && r <= 0x309F }
func isKatakana(r rune) bool { return r >= 0x30A0 && r <= 0x30FF }
func isKana(r rune) bool     { return r >= 0x3040 && r <= 0x30FF }
func isCJK(r rune) bool      { return r >= 0x4E00 && r <= 0x9FAF }
func isHangul(r rune) bool   { return r >= 0xAC00 && r <= 0xD7AF }

// Language returns the ISO 639-1 code for text. Total function; defaults to "en".
func Language(text string) domain.DetectLanguageResponse {
	hasJaCandidate := false
	hasKana := false
	hasChineseFn := false
	hasHangul := false
	for _, r := range text {
		if isHiragana(r) || isKatakana(r) || isCJK(r) {
			hasJaCandidate = true
		}
		if isKana(r) {
			hasKana = true
		}
		if isCJK(r) {
			if _, ok := chineseFunctionChars[r]; ok {
				hasChineseFn = true
			}
		}
		if isHangul(r) {
			hasHangul = true
		}
	}
	if hasJaCandidate {
		if hasChineseFn && !hasKana {
			return domain.DetectLanguageResponse{Language: "zh"}
		}
		return domain.DetectLanguageResponse{Language: "ja"}
	}
	if hasHangul {
		return domain.DetectLanguageResponse{Language: "ko"}
	}
	return domain.DetectLanguageResponse{Language: "en"}
}
