package detect

import "testing"

func TestLanguage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"hiragana", "こんにちは", "ja"},
		{"katakana", "コンピュータ", "ja"},
		{"kanji without chinese function words", "翻訳", "ja"},
		{"kanji mixed with kana", "これは翻訳です", "ja"},
		{"chinese with function words", "这是一个的测试", "zh"},
		{"chinese function word alone", "的", "zh"},
		{"function word plus kana stays japanese", "的です", "ja"},
		{"hangul", "안녕하세요", "ko"},
		{"latin ascii", "Hello world", "en"},
		{"empty", "", "en"},
		{"digits and punctuation", "12345!?", "en"},
		{"cyrillic falls back to en", "Привет", "en"},
		{"latin with trailing hangul", "abc 한국", "ko"},
		{"kana wins over hangul", "カナ 한국", "ja"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Language(tc.text)
			if got.Language != tc.want {
				t.Fatalf("Language(%q) = %q, want %q", tc.text, got.Language, tc.want)
			}
		})
	}
}

func TestLanguageOnlyHangulAlwaysKo(t *testing.T) {
	for _, text := range []string{"가", "힣", "번역기", "가나다라마바사"} {
		if got := Language(text).Language; got != "ko" {
			t.Fatalf("Language(%q) = %q, want ko", text, got)
		}
	}
}

func TestLanguageOnlyLatinAlwaysEn(t *testing.T) {
	for _, text := range []string{"a", "Z", "translate", "TheQuickBrownFox"} {
		if got := Language(text).Language; got != "en" {
			t.Fatalf("Language(%q) = %q, want en", text, got)
		}
	}
}
