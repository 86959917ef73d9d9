package domain

import "testing"

func TestLanguage_IsTarget(t *testing.T) {
	t.Parallel()

	for _, l := range TargetLanguages {
		if !l.IsTarget() {
			t.Errorf("%s should be a target language", l)
		}
	}
	for _, l := range []Language{LangEnglish, LangJapanese, LangChinese, "xx", ""} {
		if l.IsTarget() {
			t.Errorf("%s should not be a target language", l)
		}
	}
}

func TestLanguage_IsUI(t *testing.T) {
	t.Parallel()

	for _, l := range UILanguages {
		if !l.IsUI() {
			t.Errorf("%s should be a UI language", l)
		}
	}
	if Language("xx").IsUI() {
		t.Error("xx should not be a UI language")
	}
}

func TestGender_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Gender{GenderMasculine, GenderFeminine, GenderNeuter}
	for _, g := range valid {
		if !g.IsValid() {
			t.Errorf("%s should be valid", g)
		}
	}
	for _, g := range []Gender{"", "x", "M", "masculine"} {
		if g.IsValid() {
			t.Errorf("%q should be invalid", g)
		}
	}
}
