package domain

// Language is a 2-letter ISO 639-1 language code.
type Language string

// Target languages: the languages a noun's gendered translation is looked up in.
const (
	LangArabic     Language = "ar"
	LangFrench     Language = "fr"
	LangGerman     Language = "de"
	LangHindi      Language = "hi"
	LangItalian    Language = "it"
	LangPortuguese Language = "pt"
	LangRussian    Language = "ru"
	LangSpanish    Language = "es"
)

// UI-only languages: valid for meanings and memory tricks, never for the
// target-language filter.
const (
	LangEnglish  Language = "en"
	LangJapanese Language = "ja"
	LangChinese  Language = "zh"
)

// TargetLanguages is the closed set of languages translations exist in.
var TargetLanguages = []Language{
	LangArabic, LangFrench, LangGerman, LangHindi,
	LangItalian, LangPortuguese, LangRussian, LangSpanish,
}

// UILanguages is the closed set of display languages, a superset of
// TargetLanguages.
var UILanguages = append([]Language{LangEnglish, LangJapanese, LangChinese}, TargetLanguages...)

func (l Language) String() string { return string(l) }

// IsTarget reports whether l is a valid target language.
func (l Language) IsTarget() bool {
	for _, t := range TargetLanguages {
		if l == t {
			return true
		}
	}
	return false
}

// IsUI reports whether l is a valid UI language.
func (l Language) IsUI() bool {
	for _, u := range UILanguages {
		if l == u {
			return true
		}
	}
	return false
}

// Gender is a grammatical noun class.
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
	GenderNeuter    Gender = "n"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}
