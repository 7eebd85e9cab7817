package corpus

// Doc is the raw training text of one language.
type Doc struct {
	// Lang identifies the language, e.g. "en" or "nederlands".
	Lang string `json:"lang"`

	Text string `json:"text"`
}

// Library is a collection of Doc, one per language. Its order is the load
// order of the corpora.
type Library []Doc

// Langs returns the language identifiers in library order.
func (l Library) Langs() []string {
	langs := make([]string, 0, len(l))
	for _, d := range l {
		langs = append(langs, d.Lang)
	}
	return langs
}

// FromMap builds a Library from a language to text mapping, in the order
// given by langs.
func FromMap(texts map[string]string, langs ...string) Library {
	lib := make(Library, 0, len(langs))
	for _, lang := range langs {
		lib = append(lib, Doc{Lang: lang, Text: texts[lang]})
	}
	return lib
}

// Example is a sentence labeled with its true language.
type Example struct {
	Sentence string `json:"sentence" yaml:"sentence"`
	Lang     string `json:"lang" yaml:"lang"`
}

// TestSet is an ordered sequence of labeled examples.
type TestSet []Example

// DefaultTestSet returns the small fixed labeled set used when no test set
// file is configured.
func DefaultTestSet() TestSet {
	return TestSet{
		{Sentence: "Hoe gaat het vandaag?", Lang: "nederlands"},
		{Sentence: "How are you doing today?", Lang: "engels"},
	}
}
