package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/storage"

	"golang.org/x/text/encoding"
)

// CorpusExt is the extension of corpus files
const CorpusExt = ".txt"

// CorpusStore reads and writes one <lang>.txt file per language in a
// directory.
type CorpusStore struct {
	root string
	enc  encoding.Encoding
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

// NewCorpusStore creates a filesystem corpus handler for the directory root.
// Files are decoded from (and encoded to) the named encoding.
func NewCorpusStore(root, encodingName string) (*CorpusStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	return &CorpusStore{root: root, enc: enc}, nil
}

// LangForFile returns the language of a corpus file name: the name up to the
// first dot.
func LangForFile(name string) string {
	lang, _, _ := strings.Cut(name, ".")
	return lang
}

// files maps each language to its corpus file. When several files share a
// language, "<lang>.txt" wins over dotted variants such as "en.news.txt";
// among variants alone the first by name wins.
func (h *CorpusStore) files() (map[string]fs.DirEntry, error) {
	dirEntries, err := os.ReadDir(h.root)
	if err != nil {
		return nil, err
	}

	files := map[string]fs.DirEntry{}
	for _, file := range dirEntries {
		if file.IsDir() || filepath.Ext(file.Name()) != CorpusExt {
			continue
		}

		lang := LangForFile(file.Name())
		if _, ok := files[lang]; ok && file.Name() != lang+CorpusExt {
			continue
		}
		files[lang] = file
	}

	return files, nil
}

func (h *CorpusStore) List() ([]storage.Entry, error) {
	files, err := h.files()
	if err != nil {
		return nil, err
	}

	entries := make([]storage.Entry, 0, len(files))
	for lang, file := range files {
		info, err := file.Info()
		if err != nil {
			return nil, err
		}

		entries = append(entries, storage.Entry{Lang: lang, Size: info.Size()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Lang < entries[j].Lang
	})

	return entries, nil
}

func (h *CorpusStore) Read(lang string) (corpus.Doc, error) {
	files, err := h.files()
	if err != nil {
		return corpus.Doc{}, err
	}

	file, ok := files[lang]
	if !ok {
		return corpus.Doc{}, fmt.Errorf("%w: %s", storage.ErrNotFound, lang)
	}

	return h.readFile(lang, filepath.Join(h.root, file.Name()))
}

func (h *CorpusStore) readFile(lang, path string) (corpus.Doc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return corpus.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	text, err := h.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return corpus.Doc{}, fmt.Errorf("decoding error in %s: %w", path, err)
	}

	return corpus.Doc{Lang: lang, Text: string(text)}, nil
}

func (h *CorpusStore) ReadAll(cb storage.ProgressFunc) (corpus.Library, error) {
	files, err := h.files()
	if err != nil {
		return nil, err
	}

	langs := make([]string, 0, len(files))
	for lang := range files {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	lib := make(corpus.Library, 0, len(langs))
	for i, lang := range langs {
		if cb != nil {
			cb(i+1, len(langs), lang)
		}

		doc, err := h.readFile(lang, filepath.Join(h.root, files[lang].Name()))
		if err != nil {
			return nil, err
		}
		lib = append(lib, doc)
	}

	return lib, nil
}

func (h *CorpusStore) Write(doc corpus.Doc) error {
	if doc.Lang == "" || strings.ContainsAny(doc.Lang, `./\`) {
		return fmt.Errorf("invalid language name: %q", doc.Lang)
	}

	data, err := h.enc.NewEncoder().Bytes([]byte(doc.Text))
	if err != nil {
		return fmt.Errorf("encoding error for %s: %w", doc.Lang, err)
	}

	err = os.WriteFile(filepath.Join(h.root, doc.Lang+CorpusExt), data, 0644)
	if err != nil {
		return err
	}

	return nil
}
