// Package catalog holds the storefront copy. Each locale directory carries
// one YAML file per namespace (locales/en-US/store.yaml) and every key is
// prefixed with its namespace, so templates print "store.cart.quantity"
// through golang.org/x/text/message.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

const catalogGlob = "locales/*/*.yaml"

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustRegister(LoadEmbedded())

// Bundle is the loaded copy, keyed by locale then message key.
type Bundle struct {
	messages map[string]map[string]string
}

type copyFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded reads the copy compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS reads every locales/<locale>/<namespace>.yaml file in fsys.
// The base locale must be present.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("list copy files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no copy files under %s", catalogGlob)
	}
	sort.Strings(paths)

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, p := range paths {
		f, err := readCopyFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("copy file %s: %w", p, err)
		}
		if err := b.merge(f); err != nil {
			return nil, fmt.Errorf("copy file %s: %w", p, err)
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("no copy for base locale %s", BaseLocale)
	}
	return b, nil
}

func readCopyFile(fsys fs.FS, p string) (copyFile, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return copyFile{}, err
	}
	var f copyFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return copyFile{}, fmt.Errorf("decode: %w", err)
	}
	f.Locale = strings.TrimSpace(f.Locale)
	f.Namespace = strings.TrimSpace(f.Namespace)

	dir, name := path.Split(p)
	switch {
	case f.Locale != path.Base(dir):
		return copyFile{}, fmt.Errorf("locale %q does not match directory %q", f.Locale, path.Base(dir))
	case f.Namespace != strings.TrimSuffix(name, path.Ext(name)):
		return copyFile{}, fmt.Errorf("namespace %q does not match file name %q", f.Namespace, name)
	case len(f.Messages) == 0:
		return copyFile{}, fmt.Errorf("no messages")
	}
	return f, nil
}

func (b *Bundle) merge(f copyFile) error {
	dst, ok := b.messages[f.Locale]
	if !ok {
		dst = make(map[string]string, len(f.Messages))
		b.messages[f.Locale] = dst
	}
	for raw, text := range f.Messages {
		key := strings.TrimSpace(raw)
		if !strings.HasPrefix(key, f.Namespace+".") || key == f.Namespace+"." {
			return fmt.Errorf("key %q is outside namespace %q", raw, f.Namespace)
		}
		if _, dup := dst[key]; dup {
			return fmt.Errorf("key %q already defined for %s", key, f.Locale)
		}
		dst[key] = text
	}
	return nil
}

// Register installs every message with x/text/message. A regional locale
// also registers under its bare language so "en" requests find "en-US" copy.
func (b *Bundle) Register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("locale %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if lang, conf := tag.Base(); conf != language.No {
			if bare := language.Make(lang.String()); bare != tag {
				tags = append(tags, bare)
			}
		}
		for key, text := range b.messages[locale] {
			for _, t := range tags {
				if err := message.SetString(t, key, text); err != nil {
					return fmt.Errorf("register %s %q: %w", t, key, err)
				}
			}
		}
	}
	return nil
}

// Printer formats base-locale copy.
func (b *Bundle) Printer() *message.Printer {
	return message.NewPrinter(language.MustParse(BaseLocale))
}

// Locales lists the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns the copy for key, falling back to the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if b == nil || key == "" {
		return "", false
	}
	for _, l := range []string{strings.TrimSpace(locale), BaseLocale} {
		if text, ok := b.messages[l][key]; ok {
			return text, true
		}
	}
	return "", false
}

// Namespace returns a copy of the locale's messages whose keys start with
// namespace.
func (b *Bundle) Namespace(locale, namespace string) map[string]string {
	out := make(map[string]string)
	if b == nil {
		return out
	}
	prefix := strings.TrimSpace(namespace) + "."
	for key, text := range b.messages[strings.TrimSpace(locale)] {
		if strings.HasPrefix(key, prefix) {
			out[key] = text
		}
	}
	return out
}

func mustRegister(b *Bundle, err error) *Bundle {
	if err == nil {
		err = b.Register()
	}
	if err != nil {
		panic(fmt.Sprintf("storefront copy: %v", err))
	}
	return b
}
