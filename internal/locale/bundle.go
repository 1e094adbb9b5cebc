package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Vars are the values substituted into {{name}} placeholders.
type Vars map[string]any

// Bundle holds flattened message catalogs keyed by language then dotted key
// ("hero.cta.primary").
type Bundle struct {
	fallback Tag
	messages map[Tag]map[string]string
}

// DefaultBundle returns the catalogs shipped with the binary. They are part
// of the build, so a parse failure is a programming error.
func DefaultBundle() *Bundle {
	b, err := LoadBundle(embedded, "locales", English)
	if err != nil {
		log.Fatalf("[locale] embedded catalogs: %v", err)
	}
	return b
}

// LoadBundle reads <dir>/<tag>.yaml for every supported tag in fsys. Missing
// files are skipped, except for the fallback language.
func LoadBundle(fsys fs.FS, dir string, fallback Tag) (b *Bundle, err error) {
	b = &Bundle{fallback: fallback, messages: make(map[Tag]map[string]string)}
	for _, tag := range Supported {
		name := path.Join(dir, string(tag)+".yaml")
		var data []byte
		data, err = fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && tag != fallback {
				continue
			}
			return nil, errors.Wrapf(err, "read %s", name)
		}
		var tree map[string]any
		if err = yaml.Unmarshal(data, &tree); err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		b.messages[tag] = flat
	}
	return b, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

var placeholder = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// T looks key up in tag's catalog, then the fallback catalog, and finally
// returns the key itself. Placeholders with no matching var are left as is.
func (b *Bundle) T(tag Tag, key string, vars Vars) string {
	msg, ok := b.messages[tag][key]
	if !ok {
		msg, ok = b.messages[b.fallback][key]
	}
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return msg
	}
	return placeholder.ReplaceAllStringFunc(msg, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

// Has reports whether tag's own catalog defines key.
func (b *Bundle) Has(tag Tag, key string) bool {
	_, ok := b.messages[tag][key]
	return ok
}

// Missing lists keys present in the fallback catalog but absent from tag's.
func (b *Bundle) Missing(tag Tag) []string {
	var out []string
	for k := range b.messages[b.fallback] {
		if !b.Has(tag, k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Translator binds a bundle to one language.
type Translator struct {
	Bundle *Bundle
	Tag    Tag
}

// For returns a Translator for tag.
func (b *Bundle) For(tag Tag) Translator {
	return Translator{Bundle: b, Tag: tag}
}

// T translates key with optional vars.
func (t Translator) T(key string, vars ...Vars) string {
	var v Vars
	if len(vars) > 0 {
		v = vars[0]
	}
	return t.Bundle.T(t.Tag, key, v)
}

// Keys returns every key of tag's catalog, sorted.
func (b *Bundle) Keys(tag Tag) []string {
	out := make([]string, 0, len(b.messages[tag]))
	for k := range b.messages[tag] {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// String summarizes the bundle for logs.
func (b *Bundle) String() string {
	parts := make([]string, 0, len(b.messages))
	for _, tag := range Supported {
		if m, ok := b.messages[tag]; ok {
			parts = append(parts, fmt.Sprintf("%s:%d", tag, len(m)))
		}
	}
	return "bundle(" + strings.Join(parts, " ") + ")"
}
