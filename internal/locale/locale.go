// Package locale holds the user-facing message catalog.
package locale

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain catalogs are loaded from.
const Domain = "default"

//go:embed po/en.po
var defaultCatalog []byte

type catalog interface {
	Get(str string, vars ...interface{}) string
}

var active catalog = builtin()

func builtin() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(defaultCatalog)
	return po
}

// Load switches to the catalog for lang under dir, laid out as
// dir/<lang>/LC_MESSAGES/default.po. An empty dir restores the built-in
// English catalog.
func Load(dir, lang string) error {
	if dir == "" {
		active = builtin()
		return nil
	}
	path := filepath.Join(dir, lang, "LC_MESSAGES", Domain+".po")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("load locale %q: %w", lang, err)
	}
	l := gotext.NewLocale(dir, lang)
	l.AddDomain(Domain)
	active = l
	return nil
}

// T returns the message for key formatted with vars. Unknown keys come back
// unchanged.
func T(key string, vars ...interface{}) string {
	return active.Get(key, vars...)
}
