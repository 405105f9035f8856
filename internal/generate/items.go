package generate

// ItemKind tags one entry of the item catalog.
type ItemKind uint8

const (
	ItemHyperflask ItemKind = iota
	ItemPrismShard
	ItemNullCloak
	ItemTesseract
	ItemMemoryScroll
	ItemVoidEssence
	itemKindCount
)

// ItemSpec holds the constructor parameters for one item kind.
type ItemSpec struct {
	Glyph string
	Name  string
	Power int // heal amount, attack bonus, turns of effect; depends on kind
}

var itemCatalog = [itemKindCount]ItemSpec{
	ItemHyperflask:   {Glyph: "🧪", Name: "Hyperflask", Power: 15},
	ItemPrismShard:   {Glyph: "💎", Name: "Prism Shard", Power: 2},
	ItemNullCloak:    {Glyph: "🫥", Name: "Null Cloak", Power: 8},
	ItemTesseract:    {Glyph: "📦", Name: "Tesseract Cube", Power: 1},
	ItemMemoryScroll: {Glyph: "📜", Name: "Memory Scroll", Power: 1},
	ItemVoidEssence:  {Glyph: "🌑", Name: "Void Essence", Power: 5},
}

// Item is a placed item record built from the catalog.
type Item struct {
	Kind ItemKind
	ItemSpec
}

// NewItem builds the record for kind. Unknown kinds yield a nameless item
// with ok false.
func NewItem(kind ItemKind) (Item, bool) {
	if kind >= itemKindCount {
		return Item{Kind: kind}, false
	}
	return Item{Kind: kind, ItemSpec: itemCatalog[kind]}, true
}

// AllItemKinds lists every catalog entry in tag order.
func AllItemKinds() []ItemKind {
	out := make([]ItemKind, 0, itemKindCount)
	for k := ItemKind(0); k < itemKindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k ItemKind) String() string {
	if k >= itemKindCount {
		return "unknown"
	}
	return itemCatalog[k].Name
}
