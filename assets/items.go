package assets

import "emoji-caverns/internal/generate"

// itemMinFloor is the first floor on which each item kind can appear.
var itemMinFloor = map[generate.ItemKind]int{
	generate.ItemHyperflask:   1,
	generate.ItemMemoryScroll: 1,
	generate.ItemPrismShard:   2,
	generate.ItemNullCloak:    3,
	generate.ItemTesseract:    3,
	generate.ItemVoidEssence:  6,
}

// ItemTable returns the item kinds available on floor in catalog order.
func ItemTable(floor int) []generate.ItemKind {
	floor = clampFloor(floor)
	var out []generate.ItemKind
	for _, k := range generate.AllItemKinds() {
		if m, ok := itemMinFloor[k]; ok && m <= floor {
			out = append(out, k)
		}
	}
	return out
}
