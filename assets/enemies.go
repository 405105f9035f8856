package assets

import "emoji-caverns/internal/generate"

type enemyTemplate struct {
	glyph, name                 string
	baseATK, baseDEF, baseHP    int
	atkScale, defScale, hpScale int // growth per four floors past minFloor
	sight                       int
	minFloor, maxFloor          int
}

var enemyTemplates = []enemyTemplate{
	{GlyphCrystalCrawl, "Crystal Crawl", 3, 2, 8, 1, 1, 4, 5, 1, 3},
	{GlyphNeonSpecter, "Neon Specter", 4, 1, 6, 2, 0, 3, 7, 1, 4},
	{GlyphThoughtLeech, "Thought Leech", 4, 1, 10, 2, 1, 4, 8, 2, 6},
	{GlyphPrismDrake, "Prism Drake", 6, 3, 14, 3, 1, 6, 6, 2, 7},
	{GlyphVoidTendril, "Void Tendril", 7, 0, 12, 3, 0, 5, 4, 3, 8},
	{GlyphFractalGolem, "Fractal Golem", 5, 5, 20, 2, 3, 8, 5, 3, 10},
	{GlyphEntropyBloom, "Entropy Bloom", 8, 2, 18, 3, 1, 6, 9, 4, 10},
	{GlyphMembraneWisp, "Membrane Wisp", 6, 2, 14, 2, 1, 5, 8, 6, 9},
	{GlyphArchiveMoth, "Archive Moth", 7, 3, 16, 3, 1, 5, 9, 7, 10},
	{GlyphFoundryImp, "Foundry Imp", 9, 4, 22, 3, 2, 7, 6, 8, 10},
	{GlyphApexWarden, "Apex Warden", 12, 6, 60, 4, 2, 10, 10, 10, 10},
}

// EnemyTable returns the enemies that can appear on floor with stats grown
// by how far below their first floor they appear.
func EnemyTable(floor int) []generate.EnemySpawnEntry {
	floor = clampFloor(floor)
	var out []generate.EnemySpawnEntry
	for _, t := range enemyTemplates {
		if floor < t.minFloor || floor > t.maxFloor {
			continue
		}
		depth := floor - t.minFloor
		out = append(out, generate.EnemySpawnEntry{
			Glyph:      t.glyph,
			Name:       t.name,
			Attack:     t.baseATK + depth*t.atkScale/4,
			Defense:    t.baseDEF + depth*t.defScale/4,
			MaxHP:      t.baseHP + depth*t.hpScale/4,
			SightRange: t.sight,
		})
	}
	return out
}
