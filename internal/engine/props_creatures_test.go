package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindren/qudprops/internal/blueprint"
	"github.com/hindren/qudprops/internal/engine"
)

func TestBleedLiquid(t *testing.T) {
	idx, ents := newWorld(t)

	oozer := blueprint.New("Oozer", ents["Creature"]).
		Set(blueprint.GroupPart, "BleedLiquid", "Liquid", "acid-1000")
	require.NoError(t, idx.Add(oozer))

	bleeder := blueprint.New("Bleeder", ents["Creature"]).
		Set(blueprint.GroupPart, "BleedLiquid", "Liquid", "blood-1000")
	require.NoError(t, idx.Add(bleeder))

	robot := blueprint.New("Robot", ents["Creature"]).
		Set(blueprint.GroupPart, "Roboticized", "ChanceOneIn", "1")
	require.NoError(t, idx.Add(robot))

	g := newEngine(t, idx)

	got := g.BleedLiquid(oozer)
	require.NotNil(t, got)
	assert.Equal(t, "acid", *got)

	// blood is the default and not worth reporting
	assert.Nil(t, g.BleedLiquid(bleeder))

	got = g.BleedLiquid(robot)
	require.NotNil(t, got)
	assert.Equal(t, "oil", *got)
}

func TestCorpse(t *testing.T) {
	idx, ents := newWorld(t)

	bear := blueprint.New("Bear", ents["Creature"]).
		Set(blueprint.GroupPart, "Corpse", "CorpseBlueprint", "Bear Corpse").
		Set(blueprint.GroupPart, "Corpse", "CorpseChance", "94")
	require.NoError(t, idx.Add(bear))

	wisp := blueprint.New("Wisp", ents["Creature"]).
		Set(blueprint.GroupPart, "Corpse", "CorpseBlueprint", "Wisp Corpse").
		Set(blueprint.GroupPart, "Corpse", "CorpseChance", "0")
	require.NoError(t, idx.Add(wisp))

	robot := blueprint.New("Robot Bear", ents["Creature"]).
		Set(blueprint.GroupPart, "Corpse", "CorpseBlueprint", "Bear Corpse").
		Set(blueprint.GroupPart, "Corpse", "CorpseChance", "94").
		Set(blueprint.GroupPart, "Roboticized", "ChanceOneIn", "1")
	require.NoError(t, idx.Add(robot))

	g := newEngine(t, idx)

	got := g.Corpse(bear)
	require.NotNil(t, got)
	assert.Equal(t, "Bear Corpse", *got)
	chance := g.CorpseChance(bear)
	require.NotNil(t, chance)
	assert.Equal(t, 94, *chance)

	assert.Nil(t, g.Corpse(wisp))
	assert.Nil(t, g.CorpseChance(wisp))
	assert.Nil(t, g.Corpse(robot))
}

func TestDynamicTable(t *testing.T) {
	idx, ents := newWorld(t)

	beetle := blueprint.New("Beetle", ents["Creature"]).
		Set(blueprint.GroupTag, "DynamicObjectsTable:Jungle_Creatures", "Value", "").
		Set(blueprint.GroupTag, "DynamicObjectsTable:Insects", "Value", "{{{remove}}}")
	require.NoError(t, idx.Add(beetle))

	g := newEngine(t, idx)

	assert.Equal(t, []string{"Jungle_Creatures"}, g.DynamicTable(beetle))
}

func TestHurtByGases(t *testing.T) {
	idx, ents := newWorld(t)

	vine := blueprint.New("Vine", ents["Creature"]).
		Mark(blueprint.GroupTag, "LivePlant")
	require.NoError(t, idx.Add(vine))

	deadVine := blueprint.New("Dead Vine", ents["Furniture"]).
		Mark(blueprint.GroupTag, "LivePlant")
	require.NoError(t, idx.Add(deadVine))

	shroom := blueprint.New("Shroom", ents["Creature"])
	require.NoError(t, idx.Add(shroom))

	g := newEngine(t, idx)

	got := g.HurtByDefoliant(vine)
	require.NotNil(t, got)
	assert.Equal(t, 1, *got)

	// no combat part means gas damage lands as if inanimate
	got = g.HurtByDefoliant(deadVine)
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)

	assert.Nil(t, g.HurtByDefoliant(shroom))
	assert.Nil(t, g.HurtByFungicide(shroom))
}

func TestMutationList(t *testing.T) {
	idx, ents := newWorld(t)

	spitter := blueprint.New("Spitter", ents["Creature"]).
		Set(blueprint.GroupMutation, "GasGeneration", "Level", "5").
		Set(blueprint.GroupMutation, "GasGeneration", "GasObject", "AcidGas")
	require.NoError(t, idx.Add(spitter))

	robot := blueprint.New("Robot", ents["Creature"]).
		Set(blueprint.GroupPart, "Roboticized", "ChanceOneIn", "1")
	require.NoError(t, idx.Add(robot))

	seeingRobot := blueprint.New("Seeing Robot", ents["Creature"]).
		Set(blueprint.GroupPart, "Roboticized", "ChanceOneIn", "1").
		Set(blueprint.GroupMutation, "NightVision", "Level", "1")
	require.NoError(t, idx.Add(seeingRobot))

	g := newEngine(t, idx)

	assert.Equal(t, []engine.MutationEntry{
		{Name: "GasGenerationAcidGas", Level: 5},
	}, g.MutationList(spitter))

	assert.Equal(t, []engine.MutationEntry{
		{Name: "DarkVision", Level: 12},
	}, g.MutationList(robot))

	assert.Equal(t, []engine.MutationEntry{
		{Name: "NightVision", Level: 1},
	}, g.MutationList(seeingRobot))
}

func TestPhase(t *testing.T) {
	idx, ents := newWorld(t)

	holo := blueprint.New("Hologram", ents["Creature"]).
		Mark(blueprint.GroupPart, "HologramMaterial")
	require.NoError(t, idx.Add(holo))

	astral := blueprint.New("Astral Tabby", ents["Creature"]).
		Mark(blueprint.GroupTag, "Astral")
	require.NoError(t, idx.Add(astral))

	spinner := blueprint.New("Phase Spider", ents["Creature"]).
		Set(blueprint.GroupMutation, "Spinnerets", "Phase", "True")
	require.NoError(t, idx.Add(spinner))

	normal := blueprint.New("Snapjaw", ents["Creature"])
	require.NoError(t, idx.Add(normal))

	g := newEngine(t, idx)

	got := g.Phase(holo)
	require.NotNil(t, got)
	assert.Equal(t, "omniphase", *got)

	got = g.Phase(astral)
	require.NotNil(t, got)
	assert.Equal(t, "out of phase", *got)

	got = g.Phase(spinner)
	require.NotNil(t, got)
	assert.Equal(t, "out of phase", *got)

	assert.Nil(t, g.Phase(normal))
}

func TestRenderStr(t *testing.T) {
	idx, ents := newWorld(t)

	snapjaw := blueprint.New("Snapjaw", ents["Creature"]).
		Set(blueprint.GroupPart, "Render", "RenderString", "s").
		Set(blueprint.GroupPart, "Render", "ColorString", "&w")
	require.NoError(t, idx.Add(snapjaw))

	gas := blueprint.New("Acid Gas", ents["Gas"]).
		Set(blueprint.GroupPart, "Gas", "ColorString", "&G")
	require.NoError(t, idx.Add(gas))

	g := newEngine(t, idx)

	got := g.RenderStr(snapjaw)
	require.NotNil(t, got)
	assert.Equal(t, "s", *got)
	color := g.ColorStr(snapjaw)
	require.NotNil(t, color)
	assert.Equal(t, "&w", *color)

	got = g.RenderStr(gas)
	require.NotNil(t, got)
	assert.Equal(t, "▓", *got)
	color = g.ColorStr(gas)
	require.NotNil(t, color)
	assert.Equal(t, "&G", *color)
}

func TestReputationBonus(t *testing.T) {
	idx, ents := newWorld(t)

	perFaction := blueprint.New("Fungal Charm", ents["Item"]).
		Set(blueprint.GroupPart, "AddsRep", "Faction", "Fungi:200,Consortium:-200")
	require.NoError(t, idx.Add(perFaction))

	shared := blueprint.New("Herder Charm", ents["Item"]).
		Set(blueprint.GroupPart, "AddsRep", "Faction", "Antelopes,Goatfolk").
		Set(blueprint.GroupPart, "AddsRep", "Value", "100")
	require.NoError(t, idx.Add(shared))

	broken := blueprint.New("Broken Charm", ents["Item"]).
		Set(blueprint.GroupPart, "AddsRep", "Faction", "Fungi:200,Apes")
	require.NoError(t, idx.Add(broken))

	g := newEngine(t, idx)

	assert.Equal(t, []engine.FactionLoyalty{
		{Faction: "Fungi", Value: 200},
		{Faction: "Consortium", Value: -200},
	}, g.ReputationBonus(perFaction))

	assert.Equal(t, []engine.FactionLoyalty{
		{Faction: "Antelopes", Value: 100},
		{Faction: "Goatfolk", Value: 100},
	}, g.ReputationBonus(shared))

	// entries with neither their own value nor a shared one are dropped
	assert.Equal(t, []engine.FactionLoyalty{
		{Faction: "Fungi", Value: 200},
	}, g.ReputationBonus(broken))
}

func TestSeeping(t *testing.T) {
	idx, ents := newWorld(t)

	seeper := blueprint.New("Miasma", ents["Gas"]).
		Set(blueprint.GroupPart, "Gas", "Seeping", "true")
	require.NoError(t, idx.Add(seeper))

	dense := blueprint.New("Dense Gas", ents["Gas"])
	require.NoError(t, idx.Add(dense))

	notGas := blueprint.New("Crate", ents["Item"])
	require.NoError(t, idx.Add(notGas))

	g := newEngine(t, idx)

	got := g.Seeping(seeper)
	require.NotNil(t, got)
	assert.Equal(t, "yes", *got)

	got = g.Seeping(dense)
	require.NotNil(t, got)
	assert.Equal(t, "no", *got)

	assert.Nil(t, g.Seeping(notGas))
}

func TestSolid(t *testing.T) {
	idx, ents := newWorld(t)

	wall := blueprint.New("Shale Wall", ents["Wall"])
	require.NoError(t, idx.Add(wall))

	door := blueprint.New("Door", ents["Wall"]).
		Set(blueprint.GroupPart, "Physics", "Solid", "false")
	require.NoError(t, idx.Add(door))

	securityDoor := blueprint.New("Security Door", door).
		Set(blueprint.GroupPart, "Physics", "Solid", "false")
	require.NoError(t, idx.Add(securityDoor))

	grenade := blueprint.New("Grenade", ents["Item"]).
		Set(blueprint.GroupPart, "Physics", "Solid", "false").
		Mark(blueprint.GroupPart, "ThrownWeapon")
	require.NoError(t, idx.Add(grenade))

	unset := blueprint.New("Mist", ents["Gas"])
	require.NoError(t, idx.Add(unset))

	g := newEngine(t, idx)

	got := g.Solid(wall)
	require.NotNil(t, got)
	assert.True(t, *got)

	got = g.Solid(door)
	require.NotNil(t, got)
	assert.False(t, *got)

	// "can be walked through" would be misleading for these
	assert.Nil(t, g.Solid(securityDoor))
	assert.Nil(t, g.Solid(grenade))

	assert.Nil(t, g.Solid(unset))
}

func TestWaterRitual(t *testing.T) {
	idx, ents := newWorld(t)

	mayor := blueprint.New("Mayor", ents["Creature"]).
		Set(blueprint.GroupXTag, "WaterRitual", "SellSkill", "Cooking and Gathering")
	require.NoError(t, idx.Add(mayor))

	hermit := blueprint.New("Hermit", ents["Creature"]).
		Mark(blueprint.GroupPart, "GivesRep")
	require.NoError(t, idx.Add(hermit))

	beast := blueprint.New("Beast", ents["Creature"])
	require.NoError(t, idx.Add(beast))

	g := newEngine(t, idx)

	ok := g.WaterRitualable(mayor)
	require.NotNil(t, ok)
	assert.True(t, *ok)
	skill := g.WaterRitualSkill(mayor)
	require.NotNil(t, skill)
	assert.Equal(t, "Cooking and Gathering", *skill)

	ok = g.WaterRitualable(hermit)
	require.NotNil(t, ok)
	assert.True(t, *ok)
	assert.Nil(t, g.WaterRitualSkill(hermit))

	assert.Nil(t, g.WaterRitualable(beast))
}

func TestOnEat(t *testing.T) {
	idx, ents := newWorld(t)

	gland := blueprint.New("Fire Gland", ents["Item"]).
		Set(blueprint.GroupPart, "BreatheOnEat", "Class", "FireBreather").
		Set(blueprint.GroupPart, "BreatheOnEat", "Level", "5")
	require.NoError(t, idx.Add(gland))

	g := newEngine(t, idx)

	assert.Equal(t, []string{"BreatheOnEatFireBreather5"}, g.OnEat(gland))
}

func TestDemeanor(t *testing.T) {
	idx, ents := newWorld(t)

	pet := blueprint.New("Pet", ents["Creature"]).
		Set(blueprint.GroupPart, "Brain", "Calm", "true")
	require.NoError(t, idx.Add(pet))

	raider := blueprint.New("Raider", ents["Creature"]).
		Set(blueprint.GroupPart, "Brain", "Hostile", "true")
	require.NoError(t, idx.Add(raider))

	bystander := blueprint.New("Bystander", ents["Creature"]).
		Set(blueprint.GroupPart, "Brain", "Hostile", "false")
	require.NoError(t, idx.Add(bystander))

	blank := blueprint.New("Blank", ents["Creature"])
	require.NoError(t, idx.Add(blank))

	g := newEngine(t, idx)

	got := g.Demeanor(pet)
	require.NotNil(t, got)
	assert.Equal(t, "docile", *got)

	got = g.Demeanor(raider)
	require.NotNil(t, got)
	assert.Equal(t, "aggressive", *got)

	got = g.Demeanor(bystander)
	require.NotNil(t, got)
	assert.Equal(t, "neutral", *got)

	assert.Nil(t, g.Demeanor(blank))
}

func TestGender(t *testing.T) {
	idx, ents := newWorld(t)

	fixed := blueprint.New("Fixed", ents["Creature"]).
		Set(blueprint.GroupTag, "Gender", "Value", "female")
	require.NoError(t, idx.Add(fixed))

	single := blueprint.New("Single", ents["Creature"]).
		Set(blueprint.GroupTag, "RandomGender", "Value", "male")
	require.NoError(t, idx.Add(single))

	random := blueprint.New("Random", ents["Creature"]).
		Set(blueprint.GroupTag, "RandomGender", "Value", "male,female")
	require.NoError(t, idx.Add(random))

	g := newEngine(t, idx)

	got := g.Gender(fixed)
	require.NotNil(t, got)
	assert.Equal(t, "female", *got)

	got = g.Gender(single)
	require.NotNil(t, got)
	assert.Equal(t, "male", *got)

	// a genuinely random gender is not a fact about the blueprint
	assert.Nil(t, g.Gender(random))
}

func TestHPAndMovespeed(t *testing.T) {
	idx, ents := newWorld(t)

	scaler := blueprint.New("Scaler", ents["Creature"]).
		Set(blueprint.GroupStat, "Hitpoints", "sValue", "20,25:30").
		Set(blueprint.GroupStat, "MoveSpeed", "Value", "80")
	require.NoError(t, idx.Add(scaler))

	flat := blueprint.New("Flat", ents["Creature"]).
		Set(blueprint.GroupStat, "Hitpoints", "Value", "500")
	require.NoError(t, idx.Add(flat))

	dagger := blueprint.New("Dagger", ents["MeleeWeapon"])
	require.NoError(t, idx.Add(dagger))

	g := newEngine(t, idx)

	hp := g.HP(scaler)
	require.NotNil(t, hp)
	assert.Equal(t, "20,25:30", *hp)

	hp = g.HP(flat)
	require.NotNil(t, hp)
	assert.Equal(t, "500", *hp)

	assert.Nil(t, g.HP(dagger))

	ms := g.Movespeed(scaler)
	require.NotNil(t, ms)
	assert.Equal(t, 120, *ms)
}

func TestInventoryItems(t *testing.T) {
	idx, ents := newWorld(t)

	scavenger := blueprint.New("Scavenger", ents["Creature"]).
		Set(blueprint.GroupInventory, "Dagger", "Number", "1").
		Set(blueprint.GroupInventory, "Torch", "Chance", "50").
		Mark(blueprint.GroupInventory, "*Junk 1")
	require.NoError(t, idx.Add(scavenger))

	g := newEngine(t, idx)

	assert.Equal(t, []engine.InventoryItem{
		{Name: "Dagger", Count: "1", Equipped: "no", Chance: "100"},
		{Name: "Torch", Count: "1", Equipped: "no", Chance: "50"},
	}, g.InventoryItems(scavenger))
}
