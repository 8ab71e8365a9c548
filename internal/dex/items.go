package dex

func item(name string, desc string) Item {
	return Item{ID: ToID(name), Name: name, Desc: desc}
}

func typeBooster(name string, t Type) Item {
	it := item(name, "Boosts the power of "+t.String()+" moves.")
	it.BoostType = t
	return it
}

func berry(name, desc string) Item {
	it := item(name, desc)
	it.Berry = true
	return it
}

func itemTable(list ...Item) map[string]Item {
	return tableOf(func(it Item) string { return it.ID }, list...)
}

var gen2Items = itemTable(
	item("Leftovers", "Restores 1/16 max HP at the end of each turn."),
	item("Focus Band", "Occasionally survives a KO with 1 HP."),
	item("Quick Claw", "Occasionally moves first within its priority bracket."),
	item("King's Rock", "Adds a flinch chance to damaging moves."),
	item("Scope Lens", "Raises critical-hit stage by one."),
	item("Bright Powder", "Lowers foes' accuracy."),
	item("Light Ball", "Doubles Pikachu's Special Attack."),
	item("Thick Club", "Doubles Cubone's and Marowak's Attack."),
	item("Metal Powder", "Doubles Ditto's Defense."),
	typeBooster("Charcoal", TypeFire),
	typeBooster("Mystic Water", TypeWater),
	typeBooster("Miracle Seed", TypeGrass),
	typeBooster("Magnet", TypeElectric),
	typeBooster("Never-Melt Ice", TypeIce),
	typeBooster("Twisted Spoon", TypePsychic),
	typeBooster("Black Belt", TypeFighting),
	typeBooster("Sharp Beak", TypeFlying),
	typeBooster("Poison Barb", TypePoison),
	typeBooster("Soft Sand", TypeGround),
	typeBooster("Hard Stone", TypeRock),
	typeBooster("Silver Powder", TypeBug),
	typeBooster("Spell Tag", TypeGhost),
	typeBooster("Dragon Fang", TypeDragon),
	typeBooster("Black Glasses", TypeDark),
	typeBooster("Metal Coat", TypeSteel),
	typeBooster("Pink Bow", TypeNormal),
	berry("Berry", "Restores 10 HP at 1/2 HP or less."),
	berry("Gold Berry", "Restores 30 HP at 1/2 HP or less."),
	berry("Mint Berry", "Cures sleep."),
	berry("PRZ Cure Berry", "Cures paralysis."),
	berry("Burnt Berry", "Cures freeze."),
	berry("Ice Berry", "Cures burn."),
	berry("PSN Cure Berry", "Cures poison."),
	berry("Bitter Berry", "Cures confusion."),
	berry("Miracle Berry", "Cures any status and confusion."),
)

var gen3Items = itemTable(
	item("Choice Band", "Attack x1.5, but locks the holder into one move."),
	item("Shell Bell", "Restores 1/8 of the damage dealt."),
	item("White Herb", "Restores lowered stat stages once."),
	typeBooster("Silk Scarf", TypeNormal),
	berry("Oran Berry", "Restores 10 HP at 1/2 HP or less."),
	berry("Sitrus Berry", "Restores 30 HP at 1/2 HP or less."),
	berry("Cheri Berry", "Cures paralysis."),
	berry("Chesto Berry", "Cures sleep."),
	berry("Pecha Berry", "Cures poison."),
	berry("Rawst Berry", "Cures burn."),
	berry("Aspear Berry", "Cures freeze."),
	berry("Persim Berry", "Cures confusion."),
	berry("Lum Berry", "Cures any status and confusion."),
)

var gen4Items = itemTable(
	item("Choice Specs", "Special Attack x1.5, but locks the holder into one move."),
	item("Choice Scarf", "Speed x1.5, but locks the holder into one move."),
	item("Life Orb", "Damage x1.3 at the cost of 1/10 max HP per attack."),
	item("Expert Belt", "Super effective damage x1.2."),
	item("Muscle Band", "Physical move power x1.1."),
	item("Wise Glasses", "Special move power x1.1."),
	item("Focus Sash", "Survives a KO with 1 HP from full health."),
	item("Black Sludge", "Heals Poison types 1/16; damages others 1/8."),
	berry("Sitrus Berry", "Restores 1/4 max HP at 1/2 HP or less."),
)
