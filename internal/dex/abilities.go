package dex

func ability(name, desc string) Ability {
	return Ability{ID: ToID(name), Name: name, Desc: desc}
}

func abilityTable(list ...Ability) map[string]Ability {
	return tableOf(func(a Ability) string { return a.ID }, list...)
}

var gen3Abilities = abilityTable(
	ability("Arena Trap", "Prevents grounded foes from switching out."),
	ability("Blaze", "Fire moves gain 50% power at 1/3 HP or less."),
	ability("Chlorophyll", "Doubles Speed in sun."),
	ability("Clear Body", "Prevents foes from lowering stats."),
	ability("Cute Charm", "30% chance to infatuate on contact."),
	ability("Early Bird", "Wakes up twice as fast."),
	ability("Effect Spore", "10% chance to poison, paralyze or sleep on contact."),
	ability("Flash Fire", "Immune to Fire; powers up own Fire moves when hit by one."),
	ability("Guts", "Attack x1.5 while statused; ignores burn's Attack drop."),
	ability("Huge Power", "Doubles Attack."),
	ability("Hustle", "Attack x1.5, physical accuracy x0.8."),
	ability("Hyper Cutter", "Prevents Attack drops."),
	ability("Illuminate", "No battle effect."),
	ability("Immunity", "Cannot be poisoned."),
	ability("Inner Focus", "Cannot flinch."),
	ability("Intimidate", "Lowers the foe's Attack on switch-in."),
	ability("Keen Eye", "Prevents accuracy drops."),
	ability("Levitate", "Immune to Ground moves and Spikes."),
	ability("Lightning Rod", "No singles effect before generation 5."),
	ability("Limber", "Cannot be paralyzed."),
	ability("Marvel Scale", "Defense x1.5 while statused."),
	ability("Natural Cure", "Status is cured on switch-out."),
	ability("Oblivious", "Cannot be infatuated."),
	ability("Overgrow", "Grass moves gain 50% power at 1/3 HP or less."),
	ability("Own Tempo", "Cannot be confused."),
	ability("Pressure", "Foes' moves against it use an extra PP."),
	ability("Pure Power", "Doubles Attack."),
	ability("Rock Head", "No recoil damage."),
	ability("Sand Stream", "Summons a sandstorm on switch-in."),
	ability("Sand Veil", "Evasion x1.25 in a sandstorm; immune to sandstorm."),
	ability("Serene Grace", "Doubles secondary effect chances."),
	ability("Shell Armor", "Cannot be struck by critical hits."),
	ability("Shield Dust", "Blocks secondary effects of incoming moves."),
	ability("Soundproof", "Immune to sound moves."),
	ability("Static", "30% chance to paralyze on contact."),
	ability("Sturdy", "Immune to one-hit KO moves."),
	ability("Swarm", "Bug moves gain 50% power at 1/3 HP or less."),
	ability("Swift Swim", "Doubles Speed in rain."),
	ability("Synchronize", "Passes burn, poison or paralysis back to its source."),
	ability("Thick Fat", "Halves damage from Fire and Ice moves."),
	ability("Torrent", "Water moves gain 50% power at 1/3 HP or less."),
	ability("Trace", "Copies the foe's ability on switch-in."),
	ability("Truant", "Can only act every other turn."),
	ability("Volt Absorb", "Electric moves heal 1/4 HP instead of dealing damage."),
	ability("Water Absorb", "Water moves heal 1/4 HP instead of dealing damage."),
	ability("Wonder Guard", "Only super effective moves hit."),
	ability("Drizzle", "Summons rain on switch-in."),
	ability("Drought", "Summons sun on switch-in."),
	ability("Speed Boost", "Speed rises one stage at the end of each turn."),
	ability("Shed Skin", "30% chance to cure status at the end of each turn."),
	ability("Rain Dish", "Restores 1/16 HP each turn in rain."),
	ability("Compound Eyes", "Accuracy x1.3."),
)

var gen4Abilities = abilityTable(
	ability("Adaptability", "Same-type attack bonus becomes x2."),
	ability("Iron Fist", "Punching moves gain 20% power."),
	ability("Magic Guard", "Only takes damage from attacks."),
	ability("No Guard", "Moves used by or against it always hit."),
	ability("Poison Heal", "Restores 1/8 HP each turn while poisoned."),
	ability("Sniper", "Critical hits deal x3 instead of x2."),
	ability("Snow Warning", "Summons hail on switch-in."),
	ability("Solid Rock", "Super effective damage x0.75."),
	ability("Steadfast", "Speed rises one stage when it flinches."),
	ability("Super Luck", "Raises critical-hit stage by one."),
	ability("Technician", "Moves of 60 power or less gain 50% power."),
)
