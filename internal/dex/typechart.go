package dex

// Effectiveness is expressed in tenths: 0 immune, 5 resisted, 10 neutral,
// 20 super effective. Missing cells are neutral.
const (
	Immune   = 0
	Resisted = 5
	Neutral  = 10
	SuperEff = 20
)

// TypeChart maps attacking type to defending type to effectiveness.
type TypeChart map[Type]map[Type]int

// Lookup returns the effectiveness of atk against a single defending type.
func (c TypeChart) Lookup(atk, def Type) int {
	if atk == TypeNone || def == TypeNone {
		return Neutral
	}
	if v, ok := c[atk][def]; ok {
		return v
	}
	return Neutral
}

var gen1TypeChart = TypeChart{
	TypeNormal:   {TypeRock: Resisted, TypeGhost: Immune},
	TypeFighting: {TypeNormal: SuperEff, TypeFlying: Resisted, TypePoison: Resisted, TypeRock: SuperEff, TypeBug: Resisted, TypeGhost: Immune, TypePsychic: Resisted, TypeIce: SuperEff},
	TypeFlying:   {TypeFighting: SuperEff, TypeRock: Resisted, TypeBug: SuperEff, TypeGrass: SuperEff, TypeElectric: Resisted},
	TypePoison:   {TypePoison: Resisted, TypeGround: Resisted, TypeRock: Resisted, TypeBug: SuperEff, TypeGhost: Resisted, TypeGrass: SuperEff},
	TypeGround:   {TypeFlying: Immune, TypePoison: SuperEff, TypeRock: SuperEff, TypeBug: Resisted, TypeFire: SuperEff, TypeGrass: Resisted, TypeElectric: SuperEff},
	TypeRock:     {TypeFighting: Resisted, TypeFlying: SuperEff, TypeGround: Resisted, TypeBug: SuperEff, TypeFire: SuperEff, TypeIce: SuperEff},
	TypeBug:      {TypeFighting: Resisted, TypeFlying: Resisted, TypePoison: SuperEff, TypeGhost: Resisted, TypeFire: Resisted, TypeGrass: SuperEff, TypePsychic: SuperEff},
	TypeGhost:    {TypeNormal: Immune, TypeGhost: SuperEff, TypePsychic: Immune},
	TypeFire:     {TypeRock: Resisted, TypeBug: SuperEff, TypeFire: Resisted, TypeWater: Resisted, TypeGrass: SuperEff, TypeIce: SuperEff, TypeDragon: Resisted},
	TypeWater:    {TypeGround: SuperEff, TypeRock: SuperEff, TypeFire: SuperEff, TypeWater: Resisted, TypeGrass: Resisted, TypeDragon: Resisted},
	TypeGrass:    {TypeFlying: Resisted, TypePoison: Resisted, TypeGround: SuperEff, TypeRock: SuperEff, TypeBug: Resisted, TypeFire: Resisted, TypeWater: SuperEff, TypeGrass: Resisted, TypeDragon: Resisted},
	TypeElectric: {TypeFlying: SuperEff, TypeGround: Immune, TypeWater: SuperEff, TypeGrass: Resisted, TypeElectric: Resisted, TypeDragon: Resisted},
	TypePsychic:  {TypeFighting: SuperEff, TypePoison: SuperEff, TypePsychic: Resisted},
	TypeIce:      {TypeFlying: SuperEff, TypeGround: SuperEff, TypeWater: Resisted, TypeGrass: SuperEff, TypeIce: Resisted, TypeDragon: SuperEff},
	TypeDragon:   {TypeDragon: SuperEff},
}

// Generation 2 introduces Dark and Steel and corrects the Ghost/Psychic,
// Bug/Poison and Ice/Fire cells.
var gen2TypeChart = TypeChart{
	TypeNormal:   {TypeSteel: Resisted},
	TypeFighting: {TypeSteel: SuperEff, TypeDark: SuperEff},
	TypeFlying:   {TypeSteel: Resisted},
	TypePoison:   {TypeBug: Neutral, TypeSteel: Immune},
	TypeGround:   {TypeSteel: SuperEff},
	TypeRock:     {TypeSteel: Resisted},
	TypeBug:      {TypePoison: Resisted, TypeSteel: Resisted, TypeDark: SuperEff},
	TypeGhost:    {TypePsychic: SuperEff, TypeSteel: Resisted, TypeDark: Resisted},
	TypeSteel:    {TypeRock: SuperEff, TypeIce: SuperEff, TypeSteel: Resisted, TypeFire: Resisted, TypeWater: Resisted, TypeElectric: Resisted},
	TypeFire:     {TypeSteel: SuperEff},
	TypeGrass:    {TypeSteel: Resisted},
	TypePsychic:  {TypeSteel: Resisted, TypeDark: Immune},
	TypeIce:      {TypeFire: Resisted, TypeSteel: Resisted},
	TypeDragon:   {TypeSteel: Resisted},
	TypeDark:     {TypeFighting: Resisted, TypeGhost: SuperEff, TypePsychic: SuperEff, TypeDark: Resisted, TypeSteel: Resisted},
}
