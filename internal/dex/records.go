package dex

// Species is a static creature definition.
type Species struct {
	ID         string
	Name       string
	Types      []Type
	BaseStats  Stats
	Abilities  []string // ability IDs; empty before generation 3
	Genderless bool
}

// HasType reports whether t is one of the species' types.
func (s *Species) HasType(t Type) bool {
	for _, st := range s.Types {
		if st == t {
			return true
		}
	}
	return false
}

// StageChange is a relative stage adjustment to one stat.
type StageChange struct {
	Stat  Stat
	Delta int
}

// Secondary is a chance-based effect attached to a damaging move.
type Secondary struct {
	Chance  int // percent
	Status  Status
	Confuse bool
	Flinch  bool
	Stages  []StageChange
	Self    bool // Stages apply to the user instead of the target
}

// Move is a static move definition. Category holds the generation 4
// physical/special classification; earlier rule sets derive it from Type.
type Move struct {
	ID          string
	Name        string
	Type        Type
	Category    Category
	Power       int
	Accuracy    int // percent; 0 never misses
	PP          int
	Priority    int
	Kind        MoveKind
	Target      Target
	CritRatio   int // 1 normal, 2 high
	Flags       MoveFlag
	Secondary   *Secondary
	Status      Status        // KindStatus
	Stages      []StageChange // KindStage, and self drops after damage
	MultiHit    [2]int
	Drain       int // percent of damage dealt restored to the user
	Recoil      int // percent of damage dealt taken by the user
	Heal        int // percent of max HP, KindRecover
	Lock        LockKind
	Fixed       FixedDamage
	FixedAmount int
	Weather     Weather
	Screen      Screen
	Desc        string
}

// IsMultiHit reports whether the move strikes more than once.
func (m *Move) IsMultiHit() bool { return m.MultiHit[1] > 1 }

// Ability is a static ability record. Behavior is keyed by ID in the engine.
type Ability struct {
	ID   string
	Name string
	Desc string
}

// Item is a static held-item record.
type Item struct {
	ID        string
	Name      string
	BoostType Type // type-boosting items; TypeNone otherwise
	Berry     bool
	Desc      string
}

// Nature raises one stat by 10% and lowers another (generation 3+).
type Nature struct {
	ID    string
	Name  string
	Plus  Stat
	Minus Stat
}

// Neutral natures raise and lower the same stat.
func (n *Nature) Neutral() bool { return n.Plus == n.Minus }
