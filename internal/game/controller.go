package game

import (
	"context"
	"fmt"
)

// DefaultMaxTurns stops self-play that would otherwise never end, such as
// two walls that cannot damage each other.
const DefaultMaxTurns = 500

// Controller picks a choice for a player the battle is waiting on.
type Controller interface {
	Decide(ctx context.Context, b *Battle, p *Player) (Choice, error)
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(ctx context.Context, b *Battle, p *Player) (Choice, error)

func (f ControllerFunc) Decide(ctx context.Context, b *Battle, p *Player) (Choice, error) {
	return f(ctx, b, p)
}

// Apply submits c on the player's behalf.
func Apply(p *Player, c Choice) error {
	if c.Kind == ChoiceSwitch {
		return p.ChooseSwitch(c.TeamIndex)
	}
	return p.ChooseMove(c.Slot)
}

// FirstLegal always takes the first usable move, or the first replacement
// when one is required.
type FirstLegal struct{}

func (FirstLegal) Decide(_ context.Context, _ *Battle, p *Player) (Choice, error) {
	opts := p.Options()
	if opts == nil {
		return Choice{}, ErrNoDecision
	}
	if opts.ForceSwitch {
		return Choice{Kind: ChoiceSwitch, TeamIndex: opts.Switches[0]}, nil
	}
	for _, m := range opts.Moves {
		if !m.Disabled {
			return Choice{Kind: ChoiceMove, Slot: m.Slot}, nil
		}
	}
	if len(opts.Switches) > 0 {
		return Choice{Kind: ChoiceSwitch, TeamIndex: opts.Switches[0]}, nil
	}
	return Choice{}, fmt.Errorf("%w: %s has nothing to choose", ErrNoDecision, p.ID)
}

// RandomController picks uniformly among the legal choices. It draws from
// its own RNG so it never disturbs the battle's sequence. SwitchWeight is
// how many move-sized shares a voluntary switch gets; zero never switches
// voluntarily.
type RandomController struct {
	RNG          *RNG
	SwitchWeight int
}

func NewRandomController(seed int64) *RandomController {
	return &RandomController{RNG: NewRNG(seed)}
}

func (c *RandomController) Decide(_ context.Context, _ *Battle, p *Player) (Choice, error) {
	opts := p.Options()
	if opts == nil {
		return Choice{}, ErrNoDecision
	}
	var choices []Choice
	var weights []int
	for _, i := range opts.Switches {
		w := c.SwitchWeight
		if opts.ForceSwitch {
			w = 1
		}
		if w > 0 {
			choices = append(choices, Choice{Kind: ChoiceSwitch, TeamIndex: i})
			weights = append(weights, w)
		}
	}
	if !opts.ForceSwitch {
		for _, m := range opts.Moves {
			if !m.Disabled {
				choices = append(choices, Choice{Kind: ChoiceMove, Slot: m.Slot})
				weights = append(weights, 1)
			}
		}
	}
	if len(choices) == 0 {
		return Choice{}, fmt.Errorf("%w: %s has nothing to choose", ErrNoDecision, p.ID)
	}
	return WeightedChoice(c.RNG, choices, weights), nil
}

// Run drives a battle to the end, asking each controller whenever its
// player has a decision pending. onTurn, when set, sees every result. A
// battle still running after maxTurns (DefaultMaxTurns when zero) is
// abandoned with an error.
func Run(ctx context.Context, b *Battle, c1, c2 Controller, maxTurns int, onTurn func(*TurnResult)) error {
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}
	ctrls := map[string]Controller{b.players[0].ID: c1, b.players[1].ID: c2}

	for !b.Over() {
		if b.turn >= maxTurns {
			return fmt.Errorf("turn limit reached (%d turns)", maxTurns)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, p := range b.players {
			if p.Decided() {
				continue
			}
			c, err := ctrls[p.ID].Decide(ctx, b, p)
			if err != nil {
				return fmt.Errorf("%s decide: %w", p.ID, err)
			}
			if err := Apply(p, c); err != nil {
				return err
			}
		}
		res, err := b.AdvanceTurn()
		if err != nil {
			return err
		}
		if res == nil {
			return fmt.Errorf("%w: both players decided but the turn did not resolve", ErrBattleBroken)
		}
		if onTurn != nil {
			onTurn(res)
		}
	}
	return nil
}
