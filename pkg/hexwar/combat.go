package hexwar

import "fmt"

// Outcome is a row entry of the combat results table.
type Outcome int

const (
	AttackerEliminated Outcome = iota
	AttackerAttrition
	AttackerDemoralized
	BothDemoralized
	DefenderDemoralized
	DefenderExchange
	DefenderEliminated
)

var outcomeNames = [...]string{
	AttackerEliminated:  "ATTACKER_ELIMINATED",
	AttackerAttrition:   "ATTACKER_ATTRITION",
	AttackerDemoralized: "ATTACKER_DEMORALIZED",
	BothDemoralized:     "BOTH_DEMORALIZED",
	DefenderDemoralized: "DEFENDER_DEMORALIZED",
	DefenderExchange:    "DEFENDER_EXCHANGE",
	DefenderEliminated:  "DEFENDER_ELIMINATED",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MaxOdds is the highest odds column. Odds above it turn into a roll bonus.
const MaxOdds = 6

// CombatTable maps [odds][roll] to an outcome. Both indices are clamped to
// [0, 6] before lookup.
var CombatTable = [MaxOdds + 1][7]Outcome{
	{AttackerEliminated, AttackerEliminated, AttackerAttrition, AttackerDemoralized, BothDemoralized, BothDemoralized, DefenderDemoralized},
	{AttackerEliminated, AttackerAttrition, AttackerDemoralized, BothDemoralized, BothDemoralized, DefenderDemoralized, DefenderExchange},
	{AttackerAttrition, AttackerAttrition, AttackerDemoralized, BothDemoralized, BothDemoralized, DefenderDemoralized, DefenderExchange},
	{AttackerAttrition, AttackerDemoralized, BothDemoralized, BothDemoralized, DefenderDemoralized, DefenderExchange, DefenderEliminated},
	{AttackerDemoralized, BothDemoralized, BothDemoralized, DefenderDemoralized, DefenderExchange, DefenderEliminated, DefenderEliminated},
	{BothDemoralized, BothDemoralized, DefenderDemoralized, DefenderExchange, DefenderEliminated, DefenderEliminated, DefenderEliminated},
	{BothDemoralized, DefenderDemoralized, DefenderExchange, DefenderEliminated, DefenderEliminated, DefenderEliminated, DefenderEliminated},
}

// Odds is attack over defence, rounded down. A defenceless target gives the
// maximum odds.
func Odds(attack, defence Strength) int {
	if defence.Value <= 0 {
		return MaxOdds
	}
	return attack.Value / defence.Value
}

// FinalRoll applies the roll modifiers and the overflow bonus to a die face.
func FinalRoll(die int, attack, defence Strength, odds int) int {
	return die + attack.Modifier - defence.Modifier + max(0, odds-MaxOdds)
}

// LookupOutcome clamps odds and roll into the table and reads the result.
func LookupOutcome(odds, roll int) Outcome {
	return CombatTable[clamp(odds, 0, MaxOdds)][clamp(roll, 0, 6)]
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// CombatReport records how an invasion was resolved.
type CombatReport struct {
	InvasionID InvasionID `json:"invasion_id"`
	Target     Coord      `json:"target"`
	Sources    []Coord    `json:"sources"`
	Attacker   Player     `json:"attacker"`
	Defender   Player     `json:"defender,omitempty"`
	Attack     Strength   `json:"attack"`
	Defence    Strength   `json:"defence"`
	Odds       int        `json:"odds"`
	DieRoll    int        `json:"die_roll"`
	FinalRoll  int        `json:"final_roll"`
	Outcome    Outcome    `json:"outcome"`
	Winner     Player     `json:"winner,omitempty"`
	Casualties []UnitID   `json:"casualties,omitempty"`
	Message    string     `json:"message"`
}

// InvasionStrength totals the attack of every ordered unit still standing at
// its source, plus the terrain and fortification modifier of its source cell.
// A cell supplying two attackers contributes its modifier twice.
func InvasionStrength(g *Grid, inv *Invasion) (Strength, []Order) {
	var (
		total Strength
		live  []Order
	)
	for _, o := range inv.Orders {
		u, ok := g.Cell(o.Source).Unit(o.UnitID)
		if !ok {
			continue
		}
		total = total.Plus(u.AttackStrength())
		total.Modifier += g.Cell(o.Source).AttackModifier()
		live = append(live, o)
	}
	return total, live
}

// ResolveInvasion rolls the die for inv and applies the outcome to g.
func ResolveInvasion(g *Grid, inv *Invasion, die Die) CombatReport {
	target := g.Cell(inv.Target)
	attack, live := InvasionStrength(g, inv)
	rep := CombatReport{
		InvasionID: inv.ID,
		Target:     inv.Target,
		Sources:    Sources(live),
		Attacker:   inv.Player,
		Attack:     attack,
	}
	if owner, ok := target.Player(); ok {
		rep.Defender = owner
	}
	if len(live) == 0 {
		rep.Message = fmt.Sprintf("%s called off the attack on %s, no attackers left.", inv.Player, inv.Target)
		return rep
	}

	rep.Defence = target.Defence()
	rep.Odds = Odds(rep.Attack, rep.Defence)
	rep.DieRoll = die.Roll()
	rep.FinalRoll = FinalRoll(rep.DieRoll, rep.Attack, rep.Defence, rep.Odds)
	rep.Outcome = LookupOutcome(rep.Odds, rep.FinalRoll)

	applyOutcome(g, &rep, live)
	return rep
}

func applyOutcome(g *Grid, rep *CombatReport, live []Order) {
	target := g.Cell(rep.Target)
	switch rep.Outcome {
	case AttackerEliminated:
		for _, o := range live {
			if _, ok := g.Cell(o.Source).RemoveUnit(o.UnitID); ok {
				rep.Casualties = append(rep.Casualties, o.UnitID)
			}
		}
		rep.Winner = rep.Defender
		rep.Message = fmt.Sprintf("%s repelled the attack on %s, attacking soldiers eliminated.", rep.Defender, rep.Target)
	case AttackerAttrition, AttackerDemoralized, BothDemoralized:
		rep.Message = fmt.Sprintf("Attack on %s bounced, both sides hold.", rep.Target)
	case DefenderDemoralized, DefenderExchange, DefenderEliminated:
		for _, u := range target.KillOccupants() {
			rep.Casualties = append(rep.Casualties, u.ID)
		}
		for _, o := range live {
			u, ok := g.Cell(o.Source).RemoveUnit(o.UnitID)
			if !ok {
				continue
			}
			if err := target.AddUnit(u); err != nil {
				violate(ErrMixedOccupancy, "%v", err)
			}
		}
		rep.Winner = rep.Attacker
		rep.Message = fmt.Sprintf("%s won the attack, soldiers in %s eliminated.", rep.Attacker, rep.Target)
	default:
		violate(ErrUnknownOutcome, "%s", rep.Outcome)
	}
}
