package hexwar

import "fmt"

// Strength is a combat value paired with the die-roll modifier that travels
// with it. Attack and Defence are both expressed this way.
type Strength struct {
	Value    int `json:"value"`
	Modifier int `json:"modifier"`
}

// Plus sums two strengths component-wise.
func (s Strength) Plus(o Strength) Strength {
	return Strength{Value: s.Value + o.Value, Modifier: s.Modifier + o.Modifier}
}

func (s Strength) String() string {
	return fmt.Sprintf("%d (%+d)", s.Value, s.Modifier)
}
