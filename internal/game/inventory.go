package game

type Resource string

const (
	ResourceFood     Resource = "food"
	ResourceWater    Resource = "water"
	ResourceMedicine Resource = "medicine"
	ResourceFuel     Resource = "fuel"
	ResourceWeapons  Resource = "weapons"
)

func AllResources() []Resource {
	return []Resource{ResourceFood, ResourceWater, ResourceMedicine, ResourceFuel, ResourceWeapons}
}

// Inventory holds integer resource quantities. Quantities never drop below 0.
type Inventory struct {
	Food     int `yaml:"food"`
	Water    int `yaml:"water"`
	Medicine int `yaml:"medicine"`
	Fuel     int `yaml:"fuel"`
	Weapons  int `yaml:"weapons"`
}

func (inv Inventory) Get(r Resource) int {
	if p := inv.slot(r); p != nil {
		return *p
	}
	return 0
}

func (inv *Inventory) slot(r Resource) *int {
	switch r {
	case ResourceFood:
		return &inv.Food
	case ResourceWater:
		return &inv.Water
	case ResourceMedicine:
		return &inv.Medicine
	case ResourceFuel:
		return &inv.Fuel
	case ResourceWeapons:
		return &inv.Weapons
	default:
		return nil
	}
}

// adjust adds delta to r, flooring at 0 and capping at caps. It returns the
// quantity after the change.
func (inv *Inventory) adjust(r Resource, delta int, caps Inventory) int {
	p := inv.slot(r)
	if p == nil {
		return 0
	}
	*p = clamp(*p+delta, 0, max(caps.Get(r), *p))
	return *p
}

// consume removes amount of r only when the full amount is available.
func (inv *Inventory) consume(r Resource, amount int) bool {
	p := inv.slot(r)
	if p == nil || amount < 0 || *p < amount {
		return false
	}
	*p -= amount
	return true
}

type ResourceLevel string

const (
	LevelGood     ResourceLevel = "Good"
	LevelModerate ResourceLevel = "Moderate"
	LevelLow      ResourceLevel = "Low"
	LevelCritical ResourceLevel = "Critical"
	LevelEmpty    ResourceLevel = "Empty"
)

func levelFor(current, maximum int) ResourceLevel {
	fraction := 0.0
	if maximum > 0 {
		fraction = float64(current) / float64(maximum)
	}
	switch {
	case fraction > 0.7:
		return LevelGood
	case fraction > 0.4:
		return LevelModerate
	case fraction > 0.2:
		return LevelLow
	case fraction > 0:
		return LevelCritical
	default:
		return LevelEmpty
	}
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}
