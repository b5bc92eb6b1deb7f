package grid

import "github.com/mholovka/scissors/pathfind"

// Weigher names recognized by MakeWeigher (§6).
const (
	WeigherCrossGradMono = "CrossGradMono"
	WeigherColoredWeight = "ColoredWeight"
)

// WeigherNames returns the set of names MakeWeigher recognizes.
func WeigherNames() []string {
	return []string{WeigherCrossGradMono, WeigherColoredWeight}
}

// MakeWeigher constructs the named weigher over g. Returns
// *UnknownWeigherError (unwrapped; errors.As finds it) for any other name.
func MakeWeigher(name string, g *GridGraph) (pathfind.Weigher, error) {
	switch name {
	case WeigherCrossGradMono:
		return NewGrayscaleWeigher(g), nil
	case WeigherColoredWeight:
		return NewColorWeigher(g), nil
	default:
		return nil, &UnknownWeigherError{Name: name}
	}
}
