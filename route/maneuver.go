package route

import "fmt"

// Phrase renders a spoken instruction for the maneuver, e.g.
// "Turn left onto Main St". Used both for step instruction text and for
// synthesized voice announcements when a step carries no voice instructions.
func (m Maneuver) Phrase(roadName string) string {
	var base string
	switch m.Type {
	case "depart":
		base = "Head " + directionWord(m.Modifier, "out")
	case "arrive":
		return "You have arrived at your destination"
	case "turn":
		base = "Turn " + directionWord(m.Modifier, "ahead")
	case "merge":
		base = "Merge " + directionWord(m.Modifier, "ahead")
	case "on ramp":
		base = "Take the ramp " + directionWord(m.Modifier, "ahead")
	case "off ramp":
		base = "Take the exit " + directionWord(m.Modifier, "ahead")
	case "fork":
		base = "Keep " + directionWord(m.Modifier, "ahead") + " at the fork"
	case "roundabout", "rotary":
		base = "Enter the roundabout"
	case "end of road":
		base = "Turn " + directionWord(m.Modifier, "ahead") + " at the end of the road"
	case "continue", "new name", "":
		base = "Continue " + directionWord(m.Modifier, "straight")
	default:
		base = "Continue " + directionWord(m.Modifier, "straight")
	}
	if roadName != "" {
		return fmt.Sprintf("%s onto %s", base, roadName)
	}
	return base
}

func directionWord(modifier, fallback string) string {
	switch modifier {
	case "left", "right", "straight":
		return modifier
	case "slight left":
		return "slightly left"
	case "slight right":
		return "slightly right"
	case "sharp left":
		return "sharply left"
	case "sharp right":
		return "sharply right"
	case "uturn":
		return "around"
	default:
		return fallback
	}
}
