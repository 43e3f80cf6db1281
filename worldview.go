package worldview

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts c to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for world positions and pixel offsets.
type Vec2 struct {
	X, Y float64
}

// Kind identifies which variant of Entity a value is.
type Kind uint8

const (
	KindUnknown     Kind = iota // matched no variant; never rendered
	KindPlayer                  // standing, animated
	KindTree                    // standing
	KindStone                   // standing
	KindCampfire                // ground
	KindMushroom                // ground
	KindDroppedItem             // ground
	KindStorageBox              // standing
)

var kindNames = [...]string{
	KindUnknown:     "unknown",
	KindPlayer:      "player",
	KindTree:        "tree",
	KindStone:       "stone",
	KindCampfire:    "campfire",
	KindMushroom:    "mushroom",
	KindDroppedItem: "dropped_item",
	KindStorageBox:  "storage_box",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// Direction is the facing of a player as reported by the world state.
type Direction uint8

const (
	DirectionDown  Direction = iota // default facing; also used for unrecognized values
	DirectionUp                     // away from the viewer
	DirectionRight                  // east
	DirectionLeft                   // west
)

// ParseDirection maps the wire name of a facing to a Direction. Unrecognized
// names fall back to DirectionDown.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirectionUp
	case "right":
		return DirectionRight
	case "left":
		return DirectionLeft
	default:
		return DirectionDown
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	default:
		return "down"
	}
}
