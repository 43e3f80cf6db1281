package worldview

// ItemOrder says whether a held item is drawn before or after the body sprite.
type ItemOrder uint8

const (
	ItemInFront ItemOrder = iota // drawn after the body
	ItemBehind                   // drawn before the body
)

// ItemDrawOrder decides where a held item draws for a facing. Facing up or
// left the item is behind the body; right, down, or unrecognized puts it in
// front. Movement and animation state play no part.
func ItemDrawOrder(d Direction) ItemOrder {
	switch d {
	case DirectionUp, DirectionLeft:
		return ItemBehind
	default:
		return ItemInFront
	}
}
