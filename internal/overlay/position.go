package overlay

// Position is one of the nine anchor positions on the 3x3 overlay grid.
type Position string

const (
	PositionTopLeft      Position = "topLeft"
	PositionTopCenter    Position = "topCenter"
	PositionTopRight     Position = "topRight"
	PositionCenterLeft   Position = "centerLeft"
	PositionCenter       Position = "center"
	PositionCenterRight  Position = "centerRight"
	PositionBottomLeft   Position = "bottomLeft"
	PositionBottomCenter Position = "bottomCenter"
	PositionBottomRight  Position = "bottomRight"
)

// Positions returns all anchor positions in reading order (top-left to
// bottom-right).
func Positions() []Position {
	return []Position{
		PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionCenterLeft, PositionCenter, PositionCenterRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight,
	}
}

func (p Position) Valid() bool {
	switch p {
	case PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionCenterLeft, PositionCenter, PositionCenterRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight:
		return true
	}
	return false
}

// Row returns the grid row (0 = top, 2 = bottom).
func (p Position) Row() int {
	switch p {
	case PositionTopLeft, PositionTopCenter, PositionTopRight:
		return 0
	case PositionCenterLeft, PositionCenter, PositionCenterRight:
		return 1
	default:
		return 2
	}
}

// Col returns the grid column (0 = left, 2 = right).
func (p Position) Col() int {
	switch p {
	case PositionTopLeft, PositionCenterLeft, PositionBottomLeft:
		return 0
	case PositionTopCenter, PositionCenter, PositionBottomCenter:
		return 1
	default:
		return 2
	}
}

// Label returns the human-readable name shown in the position picker.
func (p Position) Label() string {
	switch p {
	case PositionTopLeft:
		return "Top Left"
	case PositionTopCenter:
		return "Top Center"
	case PositionTopRight:
		return "Top Right"
	case PositionCenterLeft:
		return "Center Left"
	case PositionCenter:
		return "Center"
	case PositionCenterRight:
		return "Center Right"
	case PositionBottomLeft:
		return "Bottom Left"
	case PositionBottomCenter:
		return "Bottom Center"
	case PositionBottomRight:
		return "Bottom Right"
	}
	return string(p)
}
