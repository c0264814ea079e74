package overlay

// Mode selects which of the two rendering strategies a placement is
// computed for. Both strategies share this single code path so the edit
// grid and the live preview stay consistent by construction.
type Mode int

const (
	// ModeEdit lays the nine positions out as a uniform 3x3 grid of click
	// targets, inset by the margins plus a small gutter.
	ModeEdit Mode = iota
	// ModePreview anchors overlays to the frame edges using the margins as
	// pixel offsets, centering via translation where needed.
	ModePreview
)

// Align describes how one axis of a placement is anchored.
type Align int

const (
	AlignStart  Align = iota // left / top edge
	AlignCenter              // centered on the axis
	AlignEnd                 // right / bottom edge
)

// editGutter is the fixed inset, in pixels, added around the edit grid on
// top of the configured margins.
const editGutter = 8

// PlacementRect is the output of Place. In preview mode the offsets are
// pixel distances from the anchored edges and the translate fields carry
// the centering transform (percent of the element's own size). In edit
// mode InsetX/InsetY inset the frame box and the cell fields give the
// fractional 3x3 cell within it.
type PlacementRect struct {
	Mode   Mode  `json:"mode"`
	HAlign Align `json:"hAlign"`
	VAlign Align `json:"vAlign"`

	// Preview mode.
	OffsetX    int     `json:"offsetX"`
	OffsetY    int     `json:"offsetY"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`

	// Edit mode.
	InsetX int     `json:"insetX"`
	InsetY int     `json:"insetY"`
	CellX  float64 `json:"cellX"`
	CellY  float64 `json:"cellY"`
	CellW  float64 `json:"cellW"`
	CellH  float64 `json:"cellH"`
}

// Place converts an anchor position and the shared margins into a
// placement for the given mode. Pure and deterministic: identical inputs
// always yield identical output.
func Place(pos Position, global GlobalSettings, mode Mode) PlacementRect {
	rect := PlacementRect{
		Mode:   mode,
		HAlign: alignFor(pos.Col()),
		VAlign: alignFor(pos.Row()),
	}

	if mode == ModeEdit {
		rect.InsetX = global.XMargin + editGutter
		rect.InsetY = global.YMargin + editGutter
		rect.CellX = float64(pos.Col()) / 3
		rect.CellY = float64(pos.Row()) / 3
		rect.CellW = 1.0 / 3
		rect.CellH = 1.0 / 3
		return rect
	}

	// Each axis resolves independently. Edge-anchored axes offset from
	// their edge by the margin; centered axes sit at the frame midpoint and
	// translate back by half the element size so content growth never
	// shifts the anchor off-grid.
	switch rect.HAlign {
	case AlignCenter:
		rect.TranslateX = -50
	default:
		rect.OffsetX = global.XMargin
	}
	switch rect.VAlign {
	case AlignCenter:
		rect.TranslateY = -50
	default:
		rect.OffsetY = global.YMargin
	}
	return rect
}

func alignFor(index int) Align {
	switch index {
	case 0:
		return AlignStart
	case 1:
		return AlignCenter
	default:
		return AlignEnd
	}
}
