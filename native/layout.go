package native

// Direction is the layout direction passed to CalculateLayout. Values match
// YGDirection.
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return "inherit"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	}
	return "unknown"
}

// Layout is a node's computed box after CalculateLayout.
type Layout struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Width  float32
	Height float32
}
