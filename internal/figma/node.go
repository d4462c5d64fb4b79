package figma

import "encoding/json"

// NodeTypeText is the only node type whose text content and typography
// survive reduction.
const NodeTypeText = "TEXT"

// BoundingBox is a node's absolute position and size in canvas pixels.
// Members are pointers so a member missing on input stays missing.
type BoundingBox struct {
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

func (b *BoundingBox) clone() *BoundingBox {
	if b == nil {
		return nil
	}
	return &BoundingBox{
		X:      cloneFloat(b.X),
		Y:      cloneFloat(b.Y),
		Width:  cloneFloat(b.Width),
		Height: cloneFloat(b.Height),
	}
}

// TextStyle is the typography subset kept for TEXT nodes. Other members of
// Figma's TypeStyle are not decoded.
type TextStyle struct {
	FontFamily    *string  `json:"fontFamily,omitempty"`
	FontWeight    *float64 `json:"fontWeight,omitempty"`
	FontSize      *float64 `json:"fontSize,omitempty"`
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
	LineHeightPx  *float64 `json:"lineHeightPx,omitempty"`
}

func (s *TextStyle) clone() *TextStyle {
	if s == nil {
		return nil
	}
	return &TextStyle{
		FontFamily:    cloneString(s.FontFamily),
		FontWeight:    cloneFloat(s.FontWeight),
		FontSize:      cloneFloat(s.FontSize),
		LetterSpacing: cloneFloat(s.LetterSpacing),
		LineHeightPx:  cloneFloat(s.LineHeightPx),
	}
}

// Node is a document node as returned by the Figma REST API.
// id, name and type are always present; everything else is optional and
// modelled with nil as "absent". Keys not listed here are never decoded,
// so their shape cannot fail a response.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	// Fills is the paint array kept as raw JSON; paints are never interpreted.
	Fills      json.RawMessage `json:"fills,omitempty"`
	Characters *string         `json:"characters,omitempty"`
	Style      *TextStyle      `json:"style,omitempty"`
	Children   []Node          `json:"children,omitempty"`
}

// ReducedNode is the prompt-sized projection of a Node.
type ReducedNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	AbsoluteBoundingBox *BoundingBox    `json:"absoluteBoundingBox,omitempty"`
	Fills               json.RawMessage `json:"fills,omitempty"`
	Characters          *string         `json:"characters,omitempty"`
	Style               *TextStyle      `json:"style,omitempty"`
	Children            []ReducedNode   `json:"children,omitempty"`
}

// AsNode converts a reduced tree back into the input shape, so it can be
// fed to Reduce again.
func (r ReducedNode) AsNode() Node {
	n := Node{
		ID:                  r.ID,
		Name:                r.Name,
		Type:                r.Type,
		AbsoluteBoundingBox: r.AbsoluteBoundingBox.clone(),
		Fills:               r.Fills,
		Characters:          cloneString(r.Characters),
		Style:               r.Style.clone(),
	}
	if len(r.Children) > 0 {
		n.Children = make([]Node, len(r.Children))
		for i, c := range r.Children {
			n.Children[i] = c.AsNode()
		}
	}
	return n
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
