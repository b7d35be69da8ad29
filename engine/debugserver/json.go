package debugserver

import (
	"encoding/json"
	"math"

	"github.com/hubastard/flexbox/engine/geom"
	"github.com/hubastard/flexbox/engine/ui"
)

// SafeFloat encodes Inf and NaN as strings instead of failing the whole
// response.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

type point struct {
	X SafeFloat `json:"x"`
	Y SafeFloat `json:"y"`
}

type size struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

type rect struct {
	Pos  point `json:"pos"`
	Size size  `json:"size"`
}

type containerJSON struct {
	Name     string `json:"name"`
	Pos      point  `json:"pos"`
	Bounds   size   `json:"bounds"`
	Policy   string `json:"policy"`
	State    string `json:"state"`
	Dirty    bool   `json:"dirty"`
	Passes   int    `json:"passes"`
	Children []rect `json:"children"`
	Handle   *rect  `json:"handle,omitempty"`
}

func toPoint(v geom.Vec2) point { return point{SafeFloat(v.X), SafeFloat(v.Y)} }
func toSize(v geom.Vec2) size   { return size{SafeFloat(v.X), SafeFloat(v.Y)} }
func toRect(r geom.Rect) rect   { return rect{toPoint(r.Pos), toSize(r.Size)} }

func toJSON(s ui.Snapshot) containerJSON {
	out := containerJSON{
		Name:     s.Name,
		Pos:      toPoint(s.Pos),
		Bounds:   toSize(s.Bounds),
		Policy:   s.Policy,
		State:    s.State,
		Dirty:    s.Dirty,
		Passes:   s.Passes,
		Children: make([]rect, len(s.Children)),
	}
	for i, c := range s.Children {
		out.Children[i] = toRect(c)
	}
	if s.Handle != nil {
		h := toRect(*s.Handle)
		out.Handle = &h
	}
	return out
}
