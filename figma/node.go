package figma

import (
	"fmt"
	"math"

	"github.com/oronp/talk-to-figma-mcp/logger"
)

// RGBAToHex converts an RGBA object with 0-1 float components to a CSS hex
// string. The alpha component is appended only when it isn't fully opaque.
// Strings pass through unchanged, so already-encoded values are idempotent.
func RGBAToHex(color any) any {
	switch c := color.(type) {
	case string:
		return c
	case map[string]any:
		r := componentByte(c, "r", 0)
		g := componentByte(c, "g", 0)
		b := componentByte(c, "b", 0)
		a := componentByte(c, "a", 1)

		hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
		if a != 255 {
			hex += fmt.Sprintf("%02x", a)
		}
		return hex
	default:
		return color
	}
}

func componentByte(m map[string]any, key string, def float64) int {
	f := def
	if v, ok := m[key]; ok {
		if n, ok := v.(float64); ok {
			f = n
		}
	}
	return int(math.Round(f * 255))
}

// styleKeys is the subset of text style fields worth returning to the model.
var styleKeys = []string{
	"fontFamily",
	"fontStyle",
	"fontWeight",
	"fontSize",
	"textAlignHorizontal",
	"letterSpacing",
	"lineHeightPx",
}

// FilterNode reduces a raw Figma node to the fields useful for reasoning
// about a design. VECTOR nodes are dropped entirely (they carry huge path
// data and no semantic content), paint colors are re-encoded as hex, and
// variable bindings and image refs are stripped. Children are filtered
// recursively. Returns nil for dropped nodes; non-object values pass
// through unchanged.
func FilterNode(node any) any {
	n, ok := node.(map[string]any)
	if !ok {
		return node
	}

	if n["type"] == "VECTOR" {
		return nil
	}

	filtered := map[string]any{
		"id":   n["id"],
		"name": n["name"],
		"type": n["type"],
	}

	if fills, ok := n["fills"].([]any); ok && len(fills) > 0 {
		processed := make([]any, 0, len(fills))
		for _, fill := range fills {
			processed = append(processed, filterPaint(fill, true))
		}
		filtered["fills"] = processed
	}

	if strokes, ok := n["strokes"].([]any); ok && len(strokes) > 0 {
		processed := make([]any, 0, len(strokes))
		for _, stroke := range strokes {
			processed = append(processed, filterPaint(stroke, false))
		}
		filtered["strokes"] = processed
	}

	for _, key := range []string{"cornerRadius", "absoluteBoundingBox", "characters"} {
		if v, ok := n[key]; ok {
			filtered[key] = v
		}
	}

	if style, ok := n["style"].(map[string]any); ok {
		sub := make(map[string]any, len(styleKeys))
		for _, key := range styleKeys {
			sub[key] = style[key]
		}
		filtered["style"] = sub
	}

	if children, ok := n["children"].([]any); ok {
		kept := make([]any, 0, len(children))
		for _, child := range children {
			if fc := FilterNode(child); fc != nil {
				kept = append(kept, fc)
			}
		}
		filtered["children"] = kept
	}

	return filtered
}

// filterPaint cleans a single fill or stroke entry. Only fills carry
// imageRef and gradient stops.
func filterPaint(paint any, isFill bool) any {
	p, ok := paint.(map[string]any)
	if !ok {
		return paint
	}

	cleaned := make(map[string]any, len(p))
	for k, v := range p {
		cleaned[k] = v
	}
	delete(cleaned, "boundVariables")
	if isFill {
		delete(cleaned, "imageRef")
	}

	if isFill {
		if stops, ok := cleaned["gradientStops"].([]any); ok {
			newStops := make([]any, 0, len(stops))
			for _, stop := range stops {
				s, ok := stop.(map[string]any)
				if !ok {
					newStops = append(newStops, stop)
					continue
				}
				cs := make(map[string]any, len(s))
				for k, v := range s {
					cs[k] = v
				}
				if color, ok := cs["color"]; ok {
					cs["color"] = RGBAToHex(color)
				}
				delete(cs, "boundVariables")
				newStops = append(newStops, cs)
			}
			cleaned["gradientStops"] = newStops
		}
	}

	if color, ok := cleaned["color"]; ok {
		cleaned["color"] = RGBAToHex(color)
	}

	return cleaned
}

// LogNodeDetails logs identifying details of a node response and returns
// the value unchanged.
func LogNodeDetails(result any) any {
	n, ok := result.(map[string]any)
	if !ok {
		return result
	}

	id, ok := n["id"].(string)
	if !ok {
		return result
	}

	log := logger.WithComponent("figma")
	name, _ := n["name"].(string)
	if name == "" {
		name = "Unknown"
	}
	log.Info("processed Figma node", "name", name, "nodeID", id)
	if x, okX := n["x"]; okX {
		if y, okY := n["y"]; okY {
			log.Debug("node position", "x", x, "y", y)
		}
	}
	if w, okW := n["width"]; okW {
		if h, okH := n["height"]; okH {
			log.Debug("node dimensions", "width", w, "height", h)
		}
	}

	return result
}
