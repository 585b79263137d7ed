package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/oronp/talk-to-figma-mcp/figma"
)

// ok wraps a successful result as a JSON-encoded text content item.
func ok(v any) ToolCallResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errResult(fmt.Sprintf("Error encoding result: %v", err))
	}
	return ToolCallResult{Content: []ContentItem{{Type: "text", Text: string(data)}}}
}

// textResult wraps a plain (non-JSON) message as a successful result.
func textResult(msg string) ToolCallResult {
	return ToolCallResult{Content: []ContentItem{{Type: "text", Text: msg}}}
}

// errResult wraps an error message as a failed tool call.
func errResult(msg string) ToolCallResult {
	return ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: msg}},
		IsError: true,
	}
}

// num renders a float the way JSON does: no trailing zeros, integers bare.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// strArg returns a string argument. ok is false when the key is absent,
// null, or not a string.
func strArg(args map[string]any, key string) (string, bool) {
	v, present := args[key]
	if !present || v == nil {
		return "", false
	}
	s, isStr := v.(string)
	return s, isStr
}

// numArg returns a numeric argument. present reports whether the key held
// any non-null value; isNum whether it was a number.
func numArg(args map[string]any, key string) (val float64, present, isNum bool) {
	v, has := args[key]
	if !has || v == nil {
		return 0, false, false
	}
	f, isNum := v.(float64)
	return f, true, isNum
}

// strSliceArg returns an array-of-strings argument.
func strSliceArg(args map[string]any, key string) ([]string, bool) {
	v, present := args[key]
	if !present || v == nil {
		return nil, false
	}
	raw, isSlice := v.([]any)
	if !isSlice {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, isStr := item.(string)
		if !isStr {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// decodeObject parses a command result into a map, returning an empty map
// for non-object results so field lookups degrade gracefully.
func decodeObject(raw json.RawMessage) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// decodeAny parses a command result into its generic Go form.
func decodeAny(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// nodeName returns the "name" field of a result object, falling back to
// the node ID when the plugin did not echo a name.
func nodeName(result map[string]any, nodeID string) string {
	if name, isStr := result["name"].(string); isStr {
		return name
	}
	return nodeID
}

// dispatch routes a tools/call to its handler. Unknown names surface as
// tool errors rather than protocol errors so clients see them inline.
func (s *Server) dispatch(ctx context.Context, name string, args map[string]any) ToolCallResult {
	if args == nil {
		args = map[string]any{}
	}
	switch name {
	case "get_document_info":
		return s.passthrough(ctx, "get_document_info", nil, "Error getting document info")
	case "get_selection":
		return s.passthrough(ctx, "get_selection", nil, "Error getting selection")
	case "read_my_design":
		return s.passthrough(ctx, "read_my_design", map[string]any{}, "Error reading design")
	case "get_node_info":
		return s.getNodeInfo(ctx, args)
	case "get_nodes_info":
		return s.getNodesInfo(ctx, args)
	case "get_styles":
		return s.passthrough(ctx, "get_styles", nil, "Error getting styles")
	case "get_local_components":
		return s.passthrough(ctx, "get_local_components", nil, "Error getting local components")
	case "get_annotations":
		return s.getAnnotations(ctx, args)
	case "get_reactions":
		return s.getReactions(ctx, args)
	case "create_rectangle":
		return s.createRectangle(ctx, args)
	case "create_frame":
		return s.createFrame(ctx, args)
	case "create_text":
		return s.createText(ctx, args)
	case "create_component_instance":
		return s.createComponentInstance(ctx, args)
	case "clone_node":
		return s.cloneNode(ctx, args)
	case "delete_node":
		return s.deleteNode(ctx, args)
	case "delete_multiple_nodes":
		return s.deleteMultipleNodes(ctx, args)
	case "set_fill_color":
		return s.setFillColor(ctx, args)
	case "set_stroke_color":
		return s.setStrokeColor(ctx, args)
	case "set_corner_radius":
		return s.setCornerRadius(ctx, args)
	case "set_text_content":
		return s.setTextContent(ctx, args)
	case "set_multiple_text_contents":
		return s.setMultipleTextContents(ctx, args)
	case "export_node_as_image":
		return s.exportNodeAsImage(ctx, args)
	case "move_node":
		return s.moveNode(ctx, args)
	case "resize_node":
		return s.resizeNode(ctx, args)
	case "set_layout_mode":
		return s.setLayoutMode(ctx, args)
	case "set_padding":
		return s.setPadding(ctx, args)
	case "set_axis_align":
		return s.setAxisAlign(ctx, args)
	case "set_layout_sizing":
		return s.setLayoutSizing(ctx, args)
	case "set_item_spacing":
		return s.setItemSpacing(ctx, args)
	case "set_annotation":
		return s.setAnnotation(ctx, args)
	case "set_multiple_annotations":
		return s.setMultipleAnnotations(ctx, args)
	case "scan_text_nodes":
		return s.scanTextNodes(ctx, args)
	case "scan_nodes_by_types":
		return s.scanNodesByTypes(ctx, args)
	case "get_instance_overrides":
		return s.getInstanceOverrides(ctx, args)
	case "set_instance_overrides":
		return s.setInstanceOverrides(ctx, args)
	case "set_default_connector":
		return s.setDefaultConnector(ctx, args)
	case "create_connections":
		return s.createConnections(ctx, args)
	case "set_focus":
		return s.setFocus(ctx, args)
	case "set_selections":
		return s.setSelections(ctx, args)
	case "join_channel":
		return s.joinChannel(ctx, args)
	default:
		return errResult(fmt.Sprintf("Unknown tool: %s", name))
	}
}

// passthrough sends a command with fixed params and returns the raw result.
func (s *Server) passthrough(ctx context.Context, command string, params map[string]any, errPrefix string) ToolCallResult {
	result, err := s.figma.SendCommand(ctx, command, params)
	if err != nil {
		return errResult(fmt.Sprintf("%s: %v", errPrefix, err))
	}
	return ok(decodeAny(result))
}

func (s *Server) getNodeInfo(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, has := strArg(args, "nodeId")
	if !has {
		return errResult("Missing required parameter: nodeId")
	}
	result, err := s.figma.SendCommand(ctx, "get_node_info", map[string]any{"nodeId": nodeID})
	if err != nil {
		return errResult(fmt.Sprintf("Error getting node info: %v", err))
	}
	return ok(figma.FilterNode(figma.LogNodeDetails(decodeAny(result))))
}

func (s *Server) getNodesInfo(ctx context.Context, args map[string]any) ToolCallResult {
	nodeIDs, has := strSliceArg(args, "nodeIds")
	if !has {
		return errResult("Missing required parameter: nodeIds")
	}
	type slot struct {
		result json.RawMessage
		err    error
	}
	slots := make([]slot, len(nodeIDs))
	var wg sync.WaitGroup
	for i, id := range nodeIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			res, err := s.figma.SendCommand(ctx, "get_node_info", map[string]any{"nodeId": id})
			slots[i] = slot{result: res, err: err}
		}(i, id)
	}
	wg.Wait()

	filtered := make([]any, 0, len(nodeIDs))
	for _, sl := range slots {
		if sl.err != nil {
			continue
		}
		if node := figma.FilterNode(decodeAny(sl.result)); node != nil {
			filtered = append(filtered, node)
		}
	}
	return ok(filtered)
}

func (s *Server) getAnnotations(ctx context.Context, args map[string]any) ToolCallResult {
	params := map[string]any{}
	if nodeID, has := strArg(args, "nodeId"); has {
		params["nodeId"] = nodeID
	}
	if v, present := args["includeCategories"]; present && v != nil {
		params["includeCategories"] = v
	}
	result, err := s.figma.SendCommand(ctx, "get_annotations", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error getting annotations: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) getReactions(ctx context.Context, args map[string]any) ToolCallResult {
	nodeIDs, has := strSliceArg(args, "nodeIds")
	if !has {
		return errResult("Missing required parameter: nodeIds")
	}
	result, err := s.figma.SendCommand(ctx, "get_reactions", map[string]any{"nodeIds": nodeIDs})
	if err != nil {
		return errResult(fmt.Sprintf("Error getting reactions: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) createRectangle(ctx context.Context, args map[string]any) ToolCallResult {
	x, hasX, _ := numArg(args, "x")
	y, hasY, _ := numArg(args, "y")
	width, hasW, _ := numArg(args, "width")
	height, hasH, _ := numArg(args, "height")
	if !hasX || !hasY || !hasW || !hasH {
		return errResult("create_rectangle requires x, y, width, and height")
	}
	params := map[string]any{
		"x":      x,
		"y":      y,
		"width":  width,
		"height": height,
		"name":   "Rectangle",
	}
	if name, has := strArg(args, "name"); has && name != "" {
		params["name"] = name
	}
	if parentID, has := strArg(args, "parentId"); has {
		params["parentId"] = parentID
	}
	result, err := s.figma.SendCommand(ctx, "create_rectangle", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error creating rectangle: %v", err))
	}
	return ok(decodeAny(result))
}

// createFrameOptionalKeys are forwarded verbatim when the caller sends them.
var createFrameOptionalKeys = []string{
	"parentId",
	"strokeColor",
	"strokeWeight",
	"layoutMode",
	"layoutWrap",
	"paddingTop",
	"paddingRight",
	"paddingBottom",
	"paddingLeft",
	"primaryAxisAlignItems",
	"counterAxisAlignItems",
	"layoutSizingHorizontal",
	"layoutSizingVertical",
	"itemSpacing",
}

func (s *Server) createFrame(ctx context.Context, args map[string]any) ToolCallResult {
	x, hasX, _ := numArg(args, "x")
	y, hasY, _ := numArg(args, "y")
	width, hasW, _ := numArg(args, "width")
	height, hasH, _ := numArg(args, "height")
	if !hasX || !hasY || !hasW || !hasH {
		return errResult("create_frame requires x, y, width, and height")
	}
	params := map[string]any{
		"x":         x,
		"y":         y,
		"width":     width,
		"height":    height,
		"name":      "Frame",
		"fillColor": map[string]any{"r": 1, "g": 1, "b": 1, "a": 1},
	}
	if name, has := strArg(args, "name"); has && name != "" {
		params["name"] = name
	}
	if fill, present := args["fillColor"]; present && fill != nil {
		params["fillColor"] = fill
	}
	for _, key := range createFrameOptionalKeys {
		if v, present := args[key]; present && v != nil {
			params[key] = v
		}
	}
	result, err := s.figma.SendCommand(ctx, "create_frame", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error creating frame: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) createText(ctx context.Context, args map[string]any) ToolCallResult {
	x, hasX, _ := numArg(args, "x")
	y, hasY, _ := numArg(args, "y")
	text, hasText := strArg(args, "text")
	if !hasX || !hasY || !hasText {
		return errResult("create_text requires x, y, and text")
	}
	params := map[string]any{
		"x":          x,
		"y":          y,
		"text":       text,
		"fontSize":   float64(14),
		"fontWeight": float64(400),
		"fontColor":  map[string]any{"r": 0, "g": 0, "b": 0, "a": 1},
		"name":       "Text",
	}
	if size, present, isNum := numArg(args, "fontSize"); present && isNum {
		params["fontSize"] = size
	}
	if weight, present, isNum := numArg(args, "fontWeight"); present && isNum {
		params["fontWeight"] = weight
	}
	if color, present := args["fontColor"]; present && color != nil {
		params["fontColor"] = color
	}
	if name, has := strArg(args, "name"); has && name != "" {
		params["name"] = name
	}
	if parentID, has := strArg(args, "parentId"); has {
		params["parentId"] = parentID
	}
	result, err := s.figma.SendCommand(ctx, "create_text", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error creating text: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) createComponentInstance(ctx context.Context, args map[string]any) ToolCallResult {
	componentKey, has := strArg(args, "componentKey")
	if !has || componentKey == "" {
		return errResult("create_component_instance requires componentKey")
	}
	params := map[string]any{"componentKey": componentKey}
	if x, present, isNum := numArg(args, "x"); present && isNum {
		params["x"] = x
	}
	if y, present, isNum := numArg(args, "y"); present && isNum {
		params["y"] = y
	}
	result, err := s.figma.SendCommand(ctx, "create_component_instance", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error creating component instance: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) cloneNode(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, has := strArg(args, "nodeId")
	if !has || nodeID == "" {
		return errResult("clone_node requires nodeId")
	}
	params := map[string]any{"nodeId": nodeID}
	if x, present, isNum := numArg(args, "x"); present && isNum {
		params["x"] = x
	}
	if y, present, isNum := numArg(args, "y"); present && isNum {
		params["y"] = y
	}
	result, err := s.figma.SendCommand(ctx, "clone_node", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error cloning node: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) deleteNode(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, has := strArg(args, "nodeId")
	if !has || nodeID == "" {
		return errResult("delete_node requires nodeId")
	}
	if _, err := s.figma.SendCommand(ctx, "delete_node", map[string]any{"nodeId": nodeID}); err != nil {
		return errResult(fmt.Sprintf("Error deleting node: %v", err))
	}
	return ok(map[string]any{"deleted": nodeID})
}

func (s *Server) deleteMultipleNodes(ctx context.Context, args map[string]any) ToolCallResult {
	nodeIDs, has := strSliceArg(args, "nodeIds")
	if !has || len(nodeIDs) == 0 {
		return errResult("delete_multiple_nodes requires nodeIds")
	}
	result, err := s.figma.SendCommand(ctx, "delete_multiple_nodes", map[string]any{"nodeIds": nodeIDs})
	if err != nil {
		return errResult(fmt.Sprintf("Error deleting multiple nodes: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) setFillColor(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	r, hasR, rNum := numArg(args, "r")
	g, hasG, gNum := numArg(args, "g")
	b, hasB, bNum := numArg(args, "b")
	if !hasNode || !hasR || !hasG || !hasB {
		return errResult("set_fill_color requires nodeId, r, g, and b")
	}
	if !rNum || !gNum || !bNum {
		return errResult("set_fill_color: r, g, b must be numbers in range 0-1")
	}
	a := 1.0
	if v, present, isNum := numArg(args, "a"); present && isNum {
		a = v
	}
	result, err := s.figma.SendCommand(ctx, "set_fill_color", map[string]any{
		"nodeId": nodeID,
		"color":  map[string]any{"r": r, "g": g, "b": b, "a": a},
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting fill color: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Set fill color of node %q to RGBA(%s, %s, %s, %s)", name, num(r), num(g), num(b), num(a)))
}

func (s *Server) setStrokeColor(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	r, hasR, rNum := numArg(args, "r")
	g, hasG, gNum := numArg(args, "g")
	b, hasB, bNum := numArg(args, "b")
	if !hasNode || !hasR || !hasG || !hasB {
		return errResult("set_stroke_color requires nodeId, r, g, and b")
	}
	if !rNum || !gNum || !bNum {
		return errResult("set_stroke_color: r, g, b must be numbers in range 0-1")
	}
	a := 1.0
	if v, present, isNum := numArg(args, "a"); present && isNum {
		a = v
	}
	weight := 1.0
	if v, present, isNum := numArg(args, "weight"); present && isNum {
		weight = v
	}
	result, err := s.figma.SendCommand(ctx, "set_stroke_color", map[string]any{
		"nodeId": nodeID,
		"color":  map[string]any{"r": r, "g": g, "b": b, "a": a},
		"weight": weight,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting stroke color: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Set stroke color of node %q to RGBA(%s, %s, %s, %s) with weight %s",
		name, num(r), num(g), num(b), num(a), num(weight)))
}

func (s *Server) setCornerRadius(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	radius, hasRadius, _ := numArg(args, "radius")
	if !hasNode || !hasRadius {
		return errResult("set_corner_radius requires nodeId and radius")
	}
	corners := []any{true, true, true, true}
	if v, present := args["corners"]; present && v != nil {
		if list, isSlice := v.([]any); isSlice {
			corners = list
		}
	}
	result, err := s.figma.SendCommand(ctx, "set_corner_radius", map[string]any{
		"nodeId":  nodeID,
		"radius":  radius,
		"corners": corners,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting corner radius: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Set corner radius of node %q to %spx", name, num(radius)))
}

func (s *Server) setTextContent(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	text, hasText := strArg(args, "text")
	if !hasNode || !hasText {
		return errResult("set_text_content requires nodeId and text")
	}
	result, err := s.figma.SendCommand(ctx, "set_text_content", map[string]any{"nodeId": nodeID, "text": text})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting text content: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Updated text content of node %q to %q", name, text))
}

func (s *Server) setMultipleTextContents(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_multiple_text_contents requires nodeId")
	}
	rawText, present := args["text"]
	if !present || rawText == nil {
		return errResult("set_multiple_text_contents requires text")
	}
	entries, isSlice := rawText.([]any)
	if !isSlice {
		return errResult("set_multiple_text_contents requires text")
	}
	if len(entries) == 0 {
		return textResult("No text provided")
	}
	result, err := s.figma.SendCommand(ctx, "set_multiple_text_contents", map[string]any{
		"nodeId": nodeID,
		"text":   entries,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting multiple text contents: %v", err))
	}
	typed := decodeObject(result)
	summary := map[string]any{
		"success":             true,
		"replacementsApplied": float64(0),
		"replacementsFailed":  float64(0),
		"totalReplacements":   float64(len(entries)),
		"completedInChunks":   float64(0),
	}
	for _, key := range []string{"success", "replacementsApplied", "replacementsFailed", "totalReplacements", "completedInChunks"} {
		if v, exists := typed[key]; exists {
			summary[key] = v
		}
	}
	return ok(summary)
}

func (s *Server) exportNodeAsImage(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("export_node_as_image requires nodeId")
	}
	format := "PNG"
	if v, has := strArg(args, "format"); has {
		format = v
	}
	scale := 1.0
	if v, present, isNum := numArg(args, "scale"); present && isNum {
		scale = v
	}
	result, err := s.figma.SendCommand(ctx, "export_node_as_image", map[string]any{
		"nodeId": nodeID,
		"format": format,
		"scale":  scale,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error exporting node as image: %v", err))
	}
	typed := decodeObject(result)
	imageData, _ := typed["imageData"].(string)
	if imageData == "" {
		return errResult("export_node_as_image: plugin returned no image data")
	}
	mimeType, _ := typed["mimeType"].(string)
	if mimeType == "" {
		mimeType = "image/png"
	}
	return ToolCallResult{Content: []ContentItem{{Type: "image", Data: imageData, MimeType: mimeType}}}
}

func (s *Server) moveNode(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("move_node requires nodeId")
	}
	x, hasX, xNum := numArg(args, "x")
	if !hasX {
		return errResult("move_node requires x")
	}
	y, hasY, yNum := numArg(args, "y")
	if !hasY {
		return errResult("move_node requires y")
	}
	if !xNum || !yNum {
		return errResult("move_node: x and y must be numbers")
	}
	result, err := s.figma.SendCommand(ctx, "move_node", map[string]any{"nodeId": nodeID, "x": x, "y": y})
	if err != nil {
		return errResult(fmt.Sprintf("Error moving node: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Moved node %q to position (%s, %s)", name, num(x), num(y)))
}

func (s *Server) resizeNode(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("resize_node requires nodeId")
	}
	width, hasW, wNum := numArg(args, "width")
	if !hasW {
		return errResult("resize_node requires width")
	}
	height, hasH, hNum := numArg(args, "height")
	if !hasH {
		return errResult("resize_node requires height")
	}
	if !wNum || !hNum {
		return errResult("resize_node: width and height must be numbers")
	}
	result, err := s.figma.SendCommand(ctx, "resize_node", map[string]any{"nodeId": nodeID, "width": width, "height": height})
	if err != nil {
		return errResult(fmt.Sprintf("Error resizing node: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Resized node %q to width %s and height %s", name, num(width), num(height)))
}

func (s *Server) setLayoutMode(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_layout_mode requires nodeId")
	}
	layoutMode, hasMode := strArg(args, "layoutMode")
	if !hasMode {
		return errResult("set_layout_mode requires layoutMode")
	}
	layoutWrap, wrapExplicit := strArg(args, "layoutWrap")
	if !wrapExplicit {
		layoutWrap = "NO_WRAP"
	}
	result, err := s.figma.SendCommand(ctx, "set_layout_mode", map[string]any{
		"nodeId":     nodeID,
		"layoutMode": layoutMode,
		"layoutWrap": layoutWrap,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting layout mode: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	wrapSuffix := ""
	if wrapExplicit {
		wrapSuffix = " with " + layoutWrap
	}
	return textResult(fmt.Sprintf("Set layout mode of frame %q to %s%s", name, layoutMode, wrapSuffix))
}

func (s *Server) setPadding(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_padding requires nodeId")
	}
	sides := []struct {
		arg, param, label string
	}{
		{"top", "paddingTop", "top"},
		{"right", "paddingRight", "right"},
		{"bottom", "paddingBottom", "bottom"},
		{"left", "paddingLeft", "left"},
	}
	params := map[string]any{"nodeId": nodeID}
	var parts []string
	for _, side := range sides {
		v, present, isNum := numArg(args, side.arg)
		if !present {
			continue
		}
		if !isNum {
			return errResult(fmt.Sprintf("set_padding: %s must be a number", side.label))
		}
		params[side.param] = v
		parts = append(parts, fmt.Sprintf("%s: %s", side.label, num(v)))
	}
	if len(parts) == 0 {
		return errResult("set_padding requires at least one of: top, right, bottom, left")
	}
	result, err := s.figma.SendCommand(ctx, "set_padding", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error setting padding: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Set padding (%s) for frame %q", strings.Join(parts, ", "), name))
}

func (s *Server) setAxisAlign(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_axis_align requires nodeId")
	}
	params := map[string]any{"nodeId": nodeID}
	var parts []string
	if primary, has := strArg(args, "primaryAxisAlignItems"); has {
		params["primaryAxisAlignItems"] = primary
		parts = append(parts, "primary: "+primary)
	}
	if counter, has := strArg(args, "counterAxisAlignItems"); has {
		params["counterAxisAlignItems"] = counter
		parts = append(parts, "counter: "+counter)
	}
	if len(parts) == 0 {
		return errResult("set_axis_align requires at least one of: primaryAxisAlignItems, counterAxisAlignItems")
	}
	result, err := s.figma.SendCommand(ctx, "set_axis_align", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error setting axis alignment: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Set axis alignment (%s) for frame %q", strings.Join(parts, ", "), name))
}

func (s *Server) setLayoutSizing(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_layout_sizing requires nodeId")
	}
	params := map[string]any{"nodeId": nodeID}
	var parts []string
	if horizontal, has := strArg(args, "layoutSizingHorizontal"); has {
		params["layoutSizingHorizontal"] = horizontal
		parts = append(parts, "horizontal: "+horizontal)
	}
	if vertical, has := strArg(args, "layoutSizingVertical"); has {
		params["layoutSizingVertical"] = vertical
		parts = append(parts, "vertical: "+vertical)
	}
	if len(parts) == 0 {
		return errResult("set_layout_sizing requires at least one of: layoutSizingHorizontal, layoutSizingVertical")
	}
	result, err := s.figma.SendCommand(ctx, "set_layout_sizing", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error setting layout sizing: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Set layout sizing (%s) for frame %q", strings.Join(parts, ", "), name))
}

func (s *Server) setItemSpacing(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_item_spacing requires nodeId")
	}
	spacing, hasSpacing, spacingNum := numArg(args, "itemSpacing")
	if !hasSpacing {
		return errResult("set_item_spacing requires itemSpacing")
	}
	if !spacingNum {
		return errResult("set_item_spacing: itemSpacing must be a number")
	}
	params := map[string]any{"nodeId": nodeID, "itemSpacing": spacing}
	if v, present, isNum := numArg(args, "counterAxisSpacing"); present {
		if !isNum {
			return errResult("set_item_spacing: counterAxisSpacing must be a number")
		}
		params["counterAxisSpacing"] = v
	}
	result, err := s.figma.SendCommand(ctx, "set_item_spacing", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error setting item spacing: %v", err))
	}
	name := nodeName(decodeObject(result), nodeID)
	return textResult(fmt.Sprintf("Updated spacing for frame %q: itemSpacing=%s", name, num(spacing)))
}

func (s *Server) setAnnotation(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_annotation requires nodeId")
	}
	labelMarkdown, hasLabel := strArg(args, "labelMarkdown")
	if !hasLabel {
		return errResult("set_annotation requires labelMarkdown")
	}
	params := map[string]any{
		"nodeId":        nodeID,
		"labelMarkdown": labelMarkdown,
	}
	if annotationID, has := strArg(args, "annotationId"); has {
		params["annotationId"] = annotationID
	}
	if categoryID, has := strArg(args, "categoryId"); has {
		params["categoryId"] = categoryID
	}
	if v, present := args["properties"]; present && v != nil {
		list, isSlice := v.([]any)
		if !isSlice {
			return errResult("set_annotation: properties must be an array")
		}
		params["properties"] = list
	}
	result, err := s.figma.SendCommand(ctx, "set_annotation", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error setting annotation: %v", err))
	}
	return ok(decodeAny(result))
}

func (s *Server) setMultipleAnnotations(ctx context.Context, args map[string]any) ToolCallResult {
	rawAnnotations, present := args["annotations"]
	if !present || rawAnnotations == nil {
		return errResult("set_multiple_annotations requires annotations")
	}
	annotations, isSlice := rawAnnotations.([]any)
	if !isSlice {
		return errResult("set_multiple_annotations: annotations must be an array")
	}
	if len(annotations) == 0 {
		return errResult("set_multiple_annotations requires annotations")
	}
	nodeID, _ := strArg(args, "nodeId")
	result, err := s.figma.SendCommand(ctx, "set_multiple_annotations", map[string]any{
		"nodeId":      nodeID,
		"annotations": annotations,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting multiple annotations: %v", err))
	}
	typed := decodeObject(result)
	applied := intField(typed, "annotationsApplied", 0)
	failed := intField(typed, "annotationsFailed", 0)
	chunks := intField(typed, "completedInChunks", 1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Annotation process completed:\n- %d of %d successfully applied\n- %d failed\n- Processed in %d batches",
		applied, len(annotations), failed, chunks)

	if detailed, isList := typed["results"].([]any); isList {
		var failedLines []string
		for _, item := range detailed {
			entry, isMap := item.(map[string]any)
			if !isMap {
				continue
			}
			if success, _ := entry["success"].(bool); success {
				continue
			}
			id, _ := entry["nodeId"].(string)
			if id == "" {
				id = "unknown"
			}
			reason, _ := entry["error"].(string)
			if reason == "" {
				reason = "Unknown error"
			}
			failedLines = append(failedLines, fmt.Sprintf("- %s: %s", id, reason))
		}
		if len(failedLines) > 0 {
			sb.WriteString("\n\nNodes that failed:\n")
			sb.WriteString(strings.Join(failedLines, "\n"))
		}
	}
	return textResult(sb.String())
}

// intField reads a numeric result field, returning def when absent.
func intField(m map[string]any, key string, def int) int {
	if f, isNum := m[key].(float64); isNum {
		return int(f)
	}
	return def
}

func (s *Server) scanTextNodes(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("scan_text_nodes requires nodeId")
	}
	useChunking := true
	if v, isBool := args["useChunking"].(bool); isBool {
		useChunking = v
	}
	chunkSize := 10.0
	if v, present, isNum := numArg(args, "chunkSize"); present && isNum {
		chunkSize = v
	}
	result, err := s.figma.SendCommand(ctx, "scan_text_nodes", map[string]any{
		"nodeId":      nodeID,
		"useChunking": useChunking,
		"chunkSize":   chunkSize,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error scanning text nodes: %v", err))
	}
	typed := decodeObject(result)
	preamble := ContentItem{Type: "text", Text: "Starting text node scanning. This may take a moment for large designs..."}
	if _, chunked := typed["chunks"]; chunked {
		totalNodes := intField(typed, "totalNodes", 0)
		chunks := intField(typed, "chunks", 0)
		textNodes := typed["textNodes"]
		if textNodes == nil {
			textNodes = []any{}
		}
		nodesJSON, _ := json.MarshalIndent(textNodes, "", "  ")
		return ToolCallResult{Content: []ContentItem{
			preamble,
			{Type: "text", Text: fmt.Sprintf("\nScan completed:\n- Found %d text nodes\n- Processed in %d chunks", totalNodes, chunks)},
			{Type: "text", Text: string(nodesJSON)},
		}}
	}
	resultJSON, _ := json.MarshalIndent(decodeAny(result), "", "  ")
	return ToolCallResult{Content: []ContentItem{
		preamble,
		{Type: "text", Text: string(resultJSON)},
	}}
}

func (s *Server) scanNodesByTypes(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("scan_nodes_by_types requires nodeId")
	}
	rawTypes, present := args["types"]
	if !present || rawTypes == nil {
		return errResult("scan_nodes_by_types requires types")
	}
	types, isSlice := strSliceArg(args, "types")
	if !isSlice {
		return errResult("scan_nodes_by_types: types must be an array")
	}
	result, err := s.figma.SendCommand(ctx, "scan_nodes_by_types", map[string]any{
		"nodeId": nodeID,
		"types":  types,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error scanning nodes by types: %v", err))
	}
	typed := decodeObject(result)
	if _, matched := typed["matchingNodes"]; matched {
		count := intField(typed, "count", 0)
		searched := anyToStrings(typed["searchedTypes"])
		matchingNodes := typed["matchingNodes"]
		nodesJSON, _ := json.MarshalIndent(matchingNodes, "", "  ")
		return ToolCallResult{Content: []ContentItem{
			{Type: "text", Text: fmt.Sprintf("Starting node type scanning for types: %s...", strings.Join(searched, ", "))},
			{Type: "text", Text: fmt.Sprintf("Scan completed: Found %d nodes matching types: %s", count, strings.Join(searched, ", "))},
			{Type: "text", Text: string(nodesJSON)},
		}}
	}
	resultJSON, _ := json.MarshalIndent(decodeAny(result), "", "  ")
	return ToolCallResult{Content: []ContentItem{
		{Type: "text", Text: fmt.Sprintf("Starting node type scanning for types: %s...", strings.Join(types, ", "))},
		{Type: "text", Text: string(resultJSON)},
	}}
}

// anyToStrings converts a decoded JSON array to strings, skipping non-strings.
func anyToStrings(v any) []string {
	list, isSlice := v.([]any)
	if !isSlice {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, isStr := item.(string); isStr {
			out = append(out, s)
		}
	}
	return out
}

func (s *Server) getInstanceOverrides(ctx context.Context, args map[string]any) ToolCallResult {
	params := map[string]any{}
	if nodeID, has := strArg(args, "nodeId"); has {
		params["instanceNodeId"] = nodeID
	}
	result, err := s.figma.SendCommand(ctx, "get_instance_overrides", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error getting instance overrides: %v", err))
	}
	typed := decodeObject(result)
	success, _ := typed["success"].(bool)
	message, _ := typed["message"].(string)
	if success {
		return ok(fmt.Sprintf("Successfully got instance overrides: %s", message))
	}
	return errResult(fmt.Sprintf("Failed to get instance overrides: %s", message))
}

func (s *Server) setInstanceOverrides(ctx context.Context, args map[string]any) ToolCallResult {
	sourceID, hasSource := strArg(args, "sourceInstanceId")
	if !hasSource {
		return errResult("set_instance_overrides requires sourceInstanceId")
	}
	rawTargets, present := args["targetNodeIds"]
	if !present || rawTargets == nil {
		return errResult("set_instance_overrides requires targetNodeIds")
	}
	targets, isSlice := strSliceArg(args, "targetNodeIds")
	if !isSlice {
		return errResult("set_instance_overrides: targetNodeIds must be an array")
	}
	result, err := s.figma.SendCommand(ctx, "set_instance_overrides", map[string]any{
		"sourceInstanceId": sourceID,
		"targetNodeIds":    targets,
	})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting instance overrides: %v", err))
	}
	typed := decodeObject(result)
	success, _ := typed["success"].(bool)
	if !success {
		message, _ := typed["message"].(string)
		return errResult(fmt.Sprintf("Failed to set instance overrides: %s", message))
	}
	totalCount := intField(typed, "totalCount", 0)
	successCount := 0
	if results, isList := typed["results"].([]any); isList {
		for _, item := range results {
			entry, isMap := item.(map[string]any)
			if !isMap {
				continue
			}
			if entrySuccess, _ := entry["success"].(bool); entrySuccess {
				successCount++
			}
		}
	}
	return ok(fmt.Sprintf("Successfully applied %d overrides to %d instances.", totalCount, successCount))
}

func (s *Server) setDefaultConnector(ctx context.Context, args map[string]any) ToolCallResult {
	params := map[string]any{}
	if connectorID, has := strArg(args, "connectorId"); has {
		params["connectorId"] = connectorID
	}
	result, err := s.figma.SendCommand(ctx, "set_default_connector", params)
	if err != nil {
		return errResult(fmt.Sprintf("Error setting default connector: %v", err))
	}
	resultJSON, _ := json.Marshal(decodeAny(result))
	return ok(fmt.Sprintf("Default connector set: %s", resultJSON))
}

func (s *Server) createConnections(ctx context.Context, args map[string]any) ToolCallResult {
	rawConnections, present := args["connections"]
	if !present || rawConnections == nil {
		return errResult("create_connections requires connections")
	}
	connections, isSlice := rawConnections.([]any)
	if !isSlice {
		return errResult("create_connections: connections must be an array")
	}
	if len(connections) == 0 {
		return errResult("create_connections requires connections")
	}
	result, err := s.figma.SendCommand(ctx, "create_connections", map[string]any{"connections": connections})
	if err != nil {
		return errResult(fmt.Sprintf("Error creating connections: %v", err))
	}
	resultJSON, _ := json.Marshal(decodeAny(result))
	return ok(fmt.Sprintf("Created %d connections: %s", len(connections), resultJSON))
}

func (s *Server) setFocus(ctx context.Context, args map[string]any) ToolCallResult {
	nodeID, hasNode := strArg(args, "nodeId")
	if !hasNode {
		return errResult("set_focus requires nodeId")
	}
	result, err := s.figma.SendCommand(ctx, "set_focus", map[string]any{"nodeId": nodeID})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting focus: %v", err))
	}
	typed := decodeObject(result)
	name := nodeName(typed, nodeID)
	id := nodeID
	if v, isStr := typed["id"].(string); isStr {
		id = v
	}
	return ok(fmt.Sprintf("Focused on node %q (ID: %s)", name, id))
}

func (s *Server) setSelections(ctx context.Context, args map[string]any) ToolCallResult {
	nodeIDs, has := strSliceArg(args, "nodeIds")
	if !has {
		return errResult("set_selections requires nodeIds")
	}
	if len(nodeIDs) == 0 {
		return errResult("set_selections requires nodeIds")
	}
	result, err := s.figma.SendCommand(ctx, "set_selections", map[string]any{"nodeIds": nodeIDs})
	if err != nil {
		return errResult(fmt.Sprintf("Error setting selections: %v", err))
	}
	typed := decodeObject(result)
	count := intField(typed, "count", len(nodeIDs))
	var parts []string
	if selected, isList := typed["selectedNodes"].([]any); isList {
		for _, item := range selected {
			entry, isMap := item.(map[string]any)
			if !isMap {
				continue
			}
			id, _ := entry["id"].(string)
			if id == "" {
				id = "unknown"
			}
			name, _ := entry["name"].(string)
			if name == "" {
				name = id
			}
			parts = append(parts, fmt.Sprintf("%q (%s)", name, id))
		}
	}
	return ok(fmt.Sprintf("Selected %d nodes: %s", count, strings.Join(parts, ", ")))
}

func (s *Server) joinChannel(ctx context.Context, args map[string]any) ToolCallResult {
	channel, _ := strArg(args, "channel")
	if channel == "" {
		return errResult("Please provide a channel name to join")
	}
	if _, err := s.figma.JoinChannel(ctx, channel); err != nil {
		return errResult(fmt.Sprintf("Error joining channel: %v", err))
	}
	return ok(fmt.Sprintf("Successfully joined channel: %s", channel))
}
