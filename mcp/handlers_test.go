package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, fake *fakeSender) *Server {
	t.Helper()
	setupTestLogger(t)
	return NewServer(strings.NewReader(""), io.Discard, fake)
}

func contentText(t *testing.T, result ToolCallResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	return result.Content[0].Text
}

func TestDispatch_GetDocumentInfo(t *testing.T) {
	fake := newFakeSender()
	fake.results["get_document_info"] = json.RawMessage(`{"name":"My File","id":"doc:1"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "get_document_info", nil)

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); !strings.Contains(got, `"My File"`) {
		t.Errorf("text = %q, want document name present", got)
	}
	if call := fake.lastCall(t); call.command != "get_document_info" {
		t.Errorf("command = %q", call.command)
	}
}

func TestDispatch_CommandFailureBecomesToolError(t *testing.T) {
	fake := newFakeSender()
	fake.errs["get_selection"] = errors.New("Connection closed")
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "get_selection", nil)

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "Error getting selection: Connection closed" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_GetNodeInfoFiltersResult(t *testing.T) {
	fake := newFakeSender()
	fake.results["get_node_info"] = json.RawMessage(`{
		"id": "1:2",
		"name": "Card",
		"type": "FRAME",
		"boundVariables": {"fills": []},
		"fills": [{"type":"SOLID","color":{"r":1,"g":0,"b":0,"a":1},"boundVariables":{}}]
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "get_node_info", map[string]any{"nodeId": "1:2"})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	var node map[string]any
	if err := json.Unmarshal([]byte(contentText(t, result)), &node); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if _, exists := node["boundVariables"]; exists {
		t.Error("boundVariables should be stripped")
	}
	fills, isSlice := node["fills"].([]any)
	if !isSlice || len(fills) != 1 {
		t.Fatalf("fills = %v", node["fills"])
	}
	fill := fills[0].(map[string]any)
	if fill["color"] != "#ff0000" {
		t.Errorf("fill color = %v, want #ff0000", fill["color"])
	}
	if call := fake.lastCall(t); call.params["nodeId"] != "1:2" {
		t.Errorf("params = %v", call.params)
	}
}

func TestDispatch_GetNodeInfoMissingParam(t *testing.T) {
	s := newTestServer(t, newFakeSender())

	result := s.dispatch(context.Background(), "get_node_info", map[string]any{})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "Missing required parameter: nodeId" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_GetNodesInfoSkipsFailures(t *testing.T) {
	fake := newFakeSender()
	fake.results["get_node_info"] = json.RawMessage(`{"id":"1:2","name":"A","type":"FRAME"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "get_nodes_info", map[string]any{
		"nodeIds": []any{"1:2", "1:3"},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	var nodes []any
	if err := json.Unmarshal([]byte(contentText(t, result)), &nodes); err != nil {
		t.Fatalf("result is not a JSON array: %v", err)
	}
	if len(nodes) != 2 {
		t.Errorf("node count = %d, want 2", len(nodes))
	}
}

func TestDispatch_CreateRectangleDefaults(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "create_rectangle", map[string]any{
		"x": 10.0, "y": 20.0, "width": 100.0, "height": 50.0,
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	call := fake.lastCall(t)
	if call.command != "create_rectangle" {
		t.Errorf("command = %q", call.command)
	}
	if call.params["name"] != "Rectangle" {
		t.Errorf("name default = %v, want Rectangle", call.params["name"])
	}
	if _, exists := call.params["parentId"]; exists {
		t.Error("parentId should be omitted when not provided")
	}
}

func TestDispatch_CreateRectangleMissingParams(t *testing.T) {
	s := newTestServer(t, newFakeSender())

	result := s.dispatch(context.Background(), "create_rectangle", map[string]any{"x": 10.0})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "create_rectangle requires x, y, width, and height" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_CreateFrameDefaults(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "create_frame", map[string]any{
		"x": 0.0, "y": 0.0, "width": 200.0, "height": 100.0,
		"layoutMode": "VERTICAL",
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	call := fake.lastCall(t)
	if call.params["name"] != "Frame" {
		t.Errorf("name default = %v", call.params["name"])
	}
	fill, isMap := call.params["fillColor"].(map[string]any)
	if !isMap {
		t.Fatalf("fillColor = %v", call.params["fillColor"])
	}
	for _, ch := range []string{"r", "g", "b", "a"} {
		if fill[ch] != any(1) {
			t.Errorf("fillColor.%s = %v, want 1", ch, fill[ch])
		}
	}
	if call.params["layoutMode"] != "VERTICAL" {
		t.Errorf("layoutMode = %v", call.params["layoutMode"])
	}
	if _, exists := call.params["strokeColor"]; exists {
		t.Error("strokeColor should be omitted when not provided")
	}
}

func TestDispatch_CreateTextDefaults(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "create_text", map[string]any{
		"x": 0.0, "y": 0.0, "text": "Hello",
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	call := fake.lastCall(t)
	if call.params["fontSize"] != float64(14) {
		t.Errorf("fontSize = %v, want 14", call.params["fontSize"])
	}
	if call.params["fontWeight"] != float64(400) {
		t.Errorf("fontWeight = %v, want 400", call.params["fontWeight"])
	}
	fontColor, isMap := call.params["fontColor"].(map[string]any)
	if !isMap || fontColor["r"] != any(0) || fontColor["a"] != any(1) {
		t.Errorf("fontColor = %v, want black", call.params["fontColor"])
	}
	if call.params["name"] != "Text" {
		t.Errorf("name = %v", call.params["name"])
	}
}

func TestDispatch_DeleteNode(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "delete_node", map[string]any{"nodeId": "9:9"})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); got != `{"deleted":"9:9"}` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetFillColor(t *testing.T) {
	fake := newFakeSender()
	fake.results["set_fill_color"] = json.RawMessage(`{"id":"1:2","name":"Card"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_fill_color", map[string]any{
		"nodeId": "1:2", "r": 1.0, "g": 0.5, "b": 0.0,
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); got != `Set fill color of node "Card" to RGBA(1, 0.5, 0, 1)` {
		t.Errorf("text = %q", got)
	}
	call := fake.lastCall(t)
	color, isMap := call.params["color"].(map[string]any)
	if !isMap || color["a"] != 1.0 {
		t.Errorf("color = %v, alpha should default to 1", call.params["color"])
	}
}

func TestDispatch_SetFillColorTypeCheck(t *testing.T) {
	s := newTestServer(t, newFakeSender())

	result := s.dispatch(context.Background(), "set_fill_color", map[string]any{
		"nodeId": "1:2", "r": "red", "g": 0.0, "b": 0.0,
	})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "set_fill_color: r, g, b must be numbers in range 0-1" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetStrokeColorDefaultWeight(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_stroke_color", map[string]any{
		"nodeId": "1:2", "r": 0.0, "g": 0.0, "b": 1.0,
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if fake.lastCall(t).params["weight"] != 1.0 {
		t.Errorf("weight = %v, want default 1", fake.lastCall(t).params["weight"])
	}
	if got := contentText(t, result); !strings.HasSuffix(got, "with weight 1") {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetCornerRadiusDefaultCorners(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_corner_radius", map[string]any{
		"nodeId": "1:2", "radius": 8.0,
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	corners, isSlice := fake.lastCall(t).params["corners"].([]any)
	if !isSlice || len(corners) != 4 {
		t.Fatalf("corners = %v", fake.lastCall(t).params["corners"])
	}
	for i, corner := range corners {
		if corner != true {
			t.Errorf("corners[%d] = %v, want true", i, corner)
		}
	}
	if got := contentText(t, result); got != `Set corner radius of node "1:2" to 8px` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetMultipleTextContents(t *testing.T) {
	fake := newFakeSender()
	fake.results["set_multiple_text_contents"] = json.RawMessage(`{
		"success": true,
		"replacementsApplied": 2,
		"replacementsFailed": 0,
		"totalReplacements": 2,
		"completedInChunks": 1
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_multiple_text_contents", map[string]any{
		"nodeId": "1:1",
		"text": []any{
			map[string]any{"nodeId": "1:2", "text": "a"},
			map[string]any{"nodeId": "1:3", "text": "b"},
		},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	var summary map[string]any
	if err := json.Unmarshal([]byte(contentText(t, result)), &summary); err != nil {
		t.Fatalf("summary is not JSON: %v", err)
	}
	if summary["replacementsApplied"] != float64(2) {
		t.Errorf("replacementsApplied = %v", summary["replacementsApplied"])
	}
}

func TestDispatch_SetMultipleTextContentsEmpty(t *testing.T) {
	s := newTestServer(t, newFakeSender())

	result := s.dispatch(context.Background(), "set_multiple_text_contents", map[string]any{
		"nodeId": "1:1",
		"text":   []any{},
	})

	if result.IsError {
		t.Fatal("empty text list is not an error")
	}
	if got := contentText(t, result); got != "No text provided" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_ExportNodeAsImage(t *testing.T) {
	fake := newFakeSender()
	fake.results["export_node_as_image"] = json.RawMessage(`{"imageData":"aGVsbG8=","mimeType":"image/png"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "export_node_as_image", map[string]any{"nodeId": "1:2"})

	if result.IsError {
		t.Fatalf("unexpected error result: %v", result.Content)
	}
	item := result.Content[0]
	if item.Type != "image" || item.Data != "aGVsbG8=" || item.MimeType != "image/png" {
		t.Errorf("content = %+v", item)
	}
	call := fake.lastCall(t)
	if call.params["format"] != "PNG" || call.params["scale"] != 1.0 {
		t.Errorf("params = %v, want PNG defaults", call.params)
	}
}

func TestDispatch_ExportNodeAsImageNoData(t *testing.T) {
	fake := newFakeSender()
	fake.results["export_node_as_image"] = json.RawMessage(`{"mimeType":"image/png"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "export_node_as_image", map[string]any{"nodeId": "1:2"})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "export_node_as_image: plugin returned no image data" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_MoveNode(t *testing.T) {
	fake := newFakeSender()
	fake.results["move_node"] = json.RawMessage(`{"name":"Hero"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "move_node", map[string]any{
		"nodeId": "1:2", "x": 15.0, "y": -3.5,
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); got != `Moved node "Hero" to position (15, -3.5)` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetLayoutModeWrapSuffix(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	t.Run("default NO_WRAP omitted from text", func(t *testing.T) {
		result := s.dispatch(context.Background(), "set_layout_mode", map[string]any{
			"nodeId": "1:2", "layoutMode": "HORIZONTAL",
		})
		if got := contentText(t, result); got != `Set layout mode of frame "1:2" to HORIZONTAL` {
			t.Errorf("text = %q", got)
		}
		if fake.lastCall(t).params["layoutWrap"] != "NO_WRAP" {
			t.Errorf("layoutWrap = %v, want NO_WRAP default", fake.lastCall(t).params["layoutWrap"])
		}
	})

	t.Run("explicit wrap appears in text", func(t *testing.T) {
		result := s.dispatch(context.Background(), "set_layout_mode", map[string]any{
			"nodeId": "1:2", "layoutMode": "HORIZONTAL", "layoutWrap": "WRAP",
		})
		if got := contentText(t, result); got != `Set layout mode of frame "1:2" to HORIZONTAL with WRAP` {
			t.Errorf("text = %q", got)
		}
	})
}

func TestDispatch_SetPadding(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_padding", map[string]any{
		"nodeId": "1:2", "top": 8.0, "left": 16.0,
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	call := fake.lastCall(t)
	if call.params["paddingTop"] != 8.0 || call.params["paddingLeft"] != 16.0 {
		t.Errorf("params = %v", call.params)
	}
	if _, exists := call.params["paddingRight"]; exists {
		t.Error("unset sides should be omitted")
	}
	if got := contentText(t, result); got != `Set padding (top: 8, left: 16) for frame "1:2"` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetPaddingRequiresASide(t *testing.T) {
	s := newTestServer(t, newFakeSender())

	result := s.dispatch(context.Background(), "set_padding", map[string]any{"nodeId": "1:2"})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "set_padding requires at least one of: top, right, bottom, left" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_ScanTextNodesDefaults(t *testing.T) {
	fake := newFakeSender()
	fake.results["scan_text_nodes"] = json.RawMessage(`{
		"totalNodes": 2,
		"chunks": 1,
		"textNodes": [{"id":"1:2","text":"a"},{"id":"1:3","text":"b"}]
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "scan_text_nodes", map[string]any{"nodeId": "1:1"})

	if result.IsError {
		t.Fatalf("unexpected error result: %v", result.Content)
	}
	call := fake.lastCall(t)
	if call.params["useChunking"] != true || call.params["chunkSize"] != 10.0 {
		t.Errorf("params = %v, want chunking defaults", call.params)
	}
	if len(result.Content) != 3 {
		t.Fatalf("content items = %d, want 3", len(result.Content))
	}
	if !strings.Contains(result.Content[1].Text, "Found 2 text nodes") {
		t.Errorf("summary = %q", result.Content[1].Text)
	}
}

func TestDispatch_ScanNodesByTypes(t *testing.T) {
	fake := newFakeSender()
	fake.results["scan_nodes_by_types"] = json.RawMessage(`{
		"count": 1,
		"searchedTypes": ["TEXT","FRAME"],
		"matchingNodes": [{"id":"1:2","type":"TEXT"}]
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "scan_nodes_by_types", map[string]any{
		"nodeId": "1:1", "types": []any{"TEXT", "FRAME"},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %v", result.Content)
	}
	if len(result.Content) != 3 {
		t.Fatalf("content items = %d, want 3", len(result.Content))
	}
	if got := result.Content[1].Text; got != "Scan completed: Found 1 nodes matching types: TEXT, FRAME" {
		t.Errorf("summary = %q", got)
	}
}

func TestDispatch_GetInstanceOverrides(t *testing.T) {
	fake := newFakeSender()
	fake.results["get_instance_overrides"] = json.RawMessage(`{"success":true,"message":"3 overrides copied"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "get_instance_overrides", map[string]any{"nodeId": "1:2"})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if fake.lastCall(t).params["instanceNodeId"] != "1:2" {
		t.Errorf("params = %v, want instanceNodeId", fake.lastCall(t).params)
	}
	if got := contentText(t, result); got != `"Successfully got instance overrides: 3 overrides copied"` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetInstanceOverrides(t *testing.T) {
	fake := newFakeSender()
	fake.results["set_instance_overrides"] = json.RawMessage(`{
		"success": true,
		"totalCount": 5,
		"results": [{"success":true},{"success":false},{"success":true}]
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_instance_overrides", map[string]any{
		"sourceInstanceId": "1:2", "targetNodeIds": []any{"1:3", "1:4", "1:5"},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); got != `"Successfully applied 5 overrides to 2 instances."` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetMultipleAnnotationsSummary(t *testing.T) {
	fake := newFakeSender()
	fake.results["set_multiple_annotations"] = json.RawMessage(`{
		"annotationsApplied": 1,
		"annotationsFailed": 1,
		"completedInChunks": 1,
		"results": [
			{"nodeId":"1:2","success":true},
			{"nodeId":"1:3","success":false,"error":"node locked"}
		]
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_multiple_annotations", map[string]any{
		"annotations": []any{
			map[string]any{"nodeId": "1:2", "labelMarkdown": "a"},
			map[string]any{"nodeId": "1:3", "labelMarkdown": "b"},
		},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	text := contentText(t, result)
	if !strings.Contains(text, "1 of 2 successfully applied") {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(text, "- 1:3: node locked") {
		t.Errorf("text = %q, want failed node details", text)
	}
}

func TestDispatch_SetFocus(t *testing.T) {
	fake := newFakeSender()
	fake.results["set_focus"] = json.RawMessage(`{"id":"1:2","name":"Hero"}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_focus", map[string]any{"nodeId": "1:2"})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); got != `"Focused on node \"Hero\" (ID: 1:2)"` {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_SetSelections(t *testing.T) {
	fake := newFakeSender()
	fake.results["set_selections"] = json.RawMessage(`{
		"count": 2,
		"selectedNodes": [{"id":"1:2","name":"A"},{"id":"1:3","name":"B"}]
	}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "set_selections", map[string]any{
		"nodeIds": []any{"1:2", "1:3"},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	var text string
	if err := json.Unmarshal([]byte(contentText(t, result)), &text); err != nil {
		t.Fatalf("text is not a JSON string: %v", err)
	}
	if text != `Selected 2 nodes: "A" (1:2), "B" (1:3)` {
		t.Errorf("text = %q", text)
	}
}

func TestDispatch_CreateConnections(t *testing.T) {
	fake := newFakeSender()
	fake.results["create_connections"] = json.RawMessage(`{"created":2}`)
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "create_connections", map[string]any{
		"connections": []any{
			map[string]any{"startNodeId": "1:2", "endNodeId": "1:3"},
			map[string]any{"startNodeId": "1:3", "endNodeId": "1:4"},
		},
	})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	var text string
	if err := json.Unmarshal([]byte(contentText(t, result)), &text); err != nil {
		t.Fatalf("text is not a JSON string: %v", err)
	}
	if text != `Created 2 connections: {"created":2}` {
		t.Errorf("text = %q", text)
	}
}

func TestDispatch_JoinChannel(t *testing.T) {
	fake := newFakeSender()
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "join_channel", map[string]any{"channel": "design-review"})

	if result.IsError {
		t.Fatalf("unexpected error result: %s", contentText(t, result))
	}
	if got := contentText(t, result); got != `"Successfully joined channel: design-review"` {
		t.Errorf("text = %q", got)
	}
	if len(fake.joined) != 1 || fake.joined[0] != "design-review" {
		t.Errorf("joined = %v", fake.joined)
	}
}

func TestDispatch_JoinChannelMissingName(t *testing.T) {
	s := newTestServer(t, newFakeSender())

	result := s.dispatch(context.Background(), "join_channel", map[string]any{})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "Please provide a channel name to join" {
		t.Errorf("text = %q", got)
	}
}

func TestDispatch_JoinChannelFailure(t *testing.T) {
	fake := newFakeSender()
	fake.joinErr = errors.New("Connection closed")
	s := newTestServer(t, fake)

	result := s.dispatch(context.Background(), "join_channel", map[string]any{"channel": "x"})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := contentText(t, result); got != "Error joining channel: Connection closed" {
		t.Errorf("text = %q", got)
	}
}
