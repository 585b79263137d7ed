package mcp

// allTools is the full tool surface advertised by tools/list. Grouped by
// concern: document/selection reads, node creation and modification,
// style, layout, annotations and prototyping, and channel management.
var allTools = []ToolDefinition{
	// Document & selection
	{
		Name:        "get_document_info",
		Description: "Get detailed information about the current Figma document",
		InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}, Required: []string{}},
	},
	{
		Name:        "get_selection",
		Description: "Get information about the current selection in Figma",
		InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}, Required: []string{}},
	},
	{
		Name:        "read_my_design",
		Description: "Get detailed information about the current selection in Figma, including all node details",
		InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}, Required: []string{}},
	},
	{
		Name:        "get_node_info",
		Description: "Get detailed information about a specific node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "The ID of the node to get information about"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "get_nodes_info",
		Description: "Get detailed information about multiple nodes in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeIds": {
					Type:        "array",
					Items:       &Property{Type: "string"},
					Description: "List of node IDs to get information about",
				},
			},
			Required: []string{"nodeIds"},
		},
	},
	{
		Name:        "get_styles",
		Description: "Get all styles defined in the current Figma document",
		InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}, Required: []string{}},
	},
	{
		Name:        "get_local_components",
		Description: "Get all local components defined in the current Figma document",
		InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}, Required: []string{}},
	},
	{
		Name:        "get_annotations",
		Description: "Get annotations from the current Figma document or a specific node",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":            {Type: "string", Description: "The ID of the node to get annotations for (optional)"},
				"includeCategories": {Type: "boolean", Description: "Whether to include annotation categories"},
			},
			Required: []string{},
		},
	},
	{
		Name:        "get_reactions",
		Description: "Get reactions (interactions/prototyping) for specified nodes",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeIds": {
					Type:        "array",
					Items:       &Property{Type: "string"},
					Description: "List of node IDs to get reactions for",
				},
			},
			Required: []string{"nodeIds"},
		},
	},

	// Create & modify
	{
		Name:        "create_rectangle",
		Description: "Create a new rectangle node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"x":        {Type: "number", Description: "X position"},
				"y":        {Type: "number", Description: "Y position"},
				"width":    {Type: "number", Description: "Width"},
				"height":   {Type: "number", Description: "Height"},
				"name":     {Type: "string", Description: "Name of the rectangle (optional)"},
				"parentId": {Type: "string", Description: "Parent node ID (optional)"},
			},
			Required: []string{"x", "y", "width", "height"},
		},
	},
	{
		Name:        "create_frame",
		Description: "Create a new frame node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"x":                      {Type: "number", Description: "X position"},
				"y":                      {Type: "number", Description: "Y position"},
				"width":                  {Type: "number", Description: "Width"},
				"height":                 {Type: "number", Description: "Height"},
				"name":                   {Type: "string", Description: "Name of the frame (optional)"},
				"parentId":               {Type: "string", Description: "Parent node ID (optional)"},
				"fillColor":              {Type: "object", Description: "Fill color as RGBA {r,g,b,a} with 0-1 values"},
				"strokeColor":            {Type: "object", Description: "Stroke color as RGBA {r,g,b,a}"},
				"strokeWeight":           {Type: "number", Description: "Stroke weight in pixels"},
				"layoutMode":             {Type: "string", Description: "Auto layout mode: HORIZONTAL, VERTICAL, or NONE"},
				"layoutWrap":             {Type: "string", Description: "Layout wrap: NO_WRAP or WRAP"},
				"paddingTop":             {Type: "number", Description: "Top padding"},
				"paddingRight":           {Type: "number", Description: "Right padding"},
				"paddingBottom":          {Type: "number", Description: "Bottom padding"},
				"paddingLeft":            {Type: "number", Description: "Left padding"},
				"primaryAxisAlignItems":  {Type: "string", Description: "Primary axis alignment"},
				"counterAxisAlignItems":  {Type: "string", Description: "Counter axis alignment"},
				"layoutSizingHorizontal": {Type: "string", Description: "Horizontal sizing mode"},
				"layoutSizingVertical":   {Type: "string", Description: "Vertical sizing mode"},
				"itemSpacing":            {Type: "number", Description: "Item spacing in auto layout"},
			},
			Required: []string{"x", "y", "width", "height"},
		},
	},
	{
		Name:        "create_text",
		Description: "Create a new text node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"x":          {Type: "number", Description: "X position"},
				"y":          {Type: "number", Description: "Y position"},
				"text":       {Type: "string", Description: "Text content"},
				"fontSize":   {Type: "number", Description: "Font size (optional)"},
				"fontWeight": {Type: "number", Description: "Font weight (optional)"},
				"fontColor":  {Type: "object", Description: "Font color as RGBA {r,g,b,a} with 0-1 values. Defaults to black."},
				"name":       {Type: "string", Description: "Name of the text node (optional)"},
				"parentId":   {Type: "string", Description: "Parent node ID (optional)"},
			},
			Required: []string{"x", "y", "text"},
		},
	},
	{
		Name:        "create_component_instance",
		Description: "Create an instance of an existing component in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"componentKey": {Type: "string", Description: "Key of the component to instantiate"},
				"x":            {Type: "number", Description: "X position (optional)"},
				"y":            {Type: "number", Description: "Y position (optional)"},
			},
			Required: []string{"componentKey"},
		},
	},
	{
		Name:        "clone_node",
		Description: "Clone an existing node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to clone"},
				"x":      {Type: "number", Description: "X position for the clone (optional)"},
				"y":      {Type: "number", Description: "Y position for the clone (optional)"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "delete_node",
		Description: "Delete a node from the Figma document",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to delete"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "delete_multiple_nodes",
		Description: "Delete multiple nodes from the Figma document",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeIds": {
					Type:        "array",
					Items:       &Property{Type: "string"},
					Description: "List of node IDs to delete",
				},
			},
			Required: []string{"nodeIds"},
		},
	},

	// Style & appearance
	{
		Name:        "set_fill_color",
		Description: "Set the fill color of a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node"},
				"r":      {Type: "number", Description: "Red (0-1)"},
				"g":      {Type: "number", Description: "Green (0-1)"},
				"b":      {Type: "number", Description: "Blue (0-1)"},
				"a":      {Type: "number", Description: "Alpha (0-1, optional)"},
			},
			Required: []string{"nodeId", "r", "g", "b"},
		},
	},
	{
		Name:        "set_stroke_color",
		Description: "Set the stroke color of a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node"},
				"r":      {Type: "number", Description: "Red (0-1)"},
				"g":      {Type: "number", Description: "Green (0-1)"},
				"b":      {Type: "number", Description: "Blue (0-1)"},
				"a":      {Type: "number", Description: "Alpha (0-1, optional)"},
				"weight": {Type: "number", Description: "Stroke weight in pixels (optional)"},
			},
			Required: []string{"nodeId", "r", "g", "b"},
		},
	},
	{
		Name:        "set_corner_radius",
		Description: "Set the corner radius of a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node"},
				"radius": {Type: "number", Description: "Corner radius value"},
				"corners": {
					Type:        "array",
					Items:       &Property{Type: "boolean"},
					Description: "Which corners to apply the radius to: [topLeft, topRight, bottomRight, bottomLeft]. Defaults to all true.",
				},
			},
			Required: []string{"nodeId", "radius"},
		},
	},
	{
		Name:        "set_text_content",
		Description: "Set the text content of a text node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the text node"},
				"text":   {Type: "string", Description: "New text content"},
			},
			Required: []string{"nodeId", "text"},
		},
	},
	{
		Name:        "set_multiple_text_contents",
		Description: "Set the text content of multiple text nodes in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the parent node (used as context)"},
				"text": {
					Type: "array",
					Items: &Property{
						Type: "object",
						Properties: map[string]Property{
							"nodeId": {Type: "string"},
							"text":   {Type: "string"},
						},
						Required: []string{"nodeId", "text"},
					},
					Description: "List of nodeId/text pairs to update",
				},
			},
			Required: []string{"nodeId", "text"},
		},
	},
	{
		Name:        "export_node_as_image",
		Description: "Export a node as an image from Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to export"},
				"format": {Type: "string", Description: "Export format. Note: currently the Figma plugin only supports PNG regardless of this value."},
				"scale":  {Type: "number", Description: "Export scale (optional)"},
			},
			Required: []string{"nodeId"},
		},
	},

	// Layout & positioning
	{
		Name:        "move_node",
		Description: "Move a node to a new position in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to move"},
				"x":      {Type: "number", Description: "New X position"},
				"y":      {Type: "number", Description: "New Y position"},
			},
			Required: []string{"nodeId", "x", "y"},
		},
	},
	{
		Name:        "resize_node",
		Description: "Resize a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to resize"},
				"width":  {Type: "number", Description: "New width"},
				"height": {Type: "number", Description: "New height"},
			},
			Required: []string{"nodeId", "width", "height"},
		},
	},
	{
		Name:        "set_layout_mode",
		Description: "Set the auto-layout mode of a frame node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":     {Type: "string", Description: "ID of the frame node"},
				"layoutMode": {Type: "string", Description: "Layout mode: NONE, HORIZONTAL, or VERTICAL"},
				"layoutWrap": {Type: "string", Description: "Wrap mode: NO_WRAP or WRAP (optional, defaults to NO_WRAP)"},
			},
			Required: []string{"nodeId", "layoutMode"},
		},
	},
	{
		Name:        "set_padding",
		Description: "Set the padding of an auto-layout frame in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the frame node"},
				"top":    {Type: "number", Description: "Top padding (optional)"},
				"right":  {Type: "number", Description: "Right padding (optional)"},
				"bottom": {Type: "number", Description: "Bottom padding (optional)"},
				"left":   {Type: "number", Description: "Left padding (optional)"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "set_axis_align",
		Description: "Set the axis alignment of an auto-layout frame in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":                {Type: "string", Description: "ID of the frame node"},
				"primaryAxisAlignItems": {Type: "string", Description: "Primary axis alignment (optional)"},
				"counterAxisAlignItems": {Type: "string", Description: "Counter axis alignment (optional)"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "set_layout_sizing",
		Description: "Set the layout sizing of a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":                 {Type: "string", Description: "ID of the node"},
				"layoutSizingHorizontal": {Type: "string", Description: "Horizontal sizing mode: FIXED, HUG, or FILL (optional)"},
				"layoutSizingVertical":   {Type: "string", Description: "Vertical sizing mode: FIXED, HUG, or FILL (optional)"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "set_item_spacing",
		Description: "Set the item spacing of an auto-layout frame in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":             {Type: "string", Description: "ID of the frame node"},
				"itemSpacing":        {Type: "number", Description: "Item spacing between auto-layout children"},
				"counterAxisSpacing": {Type: "number", Description: "Distance between wrapped rows/columns. Only applies when layoutWrap is WRAP (optional)"},
			},
			Required: []string{"nodeId", "itemSpacing"},
		},
	},

	// Annotations, prototyping & channel
	{
		Name:        "set_annotation",
		Description: "Set an annotation on a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":        {Type: "string", Description: "ID of the node"},
				"labelMarkdown": {Type: "string", Description: "Annotation label in Markdown"},
				"annotationId":  {Type: "string", Description: "ID of an existing annotation to update (optional)"},
				"categoryId":    {Type: "string", Description: "Category ID for the annotation (optional)"},
				"properties": {
					Type:        "array",
					Items:       &Property{Type: "object"},
					Description: "Additional annotation properties (optional)",
				},
			},
			Required: []string{"nodeId", "labelMarkdown"},
		},
	},
	{
		Name:        "set_multiple_annotations",
		Description: "Set annotations on multiple nodes in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to add annotations to (optional)"},
				"annotations": {
					Type:        "array",
					Items:       &Property{Type: "object"},
					Description: "List of annotation objects",
				},
			},
			Required: []string{"annotations"},
		},
	},
	{
		Name:        "scan_text_nodes",
		Description: "Scan text nodes within a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId":      {Type: "string", Description: "ID of the node to scan"},
				"useChunking": {Type: "boolean", Description: "Whether to use chunked scanning (optional)"},
				"chunkSize":   {Type: "integer", Description: "Chunk size for chunked scanning (optional)"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "scan_nodes_by_types",
		Description: "Scan nodes by their type within a node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the parent node"},
				"types": {
					Type:        "array",
					Items:       &Property{Type: "string"},
					Description: "List of node types to scan for",
				},
			},
			Required: []string{"nodeId", "types"},
		},
	},
	{
		Name:        "get_instance_overrides",
		Description: "Get overrides from a component instance in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the component instance"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "set_instance_overrides",
		Description: "Apply instance overrides from one instance to multiple target instances",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"sourceInstanceId": {Type: "string", Description: "ID of the source component instance"},
				"targetNodeIds": {
					Type:        "array",
					Items:       &Property{Type: "string"},
					Description: "IDs of target instances to apply overrides to",
				},
			},
			Required: []string{"sourceInstanceId", "targetNodeIds"},
		},
	},
	{
		Name:        "set_default_connector",
		Description: "Set the default connector style for new connections in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"connectorId": {Type: "string", Description: "ID of the connector node to use as default (optional)"},
			},
			Required: []string{},
		},
	},
	{
		Name:        "create_connections",
		Description: "Create connections (connectors) between nodes in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"connections": {
					Type: "array",
					Items: &Property{
						Type: "object",
						Properties: map[string]Property{
							"startNodeId": {Type: "string"},
							"endNodeId":   {Type: "string"},
							"text":        {Type: "string"},
						},
						Required: []string{"startNodeId", "endNodeId"},
					},
					Description: "List of connections to create",
				},
			},
			Required: []string{"connections"},
		},
	},
	{
		Name:        "set_focus",
		Description: "Set the viewport focus on a specific node in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeId": {Type: "string", Description: "ID of the node to focus on"},
			},
			Required: []string{"nodeId"},
		},
	},
	{
		Name:        "set_selections",
		Description: "Set the current selection to a list of nodes in Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"nodeIds": {
					Type:        "array",
					Items:       &Property{Type: "string"},
					Description: "List of node IDs to select",
				},
			},
			Required: []string{"nodeIds"},
		},
	},
	{
		Name:        "join_channel",
		Description: "Join a specific channel to communicate with Figma",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"channel": {Type: "string", Description: "The name of the channel to join", Default: ""},
			},
			Required: []string{},
		},
	},
}
