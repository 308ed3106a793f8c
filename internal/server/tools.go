package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty describes an input picture argument.
func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// outputPathProperty describes the optional output_path argument shared by
// every transform tool.
func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional file to write the result to (.png, .jpg, .gif, .bmp, .tif). If omitted, the result is returned as base64 PNG.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Picture Information
		{
			Name:        "picture_load",
			Description: "Load a picture file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "picture_sample_color",
			Description: "Get the color of the pixel at (row, col) as RGB, hex, HSL and channel average.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, from top)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based, from left)",
					},
				},
				"required": []string{"path", "row", "col"},
			},
		},
		{
			Name:        "picture_stats",
			Description: "Compute the mean and standard deviation of each color channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "picture_dominant_colors",
			Description: "Return the N most common colors of the picture after quantizing channels to steps of 16.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},

		// Recolor
		{
			Name:        "picture_recolor",
			Description: "Apply a per-pixel recolor: zero one channel, keep only one channel, grayscale, or rotate channels (red<-blue, green<-red, blue<-green).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        recolorOperationNames(),
						"description": "Recolor operation to apply",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "operation"},
			},
		},
		{
			Name:        "picture_negative",
			Description: "Negate the selected channels (value becomes 255 - value).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty("Absolute path to the picture file"),
					"red":         map[string]interface{}{"type": "boolean", "default": true},
					"green":       map[string]interface{}{"type": "boolean", "default": true},
					"blue":        map[string]interface{}{"type": "boolean", "default": true},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Mirrors
		{
			Name:        "picture_mirror",
			Description: "Mirror the picture: 'vertical' copies the left half onto the right, 'horizontal' copies the top half onto the bottom, 'diagonal' reflects across the aspect-scaled main diagonal.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
					"axis": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vertical", "horizontal", "diagonal"},
						"description": "Mirror axis",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "axis"},
			},
		},
		{
			Name:        "picture_mirror_temple",
			Description: "Mirror a rectangular region about a vertical axis at mirror_point: rows [row_start,row_end), columns [col_start,mirror_point). Omitted values use the configured temple region (default 276/27/97/13).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty("Absolute path to the picture file"),
					"mirror_point": map[string]interface{}{"type": "integer", "description": "Column of the mirror axis"},
					"row_start":    map[string]interface{}{"type": "integer", "description": "First row (inclusive)"},
					"row_end":      map[string]interface{}{"type": "integer", "description": "Last row (exclusive)"},
					"col_start":    map[string]interface{}{"type": "integer", "description": "First column (inclusive)"},
					"output_path":  outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Composition
		{
			Name:        "picture_copy",
			Description: "Copy a source picture onto a destination picture so that the source's top-left pixel lands at (row, col). Parts past the destination edge are clipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty("Absolute path to the destination picture"),
					"source_path": pathProperty("Absolute path to the source picture"),
					"row":         map[string]interface{}{"type": "integer", "description": "Destination row for the source's first row"},
					"col":         map[string]interface{}{"type": "integer", "description": "Destination column for the source's first column"},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "source_path", "row", "col"},
			},
		},
		{
			Name:        "picture_collage",
			Description: "Stack six strips (first, second, first, second without blue, first, second) at the configured row offsets, then mirror the result left to right.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"first_path":  pathProperty("Absolute path to the first picture"),
					"second_path": pathProperty("Absolute path to the second picture"),
					"height":      map[string]interface{}{"type": "integer", "description": "Canvas height (default: tall enough for every strip; at most the configured collage.maxSide)"},
					"width":       map[string]interface{}{"type": "integer", "description": "Canvas width (default: widest strip; at most the configured collage.maxSide)"},
					"output_path": outputPathProperty(),
				},
				"required": []string{"first_path", "second_path"},
			},
		},
		{
			Name:        "picture_overlay",
			Description: "Combine three equally sized pictures: for the top 80% of rows, green comes from the green picture and blue from the blue picture; red and the bottom rows come from the red picture.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"red_path":   pathProperty("Absolute path to the red picture"),
					"green_path": pathProperty("Absolute path to the green picture"),
					"blue_path":  pathProperty("Absolute path to the blue picture"),
					"isolate": map[string]interface{}{
						"type":        "boolean",
						"description": "Reduce each input to its own channel before combining",
						"default":     false,
					},
					"fraction": map[string]interface{}{
						"type":        "number",
						"description": "Share of rows to combine (default from config, 0.8)",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"red_path", "green_path", "blue_path"},
			},
		},

		// Edges
		{
			Name:        "picture_edge_detection",
			Description: "Mark each pixel black if its color distance to the right neighbour exceeds edge_dist, white otherwise. The last column is unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the picture file"),
					"edge_dist": map[string]interface{}{
						"type":        "number",
						"description": "Color distance threshold (default from config, 10)",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
