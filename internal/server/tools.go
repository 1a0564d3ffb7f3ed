package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func hexColorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"pattern":     "^#[0-9A-Fa-f]{6}$",
		"description": description,
	}
}

func thresholdProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"description": "Maximum per-channel difference (exclusive) for a pixel to count as the target color. 0 matches the exact color only; 256 matches everything. Default 100",
		"default":     100,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Inspection
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha and palette information.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate. The hex value can be used directly as a recolor target.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most common colors of an image (quantized), to help choose the color to replace.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Recoloring
		{
			Name:        "image_count_matches",
			Description: "Count the pixels that image_recolor would replace for a target color and threshold, without writing anything.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"target":    hexColorProperty("Color to look for, #RRGGBB"),
					"threshold": thresholdProperty(),
				},
				"required": []string{"path", "target"},
			},
		},
		{
			Name:        "image_recolor",
			Description: "Replace every pixel close to the target color with the replacement color and write the result to output. The output format follows the output file extension (.png, .jpg, .gif, .tif, .bmp). Alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write. Its directory must exist.",
					},
					"target":      hexColorProperty("Color to replace, #RRGGBB"),
					"replacement": hexColorProperty("Color to write over matching pixels, #RRGGBB"),
					"threshold":   thresholdProperty(),
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100 for .jpg outputs. Default 95",
						"default":     95,
					},
				},
				"required": []string{"path", "output", "target", "replacement"},
			},
		},

		// Helpers
		{
			Name:        "image_placeholder",
			Description: "Downscale an image to a tiny square and return it as a base64 data URL, for use as a blurred loading placeholder.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length in pixels (default 10)",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
