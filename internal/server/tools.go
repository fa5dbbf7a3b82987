package server

import (
	"github.com/ironsheep/skin-preview-mcp/internal/imaging"
	"github.com/ironsheep/skin-preview-mcp/internal/skin"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the skin image file (64x32 or 64x64 PNG)",
	}
}

func modelProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"classic", "slim"},
		"description": "Skin model: classic (4px arms) or slim (3px arms). Default classic",
		"default":     "classic",
	}
}

func scaleProperty(def int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     1,
		"maximum":     64,
		"description": "Integer enlargement factor, nearest-neighbor",
		"default":     def,
	}
}

func targetProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{targetTexture, targetPreview},
		"description": "Image to read: the skin texture itself or its rendered 16x32 preview. Default texture",
		"default":     targetTexture,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Skin Information
		{
			Name:        "skin_load",
			Description: "Load a skin image and return its dimensions, format, layout (legacy 64x32 or modern 64x64) and whether it has an overlay layer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "skin_validate",
			Description: "Check whether an image is a valid skin texture (64 wide, 32 or 64 tall). Invalid images are reported, not treated as errors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Rendering
		{
			Name:        "skin_preview",
			Description: "Render the flat 16x32 front-view preview of a skin and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"model": modelProperty(),
					"scale": scaleProperty(1),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "skin_regions",
			Description: "List the ordered atlas regions drawn into the preview for a model and texture height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"model": modelProperty(),
					"height": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{skin.LegacyHeight, skin.ModernHeight},
						"description": "Texture height. 32 omits the overlay layer. Default 64",
						"default":     skin.ModernHeight,
					},
				},
			},
		},
		{
			Name:        "skin_crop_part",
			Description: "Extract one named atlas region (e.g. head, hat, right_arm_overlay) from a skin as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"part": map[string]interface{}{
						"type":        "string",
						"enum":        skin.PartNames(),
						"description": "Atlas part name",
					},
					"model": modelProperty(),
					"scale": scaleProperty(8),
				},
				"required": []string{"path", "part"},
			},
		},
		{
			Name:        "skin_outline",
			Description: "Enlarge a skin texture and outline every atlas region the preview reads, to check the region table against a real skin.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"model": modelProperty(),
					"scale": scaleProperty(8),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color as #RRGGBB or #RRGGBBAA",
						"default":     imaging.DefaultOutlineColor,
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "skin_sample_color",
			Description: "Get the exact color at a pixel of the skin texture or of its rendered preview.",
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
					"target": targetProperty(),
					"model":  modelProperty(),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "skin_sample_colors_multi",
			Description: "Sample colors at several pixels of the skin texture or its preview in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample",
					},
					"target": targetProperty(),
					"model":  modelProperty(),
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "skin_palette",
			Description: "List the exact colors used by a skin texture, one of its atlas parts, or its preview, most frequent first, ignoring transparent pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 8",
						"default":     8,
					},
					"part": map[string]interface{}{
						"type":        "string",
						"enum":        skin.PartNames(),
						"description": "Limit the palette to one atlas part of the texture",
					},
					"target": targetProperty(),
					"model":  modelProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
