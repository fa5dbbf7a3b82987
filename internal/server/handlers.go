package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/skin-preview-mcp/internal/imaging"
	"github.com/ironsheep/skin-preview-mcp/internal/skin"
)

// Values of the "target" tool argument.
const (
	targetTexture = "texture"
	targetPreview = "preview"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "skin_load", "skin_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, skin.ErrRegionOutOfBounds) {
			// A broken region table is a defect, not bad input.
			log.Printf("BUG: %s: %v", params.Name, err)
		} else if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return errorResponse(req.ID, CodeToolFailed, "Tool execution failed", err.Error())
	}

	return resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Skin Information
	case "skin_load":
		return s.handleSkinLoad(args)
	case "skin_validate":
		return s.handleSkinValidate(args)

	// Rendering
	case "skin_preview":
		return s.handleSkinPreview(args)
	case "skin_regions":
		return s.handleSkinRegions(args)
	case "skin_crop_part":
		return s.handleSkinCropPart(args)
	case "skin_outline":
		return s.handleSkinOutline(args)

	// Color Operations
	case "skin_sample_color":
		return s.handleSkinSampleColor(args)
	case "skin_sample_colors_multi":
		return s.handleSkinSampleColorsMulti(args)
	case "skin_palette":
		return s.handleSkinPalette(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as the zero
// value so tools without required parameters accept an absent object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// renderPreview loads and renders the skin at path.
func (s *Server) renderPreview(path string, v skin.ModelVariant) (*image.RGBA, error) {
	tex, err := s.cache.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	return tex.Render(v)
}

// targetImage returns the texture or its rendered preview. Sampling the
// texture does not require a valid skin size.
func (s *Server) targetImage(path, target, model string) (image.Image, error) {
	switch target {
	case "", targetTexture:
		return s.cache.Load(path)
	case targetPreview:
		v, err := skin.ParseModelVariant(model)
		if err != nil {
			return nil, err
		}
		return s.renderPreview(path, v)
	default:
		return nil, fmt.Errorf("unknown target: %q (want %s or %s)", target, targetTexture, targetPreview)
	}
}

// === Skin Information Handlers ===

type skinPathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleSkinLoad(args json.RawMessage) (interface{}, error) {
	var a skinPathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadSkinInfo(s.cache, a.Path)
}

// ValidateResult reports whether an image can be rendered as a skin.
type ValidateResult struct {
	Valid   bool   `json:"valid"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Layout  string `json:"layout,omitempty"`
	Message string `json:"message"`
}

func (s *Server) handleSkinValidate(args json.RawMessage) (interface{}, error) {
	var a skinPathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	size := img.Bounds().Size()
	result := &ValidateResult{Width: size.X, Height: size.Y}
	if !skin.ValidateSize(img) {
		sizeErr := &skin.InvalidSizeError{Width: size.X, Height: size.Y}
		result.Message = "not a valid skin image: " + sizeErr.Error()
		return result, nil
	}

	result.Valid = true
	result.Layout = imaging.LayoutLegacy
	if size.Y == skin.ModernHeight {
		result.Layout = imaging.LayoutModern
	}
	result.Message = fmt.Sprintf("valid %s skin (%dx%d)", result.Layout, size.X, size.Y)
	return result, nil
}

// === Rendering Handlers ===

type skinPreviewArgs struct {
	Path  string `json:"path"`
	Model string `json:"model"`
	Scale int    `json:"scale"`
}

// PreviewResult is an encoded preview with the model it was rendered for.
type PreviewResult struct {
	imaging.ImageResult
	Model string `json:"model"`
}

func (s *Server) handleSkinPreview(args json.RawMessage) (interface{}, error) {
	var a skinPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1
	}
	v, err := skin.ParseModelVariant(a.Model)
	if err != nil {
		return nil, err
	}
	preview, err := s.renderPreview(a.Path, v)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(preview, a.Scale)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{ImageResult: *encoded, Model: v.String()}, nil
}

type skinRegionsArgs struct {
	Model  string `json:"model"`
	Height int    `json:"height"`
}

// RectJSON is a rectangle as origin and size.
type RectJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RegionJSON is one entry of the region table.
type RegionJSON struct {
	Order int      `json:"order"`
	Part  string   `json:"part"`
	Layer string   `json:"layer"`
	Src   RectJSON `json:"src"`
	Dst   RectJSON `json:"dst"`
}

// RegionsResult is the ordered region table for a model and layout.
type RegionsResult struct {
	Model   string       `json:"model"`
	Height  int          `json:"height"`
	Regions []RegionJSON `json:"regions"`
}

func rectJSON(r image.Rectangle) RectJSON {
	return RectJSON{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

func (s *Server) handleSkinRegions(args json.RawMessage) (interface{}, error) {
	var a skinRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Height == 0 {
		a.Height = skin.ModernHeight
	}
	if a.Height != skin.LegacyHeight && a.Height != skin.ModernHeight {
		return nil, fmt.Errorf("height must be %d or %d, got %d", skin.LegacyHeight, skin.ModernHeight, a.Height)
	}
	v, err := skin.ParseModelVariant(a.Model)
	if err != nil {
		return nil, err
	}

	regions := skin.RegionsFor(v, a.Height == skin.ModernHeight)
	out := make([]RegionJSON, len(regions))
	for i, r := range regions {
		out[i] = RegionJSON{
			Order: i,
			Part:  r.Part,
			Layer: string(r.Layer),
			Src:   rectJSON(r.Src),
			Dst:   rectJSON(r.DstRect()),
		}
	}
	return &RegionsResult{Model: v.String(), Height: a.Height, Regions: out}, nil
}

type skinCropPartArgs struct {
	Path  string `json:"path"`
	Part  string `json:"part"`
	Model string `json:"model"`
	Scale int    `json:"scale"`
}

// PartResult is an encoded atlas region.
type PartResult struct {
	imaging.ImageResult
	Part   string   `json:"part"`
	Layer  string   `json:"layer"`
	Source RectJSON `json:"source"`
}

func (s *Server) handleSkinCropPart(args json.RawMessage) (interface{}, error) {
	var a skinCropPartArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 8
	}
	v, err := skin.ParseModelVariant(a.Model)
	if err != nil {
		return nil, err
	}
	region, ok := skin.FindRegion(v, a.Part)
	if !ok {
		return nil, fmt.Errorf("unknown part: %q", a.Part)
	}
	tex, err := s.cache.LoadTexture(a.Path)
	if err != nil {
		return nil, err
	}
	if !tex.HasOverlay() && !region.Src.In(tex.Bounds()) {
		return nil, fmt.Errorf("part %q is not present in a %dx%d skin", a.Part, skin.TextureWidth, skin.LegacyHeight)
	}

	encoded, err := imaging.Crop(tex, region.Src, a.Scale)
	if err != nil {
		return nil, err
	}
	return &PartResult{
		ImageResult: *encoded,
		Part:        region.Part,
		Layer:       string(region.Layer),
		Source:      rectJSON(region.Src),
	}, nil
}

type skinOutlineArgs struct {
	Path  string `json:"path"`
	Model string `json:"model"`
	Scale int    `json:"scale"`
	Color string `json:"color"`
}

func (s *Server) handleSkinOutline(args json.RawMessage) (interface{}, error) {
	var a skinOutlineArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 8
	}
	if a.Color == "" {
		a.Color = imaging.DefaultOutlineColor
	}
	v, err := skin.ParseModelVariant(a.Model)
	if err != nil {
		return nil, err
	}
	tex, err := s.cache.LoadTexture(a.Path)
	if err != nil {
		return nil, err
	}

	regions := tex.Regions(v)
	rects := make([]image.Rectangle, len(regions))
	for i, r := range regions {
		rects[i] = r.Src
	}
	return imaging.OutlineRegions(tex, rects, a.Scale, a.Color)
}

// === Color Operation Handlers ===

type skinSampleColorArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Target string `json:"target"`
	Model  string `json:"model"`
}

func (s *Server) handleSkinSampleColor(args json.RawMessage) (interface{}, error) {
	var a skinSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.targetImage(a.Path, a.Target, a.Model)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type skinSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
	Target string `json:"target"`
	Model  string `json:"model"`
}

func (s *Server) handleSkinSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a skinSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.targetImage(a.Path, a.Target, a.Model)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type skinPaletteArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Part   string `json:"part"`
	Target string `json:"target"`
	Model  string `json:"model"`
}

func (s *Server) handleSkinPalette(args json.RawMessage) (interface{}, error) {
	var a skinPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	if a.Part == "" {
		img, err := s.targetImage(a.Path, a.Target, a.Model)
		if err != nil {
			return nil, err
		}
		return imaging.Palette(img, a.Count, nil)
	}

	// A part is an atlas cell, so it always reads the texture.
	if a.Target != "" && a.Target != targetTexture {
		return nil, fmt.Errorf("part %q can only be used with target %s", a.Part, targetTexture)
	}
	v, err := skin.ParseModelVariant(a.Model)
	if err != nil {
		return nil, err
	}
	region, ok := skin.FindRegion(v, a.Part)
	if !ok {
		return nil, fmt.Errorf("unknown part: %q", a.Part)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if !region.Src.In(img.Bounds()) {
		return nil, fmt.Errorf("part %q is not present in a %dx%d image", a.Part, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return imaging.Palette(img, a.Count, &region.Src)
}
