package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-recolor/internal/imaging"
	"github.com/ironsheep/image-recolor/internal/recolor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_recolor").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Inspection
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Recoloring
	case "image_count_matches":
		return s.handleImageCountMatches(args)
	case "image_recolor":
		return s.handleImageRecolor(args)

	// Helpers
	case "image_placeholder":
		return s.handleImagePlaceholder(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Inspection Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

// === Recolor Handlers ===

// threshold returns the requested threshold, or the default when omitted.
// A pointer distinguishes an explicit 0 (exact match) from a missing value.
func threshold(t *int) int {
	if t == nil {
		return recolor.DefaultThreshold
	}
	return *t
}

type imageCountMatchesArgs struct {
	Path      string `json:"path"`
	Target    string `json:"target"`
	Threshold *int   `json:"threshold"`
}

// CountMatchesResult is the result of image_count_matches.
type CountMatchesResult struct {
	Target     string  `json:"target"`
	Threshold  int     `json:"threshold"`
	Matches    int     `json:"matches"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func (s *Server) handleImageCountMatches(args json.RawMessage) (interface{}, error) {
	var a imageCountMatchesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	target, err := recolor.ParseHex(a.Target)
	if err != nil {
		return nil, err
	}
	t := threshold(a.Threshold)
	if t < 0 {
		return nil, fmt.Errorf("%w: %d is negative", recolor.ErrInvalidThreshold, t)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	n := recolor.Count(img, target, t)

	percentage := 0.0
	if total > 0 {
		percentage = float64(n) / float64(total) * 100
	}
	return &CountMatchesResult{
		Target:     target.String(),
		Threshold:  t,
		Matches:    n,
		Total:      total,
		Percentage: percentage,
	}, nil
}

type imageRecolorArgs struct {
	Path        string `json:"path"`
	Output      string `json:"output"`
	Target      string `json:"target"`
	Replacement string `json:"replacement"`
	Threshold   *int   `json:"threshold"`
	Quality     int    `json:"quality"`
}

func (s *Server) handleImageRecolor(args json.RawMessage) (interface{}, error) {
	var a imageRecolorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	result, err := recolor.FileWith(s.cache.LoadWithFormat, recolor.Options{
		Input:       a.Path,
		Output:      a.Output,
		Target:      a.Target,
		Replacement: a.Replacement,
		Threshold:   threshold(a.Threshold),
		JPEGQuality: a.Quality,
	})
	if err != nil {
		return nil, err
	}

	// The output may be an image this server already cached.
	s.cache.Evict(a.Output)
	return result, nil
}

// === Helper Handlers ===

type imagePlaceholderArgs struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

func (s *Server) handleImagePlaceholder(args json.RawMessage) (interface{}, error) {
	var a imagePlaceholderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, format, err := s.cache.LoadWithFormat(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Placeholder(img, format, a.Size)
}
