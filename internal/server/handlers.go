package server

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "picture_load", "picture_mirror").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// TransformResult is returned by every tool that produces a picture.
//
// Exactly one of OutputPath and ImageBase64 is set: OutputPath when the
// caller asked for the result to be written to disk, ImageBase64 (a PNG)
// otherwise.
type TransformResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	OutputPath  string `json:"output_path,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
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

	s.debugf("tool %s args=%s", params.Name, string(params.Arguments))

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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies configured defaults for optional parameters
//  3. Loads private copies of the pictures from the cache
//  4. Runs the transform or inspection
//  5. Saves or encodes the result
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Picture Information
	case "picture_load":
		return s.handlePictureLoad(args)
	case "picture_sample_color":
		return s.handlePictureSampleColor(args)
	case "picture_stats":
		return s.handlePictureStats(args)
	case "picture_dominant_colors":
		return s.handlePictureDominantColors(args)

	// Recolor
	case "picture_recolor":
		return s.handlePictureRecolor(args)
	case "picture_negative":
		return s.handlePictureNegative(args)

	// Mirrors
	case "picture_mirror":
		return s.handlePictureMirror(args)
	case "picture_mirror_temple":
		return s.handlePictureMirrorTemple(args)

	// Composition
	case "picture_copy":
		return s.handlePictureCopy(args)
	case "picture_collage":
		return s.handlePictureCollage(args)
	case "picture_overlay":
		return s.handlePictureOverlay(args)

	// Edges
	case "picture_edge_detection":
		return s.handlePictureEdgeDetection(args)

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
// A marshal error yields an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// finish saves r to outputPath, or encodes it as base64 PNG when no path is
// given. A saved file is evicted from the cache so later loads see it.
func (s *Server) finish(r *raster.Raster, outputPath string) (*TransformResult, error) {
	res := &TransformResult{Width: r.Width(), Height: r.Height()}

	if outputPath != "" {
		if err := imaging.Save(r, outputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(outputPath)
		res.OutputPath = outputPath
		return res, nil
	}

	encoded, err := imaging.EncodePNGBase64(r)
	if err != nil {
		return nil, err
	}
	res.ImageBase64 = encoded
	res.MimeType = "image/png"
	return res, nil
}

// === Picture Information Handlers ===

type pictureLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handlePictureLoad(args json.RawMessage) (interface{}, error) {
	var a pictureLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadPictureInfo(s.cache, a.Path)
}

type pictureSampleColorArgs struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (s *Server) handlePictureSampleColor(args json.RawMessage) (interface{}, error) {
	var a pictureSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(pic, a.Row, a.Col)
}

func (s *Server) handlePictureStats(args json.RawMessage) (interface{}, error) {
	var a pictureLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ChannelStats(pic), nil
}

type pictureDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handlePictureDominantColors(args json.RawMessage) (interface{}, error) {
	var a pictureDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(pic, a.Count)
}

// === Recolor Handlers ===

// recolorOperations maps picture_recolor operation names to transforms.
var recolorOperations = map[string]func(*raster.Raster){
	"zero_red":    imaging.ZeroRed,
	"zero_green":  imaging.ZeroGreen,
	"zero_blue":   imaging.ZeroBlue,
	"all_red":     imaging.AllRed,
	"all_green":   imaging.AllGreen,
	"all_blue":    imaging.AllBlue,
	"grayscale":   func(r *raster.Raster) { imaging.Grayscale(r) },
	"color_shift": imaging.ColorShift,
}

// recolorOperationNames returns the recolor operation names in sorted order.
func recolorOperationNames() []string {
	names := make([]string, 0, len(recolorOperations))
	for name := range recolorOperations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type pictureRecolorArgs struct {
	Path       string `json:"path"`
	Operation  string `json:"operation"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureRecolor(args json.RawMessage) (interface{}, error) {
	var a pictureRecolorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	op, ok := recolorOperations[a.Operation]
	if !ok {
		return nil, fmt.Errorf("unknown recolor operation %q (valid: %v)", a.Operation, recolorOperationNames())
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	op(pic)
	return s.finish(pic, a.OutputPath)
}

type pictureNegativeArgs struct {
	Path       string `json:"path"`
	Red        *bool  `json:"red"`
	Green      *bool  `json:"green"`
	Blue       *bool  `json:"blue"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureNegative(args json.RawMessage) (interface{}, error) {
	var a pictureNegativeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mask := imaging.ChannelMask{
		Red:   boolOr(a.Red, true),
		Green: boolOr(a.Green, true),
		Blue:  boolOr(a.Blue, true),
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	imaging.Negative(pic, mask)
	return s.finish(pic, a.OutputPath)
}

// === Mirror Handlers ===

type pictureMirrorArgs struct {
	Path       string `json:"path"`
	Axis       string `json:"axis"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureMirror(args json.RawMessage) (interface{}, error) {
	var a pictureMirrorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var mirror func(*raster.Raster)
	switch a.Axis {
	case "vertical":
		mirror = imaging.MirrorVertical
	case "horizontal":
		mirror = imaging.MirrorHorizontal
	case "diagonal":
		mirror = imaging.MirrorDiagonal
	default:
		return nil, fmt.Errorf("unknown mirror axis %q (valid: vertical, horizontal, diagonal)", a.Axis)
	}

	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	mirror(pic)
	return s.finish(pic, a.OutputPath)
}

type pictureMirrorTempleArgs struct {
	Path        string `json:"path"`
	MirrorPoint *int   `json:"mirror_point"`
	RowStart    *int   `json:"row_start"`
	RowEnd      *int   `json:"row_end"`
	ColStart    *int   `json:"col_start"`
	OutputPath  string `json:"output_path"`
}

func (s *Server) handlePictureMirrorTemple(args json.RawMessage) (interface{}, error) {
	var a pictureMirrorTempleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	region := imaging.TempleRegion{
		MirrorPoint: intOr(a.MirrorPoint, s.cfg.Temple.MirrorPoint),
		RowStart:    intOr(a.RowStart, s.cfg.Temple.RowStart),
		RowEnd:      intOr(a.RowEnd, s.cfg.Temple.RowEnd),
		ColStart:    intOr(a.ColStart, s.cfg.Temple.ColStart),
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := imaging.MirrorTemple(pic, region); err != nil {
		return nil, err
	}
	return s.finish(pic, a.OutputPath)
}

// === Composition Handlers ===

type pictureCopyArgs struct {
	Path       string `json:"path"`
	SourcePath string `json:"source_path"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureCopy(args json.RawMessage) (interface{}, error) {
	var a pictureCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	dst, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.SourcePath)
	if err != nil {
		return nil, err
	}
	if err := imaging.Copy(dst, src, a.Row, a.Col); err != nil {
		return nil, err
	}
	return s.finish(dst, a.OutputPath)
}

type pictureCollageArgs struct {
	FirstPath  string `json:"first_path"`
	SecondPath string `json:"second_path"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureCollage(args json.RawMessage) (interface{}, error) {
	var a pictureCollageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Height < 0 || a.Width < 0 {
		return nil, fmt.Errorf("%w: collage size %dx%d", raster.ErrOutOfBounds, a.Height, a.Width)
	}
	first, err := s.cache.Load(a.FirstPath)
	if err != nil {
		return nil, err
	}
	second, err := s.cache.Load(a.SecondPath)
	if err != nil {
		return nil, err
	}

	rows := s.cfg.Collage.RowOffsets
	height, width := imaging.CollageSize(first, second, rows)
	if a.Height > 0 {
		height = a.Height
	}
	if a.Width > 0 {
		width = a.Width
	}
	if limit := s.cfg.Collage.MaxSide; height > limit || width > limit {
		return nil, fmt.Errorf("%w: collage size %dx%d exceeds the %d pixel limit",
			raster.ErrOutOfBounds, height, width, limit)
	}

	canvas := raster.New(height, width)
	if err := imaging.Collage(canvas, first, second, rows); err != nil {
		return nil, err
	}
	return s.finish(canvas, a.OutputPath)
}

type pictureOverlayArgs struct {
	RedPath    string   `json:"red_path"`
	GreenPath  string   `json:"green_path"`
	BluePath   string   `json:"blue_path"`
	Isolate    bool     `json:"isolate"`
	Fraction   *float64 `json:"fraction"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handlePictureOverlay(args json.RawMessage) (interface{}, error) {
	var a pictureOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fraction := s.cfg.Overlay.Fraction
	if a.Fraction != nil {
		fraction = *a.Fraction
	}

	r, err := s.cache.Load(a.RedPath)
	if err != nil {
		return nil, err
	}
	g, err := s.cache.Load(a.GreenPath)
	if err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.BluePath)
	if err != nil {
		return nil, err
	}

	if a.Isolate {
		imaging.AllRed(r)
		imaging.AllGreen(g)
		imaging.AllBlue(b)
	}

	out, err := imaging.OverlayFraction(r, g, b, fraction)
	if err != nil {
		return nil, err
	}
	return s.finish(out, a.OutputPath)
}

// === Edge Handlers ===

type pictureEdgeDetectionArgs struct {
	Path       string   `json:"path"`
	EdgeDist   *float64 `json:"edge_dist"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handlePictureEdgeDetection(args json.RawMessage) (interface{}, error) {
	var a pictureEdgeDetectionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	edgeDist := s.cfg.Edge.Distance
	if a.EdgeDist != nil {
		edgeDist = *a.EdgeDist
	}
	if edgeDist < 0 {
		return nil, fmt.Errorf("edge_dist must not be negative, got %v", edgeDist)
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	imaging.EdgeDetection(pic, edgeDist)
	return s.finish(pic, a.OutputPath)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
