// Package sscha builds 5D humanoid figures from a small Lisp description
// and returns their per-part vertices plus meshes of the (x, y, z) slice.
//
// The geometry itself lives in pkg/body; App wires the engine, the
// attachment graph and a geometry kernel together for UI and renderer
// consumers.
package sscha

import (
	"log/slog"
	"strings"

	"github.com/chazu/sscha/pkg/engine"
	"github.com/chazu/sscha/pkg/kernel"
	"github.com/chazu/sscha/pkg/kernel/sdfx"
	"github.com/chazu/sscha/pkg/tessellate"
)

// colorPalette assigns one color per part; left and right sides share it.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App evaluates figure sources. It is safe for concurrent use.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	logger *slog.Logger
}

// PartData holds the 5D vertices of one part, each as (x, y, z, w, v).
type PartData struct {
	Name     string       `json:"name"`
	Vertices [][5]float64 `json:"vertices"`
}

// MeshData is the JSON-serializable mesh format sent to renderers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Parts    []PartData      `json:"parts"`
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates an App with a fresh engine and the sdfx kernel.
func NewApp() *App {
	return NewAppWithKernel(sdfx.New(), nil)
}

// NewAppWithKernel creates an App meshing with k and logging to logger.
// A nil logger means slog.Default().
func NewAppWithKernel(k kernel.Kernel, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		engine: engine.NewEngineWithLogger(logger),
		kernel: k,
		logger: logger,
	}
}

// Evaluate takes figure source and returns vertices, meshes and errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Parts:    []PartData{},
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: evaluate the source into a figure.
	res, err := a.engine.EvaluateAll(source)
	if err != nil {
		// Fatal error (panic, timeout, superseded).
		a.logger.Error("app: evaluate fatal error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Line: w.Line, Col: w.Col, Message: w.Message})
	}
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return result
	}
	fig := res.Figure

	// Step 2: per-part 5D vertices.
	for p := range fig.Parts() {
		verts := p.Vertices()
		pd := PartData{Name: p.Name(), Vertices: make([][5]float64, len(verts))}
		for i, v := range verts {
			pd.Vertices[i] = v.Coords()
		}
		result.Parts = append(result.Parts, pd)
	}

	// Step 3: tessellate the spatial slice.
	meshes, err := tessellate.Tessellate(fig.Graph(), a.kernel)
	if err != nil {
		a.logger.Error("app: tessellate error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "tessellation failed: " + err.Error()})
		return result
	}

	// Step 4: convert kernel meshes, one color per part group.
	colors := make(map[string]string)
	for _, m := range meshes {
		group, _, _ := strings.Cut(m.PartName, "/")
		color, ok := colors[group]
		if !ok {
			color = colorPalette[len(colors)%len(colorPalette)]
			colors[group] = color
		}
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    color,
		})
	}

	return result
}
