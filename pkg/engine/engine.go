// Package engine evaluates figure descriptions written in a small Lisp.
// It wraps zygomys in a sandboxed environment and produces a body.Figure
// from user source code.
package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/sscha/pkg/body"
	"github.com/chazu/sscha/pkg/graph"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code or an invalid figure.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalWarning represents a non-fatal warning produced during evaluation.
type EvalWarning struct {
	Line    int
	Col     int
	Message string
	NodeID  graph.NodeID
}

// EvalResult bundles the full output of an evaluation for UI bindings.
// Figure is nil whenever Errors is non-empty.
type EvalResult struct {
	Figure   *body.Figure
	Errors   []EvalError
	Warnings []EvalWarning
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use;
// each evaluation runs in a fresh sandbox.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	logger     *slog.Logger
}

// NewEngine creates an Engine logging to slog.Default().
func NewEngine() *Engine {
	return NewEngineWithLogger(nil)
}

// NewEngineWithLogger creates an Engine logging to logger. A nil logger
// means slog.Default().
func NewEngineWithLogger(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Evaluate takes figure source and produces a Figure.
//
// Return semantics:
//   - On success: returns figure + nil errors + nil error
//   - On parse/eval/validation failure: returns nil figure + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns nil + nil + error
//
// Warnings are logged; use EvaluateAll to receive them.
func (e *Engine) Evaluate(source string) (*body.Figure, []EvalError, error) {
	res, err := e.EvaluateAll(source)
	if err != nil {
		return nil, nil, err
	}
	return res.Figure, res.Errors, nil
}

// EvaluateAll is Evaluate returning warnings alongside the figure.
func (e *Engine) EvaluateAll(source string) (EvalResult, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		ch <- e.evaluate(source)
	}()

	res, err := waitWithTimeout(ch, gen, &e.mu, &e.generation)
	if err != nil {
		e.logger.Warn("engine: evaluation failed", "gen", gen, "err", err)
		return EvalResult{}, err
	}
	for _, w := range res.Warnings {
		e.logger.Warn("engine: figure warning", "gen", gen, "node", w.NodeID.Short(), "msg", w.Message)
	}
	return res, nil
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) evalResult {
	// A source without a figure form describes the default figure.
	if strings.TrimSpace(source) == "" {
		return finish(nil)
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	s := &session{}
	registerBuiltins(env, s)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return evalResult{EvalResult: EvalResult{Errors: parseZygomysError(err)}}
	}
	if _, err := env.Run(); err != nil {
		return evalResult{EvalResult: EvalResult{Errors: parseZygomysError(err)}}
	}

	if len(s.figures) > 1 {
		return evalResult{EvalResult: EvalResult{Errors: []EvalError{{
			Message: fmt.Sprintf("source defines %d figures, expected at most one", len(s.figures)),
		}}}}
	}
	if len(s.figures) == 0 {
		return finish(nil)
	}
	return finish(&s.figures[0])
}

// finish builds the figure described by spec, or the default figure when
// spec is nil, and validates its attachment graph.
func finish(spec *figureSpec) evalResult {
	cfg := body.DefaultConfig()
	var warnings []EvalWarning
	if spec != nil {
		cfg = spec.cfg
		warnings = append(warnings, spec.warnings...)
	}

	fig := body.NewFigure(cfg)
	vr := graph.ValidateAll(fig.Graph())

	res := EvalResult{Figure: fig, Warnings: warnings}
	for _, w := range vr.Warnings {
		res.Warnings = append(res.Warnings, EvalWarning{Message: w.Message, NodeID: w.NodeID})
	}
	if !vr.OK() {
		res.Figure = nil
		for _, ve := range vr.Errors {
			res.Errors = append(res.Errors, EvalError{Message: ve.Error()})
		}
	}
	return evalResult{EvalResult: res}
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?is)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?is)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, extracting the line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			// Keep any text around the location marker.
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(re.ReplaceAllString(msg, "$2")),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
