package engine

import (
	"fmt"
	"sort"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/sscha/pkg/body"
	"github.com/chazu/sscha/pkg/geom"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms figure source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: plane-w -> plane_w
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPoint wraps a geom.Point. extended is set when w or v were written
// out by the user rather than defaulted to zero.
type sexpPoint struct {
	p        geom.Point
	extended bool
}

func (s *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return pointForm(s.p, s.extended)
}

func pointForm(p geom.Point, extended bool) string {
	if extended {
		return fmt.Sprintf("(point %g %g %g %g %g)", p.X, p.Y, p.Z, p.W, p.V)
	}
	return fmt.Sprintf("(point %g %g %g)", p.X, p.Y, p.Z)
}
func (s *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpVector wraps a geom.Vector.
type sexpVector struct {
	v        geom.Vector
	extended bool
}

func (s *sexpVector) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vector %g %g %g %g %g)", s.v.DX, s.v.DY, s.v.DZ, s.v.DW, s.v.DV)
}
func (s *sexpVector) Type() *zygo.RegisteredType { return nil }

// sexpFigure is returned from `figure` so the form prints sensibly in a
// REPL. The figure itself is recorded on the session.
type sexpFigure struct {
	cfg            body.Config
	originExtended bool
}

func (s *sexpFigure) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(figure :origin %s :scale %g :plane-w %g :plane-v %g)",
		pointForm(s.cfg.Origin, s.originExtended), s.cfg.Scale, s.cfg.PlaneW, s.cfg.PlaneV)
}
func (s *sexpFigure) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// unknownKeywords returns the keywords in pa that are not in allowed,
// sorted.
func (pa kwArgs) unknownKeywords(allowed ...string) []string {
	var out []string
	for k := range pa.kw {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			out = append(out, ":"+k)
		}
	}
	sort.Strings(out)
	return out
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toCoords reads between 3 and 5 numbers; missing extended coordinates
// are zero.
func toCoords(fn string, args []zygo.Sexp) ([5]float64, error) {
	var c [5]float64
	if len(args) < 3 || len(args) > 5 {
		return c, fmt.Errorf("%s requires 3 to 5 arguments, got %d", fn, len(args))
	}
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return c, fmt.Errorf("%s: %s: %w", fn, axisNames[i], err)
		}
		c[i] = f
	}
	return c, nil
}

var axisNames = [5]string{"x", "y", "z", "w", "v"}

// toPoint asserts s is a point.
func toPoint(s zygo.Sexp) (*sexpPoint, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p, nil
	}
	return nil, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
}

// toVector asserts s is a vector.
func toVector(s zygo.Sexp) (*sexpVector, error) {
	if v, ok := s.(*sexpVector); ok {
		return v, nil
	}
	return nil, fmt.Errorf("expected vector, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// figureSpec is one evaluated `figure` form.
type figureSpec struct {
	cfg      body.Config
	warnings []EvalWarning
}

// session collects the figure forms of one evaluation.
type session struct {
	figures []figureSpec
}

// registerBuiltins installs the figure builtins into a zygomys environment.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *session) {

	// -----------------------------------------------------------------------
	// (point 1 2 3) or (point 1 2 3 0.5 0.25)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		c, err := toCoords("point", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpPoint{
			p:        geom.Point{X: c[0], Y: c[1], Z: c[2], W: c[3], V: c[4]},
			extended: len(args) > 3,
		}, nil
	})

	// -----------------------------------------------------------------------
	// (vector 0 1 0) or (vector 0 1 0 0 0)
	// -----------------------------------------------------------------------
	env.AddFunction("vector", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		c, err := toCoords("vector", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVector{
			v:        geom.Vector{DX: c[0], DY: c[1], DZ: c[2], DW: c[3], DV: c[4]},
			extended: len(args) > 3,
		}, nil
	})

	// -----------------------------------------------------------------------
	// (translate (point 0 0 0) (vector 1 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("translate requires a point and a vector, got %d arguments", len(args))
		}
		p, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		v, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		return &sexpPoint{p: p.p.Add(v.v), extended: p.extended || v.extended}, nil
	})

	// -----------------------------------------------------------------------
	// (figure :origin (point 1 2 3) :scale 2 :plane-w 0.5 :plane-v 0.25)
	// -----------------------------------------------------------------------
	env.AddFunction("figure", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("figure takes keyword arguments only, got %d positional", len(pa.positional))
		}
		if unknown := pa.unknownKeywords("origin", "scale", "plane-w", "plane-v"); len(unknown) > 0 {
			return zygo.SexpNull, fmt.Errorf("figure: unknown keyword %s", strings.Join(unknown, ", "))
		}

		cfg := body.DefaultConfig()
		originExtended := false
		if v, ok := pa.kw["origin"]; ok {
			p, err := toPoint(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("figure: origin: %w", err)
			}
			cfg.Origin = p.p
			originExtended = p.extended
		}
		if v, ok := pa.kw["scale"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("figure: scale: %w", err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("figure: scale must be positive, got %g", f)
			}
			cfg.Scale = f
		}
		if v, ok := pa.kw["plane-w"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("figure: plane-w: %w", err)
			}
			cfg.PlaneW = f
		}
		if v, ok := pa.kw["plane-v"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("figure: plane-v: %w", err)
			}
			cfg.PlaneV = f
		}

		spec := figureSpec{cfg: cfg}
		// Only w, v the user wrote out can disagree with the slice.
		if o := cfg.Origin; originExtended && (o.W != cfg.PlaneW || o.V != cfg.PlaneV) {
			spec.warnings = append(spec.warnings, EvalWarning{
				Message: fmt.Sprintf("origin w, v (%g, %g) are ignored; parts sit on the (w=%g, v=%g) slice",
					o.W, o.V, cfg.PlaneW, cfg.PlaneV),
			})
		}
		s.figures = append(s.figures, spec)

		return &sexpFigure{cfg: cfg, originExtended: originExtended}, nil
	})
}
