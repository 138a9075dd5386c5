// Package filter compiles boolean expressions over model attributes into
// reusable predicates. Expressions use the expr language and see the raw
// attribute map plus typed accessor helpers, so shop data can be narrowed
// without writing Go:
//
//	flag("active") && num("price") < 20
//	contains(attr("name"), "mug")
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/prestactl/prestactl/prestashop"
)

// Filter is a compiled attribute expression ready for evaluation. A
// Filter is immutable and safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter. The
// expression must produce a boolean.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	// Compile with a static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(staticEnvironment()),
		expr.AllowUndefinedVariables(), // Allow arbitrary attribute names
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Evaluate evaluates the filter against a model. Evaluation errors count
// as non-matches so one odd attribute set cannot fail a whole listing.
func (f *Filter) Evaluate(m *prestashop.Model) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(m))
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Predicate adapts the filter to the resource option signature, for use
// with prestashop.WithFilter.
func (f *Filter) Predicate() func(*prestashop.Model) bool {
	return f.Evaluate
}

// staticEnvironment declares the helper surface for compile-time
// validation. The closures never run; only their signatures matter.
func staticEnvironment() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	env["attr"] = func(string) string { return "" }
	env["num"] = func(string) float64 { return 0 }
	env["flag"] = func(string) bool { return false }
	env["has"] = func(string) bool { return false }
	return env
}

// addHelperFunctions adds the model-independent helpers to the
// environment.
func addHelperFunctions(env map[string]any) {
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Date helpers; the webservice serializes timestamps as
	// "2006-01-02 15:04:05"
	env["parseDate"] = parseDate
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["now"] = time.Now
}

// runtimeEnvironment creates the evaluation environment for one model.
func runtimeEnvironment(m *prestashop.Model) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	// Typed accessors bound to the model
	env["attr"] = m.Attr
	env["num"] = m.Float
	env["flag"] = m.Bool
	env["has"] = m.Has

	// Direct properties for convenience
	env["ID"] = m.ID()
	env["Name"] = m.Name()
	env["Attrs"] = m.Attrs()

	return env
}

func parseDate(value string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
