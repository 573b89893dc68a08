package filter

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/holidayapi/holidayapi"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

var defaultCompiler = NewExprCompiler(WithCache(64))

// Compile compiles expression with a shared caching compiler
func Compile(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Type-check against the shape of a holiday environment
	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(holidayapi.Holiday{}, c.helperFuncs)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a holiday
func (f *exprFilter) Evaluate(holiday holidayapi.Holiday) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(holiday, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Holiday:    holiday.Name,
			Err:        err,
		}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// Apply returns the holidays that match f, in their original order
func Apply(ctx context.Context, f Filter, holidays []holidayapi.Holiday) ([]holidayapi.Holiday, error) {
	matches := make([]holidayapi.Holiday, 0, len(holidays))
	for _, holiday := range holidays {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := f.Evaluate(holiday)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, holiday)
		}
	}
	return matches, nil
}

// createHelperFunctions creates the static helper functions
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)

	// Date helpers
	funcs["parseDate"] = func(dateStr string) (time.Time, error) {
		return time.Parse(holidayapi.DateLayout, dateStr)
	}
	funcs["daysUntil"] = func(t time.Time) int {
		return int(time.Until(t).Hours() / 24)
	}

	// Case-insensitive string helpers; expr's own contains/startsWith
	// operators are case-sensitive
	funcs["includes"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	funcs["beginsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}

	return funcs
}

// newEnvironment exposes a holiday's fields and per-holiday helpers
func newEnvironment(holiday holidayapi.Holiday, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+16)
	maps.Copy(env, helpers)

	date, _ := holiday.DateTime()
	observed, _ := holiday.ObservedTime()

	env["Holiday"] = holiday
	env["Name"] = holiday.Name
	env["Date"] = date
	env["Observed"] = observed
	env["Year"] = date.Year()
	env["Month"] = int(date.Month())
	env["Day"] = date.Day()
	env["Public"] = holiday.Public
	env["Country"] = holiday.Country
	env["UUID"] = holiday.UUID
	env["Weekday"] = holiday.Weekday.Date.Name
	env["ObservedWeekday"] = holiday.Weekday.Observed.Name
	env["Subdivisions"] = holiday.Subdivisions

	env["weekend"] = func() bool {
		n := holiday.Weekday.Date.Numeric
		return n == "6" || n == "7"
	}
	env["moved"] = func() bool {
		return holiday.Date != holiday.Observed
	}
	env["inSubdivision"] = func(code string) bool {
		return slices.ContainsFunc(holiday.Subdivisions, func(s string) bool {
			return strings.EqualFold(s, code)
		})
	}

	return env
}
