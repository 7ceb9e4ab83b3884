package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"
)

// Format templates mix literal text with ${...} expressions evaluated against
// the formatted value, e.g. "(${value})" or "${fixed(value, 2)}".
const (
	notationBegin = "${"
	notationEnd   = "}"
)

// programs caches compiled expressions by source text.
var programs sync.Map // expression string → *vm.Program

// formatFunctions are the helpers available inside ${...} expressions.
var formatFunctions = []expr.Option{
	expr.Function("fixed", func(params ...any) (any, error) {
		if len(params) != 2 {
			return nil, fmt.Errorf("fixed: want 2 arguments, got %d", len(params))
		}
		places, ok := params[1].(int)
		if !ok {
			return nil, fmt.Errorf("fixed: places must be an integer, got %T", params[1])
		}
		return fixed(params[0], places)
	}),
	expr.Function("abs", func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("abs: want 1 argument, got %d", len(params))
		}
		return absValue(params[0])
	}),
	expr.Function("upper", func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("upper: want 1 argument, got %d", len(params))
		}
		return strings.ToUpper(formatValue(params[0])), nil
	}),
	expr.Function("lower", func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("lower: want 1 argument, got %d", len(params))
		}
		return strings.ToLower(formatValue(params[0])), nil
	}),
}

// Format renders value through a format template. An empty template renders
// the value itself.
func Format(template string, value any) (string, error) {
	if template == "" {
		return formatValue(value), nil
	}
	segments := parseTemplate(template)
	if len(segments) == 0 {
		return "", nil
	}

	env := map[string]any{"value": value}

	var b strings.Builder
	for _, seg := range segments {
		if !seg.isExpression {
			b.WriteString(seg.text)
			continue
		}
		result, err := evaluate(seg.text, env)
		if err != nil {
			return "", err
		}
		b.WriteString(formatValue(result))
	}
	return b.String(), nil
}

func evaluate(expression string, env map[string]any) (any, error) {
	program, err := compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
	}
	return result, nil
}

func compile(expression string) (*vm.Program, error) {
	if cached, ok := programs.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	opts := append([]expr.Option{expr.AllowUndefinedVariables()}, formatFunctions...)
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, err
	}
	programs.Store(expression, program)
	return program, nil
}

// checkTemplate compiles every expression in template without evaluating it.
func checkTemplate(template string) error {
	for _, seg := range parseTemplate(template) {
		if !seg.isExpression {
			continue
		}
		if _, err := compile(seg.text); err != nil {
			return fmt.Errorf("invalid expression syntax %q: %w", seg.text, err)
		}
	}
	return nil
}

// templateSegment is either literal text or an expression without delimiters.
type templateSegment struct {
	isExpression bool
	text         string
}

// parseTemplate splits a template into literal and expression segments.
// "(${value}) showed up" → [{false "("} {true "value"} {false ") showed up"}]
func parseTemplate(template string) []templateSegment {
	var segments []templateSegment
	remaining := template

	for {
		startIdx := strings.Index(remaining, notationBegin)
		if startIdx < 0 {
			break
		}
		searchFrom := startIdx + len(notationBegin)
		endIdx := findMatchingEnd(remaining[searchFrom:])
		if endIdx < 0 {
			break
		}
		endIdx += searchFrom

		if startIdx > 0 {
			segments = append(segments, templateSegment{text: remaining[:startIdx]})
		}
		segments = append(segments, templateSegment{
			isExpression: true,
			text:         remaining[searchFrom:endIdx],
		})
		remaining = remaining[endIdx+len(notationEnd):]
	}

	if remaining != "" {
		segments = append(segments, templateSegment{text: remaining})
	}
	return segments
}

// findMatchingEnd finds the closing delimiter, skipping nested braces such
// as map literals inside the expression.
func findMatchingEnd(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// formatValue converts a cell value to text. Decimals keep their scale, so
// 25.00 stays "25.00" after arithmetic.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return decimalString(x)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return decimalString(*x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func decimalString(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}

// toDecimal converts numeric template arguments to a decimal.
func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, nil
		}
		return *x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case string:
		return decimal.NewFromString(x)
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("cannot use %T as a number", v)
	}
}

// fixed renders v with exactly places digits after the decimal point.
func fixed(v any, places int) (string, error) {
	d, err := toDecimal(v)
	if err != nil {
		return "", err
	}
	return d.StringFixed(int32(places)), nil
}

func absValue(v any) (decimal.Decimal, error) {
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Abs(), nil
}
