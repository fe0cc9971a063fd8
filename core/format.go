package core

import (
	"fmt"
	"strings"
)

// Format renders the arguments of a level method as one message.
//
// When the first argument is a string containing placeholder verbs and more
// arguments follow, it is used as a printf format consuming as many
// arguments as it has verbs; any leftover arguments are appended separated
// by single spaces. Verbs left without an argument are kept literally. Otherwise every argument is stringified and the results
// are joined by single spaces. Format never panics.
func Format(args ...any) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fallback(args)
		}
	}()

	if len(args) == 0 {
		return ""
	}

	if format, ok := args[0].(string); ok && len(args) > 1 {
		if countVerbs(format) > 0 {
			format, n := fitFormat(format, len(args)-1)
			msg = fmt.Sprintf(format, args[1:1+n]...)
			if rest := args[1+n:]; len(rest) > 0 {
				msg += " " + join(rest)
			}
			return msg
		}
	}

	return join(args)
}

// countVerbs returns the number of arguments a printf format consumes.
// "%%" is a literal and '*' widths consume an argument each.
func countVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		if format[i] == '%' {
			continue
		}
		for ; i < len(format); i++ {
			c := format[i]
			if c == '*' {
				n++
				continue
			}
			if strings.IndexByte("+-# 0123456789.[]", c) >= 0 {
				continue
			}
			n++
			break
		}
	}
	return n
}

// fitFormat escapes every verb of format from the first one that no longer
// has enough of the avail arguments, so those render literally. It returns
// the rewritten format and the number of arguments it consumes.
func fitFormat(format string, avail int) (string, int) {
	var b strings.Builder
	used := 0
	exhausted := false
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			b.WriteByte(format[i])
			continue
		}
		start := i
		i++
		if i >= len(format) {
			b.WriteString("%%")
			break
		}
		if format[i] == '%' {
			b.WriteString("%%")
			continue
		}
		need, complete := 0, false
		for ; i < len(format); i++ {
			c := format[i]
			if c == '*' {
				need++
				continue
			}
			if strings.IndexByte("+-# 0123456789.[]", c) >= 0 {
				continue
			}
			need++
			complete = true
			break
		}
		end := i + 1
		if end > len(format) {
			end = len(format)
		}
		if complete && !exhausted && used+need <= avail {
			used += need
		} else {
			exhausted = exhausted || complete
			b.WriteByte('%')
		}
		b.WriteString(format[start:end])
	}
	return b.String(), used
}

func join(args []any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(stringify(arg))
	}
	return b.String()
}

func stringify(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("%+v", v)
	}
}

// fallback renders only the dynamic types of args. It is used when
// formatting the values themselves panicked.
func fallback(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			parts[i] = s
			continue
		}
		parts[i] = fmt.Sprintf("<%T>", arg)
	}
	return strings.Join(parts, " ")
}
