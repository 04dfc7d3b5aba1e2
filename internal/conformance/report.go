package conformance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Report aggregates scenario results for CLI output and CI artifacts.
type Report struct {
	Scenarios []Result `json:"scenarios"`
	Passed    int      `json:"passed"`
	Failed    int      `json:"failed"`
	Total     int      `json:"total"`
}

// BuildReport assembles a report from individual results.
func BuildReport(results []*Result) *Report {
	rep := &Report{Scenarios: make([]Result, 0, len(results)), Total: len(results)}
	for _, r := range results {
		rep.Scenarios = append(rep.Scenarios, *r)
		if r.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	return rep
}

// MarshalCanonical serializes the report as canonical JSON: object keys
// sorted, strings NFC-normalized, no HTML escaping, integers and booleans
// only. Two runs over the same tree with fixed run IDs produce identical
// bytes, so reports diff cleanly in CI.
func (r *Report) MarshalCanonical() ([]byte, error) {
	return canonicalJSON(r.toMap())
}

func (r *Report) toMap() map[string]any {
	scenarios := make([]any, len(r.Scenarios))
	for i, s := range r.Scenarios {
		m := map[string]any{
			"scenario": s.Scenario,
			"run_id":   s.RunID,
			"pass":     s.Pass,
		}
		if len(s.Diagnostics) > 0 {
			m["diagnostics"] = toAnySlice(s.Diagnostics)
		}
		if len(s.Errors) > 0 {
			m["errors"] = toAnySlice(s.Errors)
		}
		scenarios[i] = m
	}
	return map[string]any{
		"scenarios": scenarios,
		"passed":    r.Passed,
		"failed":    r.Failed,
		"total":     r.Total,
	}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// canonicalJSON handles the value shapes a report contains. Floats and
// nulls are forbidden rather than silently formatted.
func canonicalJSON(v any) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return canonicalString(val)
	case int:
		return []byte(fmt.Sprintf("%d", val)), nil
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case []any:
		return canonicalArray(val)
	case map[string]any:
		return canonicalObject(val)
	case nil:
		return nil, fmt.Errorf("null is forbidden in canonical JSON")
	default:
		return nil, fmt.Errorf("unsupported canonical JSON type: %T", v)
	}
}

func canonicalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return nil, err
	}
	// Encode appends a newline; strip it.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func canonicalArray(arr []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := canonicalJSON(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func canonicalObject(obj map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	// Report keys are ASCII, so byte order and UTF-16 order coincide.
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := canonicalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := canonicalJSON(obj[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
