package alipay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the gateway's timestamp format
const TimestampLayout = "2006-01-02 15:04:05"

var (
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
)

// optional envelope keys are left out entirely when empty
var optionalKeys = map[string]bool{
	"notify_url":     true,
	"return_url":     true,
	"app_auth_token": true,
}

// Params is a set of request or response parameters. Values are strings,
// numbers, booleans, decimals or anything encoding/json renders, nested maps included.
type Params map[string]interface{}

// With returns a new Params holding p overlaid with other
func (p Params) With(other Params) Params {
	out := make(Params, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Without returns a new Params holding p minus keys
func (p Params) Without(keys ...string) Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// GetString returns the value of key rendered as it would be signed, empty when absent
func (p Params) GetString(key string) string {
	s, _, err := stringify(p[key])
	if err != nil {
		return ""
	}
	return s
}

// ParamsFromValues converts form values, keeping the first value of each key
func ParamsFromValues(values url.Values) Params {
	out := make(Params, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// Pair is one canonical key value pair
type Pair struct {
	Key   string
	Value string
}

// Pairs is a canonically ordered parameter list
type Pairs []Pair

// String joins the pairs unescaped, this is the exact content that gets signed
func (ps Pairs) String() string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// Encode joins the pairs with form escaped values in canonical order, keys are
// a fixed safe set and are left as is
func (ps Pairs) Encode() string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Canonicalize renders params into key sorted pairs. Nested values become
// compact JSON, nil values and empty optional envelope keys are dropped.
// The input is never modified. The only failure is a value encoding/json rejects.
func Canonicalize(params Params) (Pairs, error) {
	pairs := make(Pairs, 0, len(params))
	for k, v := range params {
		s, ok, err := stringify(v)
		if err != nil {
			return nil, fmt.Errorf("failed to render parameter %s: %w", k, err)
		}
		if !ok || (s == "" && optionalKeys[k]) {
			continue
		}
		pairs = append(pairs, Pair{Key: k, Value: s})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})
	return pairs, nil
}

// stringify renders a value the way it appears in the signed string, ok is
// false for values that are dropped. Top level booleans and numbers use their
// JSON spelling (true, 12, 0.5), which is not the True / 12.0 some other SDKs
// write. Gateway parameters and notifications are strings and biz values are
// nested JSON, so only callers placing such scalars in Params see this.
func stringify(v interface{}) (string, bool, error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return "", false, nil
		}
		if pointerOnlyMethods(rv) {
			break
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "", false, nil
	}
	v = rv.Interface()

	switch t := v.(type) {
	case string:
		return t, true, nil
	case json.Number:
		return t.String(), true, nil
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Compact(&buf, t); err != nil {
			return "", false, err
		}
		return buf.String(), true, nil
	case bool:
		return strconv.FormatBool(t), true, nil
	case decimal.Decimal:
		return t.String(), true, nil
	case time.Time:
		return t.Format(TimestampLayout), true, nil
	case fmt.Stringer:
		return t.String(), true, nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	}

	s, err := compactJSON(v)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// pointerOnlyMethods reports whether rv is a pointer whose String or
// MarshalJSON would be lost by dereferencing it
func pointerOnlyMethods(rv reflect.Value) bool {
	if rv.Kind() != reflect.Ptr {
		return false
	}
	pt, et := rv.Type(), rv.Type().Elem()
	return (pt.Implements(stringerType) && !et.Implements(stringerType)) ||
		(pt.Implements(marshalerType) && !et.Implements(marshalerType))
}

// compactJSON renders v without insignificant whitespace and without
// escaping html characters or slashes
func compactJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
