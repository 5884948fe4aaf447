package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNullBody indicates the request body is the JSON literal null.
var ErrNullBody = errors.New("request body is null")

// DecodeSubmission reads a submission from one JSON value.
//
// The body is read loosely, the way a browser form handler reads it:
//   - a top-level value that is not an object has no fields;
//   - false, 0, null and "" count as absent;
//   - true and non-zero numbers become their text form, e.g. 42 is "42";
//   - arrays and objects count as absent.
//
// Only a null body and invalid JSON are errors.
func DecodeSubmission(data []byte) (Submission, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Submission{}, err
	}
	if v == nil {
		return Submission{}, ErrNullBody
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return Submission{}, nil
	}
	return Submission{
		Name:    fieldText(obj["name"]),
		Email:   fieldText(obj["email"]),
		Message: fieldText(obj["message"]),
	}, nil
}

func fieldText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
	case json.Number:
		return numberText(v)
	}
	return ""
}

// numberText formats n like a JavaScript number. Zero is empty.
func numberText(n json.Number) string {
	f, _ := n.Float64()
	switch {
	case f == 0:
		return ""
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
