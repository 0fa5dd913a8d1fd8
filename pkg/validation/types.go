package validation

import (
	"fmt"
	"maps"
	"strings"
)

// ResultType is the domain outcome of a single rule.
type ResultType string

const (
	ResultSuccess ResultType = "success"
	ResultWarning ResultType = "warning"
	ResultError   ResultType = "error"
)

// Valid reports whether r is one of the known result kinds.
func (r ResultType) Valid() bool {
	switch r {
	case ResultSuccess, ResultWarning, ResultError:
		return true
	}
	return false
}

// String returns the lowercase name of the result kind.
func (r ResultType) String() string { return string(r) }

// UnmarshalText parses a result kind case-insensitively.
func (r *ResultType) UnmarshalText(text []byte) error {
	parsed, err := ParseResultType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r ResultType) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

// ParseResultType converts "success", "warning" or "error" (any case) to a ResultType.
func ParseResultType(s string) (ResultType, error) {
	r := ResultType(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidResultType, s)
	}
	return r, nil
}

// Type tells whether a validator evaluates inline or in the background.
type Type string

const (
	TypeSync  Type = "sync"
	TypeAsync Type = "async"
)

// String returns "sync" or "async".
func (t Type) String() string { return string(t) }

// InputState is the caller-owned state of one form input.
type InputState struct {
	Value      string `json:"value"`
	IsPristine bool   `json:"is_pristine"`
	IsTouched  bool   `json:"is_touched"`
	IsValid    bool   `json:"is_valid"`
}

// Inputs maps input names to their current state.
type Inputs map[string]InputState

// Value returns the value of the named input, or "" if it is unknown.
func (in Inputs) Value(name string) string {
	return in[name].Value
}

func (in Inputs) clone() Inputs {
	if in == nil {
		return Inputs{}
	}
	return maps.Clone(in)
}

// Outcome is what an evaluation function produces.
// Code and Message are optional and stay nil unless set.
type Outcome struct {
	Result  ResultType
	Code    *int
	Message *string
}

// Success returns an outcome with ResultSuccess.
func Success() Outcome { return Outcome{Result: ResultSuccess} }

// Warning returns an outcome with ResultWarning.
func Warning() Outcome { return Outcome{Result: ResultWarning} }

// Failure returns an outcome with ResultError.
func Failure() Outcome { return Outcome{Result: ResultError} }

// WithCode returns a copy of o carrying code.
func (o Outcome) WithCode(code int) Outcome {
	o.Code = &code
	return o
}

// WithMessage returns a copy of o carrying msg.
func (o Outcome) WithMessage(msg string) Outcome {
	o.Message = &msg
	return o
}

// Descriptor identifies the validator that produced a record.
type Descriptor struct {
	TargetName string `json:"target_name"`
	Type       Type   `json:"validator_type"`
	Precedence int    `json:"precedence"`
}

// Record is the outcome of one executed validator plus its metadata.
type Record struct {
	Result    ResultType `json:"result"`
	Code      *int       `json:"code,omitempty"`
	Message   *string    `json:"message,omitempty"`
	Value     string     `json:"value"`
	Validator Descriptor `json:"validator"`
}

// Records is an ordered list of validation records.
type Records []Record

// Filter returns the records with the given result kind, keeping order.
func (rs Records) Filter(kind ResultType) Records {
	var out Records
	for _, r := range rs {
		if r.Result == kind {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many records have the given result kind.
func (rs Records) Count(kind ResultType) int {
	n := 0
	for _, r := range rs {
		if r.Result == kind {
			n++
		}
	}
	return n
}

// HasErrors reports whether any record is an error.
func (rs Records) HasErrors() bool { return rs.Count(ResultError) > 0 }

// HasWarnings reports whether any record is a warning.
func (rs Records) HasWarnings() bool { return rs.Count(ResultWarning) > 0 }

// ByTarget groups records by target name, preserving each target's order.
func (rs Records) ByTarget() map[string]Records {
	out := make(map[string]Records)
	for _, r := range rs {
		out[r.Validator.TargetName] = append(out[r.Validator.TargetName], r)
	}
	return out
}

// Messages returns the non-nil messages of the records, in order.
func (rs Records) Messages() []string {
	var out []string
	for _, r := range rs {
		if r.Message != nil {
			out = append(out, *r.Message)
		}
	}
	return out
}
