// Package validation coerces untrusted request input into typed values.
// Schemas are closed: a key that is not declared fails the whole request.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"taskboard-api/internal/apierrors"
)

type Kind int

const (
	String Kind = iota
	Enum
	ObjectID
)

// Field declares a single schema entry. Strings are trimmed before any
// length or pattern check. A Check function carries its own failure message.
type Field struct {
	Name         string
	Kind         Kind
	Required     bool
	Nullable     bool
	Email        bool
	Min          int
	MinMessage   string
	Enum         []string
	Default      string
	Check        func(s string) bool
	CheckMessage string
}

type Schema struct {
	Fields []Field

	// RequireOne rejects a no-op update: at least one declared key must be
	// present in the input. An explicit null on a nullable field counts.
	RequireOne bool
}

// Validate checks raw against the schema and returns the coerced values.
// All field failures are collected and joined into a single message.
func (s Schema) Validate(raw map[string]any) (map[string]any, *apierrors.ErrorResponse) {
	declared := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Name] = struct{}{}
	}
	for key := range raw {
		if _, ok := declared[key]; !ok {
			return nil, apierrors.Validation(apierrors.MsgUnknownParameters)
		}
	}

	out := make(map[string]any, len(raw))
	var msgs []string
	present := 0

	for _, f := range s.Fields {
		value, ok := raw[f.Name]
		if !ok {
			if f.Required {
				msgs = append(msgs, typeMessage(nil, false))
				continue
			}
			if f.Kind == Enum && f.Default != "" {
				out[f.Name] = f.Default
			}
			continue
		}
		present++

		if value == nil {
			if f.Nullable {
				out[f.Name] = nil
				continue
			}
			msgs = append(msgs, typeMessage(nil, true))
			continue
		}

		str, isString := value.(string)
		if !isString {
			msgs = append(msgs, typeMessage(value, true))
			continue
		}
		str = strings.TrimSpace(str)

		switch f.Kind {
		case String:
			if f.Email {
				if !isEmail(str) {
					msgs = append(msgs, "Please enter a valid email address.")
					continue
				}
			}
			if f.Check != nil && !f.Check(str) {
				msgs = append(msgs, f.CheckMessage)
				continue
			}
			if f.Min > 0 && utf8.RuneCountInString(str) < f.Min {
				msgs = append(msgs, f.MinMessage)
				continue
			}
			out[f.Name] = str
		case Enum:
			if !contains(f.Enum, str) {
				msgs = append(msgs, enumMessage(f.Enum))
				continue
			}
			out[f.Name] = str
		case ObjectID:
			if !objectIDPattern.MatchString(str) {
				msgs = append(msgs, MsgInvalidObjectID)
				continue
			}
			out[f.Name] = str
		}
	}

	if len(msgs) > 0 {
		return nil, apierrors.Validation(strings.Join(msgs, ", "))
	}
	if s.RequireOne && present == 0 {
		return nil, apierrors.Validation(s.requireOneMessage())
	}
	return out, nil
}

func (s Schema) requireOneMessage() string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return fmt.Sprintf("At least one key (%s) must be present.", strings.Join(names, ", "))
}

// typeMessage mirrors the wording browser clients already branch on:
// absent keys read as "undefined", everything else as its JSON type.
func typeMessage(value any, keyPresent bool) string {
	received := "undefined"
	if keyPresent {
		switch value.(type) {
		case nil:
			received = "null"
		case float64:
			received = "number"
		case bool:
			received = "boolean"
		case []any:
			received = "array"
		default:
			received = "object"
		}
	}
	return "Invalid input: expected string, received " + received
}

func enumMessage(allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, v := range allowed {
		quoted[i] = `"` + v + `"`
	}
	return "Invalid option: expected one of " + strings.Join(quoted, "|")
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	// net/mail accepts addresses without a dot in the domain; the API does not.
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
