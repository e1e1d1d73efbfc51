// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package policy

import (
	"errors"
	"strings"
	"unicode"
)

// TypeExpr is a parsed override value: a bare name, or a list of an element
// expression written as List<T> or T[].
type TypeExpr struct {
	Name string
	Elem *TypeExpr
}

// IsList reports whether the expression denotes a list.
func (e TypeExpr) IsList() bool {
	return e.Elem != nil
}

func (e TypeExpr) String() string {
	if e.Elem != nil {
		return "List<" + e.Elem.String() + ">"
	}
	return e.Name
}

// ParseTypeExpr parses an override value.
func ParseTypeExpr(s string) (TypeExpr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeExpr{}, errors.New("empty type expression")
	}

	if inner, ok := strings.CutSuffix(s, "[]"); ok {
		elem, err := ParseTypeExpr(inner)
		if err != nil {
			return TypeExpr{}, err
		}
		return TypeExpr{Elem: &elem}, nil
	}

	if rest, ok := strings.CutPrefix(s, "List<"); ok {
		inner, ok := strings.CutSuffix(rest, ">")
		if !ok {
			return TypeExpr{}, errors.New("unterminated List<")
		}
		elem, err := ParseTypeExpr(inner)
		if err != nil {
			return TypeExpr{}, err
		}
		return TypeExpr{Elem: &elem}, nil
	}

	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return TypeExpr{}, errors.New("type name must start with a letter or underscore")
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return TypeExpr{}, errors.New("type name must contain only letters, digits, underscores or dots")
		}
	}
	return TypeExpr{Name: s}, nil
}
