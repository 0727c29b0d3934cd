package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	errBadMatrixSize = errors.New("matrix needs 4, 9 or 16 values")
	errBadPoint      = errors.New("point needs 2 values")
)

// parseFloats reads comma or space separated values. Brackets are ignored
// so the output of a previous run can be pasted back.
func parseFloats(s string) ([]float32, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '[' || r == ']' || unicode.IsSpace(r)
	})

	values := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", f, err)
		}
		values = append(values, float32(v))
	}
	return values, nil
}

func parseMatrix(s string) ([]float32, error) {
	values, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 4, 9, 16:
		return values, nil
	}
	return nil, fmt.Errorf("got %d: %w", len(values), errBadMatrixSize)
}

// parsePoint reads an "x,y" pixel position.
func parsePoint(s string) (x, y float32, err error) {
	values, err := parseFloats(s)
	if err != nil {
		return 0, 0, err
	}
	if len(values) != 2 {
		return 0, 0, fmt.Errorf("got %d: %w", len(values), errBadPoint)
	}
	return values[0], values[1], nil
}
