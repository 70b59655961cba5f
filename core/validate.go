package core

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use once configured; tag names follow the
// json tags so error fields read like the wire format.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks spec against the input contract and returns the first
// violation as *ValidationError, or nil.
//
// Order of checks:
//  1. Struct tags: nodeCount within [0, MaxNodeCount], endpoints ≥ 0.
//  2. Every endpoint < nodeCount.
//  3. Weighted graphs: every weight present, finite and within ±MaxAbsWeight.
//
// Complexity: O(E).
func Validate(spec Spec) error {
	// 1. Tag-driven bounds; validator reports fields in declaration order,
	//    so nodeCount problems surface before edge problems.
	if err := validate.Struct(spec); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fromFieldError(fieldErrs[0])
		}

		return &ValidationError{Field: "spec", Index: -1, Err: err}
	}

	// 2-3. Cross-field checks the tags cannot express.
	for i, e := range spec.RawEdges {
		if e.From >= spec.NodeCount {
			return newEdgeError(i, "from", e.From, ErrOutOfRange)
		}
		if e.To >= spec.NodeCount {
			return newEdgeError(i, "to", e.To, ErrOutOfRange)
		}
		if !spec.Weighted {
			continue
		}
		if e.Weight == nil {
			return newEdgeError(i, "weight", nil, ErrMissingWeight)
		}
		if math.IsNaN(*e.Weight) || math.IsInf(*e.Weight, 0) {
			return newEdgeError(i, "weight", *e.Weight, ErrNonFiniteWeight)
		}
		if math.Abs(*e.Weight) > MaxAbsWeight {
			return newEdgeError(i, "weight", *e.Weight, ErrWeightTooLarge)
		}
	}

	return nil
}

// fromFieldError maps a validator failure onto the core sentinels.
func fromFieldError(fe validator.FieldError) *ValidationError {
	field := strings.TrimPrefix(fe.Namespace(), "Spec.")
	ve := &ValidationError{Field: field, Index: -1, Value: fe.Value(), Err: ErrInvalidSpec}

	switch fe.Field() {
	case "nodeCount":
		if fe.Tag() == "lte" {
			ve.Err = ErrTooManyNodes
		} else {
			ve.Err = ErrNegativeNodeCount
		}
	case "from", "to":
		ve.Err = ErrOutOfRange
		ve.Index = edgeIndex(field)
	}

	return ve
}

// edgeIndex extracts i from "rawEdges[i].from"; -1 when absent.
func edgeIndex(field string) int {
	open := strings.IndexByte(field, '[')
	end := strings.IndexByte(field, ']')
	if open < 0 || end <= open {
		return -1
	}
	i, err := strconv.Atoi(field[open+1 : end])
	if err != nil {
		return -1
	}

	return i
}
