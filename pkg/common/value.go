package common

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// MaxExactInteger is the largest integer a float64 represents without rounding (2^53).
const MaxExactInteger = 1 << 53

func StringValue(s string) *structpb.Value  { return structpb.NewStringValue(s) }
func NumberValue(f float64) *structpb.Value { return structpb.NewNumberValue(f) }
func BoolValue(b bool) *structpb.Value      { return structpb.NewBoolValue(b) }
func NullValue() *structpb.Value            { return structpb.NewNullValue() }

// IntValue converts i to a number value. Numbers travel as float64, so integers whose
// magnitude exceeds 2^53 may be rounded; exact is false when that happened.
func IntValue(i int64) (v *structpb.Value, exact bool) {
	f := float64(i)
	exact = i >= -MaxExactInteger && i <= MaxExactInteger
	if !exact && f < 9.223372036854775807e18 && int64(f) == i {
		exact = true
	}
	return structpb.NewNumberValue(f), exact
}

func ListValue(items ...*structpb.Value) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: items})
}

// BlobValue carries binary data as a standard base64 string.
func BlobValue(data []byte) *structpb.Value {
	return structpb.NewStringValue(base64.StdEncoding.EncodeToString(data))
}

// NewValue converts a Go value (nil, bool, numbers, string, []any, map[string]any, ...)
// into a generic value.
func NewValue(v any) (*structpb.Value, error) {
	value, err := structpb.NewValue(v)
	if err != nil {
		return nil, fmt.Errorf("convert value: %w", err)
	}
	return value, nil
}

// KindName names the variant held by v. A nil value or one with no kind set is "absent".
func KindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_StringValue:
		return "string"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_StructValue:
		return "struct"
	case *structpb.Value_ListValue:
		return "list"
	default:
		return "absent"
	}
}

func decodeBlob(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
}
