package common

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// KeyValue is a named generic value tagged with the type it is meant to be read as.
//
// Zero values:
//   - Key: "" (invalid, required by Validate)
//   - Value: nil (absent; rejected by Validate)
//   - ValueType: STRING
type KeyValue struct {
	Key       string
	Value     *structpb.Value
	ValueType ValueType
}

func NewStringKeyValue(key, s string) KeyValue {
	return KeyValue{Key: key, Value: StringValue(s), ValueType: ValueTypeString}
}

func NewNumberKeyValue(key string, f float64) KeyValue {
	return KeyValue{Key: key, Value: NumberValue(f), ValueType: ValueTypeNumber}
}

// NewListKeyValue builds a LIST key/value from Go values accepted by structpb.
func NewListKeyValue(key string, items []any) (KeyValue, error) {
	list, err := structpb.NewList(items)
	if err != nil {
		return KeyValue{}, fmt.Errorf("convert list %q: %w", key, err)
	}
	return KeyValue{Key: key, Value: structpb.NewListValue(list), ValueType: ValueTypeList}, nil
}

func NewBlobKeyValue(key string, data []byte) KeyValue {
	return KeyValue{Key: key, Value: BlobValue(data), ValueType: ValueTypeBlob}
}

// Validate checks that the value kind agrees with ValueType.
//
// STRING is the default tag and accepts any present value; NUMBER needs a number,
// LIST a list and BLOB a string.
func (kv KeyValue) Validate() error {
	if kv.Key == "" {
		return ErrMissingKey
	}
	return checkValueType(kv.Key, kv.Value, kv.ValueType)
}

// Validate is the explicit consistency check that decoding deliberately skips.
func Validate(kv KeyValue) error { return kv.Validate() }

func checkValueType(key string, v *structpb.Value, vt ValueType) error {
	kind := KindName(v)
	if kind == "absent" {
		return &MismatchError{Key: key, ValueType: vt, Actual: kind}
	}

	var ok bool
	switch vt {
	case ValueTypeNumber:
		ok = kind == "number"
	case ValueTypeList:
		ok = kind == "list"
	case ValueTypeBlob:
		ok = kind == "string"
	default:
		ok = true
	}
	if !ok {
		return &MismatchError{Key: key, ValueType: vt, Actual: kind}
	}
	return nil
}

// Blob decodes the base64 payload of a BLOB key/value.
func (kv KeyValue) Blob() ([]byte, error) {
	if kv.ValueType != ValueTypeBlob {
		return nil, &MismatchError{Key: kv.Key, ValueType: kv.ValueType, Actual: KindName(kv.Value)}
	}
	s, ok := kv.Value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, &MismatchError{Key: kv.Key, ValueType: kv.ValueType, Actual: KindName(kv.Value)}
	}
	return decodeBlob(s.StringValue)
}

// Equal reports whether both key/values carry the same key, type and value.
func (kv KeyValue) Equal(other KeyValue) bool {
	return kv.Key == other.Key &&
		kv.ValueType == other.ValueType &&
		proto.Equal(kv.Value, other.Value)
}
