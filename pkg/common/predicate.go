package common

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// KeyValueQuery is one predicate term: the field named Key compared with Operator
// against Value, read as ValueType. It is data only; evaluation belongs to the query
// engine that receives it.
type KeyValueQuery struct {
	Key       string
	Value     *structpb.Value
	ValueType ValueType
	Operator  Operator
}

// NewPredicate builds a query term and rejects operator/value_type pairs the query
// engine cannot honour.
func NewPredicate(key string, op Operator, vt ValueType, value *structpb.Value) (KeyValueQuery, error) {
	q := KeyValueQuery{Key: key, Value: value, ValueType: vt, Operator: op}
	if err := q.Validate(); err != nil {
		return KeyValueQuery{}, err
	}
	return q, nil
}

// Validate applies the operator legality rules first, then the value/value_type check.
func (q KeyValueQuery) Validate() error {
	if q.Key == "" {
		return ErrMissingKey
	}
	if err := checkOperator(q.Operator, q.ValueType, q.Value); err != nil {
		return err
	}
	return checkValueType(q.Key, q.Value, q.ValueType)
}

func checkOperator(op Operator, vt ValueType, value *structpb.Value) error {
	switch op {
	case OperatorEQ, OperatorNE:
		return nil
	case OperatorGT, OperatorGTE, OperatorLT, OperatorLTE:
		if vt != ValueTypeNumber {
			return &ConstraintError{Operator: op, ValueType: vt, Reason: "range comparison requires NUMBER"}
		}
		return nil
	case OperatorContain, OperatorNotContain:
		if vt != ValueTypeString && vt != ValueTypeList {
			return &ConstraintError{Operator: op, ValueType: vt, Reason: "containment requires a STRING or LIST target"}
		}
		return nil
	case OperatorIn:
		if _, ok := value.GetKind().(*structpb.Value_ListValue); !ok {
			return &ConstraintError{Operator: op, ValueType: vt, Reason: "membership requires a list value, got " + KindName(value)}
		}
		return nil
	default:
		return &ConstraintError{Operator: op, ValueType: vt, Reason: "unknown operator"}
	}
}

// KeyValue drops the operator.
func (q KeyValueQuery) KeyValue() KeyValue {
	return KeyValue{Key: q.Key, Value: q.Value, ValueType: q.ValueType}
}

func (q KeyValueQuery) Equal(other KeyValueQuery) bool {
	return q.Key == other.Key &&
		q.ValueType == other.ValueType &&
		q.Operator == other.Operator &&
		proto.Equal(q.Value, other.Value)
}
