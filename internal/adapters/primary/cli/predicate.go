package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"modeldb-common/pkg/common"
)

// BuildQuery reads --key, --operator, --value-type and --value (a JSON literal).
func (h *Handler) BuildQuery(args []string) error {
	fs := pflag.NewFlagSet("query-build", pflag.ContinueOnError)
	key := fs.String("key", "", "field the predicate applies to")
	opName := fs.String("operator", "EQ", "EQ, NE, GT, GTE, LT, LTE, CONTAIN, NOT_CONTAIN or IN")
	vtName := fs.String("value-type", "STRING", "STRING, NUMBER, LIST or BLOB")
	rawValue := fs.String("value", "", "value as a JSON literal, e.g. 0.9, \"abc\" or [1,2]")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	op, ok := common.ParseOperator(*opName)
	if !ok {
		return usageError(fmt.Errorf("unknown operator %q", *opName))
	}
	vt, ok := common.ParseValueType(*vtName)
	if !ok {
		return usageError(fmt.Errorf("unknown value type %q", *vtName))
	}

	var value *structpb.Value
	if fs.Changed("value") {
		value = new(structpb.Value)
		if err := protojson.Unmarshal([]byte(*rawValue), value); err != nil {
			return fmt.Errorf("%w: value: %v", common.ErrMalformed, err)
		}
	}

	q, err := h.predicateSvc.Build(*key, op, vt, value)
	if err != nil {
		return err
	}
	return h.render(q)
}

func (h *Handler) EncodeQuery(args []string) error {
	if err := noArgs("query-encode", args); err != nil {
		return err
	}
	var q common.KeyValueQuery
	if err := h.readJSON("key_value_query", &q); err != nil {
		return err
	}

	data, err := h.predicateSvc.Encode(q)
	if err != nil {
		return err
	}
	return h.render(encodedOf(data))
}

func (h *Handler) DecodeQuery(args []string) error {
	if err := noArgs("query-decode", args); err != nil {
		return err
	}
	data, err := h.readBase64("key_value_query")
	if err != nil {
		return err
	}

	q, err := h.predicateSvc.Decode(data)
	if err != nil {
		return err
	}
	return h.render(q)
}
