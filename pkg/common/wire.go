package common

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Binary encoding is the protocol-buffer wire format of ai.verta.common, produced by
// the protobuf runtime over the schema descriptors. Scalar fields holding their zero
// value are omitted, unknown fields are skipped on decode, a repeated message field
// merges into the earlier one, and enum integers go through the lenient *FromInt
// lookups.

var valueMarshal = proto.MarshalOptions{Deterministic: true}

func marshalMessage(what string, m message) ([]byte, error) {
	data, err := valueMarshal.Marshal(m.Message)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", what, err)
	}
	return data, nil
}

func unmarshalMessage(what string, md protoreflect.MessageDescriptor, data []byte) (message, error) {
	m := newMessage(md)
	if err := proto.Unmarshal(data, m.Message); err != nil {
		return message{}, malformed(what, err)
	}
	return m, nil
}

// ============================================================================
// KeyValue
// ============================================================================

func (kv KeyValue) MarshalBinary() ([]byte, error) {
	return marshalMessage("key_value", kv.toMessage(keyValueDesc))
}

func (kv *KeyValue) UnmarshalBinary(data []byte) error {
	m, err := unmarshalMessage("key_value", keyValueDesc, data)
	if err != nil {
		return err
	}
	out, err := keyValueFromMessage(m)
	if err != nil {
		return malformed("key_value", err)
	}
	*kv = out
	return nil
}

// EncodeKeyValue serializes kv without validating it.
func EncodeKeyValue(kv KeyValue) ([]byte, error) { return kv.MarshalBinary() }

// DecodeKeyValue parses a KeyValue. The value/value_type pairing is not checked; call
// Validate for that.
func DecodeKeyValue(data []byte) (KeyValue, error) {
	var kv KeyValue
	if err := kv.UnmarshalBinary(data); err != nil {
		return KeyValue{}, err
	}
	return kv, nil
}

// ============================================================================
// KeyValueQuery
// ============================================================================

func (q KeyValueQuery) MarshalBinary() ([]byte, error) {
	return marshalMessage("key_value_query", q.toMessage())
}

func (q *KeyValueQuery) UnmarshalBinary(data []byte) error {
	m, err := unmarshalMessage("key_value_query", keyValueQueryDesc, data)
	if err != nil {
		return err
	}
	out, err := keyValueQueryFromMessage(m)
	if err != nil {
		return malformed("key_value_query", err)
	}
	*q = out
	return nil
}

func EncodeKeyValueQuery(q KeyValueQuery) ([]byte, error) { return q.MarshalBinary() }

func DecodeKeyValueQuery(data []byte) (KeyValueQuery, error) {
	var q KeyValueQuery
	if err := q.UnmarshalBinary(data); err != nil {
		return KeyValueQuery{}, err
	}
	return q, nil
}

// ============================================================================
// Artifact
// ============================================================================

func (a Artifact) MarshalBinary() ([]byte, error) {
	return marshalMessage("artifact", a.toMessage())
}

func (a *Artifact) UnmarshalBinary(data []byte) error {
	m, err := unmarshalMessage("artifact", artifactDesc, data)
	if err != nil {
		return err
	}
	*a = artifactFromMessage(m)
	return nil
}

// ============================================================================
// ArtifactPart
// ============================================================================

func (p ArtifactPart) MarshalBinary() ([]byte, error) {
	return marshalMessage("artifact_part", p.toMessage())
}

func (p *ArtifactPart) UnmarshalBinary(data []byte) error {
	m, err := unmarshalMessage("artifact_part", artifactPartDesc, data)
	if err != nil {
		return err
	}
	*p = artifactPartFromMessage(m)
	return nil
}

// ============================================================================
// Pagination
// ============================================================================

// Pagination uses field numbers 2 and 3; 1 is unused in the schema.
func (p Pagination) MarshalBinary() ([]byte, error) {
	return marshalMessage("pagination", p.toMessage())
}

func (p *Pagination) UnmarshalBinary(data []byte) error {
	m, err := unmarshalMessage("pagination", paginationDesc, data)
	if err != nil {
		return err
	}
	*p = paginationFromMessage(m)
	return nil
}
