package common

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// JSON is protojson over the schema descriptors: lowerCamelCase names, enums by name,
// 64-bit integers as strings, default values omitted. Decoding also accepts the
// snake_case field names, numeric enums and numeric 64-bit integers. Unknown fields
// are dropped and unknown enum names fall back to the zero variant.

var (
	jsonMarshal   = protojson.MarshalOptions{}
	jsonUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

func marshalJSON(what string, m message) ([]byte, error) {
	data, err := jsonMarshal.Marshal(m.Message)
	if err != nil {
		return nil, malformed(what, err)
	}
	return data, nil
}

func unmarshalJSON(what string, md protoreflect.MessageDescriptor, data []byte) (message, error) {
	m := newMessage(md)
	if err := jsonUnmarshal.Unmarshal(data, m.Message); err != nil {
		return message{}, malformed(what, err)
	}
	return m, nil
}

func (kv KeyValue) MarshalJSON() ([]byte, error) {
	return marshalJSON("key_value", kv.toMessage(keyValueDesc))
}

func (kv *KeyValue) UnmarshalJSON(data []byte) error {
	m, err := unmarshalJSON("key_value", keyValueDesc, data)
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

func (q KeyValueQuery) MarshalJSON() ([]byte, error) {
	return marshalJSON("key_value_query", q.toMessage())
}

func (q *KeyValueQuery) UnmarshalJSON(data []byte) error {
	m, err := unmarshalJSON("key_value_query", keyValueQueryDesc, data)
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

func (a Artifact) MarshalJSON() ([]byte, error) {
	return marshalJSON("artifact", a.toMessage())
}

func (a *Artifact) UnmarshalJSON(data []byte) error {
	m, err := unmarshalJSON("artifact", artifactDesc, data)
	if err != nil {
		return err
	}
	*a = artifactFromMessage(m)
	return nil
}

func (p ArtifactPart) MarshalJSON() ([]byte, error) {
	return marshalJSON("artifact_part", p.toMessage())
}

func (p *ArtifactPart) UnmarshalJSON(data []byte) error {
	m, err := unmarshalJSON("artifact_part", artifactPartDesc, data)
	if err != nil {
		return err
	}
	*p = artifactPartFromMessage(m)
	return nil
}

func (p Pagination) MarshalJSON() ([]byte, error) {
	return marshalJSON("pagination", p.toMessage())
}

func (p *Pagination) UnmarshalJSON(data []byte) error {
	m, err := unmarshalJSON("pagination", paginationDesc, data)
	if err != nil {
		return err
	}
	*p = paginationFromMessage(m)
	return nil
}
