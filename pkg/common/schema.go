package common

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The ai.verta.common schema, built once from a FileDescriptorProto so the binary and
// JSON codecs run on the protobuf runtime instead of a hand-written encoder.

const (
	schemaPackage = "ai.verta.common"
	schemaPath    = "common/CommonService.proto"
)

var (
	schemaFile protoreflect.FileDescriptor

	keyValueDesc      protoreflect.MessageDescriptor
	keyValueQueryDesc protoreflect.MessageDescriptor
	artifactDesc      protoreflect.MessageDescriptor
	artifactPartDesc  protoreflect.MessageDescriptor
	paginationDesc    protoreflect.MessageDescriptor
)

func init() {
	file, err := protodesc.NewFile(schemaProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("build %s: %v", schemaPath, err))
	}
	schemaFile = file

	msgs := file.Messages()
	keyValueDesc = msgs.ByName("KeyValue")
	keyValueQueryDesc = msgs.ByName("KeyValueQuery")
	artifactDesc = msgs.ByName("Artifact")
	artifactPartDesc = msgs.ByName("ArtifactPart")
	paginationDesc = msgs.ByName("Pagination")
}

// SchemaFile returns the descriptor of common/CommonService.proto.
func SchemaFile() protoreflect.FileDescriptor { return schemaFile }

func schemaProto() *descriptorpb.FileDescriptorProto {
	valueType := "." + schemaPackage + ".ValueTypeEnum.ValueType"

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(schemaPath),
		Package:    proto.String(schemaPackage),
		Dependency: []string{structpb.File_google_protobuf_struct_proto.Path()},
		Syntax:     proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			enumWrapper("TernaryEnum", "Ternary", ternaryNames),
			{
				Name: proto.String("KeyValue"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("key", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					field("value", 2, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".google.protobuf.Value"),
					field("value_type", 3, descriptorpb.FieldDescriptorProto_TYPE_ENUM, valueType),
				},
			},
			enumWrapper("ValueTypeEnum", "ValueType", valueTypeNames),
			enumWrapper("CollaboratorTypeEnum", "CollaboratorType", collaboratorTypeNames),
			enumWrapper("EntitiesEnum", "EntitiesTypes", entitiesTypeNames),
			enumWrapper("ModelDBResourceEnum", "ModelDBServiceResourceTypes", resourceTypeNames),
			{
				Name: proto.String("Pagination"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("page_number", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32, ""),
					field("page_limit", 3, descriptorpb.FieldDescriptorProto_TYPE_INT32, ""),
				},
			},
			enumWrapper("WorkspaceTypeEnum", "WorkspaceType", workspaceTypeNames),
			enumWrapper("ArtifactTypeEnum", "ArtifactType", artifactTypeNames),
			{
				Name: proto.String("Artifact"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("key", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					field("path", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					field("path_only", 3, descriptorpb.FieldDescriptorProto_TYPE_BOOL, ""),
					field("artifact_type", 4, descriptorpb.FieldDescriptorProto_TYPE_ENUM, "."+schemaPackage+".ArtifactTypeEnum.ArtifactType"),
					field("linked_artifact_id", 5, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					field("filename_extension", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
				},
			},
			{
				Name: proto.String("KeyValueQuery"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("key", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					field("value", 2, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".google.protobuf.Value"),
					field("value_type", 3, descriptorpb.FieldDescriptorProto_TYPE_ENUM, valueType),
					field("operator", 4, descriptorpb.FieldDescriptorProto_TYPE_ENUM, "."+schemaPackage+".OperatorEnum.Operator"),
				},
			},
			{
				Name: proto.String("ArtifactPart"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("part_number", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64, ""),
					field("etag", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
				},
			},
			enumWrapper("OperatorEnum", "Operator", operatorNames),
			enumWrapper("VisibilityEnum", "Visibility", visibilityNames),
		},
	}
}

func field(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
		JsonName: proto.String(jsonName(name)),
	}
	if typeName != "" {
		f.TypeName = proto.String(typeName)
	}
	return f
}

// jsonName is protoc's lowerCamelCase mapping of a field name.
func jsonName(name string) string {
	out := make([]byte, 0, len(name))
	upper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
			upper = true
		case upper && 'a' <= c && c <= 'z':
			out = append(out, c-'a'+'A')
			upper = false
		default:
			out = append(out, c)
			upper = false
		}
	}
	return string(out)
}

// enumWrapper declares an enum nested in an otherwise empty message, the way the
// schema scopes its enum value names.
func enumWrapper(message, enum string, names []string) *descriptorpb.DescriptorProto {
	values := make([]*descriptorpb.EnumValueDescriptorProto, len(names))
	for i, n := range names {
		values[i] = &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(n),
			Number: proto.Int32(int32(i)),
		}
	}
	return &descriptorpb.DescriptorProto{
		Name: proto.String(message),
		EnumType: []*descriptorpb.EnumDescriptorProto{{
			Name:  proto.String(enum),
			Value: values,
		}},
	}
}

// ============================================================================
// dynamic message conversion
// ============================================================================

type message struct {
	*dynamicpb.Message
	fields protoreflect.FieldDescriptors
}

func newMessage(md protoreflect.MessageDescriptor) message {
	return message{Message: dynamicpb.NewMessage(md), fields: md.Fields()}
}

// Setters leave zero values unset so proto3 presence matches the wire.

func (m message) setString(name protoreflect.Name, v string) {
	if v != "" {
		m.Set(m.fields.ByName(name), protoreflect.ValueOfString(v))
	}
}

func (m message) setBool(name protoreflect.Name, v bool) {
	if v {
		m.Set(m.fields.ByName(name), protoreflect.ValueOfBool(v))
	}
}

func (m message) setInt32(name protoreflect.Name, v int32) {
	if v != 0 {
		m.Set(m.fields.ByName(name), protoreflect.ValueOfInt32(v))
	}
}

func (m message) setUint64(name protoreflect.Name, v uint64) {
	if v != 0 {
		m.Set(m.fields.ByName(name), protoreflect.ValueOfUint64(v))
	}
}

func (m message) setEnum(name protoreflect.Name, v int32) {
	if v != 0 {
		m.Set(m.fields.ByName(name), protoreflect.ValueOfEnum(protoreflect.EnumNumber(v)))
	}
}

func (m message) setValue(name protoreflect.Name, v *structpb.Value) {
	if v != nil {
		m.Set(m.fields.ByName(name), protoreflect.ValueOfMessage(v.ProtoReflect()))
	}
}

func (m message) str(name protoreflect.Name) string {
	return m.Get(m.fields.ByName(name)).String()
}

func (m message) boolean(name protoreflect.Name) bool {
	return m.Get(m.fields.ByName(name)).Bool()
}

func (m message) i32(name protoreflect.Name) int32 {
	return int32(m.Get(m.fields.ByName(name)).Int())
}

func (m message) u64(name protoreflect.Name) uint64 {
	return m.Get(m.fields.ByName(name)).Uint()
}

func (m message) enum(name protoreflect.Name) int32 {
	return int32(m.Get(m.fields.ByName(name)).Enum())
}

// value copies a decoded google.protobuf.Value into the generated type. A field that
// was never present stays nil.
func (m message) value(name protoreflect.Name) (*structpb.Value, error) {
	fd := m.fields.ByName(name)
	if !m.Has(fd) {
		return nil, nil
	}
	data, err := valueMarshal.Marshal(m.Get(fd).Message().Interface())
	if err != nil {
		return nil, err
	}
	v := new(structpb.Value)
	if err := proto.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (kv KeyValue) toMessage(md protoreflect.MessageDescriptor) message {
	m := newMessage(md)
	m.setString("key", kv.Key)
	m.setValue("value", kv.Value)
	m.setEnum("value_type", int32(kv.ValueType))
	return m
}

func keyValueFromMessage(m message) (KeyValue, error) {
	v, err := m.value("value")
	if err != nil {
		return KeyValue{}, err
	}
	return KeyValue{
		Key:       m.str("key"),
		Value:     v,
		ValueType: ValueTypeFromInt(m.enum("value_type")),
	}, nil
}

func (q KeyValueQuery) toMessage() message {
	m := q.KeyValue().toMessage(keyValueQueryDesc)
	m.setEnum("operator", int32(q.Operator))
	return m
}

func keyValueQueryFromMessage(m message) (KeyValueQuery, error) {
	kv, err := keyValueFromMessage(m)
	if err != nil {
		return KeyValueQuery{}, err
	}
	return KeyValueQuery{
		Key:       kv.Key,
		Value:     kv.Value,
		ValueType: kv.ValueType,
		Operator:  OperatorFromInt(m.enum("operator")),
	}, nil
}

func (a Artifact) toMessage() message {
	m := newMessage(artifactDesc)
	m.setString("key", a.Key)
	m.setString("path", a.Path)
	m.setBool("path_only", a.PathOnly)
	m.setEnum("artifact_type", int32(a.ArtifactType))
	m.setString("linked_artifact_id", a.LinkedArtifactID)
	m.setString("filename_extension", a.FilenameExtension)
	return m
}

func artifactFromMessage(m message) Artifact {
	return Artifact{
		Key:               m.str("key"),
		Path:              m.str("path"),
		PathOnly:          m.boolean("path_only"),
		ArtifactType:      ArtifactTypeFromInt(m.enum("artifact_type")),
		LinkedArtifactID:  m.str("linked_artifact_id"),
		FilenameExtension: m.str("filename_extension"),
	}
}

func (p ArtifactPart) toMessage() message {
	m := newMessage(artifactPartDesc)
	m.setUint64("part_number", p.PartNumber)
	m.setString("etag", p.ETag)
	return m
}

func artifactPartFromMessage(m message) ArtifactPart {
	return ArtifactPart{PartNumber: m.u64("part_number"), ETag: m.str("etag")}
}

func (p Pagination) toMessage() message {
	m := newMessage(paginationDesc)
	m.setInt32("page_number", p.PageNumber)
	m.setInt32("page_limit", p.PageLimit)
	return m
}

func paginationFromMessage(m message) Pagination {
	return Pagination{PageNumber: m.i32("page_number"), PageLimit: m.i32("page_limit")}
}
