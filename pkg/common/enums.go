package common

import "strconv"

// Every enum in this package is a closed set of contiguous int32 values starting at
// zero. Decoding an integer outside the set yields the zero variant instead of an error.

func enumName(names []string, v int32) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

func enumValid(names []string, v int32) bool {
	return v >= 0 && int(v) < len(names)
}

func enumFromInt(names []string, v int32) int32 {
	if !enumValid(names, v) {
		return 0
	}
	return v
}

func enumFromName(names []string, name string) (int32, bool) {
	for i, n := range names {
		if n == name {
			return int32(i), true
		}
	}
	return 0, false
}

// ============================================================================
// ValueType
// ============================================================================

// ValueType declares how the generic value of a KeyValue is meant to be read.
type ValueType int32

const (
	ValueTypeString ValueType = iota
	ValueTypeNumber
	ValueTypeList
	ValueTypeBlob
)

var valueTypeNames = []string{"STRING", "NUMBER", "LIST", "BLOB"}

func (t ValueType) String() string { return enumName(valueTypeNames, int32(t)) }
func (t ValueType) IsValid() bool  { return enumValid(valueTypeNames, int32(t)) }

func ValueTypeFromInt(v int32) ValueType { return ValueType(enumFromInt(valueTypeNames, v)) }

func ParseValueType(name string) (ValueType, bool) {
	v, ok := enumFromName(valueTypeNames, name)
	return ValueType(v), ok
}

// ============================================================================
// Operator
// ============================================================================

// Operator is the comparison applied by a KeyValueQuery.
type Operator int32

const (
	OperatorEQ Operator = iota
	OperatorNE
	OperatorGT
	OperatorGTE
	OperatorLT
	OperatorLTE
	OperatorContain
	OperatorNotContain
	OperatorIn
)

var operatorNames = []string{"EQ", "NE", "GT", "GTE", "LT", "LTE", "CONTAIN", "NOT_CONTAIN", "IN"}

func (o Operator) String() string { return enumName(operatorNames, int32(o)) }
func (o Operator) IsValid() bool  { return enumValid(operatorNames, int32(o)) }

func OperatorFromInt(v int32) Operator { return Operator(enumFromInt(operatorNames, v)) }

func ParseOperator(name string) (Operator, bool) {
	v, ok := enumFromName(operatorNames, name)
	return Operator(v), ok
}

// ============================================================================
// ArtifactType
// ============================================================================

type ArtifactType int32

const (
	ArtifactTypeImage ArtifactType = iota
	ArtifactTypeModel
	ArtifactTypeTensorboard
	ArtifactTypeData
	ArtifactTypeBlob
	ArtifactTypeString
	ArtifactTypeCode
	ArtifactTypeContainer
)

var artifactTypeNames = []string{"IMAGE", "MODEL", "TENSORBOARD", "DATA", "BLOB", "STRING", "CODE", "CONTAINER"}

func (t ArtifactType) String() string { return enumName(artifactTypeNames, int32(t)) }
func (t ArtifactType) IsValid() bool  { return enumValid(artifactTypeNames, int32(t)) }

func ArtifactTypeFromInt(v int32) ArtifactType {
	return ArtifactType(enumFromInt(artifactTypeNames, v))
}

func ParseArtifactType(name string) (ArtifactType, bool) {
	v, ok := enumFromName(artifactTypeNames, name)
	return ArtifactType(v), ok
}

// ============================================================================
// Ternary
// ============================================================================

type Ternary int32

const (
	TernaryUnknown Ternary = iota
	TernaryTrue
	TernaryFalse
)

var ternaryNames = []string{"UNKNOWN", "TRUE", "FALSE"}

func (t Ternary) String() string { return enumName(ternaryNames, int32(t)) }
func (t Ternary) IsValid() bool  { return enumValid(ternaryNames, int32(t)) }

func TernaryFromInt(v int32) Ternary { return Ternary(enumFromInt(ternaryNames, v)) }

func ParseTernary(name string) (Ternary, bool) {
	v, ok := enumFromName(ternaryNames, name)
	return Ternary(v), ok
}

// TernaryOf converts a Go bool into TRUE or FALSE.
func TernaryOf(b bool) Ternary {
	if b {
		return TernaryTrue
	}
	return TernaryFalse
}

// Bool reports the boolean value and whether it is known.
func (t Ternary) Bool() (value bool, known bool) {
	switch t {
	case TernaryTrue:
		return true, true
	case TernaryFalse:
		return false, true
	default:
		return false, false
	}
}

// ============================================================================
// CollaboratorType
// ============================================================================

type CollaboratorType int32

const (
	CollaboratorReadOnly CollaboratorType = iota
	CollaboratorReadWrite
)

var collaboratorTypeNames = []string{"READ_ONLY", "READ_WRITE"}

func (t CollaboratorType) String() string { return enumName(collaboratorTypeNames, int32(t)) }
func (t CollaboratorType) IsValid() bool  { return enumValid(collaboratorTypeNames, int32(t)) }

func CollaboratorTypeFromInt(v int32) CollaboratorType {
	return CollaboratorType(enumFromInt(collaboratorTypeNames, v))
}

func ParseCollaboratorType(name string) (CollaboratorType, bool) {
	v, ok := enumFromName(collaboratorTypeNames, name)
	return CollaboratorType(v), ok
}

// ============================================================================
// EntitiesType
// ============================================================================

type EntitiesType int32

const (
	EntitiesUnknown EntitiesType = iota
	EntitiesOrganization
	EntitiesTeam
	EntitiesUser
)

var entitiesTypeNames = []string{"UNKNOWN", "ORGANIZATION", "TEAM", "USER"}

func (t EntitiesType) String() string { return enumName(entitiesTypeNames, int32(t)) }
func (t EntitiesType) IsValid() bool  { return enumValid(entitiesTypeNames, int32(t)) }

func EntitiesTypeFromInt(v int32) EntitiesType {
	return EntitiesType(enumFromInt(entitiesTypeNames, v))
}

func ParseEntitiesType(name string) (EntitiesType, bool) {
	v, ok := enumFromName(entitiesTypeNames, name)
	return EntitiesType(v), ok
}

// ============================================================================
// ModelDB resource types
// ============================================================================

// ResourceType tags the kind of ModelDB resource a permission or reference applies to.
type ResourceType int32

const (
	ResourceUnknown ResourceType = iota
	ResourceAll
	ResourceProject
	ResourceExperiment
	ResourceExperimentRun
	ResourceDataset
	ResourceDatasetVersion
	ResourceDashboard
	ResourceRepository
	ResourceRegisteredModel
	ResourceRegisteredModelVersion
	ResourceMonitoredEntity
	ResourceNotificationChannel
)

var resourceTypeNames = []string{
	"UNKNOWN",
	"ALL",
	"PROJECT",
	"EXPERIMENT",
	"EXPERIMENT_RUN",
	"DATASET",
	"DATASET_VERSION",
	"DASHBOARD",
	"REPOSITORY",
	"REGISTERED_MODEL",
	"REGISTERED_MODEL_VERSION",
	"MONITORED_ENTITY",
	"NOTIFICATION_CHANNEL",
}

func (t ResourceType) String() string { return enumName(resourceTypeNames, int32(t)) }
func (t ResourceType) IsValid() bool  { return enumValid(resourceTypeNames, int32(t)) }

func ResourceTypeFromInt(v int32) ResourceType {
	return ResourceType(enumFromInt(resourceTypeNames, v))
}

func ParseResourceType(name string) (ResourceType, bool) {
	v, ok := enumFromName(resourceTypeNames, name)
	return ResourceType(v), ok
}

// ============================================================================
// WorkspaceType
// ============================================================================

type WorkspaceType int32

const (
	WorkspaceUnknown WorkspaceType = iota
	WorkspaceOrganization
	WorkspaceUser
)

var workspaceTypeNames = []string{"UNKNOWN", "ORGANIZATION", "USER"}

func (t WorkspaceType) String() string { return enumName(workspaceTypeNames, int32(t)) }
func (t WorkspaceType) IsValid() bool  { return enumValid(workspaceTypeNames, int32(t)) }

func WorkspaceTypeFromInt(v int32) WorkspaceType {
	return WorkspaceType(enumFromInt(workspaceTypeNames, v))
}

func ParseWorkspaceType(name string) (WorkspaceType, bool) {
	v, ok := enumFromName(workspaceTypeNames, name)
	return WorkspaceType(v), ok
}

// ============================================================================
// Visibility
// ============================================================================

type Visibility int32

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
	VisibilityOrgScopedPublic
	VisibilityOrgDefault
)

var visibilityNames = []string{"PRIVATE", "PUBLIC", "ORG_SCOPED_PUBLIC", "ORG_DEFAULT"}

func (v Visibility) String() string { return enumName(visibilityNames, int32(v)) }
func (v Visibility) IsValid() bool  { return enumValid(visibilityNames, int32(v)) }

func VisibilityFromInt(v int32) Visibility { return Visibility(enumFromInt(visibilityNames, v)) }

func ParseVisibility(name string) (Visibility, bool) {
	v, ok := enumFromName(visibilityNames, name)
	return Visibility(v), ok
}

// ============================================================================
// Lookup by enum name
// ============================================================================

var enumTables = map[string][]string{
	"value_type":        valueTypeNames,
	"operator":          operatorNames,
	"artifact_type":     artifactTypeNames,
	"ternary":           ternaryNames,
	"collaborator_type": collaboratorTypeNames,
	"entities_type":     entitiesTypeNames,
	"resource_type":     resourceTypeNames,
	"workspace_type":    workspaceTypeNames,
	"visibility":        visibilityNames,
}

// EnumNames lists the enums known to DecodeEnum.
func EnumNames() []string {
	return []string{
		"value_type", "operator", "artifact_type", "ternary", "collaborator_type",
		"entities_type", "resource_type", "workspace_type", "visibility",
	}
}

// DecodeEnum resolves a wire integer for the named enum, falling back to the zero
// variant. ok is false only when the enum itself is unknown.
func DecodeEnum(enum string, v int32) (name string, ok bool) {
	names, ok := enumTables[enum]
	if !ok {
		return "", false
	}
	return names[enumFromInt(names, v)], true
}
