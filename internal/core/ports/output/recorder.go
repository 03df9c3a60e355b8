package ports

import "time"

// Operation names reported to a Recorder.
const (
	OpKeyValueEncode   = "kv_encode"
	OpKeyValueDecode   = "kv_decode"
	OpKeyValueValidate = "kv_validate"
	OpQueryBuild       = "query_build"
	OpQueryEncode      = "query_encode"
	OpQueryDecode      = "query_decode"
	OpArtifactLocate   = "artifact_locate"
	OpPartsValidate    = "parts_validate"
	OpPartsComplete    = "parts_complete"
	OpEnumDecode       = "enum_decode"
	OpPageResolve      = "page_resolve"
)

// Recorder receives one observation per service operation.
type Recorder interface {
	ObserveOperation(op string, d time.Duration, err error)
}

// NopRecorder discards observations.
type NopRecorder struct{}

func (NopRecorder) ObserveOperation(string, time.Duration, error) {}
