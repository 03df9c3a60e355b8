package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"modeldb-common/internal/core/services"
	"modeldb-common/pkg/common"
)

func newTestHandler(stdin, format string) (*Handler, *bytes.Buffer) {
	out := new(bytes.Buffer)
	h := New(
		services.NewKeyValueService(nil),
		services.NewPredicateService(nil),
		services.NewArtifactService(nil),
		services.NewPaginationService(20, 100, nil),
		services.NewEnumService(nil),
		strings.NewReader(stdin),
		out,
		format,
	)
	return h, out
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.ExitCode()
}

func TestHandler_EncodeDecodeKeyValue(t *testing.T) {
	h, out := newTestHandler(`{"key":"a","value":1,"valueType":"NUMBER"}`, "json")
	require.NoError(t, h.Run("kv-encode", nil))

	var enc encoded
	require.NoError(t, json.Unmarshal(out.Bytes(), &enc))
	raw, err := base64.StdEncoding.DecodeString(enc.Data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x01, 'a', 0x12, 0x09, 0x11, 0, 0, 0, 0, 0, 0, 0xf0, 0x3f, 0x18, 0x01}, raw)
	assert.Equal(t, 16, enc.Bytes)

	h, out = newTestHandler(enc.Data+"\n", "json")
	require.NoError(t, h.Run("kv-decode", nil))
	assert.JSONEq(t, `{"key":"a","value":1,"valueType":"NUMBER"}`, out.String())
}

func TestHandler_ValidateKeyValue(t *testing.T) {
	h, out := newTestHandler(`{"key":"tags","value":["a"],"valueType":"LIST"}`, "json")
	require.NoError(t, h.Run("kv-validate", nil))
	assert.JSONEq(t, `{"valid":true}`, out.String())

	h, _ = newTestHandler(`{"key":"acc","value":"high","valueType":"NUMBER"}`, "json")
	err := h.Run("kv-validate", nil)
	assert.Equal(t, ExitValidation, exitCode(t, err))
	assert.ErrorIs(t, err, common.ErrValueTypeMismatch)
}

func TestHandler_ExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		stdin   string
		want    int
	}{
		{"unknown command", "nope", nil, "", ExitUsage},
		{"stray argument", "kv-validate", []string{"extra"}, "{}", ExitUsage},
		{"bad flag", "page-resolve", []string{"--bogus"}, "", ExitUsage},
		{"empty stdin", "kv-validate", nil, "  ", ExitMalformed},
		{"bad json", "kv-validate", nil, "{", ExitMalformed},
		{"bad base64", "kv-decode", nil, "!!!", ExitMalformed},
		{"truncated wire", "kv-decode", nil, base64.StdEncoding.EncodeToString([]byte{0x0a, 0x05}), ExitMalformed},
		{"encode invalid", "kv-encode", nil, `{"key":"","value":"x"}`, ExitValidation},
		{"illegal operator", "query-build", []string{"--key=acc", "--operator=GT", "--value-type=STRING", `--value="x"`}, "", ExitValidation},
		{"unknown operator name", "query-build", []string{"--key=acc", "--operator=LIKE"}, "", ExitUsage},
		{"gap in parts", "parts-validate", nil, `[{"partNumber":1,"etag":"a"},{"partNumber":3,"etag":"c"}]`, ExitValidation},
		{"page limit", "page-resolve", []string{"--page-limit=101"}, "", ExitValidation},
		{"unknown enum", "enum-decode", []string{"colour", "1"}, "", ExitUsage},
		{"enum arity", "enum-decode", []string{"visibility"}, "", ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(tt.stdin, "json")
			assert.Equal(t, tt.want, exitCode(t, h.Run(tt.command, tt.args)))
		})
	}
}

func TestHandler_BuildQuery(t *testing.T) {
	h, out := newTestHandler("", "json")
	require.NoError(t, h.Run("query-build", []string{"--key=epoch", "--operator=IN", "--value-type=LIST", "--value=[1,2]"}))
	assert.JSONEq(t, `{"key":"epoch","value":[1,2],"valueType":"LIST","operator":"IN"}`, out.String())
}

func TestHandler_QueryRoundTrip(t *testing.T) {
	h, out := newTestHandler(`{"key":"acc","value":0.8,"valueType":"NUMBER","operator":"GTE"}`, "json")
	require.NoError(t, h.Run("query-encode", nil))

	var enc encoded
	require.NoError(t, json.Unmarshal(out.Bytes(), &enc))

	h, out = newTestHandler(enc.Data, "json")
	require.NoError(t, h.Run("query-decode", nil))
	assert.JSONEq(t, `{"key":"acc","value":0.8,"valueType":"NUMBER","operator":"GTE"}`, out.String())
}

func TestHandler_LocateArtifact(t *testing.T) {
	h, out := newTestHandler(`{"key":"m","path":"s3://b/m","pathOnly":true,"linkedArtifactId":"a-1"}`, "json")
	require.NoError(t, h.Run("artifact-locate", nil))
	assert.JSONEq(t, `{"kind":"LINKED","linkedArtifactId":"a-1"}`, out.String())

	h, out = newTestHandler(`{"key":"m","path":"s3://b/m","path_only":true}`, "json")
	require.NoError(t, h.Run("artifact-locate", nil))
	assert.JSONEq(t, `{"kind":"INLINE","path":"s3://b/m","pathOnly":true}`, out.String())
}

func TestHandler_CompleteParts(t *testing.T) {
	h, out := newTestHandler(`[{"partNumber":"2","etag":"b"},{"partNumber":1,"etag":"a"}]`, "json")
	require.NoError(t, h.Run("parts-complete", []string{"--artifact-key", "model.pkl"}))

	var resp completeResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.NotEmpty(t, resp.UploadID)
	assert.Equal(t, "model.pkl", resp.ArtifactKey)
	assert.Equal(t, []completedPart{{PartNumber: 1, ETag: "a"}, {PartNumber: 2, ETag: "b"}}, resp.Parts)

	h, _ = newTestHandler(`[{"partNumber":1,"etag":"a"}]`, "json")
	err := h.Run("parts-complete", nil)
	assert.ErrorIs(t, err, common.ErrMissingKey)
}

func TestHandler_DecodeEnum(t *testing.T) {
	h, out := newTestHandler("", "json")
	require.NoError(t, h.Run("enum-decode", []string{"visibility", "99"}))
	assert.JSONEq(t, `{"enum":"visibility","value":99,"name":"PRIVATE"}`, out.String())
}

func TestHandler_ResolvePage_YAML(t *testing.T) {
	h, out := newTestHandler("", "yaml")
	require.NoError(t, h.Run("page-resolve", []string{"--page-number=3"}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]any{"pageNumber": 3, "pageLimit": 20, "offset": 40}, got)
}

func TestHandler_Usage(t *testing.T) {
	h, _ := newTestHandler("", "json")
	var buf bytes.Buffer
	h.Usage(&buf)

	for _, name := range []string{
		"kv-encode", "kv-decode", "kv-validate", "query-build", "query-encode", "query-decode",
		"artifact-locate", "parts-validate", "parts-complete", "enum-decode", "page-resolve",
	} {
		assert.Contains(t, buf.String(), name)
	}
}
