package multipart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeldb-common/pkg/common"
)

func commit(t *testing.T, u Upload, parts ...common.ArtifactPart) Upload {
	t.Helper()
	for _, p := range parts {
		var err error
		u, err = u.WithPart(p)
		require.NoError(t, err)
	}
	return u
}

func TestNewUpload(t *testing.T) {
	u, err := NewUpload("model.pkl")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "model.pkl", u.ArtifactKey)
	assert.Zero(t, u.Len())

	_, err = NewUpload("")
	assert.ErrorIs(t, err, common.ErrMissingKey)
}

func TestUpload_WithPart_OutOfOrder(t *testing.T) {
	u, err := NewUpload("model.pkl")
	require.NoError(t, err)

	u = commit(t, u,
		common.ArtifactPart{PartNumber: 3, ETag: "c"},
		common.ArtifactPart{PartNumber: 1, ETag: "a"},
		common.ArtifactPart{PartNumber: 2, ETag: "b"},
	)

	assert.Equal(t, []common.ArtifactPart{{PartNumber: 1, ETag: "a"}, {PartNumber: 2, ETag: "b"}, {PartNumber: 3, ETag: "c"}}, u.Committed())
}

func TestUpload_WithPart_Immutable(t *testing.T) {
	base, err := NewUpload("model.pkl")
	require.NoError(t, err)
	base = commit(t, base, common.ArtifactPart{PartNumber: 1, ETag: "a"})

	next := commit(t, base, common.ArtifactPart{PartNumber: 2, ETag: "b"})

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, next.Len())
	assert.Equal(t, base.ID, next.ID)
}

func TestUpload_WithPart_Recommit(t *testing.T) {
	u, err := NewUpload("model.pkl")
	require.NoError(t, err)

	u = commit(t, u,
		common.ArtifactPart{PartNumber: 1, ETag: "a"},
		common.ArtifactPart{PartNumber: 2, ETag: "b"},
		common.ArtifactPart{PartNumber: 1, ETag: "a-retry"},
	)

	assert.Equal(t, []common.ArtifactPart{{PartNumber: 1, ETag: "a-retry"}, {PartNumber: 2, ETag: "b"}}, u.Committed())
}

func TestUpload_WithPart_Rejects(t *testing.T) {
	u, err := NewUpload("model.pkl")
	require.NoError(t, err)

	for _, p := range []common.ArtifactPart{
		{PartNumber: 0, ETag: "z"},
		{PartNumber: MaxParts + 1, ETag: "x"},
		{PartNumber: 1, ETag: ""},
	} {
		got, err := u.WithPart(p)
		assert.ErrorIs(t, err, common.ErrPartOrder)
		assert.Zero(t, got.Len())
	}
}

func TestUpload_Complete(t *testing.T) {
	u, err := NewUpload("model.pkl")
	require.NoError(t, err)
	u = commit(t, u,
		common.ArtifactPart{PartNumber: 2, ETag: "b"},
		common.ArtifactPart{PartNumber: 1, ETag: "a"},
	)

	parts, err := u.Complete()
	require.NoError(t, err)
	assert.Equal(t, []minio.CompletePart{
		{PartNumber: 1, ETag: "a"},
		{PartNumber: 2, ETag: "b"},
	}, parts)
}

func TestUpload_Complete_Gap(t *testing.T) {
	u, err := NewUpload("model.pkl")
	require.NoError(t, err)
	u = commit(t, u,
		common.ArtifactPart{PartNumber: 1, ETag: "a"},
		common.ArtifactPart{PartNumber: 3, ETag: "c"},
	)

	_, err = u.Complete()
	var orderErr *common.PartOrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, uint64(2), orderErr.Want)

	empty, err := NewUpload("other")
	require.NoError(t, err)
	_, err = empty.Complete()
	assert.ErrorIs(t, err, common.ErrPartOrder)
}

func TestCompleteParts_RequiresOrder(t *testing.T) {
	_, err := CompleteParts([]common.ArtifactPart{{PartNumber: 2, ETag: "b"}, {PartNumber: 1, ETag: "a"}})
	assert.ErrorIs(t, err, common.ErrPartOrder)
}
