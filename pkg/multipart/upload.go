// Package multipart tracks the parts committed to a multipart artifact upload and turns
// a complete set into the part list an S3-compatible store expects.
package multipart

import (
	"sort"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"modeldb-common/pkg/common"
)

// MaxParts is the largest part number an S3-compatible store accepts.
const MaxParts = 10000

// Upload is an immutable manifest of committed parts. WithPart returns a new manifest,
// so an Upload can be shared between goroutines without locking.
type Upload struct {
	ID          uuid.UUID
	ArtifactKey string
	parts       []common.ArtifactPart
}

func NewUpload(artifactKey string) (Upload, error) {
	if artifactKey == "" {
		return Upload{}, common.ErrMissingKey
	}
	return Upload{ID: uuid.New(), ArtifactKey: artifactKey}, nil
}

// WithPart records a committed part. Committing a part number again replaces its etag,
// matching a client that retries a part upload.
func (u Upload) WithPart(part common.ArtifactPart) (Upload, error) {
	switch {
	case part.PartNumber == 0:
		return u, &common.PartOrderError{Position: len(u.parts), Reason: "part numbers start at 1"}
	case part.PartNumber > MaxParts:
		return u, &common.PartOrderError{Position: len(u.parts), Got: part.PartNumber, Want: MaxParts, Reason: "part number above limit"}
	case part.ETag == "":
		return u, &common.PartOrderError{Position: len(u.parts), Got: part.PartNumber, Reason: "empty etag"}
	}

	i := sort.Search(len(u.parts), func(i int) bool { return u.parts[i].PartNumber >= part.PartNumber })

	next := make([]common.ArtifactPart, 0, len(u.parts)+1)
	next = append(next, u.parts[:i]...)
	next = append(next, part)
	if i < len(u.parts) && u.parts[i].PartNumber == part.PartNumber {
		next = append(next, u.parts[i+1:]...)
	} else {
		next = append(next, u.parts[i:]...)
	}

	u.parts = next
	return u, nil
}

// Committed returns the recorded parts ordered by part number.
func (u Upload) Committed() []common.ArtifactPart {
	out := make([]common.ArtifactPart, len(u.parts))
	copy(out, u.parts)
	return out
}

func (u Upload) Len() int { return len(u.parts) }

// Complete checks that parts 1..n are all present and converts them for
// CompleteMultipartUpload.
func (u Upload) Complete() ([]minio.CompletePart, error) {
	return CompleteParts(u.parts)
}

// CompleteParts validates parts as given and converts them.
func CompleteParts(parts []common.ArtifactPart) ([]minio.CompletePart, error) {
	if err := common.ValidateParts(parts); err != nil {
		return nil, err
	}
	out := make([]minio.CompletePart, len(parts))
	for i, p := range parts {
		out[i] = minio.CompletePart{PartNumber: int(p.PartNumber), ETag: p.ETag}
	}
	return out, nil
}
