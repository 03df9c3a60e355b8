package common

import "sort"

// ArtifactPart is one piece of a multipart upload. PartNumber is 1-based; ETag is the
// fingerprint the storage backend returned for the part.
type ArtifactPart struct {
	PartNumber uint64
	ETag       string
}

// ValidateParts checks that parts form a complete upload: at least one part, numbered
// 1, 2, 3, ... in order with no gaps or repeats, each with an etag.
func ValidateParts(parts []ArtifactPart) error {
	if len(parts) == 0 {
		return &PartOrderError{Position: 0, Reason: "no parts"}
	}

	want := uint64(1)
	for i, p := range parts {
		if p.PartNumber != want {
			reason := "gap in part numbers"
			if p.PartNumber < want {
				reason = "part numbers must be strictly increasing"
			}
			return &PartOrderError{Position: i, Got: p.PartNumber, Want: want, Reason: reason}
		}
		if p.ETag == "" {
			return &PartOrderError{Position: i, Got: p.PartNumber, Reason: "empty etag"}
		}
		want++
	}
	return nil
}

// SortParts returns a copy of parts ordered by part number.
func SortParts(parts []ArtifactPart) []ArtifactPart {
	sorted := make([]ArtifactPart, len(parts))
	copy(sorted, parts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PartNumber < sorted[j].PartNumber
	})
	return sorted
}
