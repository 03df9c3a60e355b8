package common

// Artifact describes a large binary asset attached to a platform entity.
//
// Zero values:
//   - Key: "" (invalid, required)
//   - Path: "" (no storage pointer)
//   - PathOnly: false (the record may own its bytes)
//   - ArtifactType: IMAGE
//   - LinkedArtifactID: "" (not an alias)
//   - FilenameExtension: "" (unknown extension)
type Artifact struct {
	Key               string
	Path              string
	PathOnly          bool
	ArtifactType      ArtifactType
	LinkedArtifactID  string
	FilenameExtension string
}

type LocationKind int

const (
	// LocationInline means the content is addressed by the artifact's own path.
	LocationInline LocationKind = iota
	// LocationLinked means the content belongs to another artifact.
	LocationLinked
)

func (k LocationKind) String() string {
	if k == LocationLinked {
		return "LINKED"
	}
	return "INLINE"
}

// Location is where an artifact's bytes actually live.
type Location struct {
	Kind             LocationKind
	Path             string
	PathOnly         bool
	LinkedArtifactID string
}

// EffectiveLocation resolves an artifact to its content location. A non-empty
// linked_artifact_id always wins over path and path_only.
func EffectiveLocation(a Artifact) Location {
	if a.LinkedArtifactID != "" {
		return Location{Kind: LocationLinked, LinkedArtifactID: a.LinkedArtifactID}
	}
	return Location{Kind: LocationInline, Path: a.Path, PathOnly: a.PathOnly}
}

func (a Artifact) Location() Location { return EffectiveLocation(a) }

func (a Artifact) Validate() error {
	if a.Key == "" {
		return ErrMissingKey
	}
	return nil
}
