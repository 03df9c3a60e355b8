package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"modeldb-common/pkg/common"
)

type locationResponse struct {
	Kind             string `json:"kind"`
	Path             string `json:"path,omitempty"`
	PathOnly         bool   `json:"pathOnly,omitempty"`
	LinkedArtifactID string `json:"linkedArtifactId,omitempty"`
}

func (h *Handler) LocateArtifact(args []string) error {
	if err := noArgs("artifact-locate", args); err != nil {
		return err
	}
	var a common.Artifact
	if err := h.readJSON("artifact", &a); err != nil {
		return err
	}

	loc, err := h.artifactSvc.Locate(a)
	if err != nil {
		return err
	}
	return h.render(locationResponse{
		Kind:             loc.Kind.String(),
		Path:             loc.Path,
		PathOnly:         loc.PathOnly,
		LinkedArtifactID: loc.LinkedArtifactID,
	})
}

type partsValidation struct {
	Valid bool `json:"valid"`
	Parts int  `json:"parts"`
}

func (h *Handler) ValidateParts(args []string) error {
	if err := noArgs("parts-validate", args); err != nil {
		return err
	}
	var parts []common.ArtifactPart
	if err := h.readJSON("artifact_parts", &parts); err != nil {
		return err
	}

	if err := h.artifactSvc.ValidateParts(parts); err != nil {
		return err
	}
	return h.render(partsValidation{Valid: true, Parts: len(parts)})
}

type completedPart struct {
	PartNumber int    `json:"partNumber"`
	ETag       string `json:"etag"`
}

type completeResponse struct {
	UploadID    string          `json:"uploadId"`
	ArtifactKey string          `json:"artifactKey"`
	Parts       []completedPart `json:"parts"`
}

func (h *Handler) CompleteParts(args []string) error {
	fs := pflag.NewFlagSet("parts-complete", pflag.ContinueOnError)
	key := fs.String("artifact-key", "", "key of the artifact being uploaded")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageError(fmt.Errorf("parts-complete takes no arguments"))
	}

	var parts []common.ArtifactPart
	if err := h.readJSON("artifact_parts", &parts); err != nil {
		return err
	}

	upload, completed, err := h.artifactSvc.Complete(*key, parts)
	if err != nil {
		return err
	}

	resp := completeResponse{
		UploadID:    upload.ID.String(),
		ArtifactKey: upload.ArtifactKey,
		Parts:       make([]completedPart, len(completed)),
	}
	for i, p := range completed {
		resp.Parts[i] = completedPart{PartNumber: p.PartNumber, ETag: p.ETag}
	}
	return h.render(resp)
}
