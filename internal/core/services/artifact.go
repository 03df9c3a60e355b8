package services

import (
	"time"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"

	"modeldb-common/internal/core/ports/output"
	"modeldb-common/pkg/common"
	"modeldb-common/pkg/multipart"
)

type ArtifactService struct {
	recorder ports.Recorder
}

func NewArtifactService(recorder ports.Recorder) *ArtifactService {
	return &ArtifactService{recorder: recorderOrNop(recorder)}
}

func (s *ArtifactService) Locate(a common.Artifact) (loc common.Location, err error) {
	defer observe(s.recorder, ports.OpArtifactLocate, time.Now(), &err)

	if err = a.Validate(); err != nil {
		log.WithError(err).Warn("artifact rejected")
		return common.Location{}, err
	}
	return common.EffectiveLocation(a), nil
}

// ValidateParts checks parts exactly as given, without reordering.
func (s *ArtifactService) ValidateParts(parts []common.ArtifactPart) (err error) {
	defer observe(s.recorder, ports.OpPartsValidate, time.Now(), &err)

	if err = common.ValidateParts(parts); err != nil {
		log.WithError(err).WithField("parts", len(parts)).Warn("artifact parts rejected")
	}
	return err
}

// Complete commits parts to a fresh upload manifest in any order, then checks that the
// set is complete and returns the manifest with the parts to send to the store.
func (s *ArtifactService) Complete(artifactKey string, parts []common.ArtifactPart) (upload multipart.Upload, out []minio.CompletePart, err error) {
	defer observe(s.recorder, ports.OpPartsComplete, time.Now(), &err)

	upload, err = multipart.NewUpload(artifactKey)
	if err != nil {
		return multipart.Upload{}, nil, err
	}
	for _, p := range parts {
		if upload, err = upload.WithPart(p); err != nil {
			log.WithError(err).WithField("artifact_key", artifactKey).Warn("part commit rejected")
			return multipart.Upload{}, nil, err
		}
	}

	out, err = upload.Complete()
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"artifact_key": artifactKey,
			"upload_id":    upload.ID.String(),
			"parts":        upload.Len(),
		}).Warn("multipart upload incomplete")
		return multipart.Upload{}, nil, err
	}

	log.WithFields(log.Fields{
		"artifact_key": artifactKey,
		"upload_id":    upload.ID.String(),
		"parts":        len(out),
	}).Debug("multipart upload complete")
	return upload, out, nil
}
