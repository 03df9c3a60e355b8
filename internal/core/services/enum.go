package services

import (
	"fmt"
	"time"

	"modeldb-common/internal/core/ports/output"
	"modeldb-common/pkg/common"
)

type EnumService struct {
	recorder ports.Recorder
}

func NewEnumService(recorder ports.Recorder) *EnumService {
	return &EnumService{recorder: recorderOrNop(recorder)}
}

// Decode returns the variant name for a wire integer of the named enum.
func (s *EnumService) Decode(enum string, v int32) (name string, err error) {
	defer observe(s.recorder, ports.OpEnumDecode, time.Now(), &err)

	name, ok := common.DecodeEnum(enum, v)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnum, enum)
	}
	return name, nil
}
