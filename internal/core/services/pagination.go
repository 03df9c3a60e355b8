package services

import (
	"time"

	log "github.com/sirupsen/logrus"

	"modeldb-common/internal/core/ports/output"
	"modeldb-common/pkg/common"
)

type PaginationService struct {
	defaultLimit int32
	maxLimit     int32
	recorder     ports.Recorder
}

func NewPaginationService(defaultLimit, maxLimit int32, recorder ports.Recorder) *PaginationService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit > 0 && defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return &PaginationService{defaultLimit: defaultLimit, maxLimit: maxLimit, recorder: recorderOrNop(recorder)}
}

func (s *PaginationService) Resolve(p common.Pagination) (page common.Page, err error) {
	defer observe(s.recorder, ports.OpPageResolve, time.Now(), &err)

	page, err = p.Resolve(s.defaultLimit, s.maxLimit)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"page_number": p.PageNumber,
			"page_limit":  p.PageLimit,
		}).Warn("pagination rejected")
	}
	return page, err
}
