package services

import (
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/structpb"

	"modeldb-common/internal/core/ports/output"
	"modeldb-common/pkg/common"
)

type PredicateService struct {
	recorder ports.Recorder
}

func NewPredicateService(recorder ports.Recorder) *PredicateService {
	return &PredicateService{recorder: recorderOrNop(recorder)}
}

func (s *PredicateService) Build(key string, op common.Operator, vt common.ValueType, value *structpb.Value) (q common.KeyValueQuery, err error) {
	defer observe(s.recorder, ports.OpQueryBuild, time.Now(), &err)

	q, err = common.NewPredicate(key, op, vt, value)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"key":        key,
			"operator":   op.String(),
			"value_type": vt.String(),
		}).Warn("predicate rejected")
	}
	return q, err
}

func (s *PredicateService) Encode(q common.KeyValueQuery) (data []byte, err error) {
	defer observe(s.recorder, ports.OpQueryEncode, time.Now(), &err)

	if err = q.Validate(); err != nil {
		log.WithError(err).WithField("key", q.Key).Warn("refusing to encode predicate")
		return nil, err
	}
	return common.EncodeKeyValueQuery(q)
}

// Decode parses data. The decoded predicate is not validated; an unknown operator
// integer has already been mapped to EQ.
func (s *PredicateService) Decode(data []byte) (q common.KeyValueQuery, err error) {
	defer observe(s.recorder, ports.OpQueryDecode, time.Now(), &err)

	q, err = common.DecodeKeyValueQuery(data)
	if err != nil {
		log.WithError(err).WithField("bytes", len(data)).Warn("malformed predicate")
	}
	return q, err
}
