package services

import (
	"time"

	log "github.com/sirupsen/logrus"

	"modeldb-common/internal/core/ports/output"
	"modeldb-common/pkg/common"
)

type KeyValueService struct {
	recorder ports.Recorder
}

func NewKeyValueService(recorder ports.Recorder) *KeyValueService {
	return &KeyValueService{recorder: recorderOrNop(recorder)}
}

// Encode validates kv and returns its binary form. Invalid pairs are never encoded.
func (s *KeyValueService) Encode(kv common.KeyValue) (data []byte, err error) {
	defer observe(s.recorder, ports.OpKeyValueEncode, time.Now(), &err)

	if err = kv.Validate(); err != nil {
		log.WithError(err).WithField("key", kv.Key).Warn("refusing to encode key-value")
		return nil, err
	}
	return common.EncodeKeyValue(kv)
}

// Decode parses data without checking the value/value_type pairing.
func (s *KeyValueService) Decode(data []byte) (kv common.KeyValue, err error) {
	defer observe(s.recorder, ports.OpKeyValueDecode, time.Now(), &err)

	kv, err = common.DecodeKeyValue(data)
	if err != nil {
		log.WithError(err).WithField("bytes", len(data)).Warn("malformed key-value")
	}
	return kv, err
}

func (s *KeyValueService) Validate(kv common.KeyValue) (err error) {
	defer observe(s.recorder, ports.OpKeyValueValidate, time.Now(), &err)

	if err = kv.Validate(); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"key":        kv.Key,
			"value_type": kv.ValueType.String(),
		}).Warn("key-value rejected")
	}
	return err
}
