package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeldb-common/internal/core/ports/output"
	"modeldb-common/internal/testutil"
	"modeldb-common/pkg/common"
)

func TestKeyValueService_Encode(t *testing.T) {
	rec := new(testutil.MockRecorder)
	rec.ExpectObservation(ports.OpKeyValueEncode, nil).Once()
	svc := NewKeyValueService(rec)

	data, err := svc.Encode(common.NewNumberKeyValue("acc", 0.9))
	require.NoError(t, err)

	got, err := common.DecodeKeyValue(data)
	require.NoError(t, err)
	assert.True(t, common.NewNumberKeyValue("acc", 0.9).Equal(got))
	rec.AssertExpectations(t)
}

func TestKeyValueService_Encode_Invalid(t *testing.T) {
	rec := new(testutil.MockRecorder)
	rec.ExpectObservation(ports.OpKeyValueEncode, common.ErrValueTypeMismatch).Once()
	svc := NewKeyValueService(rec)

	data, err := svc.Encode(common.KeyValue{Key: "acc", Value: common.StringValue("x"), ValueType: common.ValueTypeNumber})
	assert.ErrorIs(t, err, common.ErrValueTypeMismatch)
	assert.Nil(t, data)
	rec.AssertExpectations(t)
}

func TestKeyValueService_Decode(t *testing.T) {
	rec := new(testutil.MockRecorder)
	rec.ExpectObservation(ports.OpKeyValueDecode, nil).Once()
	rec.ExpectObservation(ports.OpKeyValueDecode, common.ErrMalformed).Once()
	svc := NewKeyValueService(rec)

	data, err := common.EncodeKeyValue(common.NewStringKeyValue("fw", "torch"))
	require.NoError(t, err)

	kv, err := svc.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "fw", kv.Key)

	_, err = svc.Decode([]byte{0x0a, 0x09})
	assert.ErrorIs(t, err, common.ErrMalformed)
	rec.AssertExpectations(t)
}

func TestKeyValueService_Validate(t *testing.T) {
	rec := new(testutil.MockRecorder)
	rec.ExpectObservation(ports.OpKeyValueValidate, nil).Once()
	rec.ExpectObservation(ports.OpKeyValueValidate, common.ErrMissingKey).Once()
	svc := NewKeyValueService(rec)

	assert.NoError(t, svc.Validate(common.NewStringKeyValue("fw", "torch")))
	assert.ErrorIs(t, svc.Validate(common.KeyValue{Value: common.StringValue("x")}), common.ErrMissingKey)
	rec.AssertExpectations(t)
}

func TestKeyValueService_NilRecorder(t *testing.T) {
	svc := NewKeyValueService(nil)
	assert.NoError(t, svc.Validate(common.NewStringKeyValue("fw", "torch")))
}
