package cli

import (
	"modeldb-common/pkg/common"
)

func (h *Handler) EncodeKeyValue(args []string) error {
	if err := noArgs("kv-encode", args); err != nil {
		return err
	}
	var kv common.KeyValue
	if err := h.readJSON("key_value", &kv); err != nil {
		return err
	}

	data, err := h.kvSvc.Encode(kv)
	if err != nil {
		return err
	}
	return h.render(encodedOf(data))
}

func (h *Handler) DecodeKeyValue(args []string) error {
	if err := noArgs("kv-decode", args); err != nil {
		return err
	}
	data, err := h.readBase64("key_value")
	if err != nil {
		return err
	}

	kv, err := h.kvSvc.Decode(data)
	if err != nil {
		return err
	}
	return h.render(kv)
}

type validation struct {
	Valid bool `json:"valid"`
}

func (h *Handler) ValidateKeyValue(args []string) error {
	if err := noArgs("kv-validate", args); err != nil {
		return err
	}
	var kv common.KeyValue
	if err := h.readJSON("key_value", &kv); err != nil {
		return err
	}

	if err := h.kvSvc.Validate(kv); err != nil {
		return err
	}
	return h.render(validation{Valid: true})
}
