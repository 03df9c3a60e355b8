package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"modeldb-common/pkg/common"
)

type encoded struct {
	Data  string `json:"data"`
	Bytes int    `json:"bytes"`
}

func encodedOf(data []byte) encoded {
	return encoded{Data: base64.StdEncoding.EncodeToString(data), Bytes: len(data)}
}

// render writes v as indented JSON, or as YAML converted from that JSON so the
// protobuf JSON mapping applies to both formats.
func (h *Handler) render(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if h.format != "yaml" {
		_, err = fmt.Fprintf(h.out, "%s\n", data)
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(h.out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func (h *Handler) readAll() ([]byte, error) {
	data, err := io.ReadAll(h.in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// readJSON decodes stdin into dst and reports any failure as common.ErrMalformed.
func (h *Handler) readJSON(what string, dst any) error {
	data, err := h.readAll()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: %s: empty input", common.ErrMalformed, what)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		if errors.Is(err, common.ErrMalformed) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", common.ErrMalformed, what, err)
	}
	return nil
}

func (h *Handler) readBase64(what string) ([]byte, error) {
	data, err := h.readAll()
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(data))
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(text)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrMalformed, what, err)
	}
	return decoded, nil
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}
	return nil
}

func noArgs(name string, args []string) error {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageError(fmt.Errorf("%s takes no arguments", name))
	}
	return nil
}
