package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"modeldb-common/pkg/common"
)

type enumResponse struct {
	Enum  string `json:"enum"`
	Value int32  `json:"value"`
	Name  string `json:"name"`
}

func (h *Handler) DecodeEnum(args []string) error {
	fs := pflag.NewFlagSet("enum-decode", pflag.ContinueOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageError(fmt.Errorf("enum-decode needs <enum> <value>; enums: %v", common.EnumNames()))
	}

	v, err := strconv.ParseInt(fs.Arg(1), 10, 32)
	if err != nil {
		return usageError(fmt.Errorf("value %q: %w", fs.Arg(1), err))
	}

	name, err := h.enumSvc.Decode(fs.Arg(0), int32(v))
	if err != nil {
		return err
	}
	return h.render(enumResponse{Enum: fs.Arg(0), Value: int32(v), Name: name})
}

type pageResponse struct {
	PageNumber int32 `json:"pageNumber"`
	PageLimit  int32 `json:"pageLimit"`
	Offset     int64 `json:"offset"`
}

func (h *Handler) ResolvePage(args []string) error {
	fs := pflag.NewFlagSet("page-resolve", pflag.ContinueOnError)
	number := fs.Int32("page-number", 0, "1-based page number; 0 means the first page")
	limit := fs.Int32("page-limit", 0, "page size; 0 means the configured default")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	page, err := h.paginationSvc.Resolve(common.Pagination{PageNumber: *number, PageLimit: *limit})
	if err != nil {
		return err
	}
	return h.render(pageResponse{PageNumber: page.Number, PageLimit: page.Limit, Offset: page.Offset})
}
