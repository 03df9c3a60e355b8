package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"modeldb-common/internal/core/services"
)

type commandFunc func(args []string) error

type command struct {
	summary string
	run     commandFunc
}

type Handler struct {
	kvSvc         *services.KeyValueService
	predicateSvc  *services.PredicateService
	artifactSvc   *services.ArtifactService
	paginationSvc *services.PaginationService
	enumSvc       *services.EnumService

	in       io.Reader
	out      io.Writer
	format   string
	commands map[string]command
}

func New(
	kvSvc *services.KeyValueService,
	predicateSvc *services.PredicateService,
	artifactSvc *services.ArtifactService,
	paginationSvc *services.PaginationService,
	enumSvc *services.EnumService,
	in io.Reader,
	out io.Writer,
	format string,
) *Handler {
	h := &Handler{
		kvSvc:         kvSvc,
		predicateSvc:  predicateSvc,
		artifactSvc:   artifactSvc,
		paginationSvc: paginationSvc,
		enumSvc:       enumSvc,
		in:            in,
		out:           out,
		format:        format,
		commands:      make(map[string]command),
	}
	h.RegisterCommands()
	return h
}

func (h *Handler) RegisterCommands() {
	// Typed values
	h.register("kv-encode", "read a JSON KeyValue on stdin, validate it, print its base64 wire form", h.EncodeKeyValue)
	h.register("kv-decode", "read a base64 KeyValue on stdin, print it as JSON", h.DecodeKeyValue)
	h.register("kv-validate", "read a JSON KeyValue on stdin and check value against value_type", h.ValidateKeyValue)

	// Predicates
	h.register("query-build", "build a KeyValueQuery from flags", h.BuildQuery)
	h.register("query-encode", "read a JSON KeyValueQuery on stdin, validate it, print its base64 wire form", h.EncodeQuery)
	h.register("query-decode", "read a base64 KeyValueQuery on stdin, print it as JSON", h.DecodeQuery)

	// Artifacts
	h.register("artifact-locate", "read a JSON Artifact on stdin, print where its content lives", h.LocateArtifact)
	h.register("parts-validate", "read a JSON list of ArtifactParts on stdin and check the sequence", h.ValidateParts)
	h.register("parts-complete", "commit parts in any order and print the completed part list", h.CompleteParts)

	// Vocabulary
	h.register("enum-decode", "map a wire integer to its enum variant: enum-decode <enum> <value>", h.DecodeEnum)
	h.register("page-resolve", "apply pagination defaults and limits", h.ResolvePage)
}

func (h *Handler) register(name, summary string, fn commandFunc) {
	h.commands[name] = command{summary: summary, run: logged(name, fn)}
}

// Run dispatches to the named command and maps its error to an *ExitError.
func (h *Handler) Run(name string, args []string) error {
	cmd, ok := h.commands[name]
	if !ok {
		return mapDomainError(usageError(fmt.Errorf("unknown command %q", name)))
	}
	return mapDomainError(cmd.run(args))
}

// Usage lists the registered commands.
func (h *Handler) Usage(w io.Writer) {
	names := make([]string, 0, len(h.commands))
	width := 0
	for name := range h.commands {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s%s  %s\n", name, strings.Repeat(" ", width-len(name)), h.commands[name].summary)
	}
}
