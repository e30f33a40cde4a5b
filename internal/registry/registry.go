package registry

import "log/slog"

// Registry holds the type lookup tables used during vertex construction.
// It is passed explicitly into the graph builder; no global state exists.
type Registry struct {
	types     map[string]Kind
	fileTools map[string]struct{}
	defaults  map[string]map[string]any
}

// New creates a registry pre-populated with the standard editor categories
// and the stock file-tool tags.
func New() *Registry {
	r := NewEmpty()

	builtins := map[string]Kind{
		"agents":     KindAgent,
		"chains":     KindChain,
		"embeddings": KindEmbedding,
		"llms":       KindLLM,
		"memories":   KindMemory,
		"prompts":    KindPrompt,
		"tools":      KindTool,
		"toolkits":   KindToolkit,
		"wrappers":   KindWrapper,
		"connectors": KindConnector,

		// Language-construct tags found in node templates.
		"agent":   KindAgent,
		"chain":   KindChain,
		"llm":     KindLLM,
		"memory":  KindMemory,
		"prompt":  KindPrompt,
		"tool":    KindTool,
		"toolkit": KindToolkit,
	}
	for tag, kind := range builtins {
		r.RegisterType(tag, kind)
	}

	for _, tag := range []string{"ReadFileTool", "WriteFileTool"} {
		r.RegisterFileTool(tag)
	}

	return r
}

// NewEmpty creates a registry with no tags registered. Intended for tests
// and embedders that define their own tag universe.
func NewEmpty() *Registry {
	return &Registry{
		types:     make(map[string]Kind),
		fileTools: make(map[string]struct{}),
		defaults:  make(map[string]map[string]any),
	}
}

// RegisterType maps a type tag to a vertex kind, replacing any previous
// registration for the same tag.
func (r *Registry) RegisterType(tag string, kind Kind) {
	slog.Debug("Registering vertex type tag.", "tag", tag, "kind", kind.String())
	r.types[tag] = kind
}

// RegisterFileTool adds a tag to the file-tool set. File-tool membership is
// checked before the general type table during resolution.
func (r *Registry) RegisterFileTool(tag string) {
	slog.Debug("Registering file-tool tag.", "tag", tag)
	r.fileTools[tag] = struct{}{}
}

// RegisterDefaults records default build parameters for a type tag. They are
// merged into a vertex's params for keys its template does not provide.
func (r *Registry) RegisterDefaults(tag string, defaults map[string]any) {
	r.defaults[tag] = defaults
}

// Resolve maps a primary type tag plus a secondary language-construct tag to
// a vertex kind. The fallback chain never fails: unknown tags degrade to
// KindGeneric so unrecognized node kinds still construct.
func (r *Registry) Resolve(primary, construct string) Kind {
	if _, ok := r.fileTools[primary]; ok {
		return KindFileTool
	}
	if kind, ok := r.types[primary]; ok {
		return kind
	}
	if kind, ok := r.types[construct]; ok {
		return kind
	}
	return KindGeneric
}

// Defaults returns the registered default params for a tag, or nil.
func (r *Registry) Defaults(tag string) map[string]any {
	return r.defaults[tag]
}
