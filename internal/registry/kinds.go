package registry

import "fmt"

// Kind enumerates the concrete vertex variants the engine can instantiate.
// Construction special-cases are dispatched on Kind, never on raw type
// strings, so adding a variant is a single centralized change.
type Kind int

const (
	// KindGeneric is the fallback for unrecognized type tags.
	KindGeneric Kind = iota
	KindAgent
	KindChain
	KindEmbedding
	KindLLM
	KindMemory
	KindPrompt
	KindTool
	KindToolkit
	KindWrapper
	KindConnector
	KindFileTool
)

var kindNames = map[Kind]string{
	KindGeneric:   "generic",
	KindAgent:     "agent",
	KindChain:     "chain",
	KindEmbedding: "embedding",
	KindLLM:       "llm",
	KindMemory:    "memory",
	KindPrompt:    "prompt",
	KindTool:      "tool",
	KindToolkit:   "toolkit",
	KindWrapper:   "wrapper",
	KindConnector: "connector",
	KindFileTool:  "file_tool",
}

// String returns the manifest-facing name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromString parses a manifest kind name into a Kind.
func KindFromString(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindGeneric, fmt.Errorf("unknown vertex kind %q", name)
}
