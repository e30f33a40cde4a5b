package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/fsutil"
	"github.com/vk/flowgraphgo/internal/hclutil"
)

// vertexBlock is one `vertex "<tag>" { ... }` manifest block.
type vertexBlock struct {
	Tag         string     `hcl:"type_tag,label"`
	Kind        string     `hcl:"kind"`
	Description string     `hcl:"description,optional"`
	FileTool    bool       `hcl:"file_tool,optional"`
	Defaults    *cty.Value `hcl:"defaults,optional"`
}

// manifestConfig is the top-level structure of a vertex manifest file.
type manifestConfig struct {
	Vertices []*vertexBlock `hcl:"vertex,block"`
}

// LoadManifests discovers every .hcl manifest under manifestsPath and merges
// its vertex declarations into the registry. Later files win over earlier
// ones for the same tag.
func (r *Registry) LoadManifests(ctx context.Context, manifestsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading vertex manifests.", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory.", "path", manifestsPath, "error", err)
		return err
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path.", "path", manifestsPath)
		return nil
	}

	parser := hclparse.NewParser()
	loaded := 0
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var manifest manifestConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, block := range manifest.Vertices {
			if err := r.applyManifestBlock(block); err != nil {
				return fmt.Errorf("invalid vertex block %q in %s: %w", block.Tag, filePath, err)
			}
			loaded++
		}
		logger.Debug("Loaded vertex manifest file.", "file", filePath, "blocks", len(manifest.Vertices))
	}

	logger.Info("Registry manifests loaded.", "files", len(filePaths), "vertex_blocks", loaded)
	return nil
}

func (r *Registry) applyManifestBlock(block *vertexBlock) error {
	kind, err := KindFromString(block.Kind)
	if err != nil {
		return err
	}

	r.RegisterType(block.Tag, kind)
	if block.FileTool || kind == KindFileTool {
		r.RegisterFileTool(block.Tag)
	}

	if block.Defaults != nil {
		defaults, err := hclutil.NativeMap(*block.Defaults)
		if err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
		if len(defaults) > 0 {
			r.RegisterDefaults(block.Tag, defaults)
		}
	}
	return nil
}
