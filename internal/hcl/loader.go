package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Projects   []*projectBlock   `hcl:"project,block"`
	Workers    []*workerBlock    `hcl:"worker,block"`
	Techniques []*techniqueBlock `hcl:"technique,block"`
}

type projectBlock struct {
	Name    string   `hcl:"name,label"`
	Workers []string `hcl:"workers"`
}

type workerBlock struct {
	Name   string       `hcl:"name,label"`
	Design string       `hcl:"design,optional"`
	Steps  []*stepBlock `hcl:"step,block"`
	Loop   *loopBlock   `hcl:"loop,block"`
}

type stepBlock struct {
	Name       string   `hcl:"name,label"`
	Techniques []string `hcl:"techniques"`
}

type loopBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

type techniqueBlock struct {
	Name       string         `hcl:"name,label"`
	Parameters hcl.Expression `hcl:"parameters,optional"`
}

// Load parses every .hcl file under the given paths and merges the
// discovered blocks into one config model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := resolveFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var project *config.Project
	var workers []*config.Worker
	parameters := make(map[string]map[string]any)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Projects {
			if project != nil {
				return nil, config.NewConfigurationError(p.Name, "multiple project blocks defined")
			}
			project = &config.Project{Name: p.Name, WorkerNames: p.Workers}
		}
		for _, w := range root.Workers {
			worker, err := translateWorker(w)
			if err != nil {
				return nil, err
			}
			workers = append(workers, worker)
		}
		for _, t := range root.Techniques {
			params, err := translateParameters(t)
			if err != nil {
				return nil, err
			}
			parameters[t.Name] = params
		}
	}

	model, err := assemble(project, workers, parameters)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "workers", len(model.Workers), "techniques", len(model.Parameters))
	return model, nil
}

func translateWorker(w *workerBlock) (*config.Worker, error) {
	worker := &config.Worker{Name: w.Name, Design: w.Design}
	for _, s := range w.Steps {
		worker.Steps = append(worker.Steps, &config.Step{Name: s.Name, Techniques: s.Techniques})
	}
	if w.Loop != nil {
		worker.Loop = &config.Loop{From: w.Loop.From, To: w.Loop.To}
	}
	return worker, nil
}

func translateParameters(t *techniqueBlock) (map[string]any, error) {
	if t.Parameters == nil {
		return map[string]any{}, nil
	}
	val, diags := t.Parameters.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating parameters of technique %q: %w", t.Name, diags)
	}
	if val.IsNull() {
		return map[string]any{}, nil
	}
	goVal, err := ctyToGo(val)
	if err != nil {
		return nil, fmt.Errorf("translating parameters of technique %q: %w", t.Name, err)
	}
	params, ok := goVal.(map[string]any)
	if !ok {
		return nil, config.NewConfigurationError(t.Name, "parameters must be an object, got %T", goVal)
	}
	return params, nil
}

// assemble orders workers by the project's declared sequence. Files without
// a project block get an implicit project covering every worker in file
// order.
func assemble(project *config.Project, workers []*config.Worker, parameters map[string]map[string]any) (*config.Model, error) {
	byName := make(map[string]*config.Worker, len(workers))
	for _, w := range workers {
		if _, dup := byName[w.Name]; dup {
			return nil, config.NewConfigurationError(w.Name, "duplicate worker block")
		}
		byName[w.Name] = w
	}

	if project == nil {
		names := make([]string, 0, len(workers))
		for _, w := range workers {
			names = append(names, w.Name)
		}
		project = &config.Project{Name: "project", WorkerNames: names}
	}

	model := &config.Model{Project: project, Parameters: parameters}
	for _, name := range project.WorkerNames {
		w, ok := byName[name]
		if !ok {
			return nil, config.NewConfigurationError(project.Name, "project references undefined worker %q", name)
		}
		model.Workers = append(model.Workers, w)
	}
	if len(model.Workers) == 0 {
		return nil, config.NewConfigurationError(project.Name, "project defines no workers")
	}
	return model, nil
}

// resolveFiles expands each path into the .hcl files beneath it.
func resolveFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config path not found: %s", path)
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindByExtensions(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else {
			found = []string{path}
		}
		for _, f := range found {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	return files, nil
}
