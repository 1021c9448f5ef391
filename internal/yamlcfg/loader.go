package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/fsutil"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Project    *projectYAML              `yaml:"project"`
	Workers    map[string]*workerYAML    `yaml:"workers"`
	Techniques map[string]*techniqueYAML `yaml:"techniques"`
}

type projectYAML struct {
	Name    string   `yaml:"name"`
	Workers []string `yaml:"workers"`
}

type workerYAML struct {
	Design string      `yaml:"design"`
	Steps  []*stepYAML `yaml:"steps"`
	Loop   *loopYAML   `yaml:"loop"`
}

type stepYAML struct {
	Name       string   `yaml:"name"`
	Techniques []string `yaml:"techniques"`
}

type loopYAML struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type techniqueYAML struct {
	Parameters map[string]any `yaml:"parameters"`
}

// Load parses every .yaml/.yml file under the given paths and merges the
// discovered definitions into one config model. Because YAML worker
// sections are mappings, worker order comes from the project's workers list;
// it is required whenever more than one worker is defined.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := resolveFiles(paths)
	if err != nil {
		return nil, err
	}

	var project *config.Project
	workersByName := make(map[string]*config.Worker)
	parameters := make(map[string]map[string]any)

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		var root fileRoot
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		if root.Project != nil {
			if project != nil {
				return nil, config.NewConfigurationError(root.Project.Name, "multiple project sections defined")
			}
			name := root.Project.Name
			if name == "" {
				name = "project"
			}
			project = &config.Project{Name: name, WorkerNames: root.Project.Workers}
		}
		for name, w := range root.Workers {
			if _, dup := workersByName[name]; dup {
				return nil, config.NewConfigurationError(name, "duplicate worker section")
			}
			workersByName[name] = translateWorker(name, w)
		}
		for name, t := range root.Techniques {
			params := t.Parameters
			if params == nil {
				params = map[string]any{}
			}
			parameters[name] = params
		}
	}

	model, err := assemble(project, workersByName, parameters)
	if err != nil {
		return nil, err
	}
	logger.Debug("YAML loading complete.", "workers", len(model.Workers), "techniques", len(model.Parameters))
	return model, nil
}

func translateWorker(name string, w *workerYAML) *config.Worker {
	worker := &config.Worker{Name: name, Design: w.Design}
	for _, s := range w.Steps {
		worker.Steps = append(worker.Steps, &config.Step{Name: s.Name, Techniques: s.Techniques})
	}
	if w.Loop != nil {
		worker.Loop = &config.Loop{From: w.Loop.From, To: w.Loop.To}
	}
	return worker
}

func assemble(project *config.Project, workersByName map[string]*config.Worker, parameters map[string]map[string]any) (*config.Model, error) {
	if project == nil {
		if len(workersByName) != 1 {
			return nil, config.NewConfigurationError("project", "a project section with a workers list is required when multiple workers are defined")
		}
		for name := range workersByName {
			project = &config.Project{Name: "project", WorkerNames: []string{name}}
		}
	}

	model := &config.Model{Project: project, Parameters: parameters}
	for _, name := range project.WorkerNames {
		w, ok := workersByName[name]
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
			found, err = fsutil.FindByExtensions(path, ".yaml", ".yml")
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
