package settings

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/embergrid/internal/ctxlog"
	"github.com/vk/embergrid/internal/fsutil"
)

// Settings is the resolved runtime configuration of the submitter.
type Settings struct {
	Engine EngineSettings
	Broker BrokerSettings
	Output OutputSettings
	Fuels  FuelSettings
	Job    JobSettings
}

// EngineSettings locates the simulation engine's HTTP API.
type EngineSettings struct {
	BaseURL string
	Timeout time.Duration
}

// BrokerSettings locates the status broker's socket.io endpoint. IdleTimeout
// bounds the wait between consecutive status events while following a job.
type BrokerSettings struct {
	URL         string
	Namespace   string
	IdleTimeout time.Duration
}

// OutputSettings controls where export files and staged inputs land.
type OutputSettings struct {
	Prefix     string
	StagingDir string
}

// FuelSettings points at the optional fuel table override file.
type FuelSettings struct {
	Overrides string
}

// JobSettings carries defaults applied to every assembled job.
type JobSettings struct {
	Priority int
	Tags     map[string]string
}

// Default returns the settings used when no file provides a value.
func Default() *Settings {
	return &Settings{
		Engine: EngineSettings{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
		},
		Broker: BrokerSettings{
			URL:         "http://localhost:8080",
			Namespace:   "/jobs",
			IdleTimeout: 5 * time.Minute,
		},
		Output: OutputSettings{
			StagingDir: "staging",
		},
	}
}

// Load reads settings from path and resolves them against the defaults. A
// directory is searched recursively for .hcl files, which are merged; each
// top-level block may be defined in at most one file.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat settings path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find settings files in %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl settings files found in %s", path)
		}
	}
	logger.Debug("Loading settings.", "path", path, "files", len(files))

	merged := fileSchema{}
	definedIn := map[string]string{}
	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", file, diags)
		}
		var doc fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &doc); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode settings file %s: %w", file, diags)
		}
		if err := mergeFile(&merged, &doc, file, definedIn); err != nil {
			return nil, err
		}
	}

	s := Default()
	if err := s.apply(&merged); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	logger.Debug("Settings resolved.", "engine_url", s.Engine.BaseURL, "broker_url", s.Broker.URL)
	return s, nil
}

// mergeFile folds one decoded file into the merged schema, recording which
// file defined each block so a later redefinition can name both.
func mergeFile(merged, doc *fileSchema, file string, definedIn map[string]string) error {
	claim := func(name string) error {
		if prev, ok := definedIn[name]; ok {
			return fmt.Errorf("settings block %q is defined in both %s and %s", name, prev, file)
		}
		definedIn[name] = file
		return nil
	}
	if doc.Engine != nil {
		if err := claim("engine"); err != nil {
			return err
		}
		merged.Engine = doc.Engine
	}
	if doc.Broker != nil {
		if err := claim("broker"); err != nil {
			return err
		}
		merged.Broker = doc.Broker
	}
	if doc.Output != nil {
		if err := claim("output"); err != nil {
			return err
		}
		merged.Output = doc.Output
	}
	if doc.Fuels != nil {
		if err := claim("fuels"); err != nil {
			return err
		}
		merged.Fuels = doc.Fuels
	}
	if doc.Job != nil {
		if err := claim("job"); err != nil {
			return err
		}
		merged.Job = doc.Job
	}
	return nil
}

func (s *Settings) apply(doc *fileSchema) error {
	if b := doc.Engine; b != nil {
		s.Engine.BaseURL = b.BaseURL
		if b.Timeout != "" {
			d, err := time.ParseDuration(b.Timeout)
			if err != nil {
				return fmt.Errorf("invalid engine.timeout: %w", err)
			}
			s.Engine.Timeout = d
		}
	}
	if b := doc.Broker; b != nil {
		s.Broker.URL = b.URL
		if b.Namespace != "" {
			s.Broker.Namespace = b.Namespace
		}
		if b.IdleTimeout != "" {
			d, err := time.ParseDuration(b.IdleTimeout)
			if err != nil {
				return fmt.Errorf("invalid broker.idle_timeout: %w", err)
			}
			s.Broker.IdleTimeout = d
		}
	}
	if b := doc.Output; b != nil {
		if b.Prefix != "" {
			s.Output.Prefix = b.Prefix
		}
		if b.StagingDir != "" {
			s.Output.StagingDir = b.StagingDir
		}
	}
	if b := doc.Fuels; b != nil {
		s.Fuels.Overrides = b.Overrides
	}
	if b := doc.Job; b != nil {
		s.Job.Priority = b.Priority
		if b.Tags != nil {
			tags, err := tagsFromExpression(b.Tags)
			if err != nil {
				return err
			}
			s.Job.Tags = tags
		}
	}
	return nil
}

// tagsFromExpression evaluates the job.tags attribute and converts it to a
// string map. Any HCL object whose values convert to strings is accepted.
func tagsFromExpression(expr hcl.Expression) (map[string]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate job.tags: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("job.tags must be a map of strings: %w", err)
	}
	tags := make(map[string]string)
	for k, v := range converted.AsValueMap() {
		tags[k] = v.AsString()
	}
	return tags, nil
}

func (s *Settings) validate() error {
	if err := checkHTTPURL("engine.base_url", s.Engine.BaseURL); err != nil {
		return err
	}
	if err := checkHTTPURL("broker.url", s.Broker.URL); err != nil {
		return err
	}
	if s.Engine.Timeout <= 0 {
		return fmt.Errorf("engine.timeout must be positive, got %s", s.Engine.Timeout)
	}
	if s.Broker.IdleTimeout <= 0 {
		return fmt.Errorf("broker.idle_timeout must be positive, got %s", s.Broker.IdleTimeout)
	}
	if s.Job.Priority < 0 {
		return fmt.Errorf("job.priority must not be negative, got %d", s.Job.Priority)
	}
	if s.Output.StagingDir == "" {
		return fmt.Errorf("output.staging_dir must not be empty")
	}
	return nil
}

func checkHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s: scheme must be http or https, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s: missing host", name)
	}
	return nil
}
