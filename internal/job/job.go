// Package job assembles the engine-ready submission: decoded run
// parameters, the fuel table, compiled export descriptors, and submission
// metadata.
package job

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vk/embergrid/internal/export"
	"github.com/vk/embergrid/internal/fuels"
	"github.com/vk/embergrid/internal/params"
	"github.com/vk/embergrid/internal/staging"
)

// Job is one fully assembled simulation submission. StagedFiles names the
// input files staged alongside the job, in parameter-file order.
type Job struct {
	ID          string
	CreatedAt   time.Time
	Priority    int
	Tags        map[string]string
	Params      *params.Parameters
	Fuels       []fuels.Fuel
	Exports     []export.Descriptor
	StagedFiles []string
}

// Options carries submission metadata applied to every job.
type Options struct {
	Priority int
	Tags     map[string]string
}

// NewID returns a fresh job identifier.
func NewID() string {
	return fmt.Sprintf("job-%s", uuid.NewString())
}

// Assemble validates the raw export entries, compiles them into descriptors
// against the output prefix, and wraps everything into a submittable Job.
// It either returns a complete job or an error; partial jobs are never
// produced.
func Assemble(p *params.Parameters, table []fuels.Fuel, entries export.EntrySet, prefix string, opts Options) (*Job, error) {
	if err := export.Validate(entries); err != nil {
		return nil, err
	}
	descriptors, err := export.Build(entries, prefix)
	if err != nil {
		return nil, err
	}
	return &Job{
		ID:          NewID(),
		CreatedAt:   time.Now().UTC(),
		Priority:    opts.Priority,
		Tags:        opts.Tags,
		Params:      p,
		Fuels:       table,
		Exports:     descriptors,
		StagedFiles: staging.InputFiles(p),
	}, nil
}
