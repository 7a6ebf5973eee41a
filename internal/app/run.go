package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/embergrid/internal/broker"
	"github.com/vk/embergrid/internal/ctxlog"
	"github.com/vk/embergrid/internal/export"
	"github.com/vk/embergrid/internal/fuels"
	"github.com/vk/embergrid/internal/job"
	"github.com/vk/embergrid/internal/params"
	"github.com/vk/embergrid/internal/staging"
	"github.com/vk/embergrid/internal/validation"
)

// Run executes one submission end to end: decode the parameter file, compile
// the export requests, assemble the job, stage its inputs, have the engine
// validate it, submit it, and follow status events until the job reaches a
// terminal state.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startOpsServer(a.config.HealthcheckPort)
	}

	p, err := params.Load(a.config.ParamsPath)
	if err != nil {
		return err
	}
	a.logger.Info("Parameters decoded.", "file", a.config.ParamsPath, "station", p.StationName)

	table, err := fuels.Resolve(a.settings.Fuels.Overrides)
	if err != nil {
		return err
	}
	a.logger.Debug("Fuel table resolved.", "fuels", len(table))

	entries := export.ParseTokens(a.config.ExportTokens)
	j, err := job.Assemble(p, table, entries, a.settings.Output.Prefix, job.Options{
		Priority: a.settings.Job.Priority,
		Tags:     a.settings.Job.Tags,
	})
	if err != nil {
		return err
	}
	a.metrics.exportsCompiled.Add(float64(len(j.Exports)))
	a.logger.Info("Job assembled.", "job", j.ID, "exports", len(j.Exports))

	if a.config.DryRun {
		a.logger.Info("Dry run requested, skipping staging and submission.")
		a.printPlan(j)
		return nil
	}

	stagedDir, err := staging.Stage(ctx, p, a.settings.Output.StagingDir, j.ID)
	if err != nil {
		return err
	}
	a.logger.Debug("Job inputs staged.", "job", j.ID, "dir", stagedDir, "files", len(j.StagedFiles))

	result, err := a.engine.Validate(ctx, j)
	if err != nil {
		return err
	}
	if !result.Valid {
		a.metrics.jobsRejected.Inc()
		a.logger.Warn("Engine rejected the job, nothing was submitted.", "job", j.ID)
		validation.Report(result.Tree, func(line string) {
			fmt.Fprintln(a.outW, line)
		})
		return nil
	}
	a.logger.Debug("Engine validation passed.", "job", j.ID)

	engineID, err := a.engine.Submit(ctx, j)
	if err != nil {
		return err
	}
	a.metrics.jobsSubmitted.Inc()
	a.logger.Info("🚀 Job submitted.", "job", engineID)

	err = a.listener.Follow(ctx, engineID, a.settings.Broker.IdleTimeout, func(ev broker.StatusEvent) {
		a.metrics.statusEvents.WithLabelValues(ev.Status).Inc()
		a.logger.Info("Job status changed.", "job", ev.Job, "status", ev.Status, "detail", ev.Detail)
	})
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printPlan writes the compiled submission to the output writer without
// contacting the engine.
func (a *App) printPlan(j *job.Job) {
	fmt.Fprintf(a.outW, "Job %s (dry run)\n", j.ID)
	fmt.Fprintf(a.outW, "  station:  %s\n", j.Params.StationName)
	fmt.Fprintf(a.outW, "  priority: %d\n", j.Priority)
	fmt.Fprintf(a.outW, "  fuels:    %d\n", len(j.Fuels))
	fmt.Fprintf(a.outW, "  exports:  %d\n", len(j.Exports))
	for _, d := range j.Exports {
		if d.Temporal.IsRange() {
			fmt.Fprintf(a.outW, "    %-24s %s  %s .. %s\n", d.Statistic, d.OutputPath,
				d.Temporal.Start.Format(time.RFC3339), d.Temporal.End.Format(time.RFC3339))
		} else {
			fmt.Fprintf(a.outW, "    %-24s %s  %s\n", d.Statistic, d.OutputPath,
				d.Temporal.Start.Format(time.RFC3339))
		}
	}
}
