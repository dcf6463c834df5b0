package hcl

import (
	"context"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
)

// translateConfig converts the decoded HCL schema into the agnostic model.
// Absent optional blocks translate to their zero value.
func (l *Loader) translateConfig(ctx context.Context, r *fileRoot) *config.Config {
	cfg := &config.Config{
		AWS:        l.translateAWS(ctx, &r.AWS),
		Collectors: config.Collectors{Format: r.Collectors.Format},
		Enrich:     l.translateEnrich(&r.Enrich),
	}
	if r.Storage != nil {
		cfg.Storage.Targets = l.translateTargets(ctx, r.Storage.Targets)
	}
	if r.Monitoring != nil {
		cfg.Monitoring.Tags = r.Monitoring.Tags
	}
	return cfg
}

func (l *Loader) translateAWS(ctx context.Context, a *awsBlock) config.AWS {
	return config.AWS{
		AccessKeyID:     a.AccessKeyID,
		SecretAccessKey: a.SecretAccessKey,
		S3:              config.S3{Buckets: l.translateBuckets(&a.S3.Buckets)},
		EMR:             l.translateEMR(ctx, &a.EMR),
	}
}

func (l *Loader) translateBuckets(b *bucketsBlock) config.Buckets {
	out := config.Buckets{
		Assets:   b.Assets,
		Log:      b.Log,
		Enriched: translateOutput(b.Enriched),
		Shredded: translateOutput(b.Shredded),
	}
	if b.Raw != nil {
		out.Raw = config.RawBuckets{
			In:         b.Raw.In,
			Processing: b.Raw.Processing,
			Archive:    b.Raw.Archive,
		}
	}
	return out
}

func translateOutput(o *outputBlock) config.OutputBuckets {
	if o == nil {
		return config.OutputBuckets{}
	}
	return config.OutputBuckets{
		Good:    o.Good,
		Bad:     o.Bad,
		Errors:  o.Errors,
		Archive: o.Archive,
	}
}

func (l *Loader) translateEMR(ctx context.Context, e *emrBlock) config.EMR {
	out := config.EMR{
		AMIVersion:  e.AMIVersion,
		Region:      e.Region,
		JobflowRole: e.JobflowRole,
		ServiceRole: e.ServiceRole,
		Placement:   e.Placement,
		EC2SubnetID: e.EC2SubnetID,
		EC2KeyName:  e.EC2KeyName,
		Jobflow: config.Jobflow{
			MasterInstanceType: e.Jobflow.MasterInstanceType,
			CoreInstanceCount:  e.Jobflow.CoreInstanceCount,
			CoreInstanceType:   e.Jobflow.CoreInstanceType,
			TaskInstanceCount:  e.Jobflow.TaskInstanceCount,
			TaskInstanceType:   e.Jobflow.TaskInstanceType,
			TaskInstanceBid:    e.Jobflow.TaskInstanceBid,
		},
	}
	if e.Software != nil {
		out.Software = config.Software{HBase: e.Software.HBase, Lingual: e.Software.Lingual}
	}
	for _, b := range e.Bootstrap {
		ctxlog.FromContext(ctx).Debug("Translating bootstrap action.", "name", b.Name)
		out.Bootstrap = append(out.Bootstrap, config.BootstrapAction{
			Name: b.Name,
			Path: b.Path,
			Args: b.Args,
		})
	}
	return out
}

func (l *Loader) translateEnrich(e *enrichBlock) config.Enrich {
	out := config.Enrich{
		JobName:                   e.JobName,
		ContinueOnUnexpectedError: e.ContinueOnUnexpectedError,
		OutputCompression:         e.OutputCompression,
	}
	if e.Versions != nil {
		out.Versions = config.Versions{
			HadoopEnrich:        e.Versions.HadoopEnrich,
			HadoopShred:         e.Versions.HadoopShred,
			HadoopElasticsearch: e.Versions.HadoopElasticsearch,
		}
	}
	return out
}

// translateTargets keeps Sources as decoded: nil when the attribute is
// absent, non-nil (possibly empty) when set.
func (l *Loader) translateTargets(ctx context.Context, ts []*targetBlock) []config.Target {
	out := make([]config.Target, 0, len(ts))
	for _, t := range ts {
		ctxlog.FromContext(ctx).Debug("Translating storage target.", "name", t.Name, "type", t.Type)
		out = append(out, config.Target{
			Name:           t.Name,
			Type:           t.Type,
			Host:           t.Host,
			Port:           t.Port,
			Database:       t.Database,
			Table:          t.Table,
			Sources:        t.Sources,
			ESNodesWANOnly: t.ESNodesWANOnly,
		})
	}
	return out
}
