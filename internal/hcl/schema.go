package hcl

// fileRoot is the top-level structure of a configuration file.
type fileRoot struct {
	AWS        awsBlock         `hcl:"aws,block"`
	Collectors collectorsBlock  `hcl:"collectors,block"`
	Enrich     enrichBlock      `hcl:"enrich,block"`
	Storage    *storageBlock    `hcl:"storage,block"`
	Monitoring *monitoringBlock `hcl:"monitoring,block"`
}

type awsBlock struct {
	AccessKeyID     string   `hcl:"access_key_id,optional"`
	SecretAccessKey string   `hcl:"secret_access_key,optional"`
	S3              s3Block  `hcl:"s3,block"`
	EMR             emrBlock `hcl:"emr,block"`
}

type s3Block struct {
	Buckets bucketsBlock `hcl:"buckets,block"`
}

type bucketsBlock struct {
	Assets   string       `hcl:"assets,optional"`
	Log      string       `hcl:"log,optional"`
	Raw      *rawBlock    `hcl:"raw,block"`
	Enriched *outputBlock `hcl:"enriched,block"`
	Shredded *outputBlock `hcl:"shredded,block"`
}

type rawBlock struct {
	In         []string `hcl:"in,optional"`
	Processing *string  `hcl:"processing,optional"`
	Archive    *string  `hcl:"archive,optional"`
}

type outputBlock struct {
	Good    *string `hcl:"good,optional"`
	Bad     *string `hcl:"bad,optional"`
	Errors  *string `hcl:"errors,optional"`
	Archive *string `hcl:"archive,optional"`
}

type emrBlock struct {
	AMIVersion  string                  `hcl:"ami_version,optional"`
	Region      string                  `hcl:"region,optional"`
	JobflowRole string                  `hcl:"jobflow_role,optional"`
	ServiceRole string                  `hcl:"service_role,optional"`
	Placement   *string                 `hcl:"placement,optional"`
	EC2SubnetID *string                 `hcl:"ec2_subnet_id,optional"`
	EC2KeyName  string                  `hcl:"ec2_key_name,optional"`
	Bootstrap   []*bootstrapActionBlock `hcl:"bootstrap_action,block"`
	Software    *softwareBlock          `hcl:"software,block"`
	Jobflow     jobflowBlock            `hcl:"jobflow,block"`
}

type bootstrapActionBlock struct {
	Name string   `hcl:"name,label"`
	Path string   `hcl:"path"`
	Args []string `hcl:"args,optional"`
}

type softwareBlock struct {
	HBase   *string `hcl:"hbase,optional"`
	Lingual *string `hcl:"lingual,optional"`
}

type jobflowBlock struct {
	MasterInstanceType string  `hcl:"master_instance_type,optional"`
	CoreInstanceCount  int     `hcl:"core_instance_count,optional"`
	CoreInstanceType   string  `hcl:"core_instance_type,optional"`
	TaskInstanceCount  int     `hcl:"task_instance_count,optional"`
	TaskInstanceType   string  `hcl:"task_instance_type,optional"`
	TaskInstanceBid    float64 `hcl:"task_instance_bid,optional"`
}

type collectorsBlock struct {
	Format string `hcl:"format,optional"`
}

type enrichBlock struct {
	JobName                   string         `hcl:"job_name,optional"`
	Versions                  *versionsBlock `hcl:"versions,block"`
	ContinueOnUnexpectedError bool           `hcl:"continue_on_unexpected_error,optional"`
	OutputCompression         *string        `hcl:"output_compression,optional"`
}

type versionsBlock struct {
	HadoopEnrich        *string `hcl:"hadoop_enrich,optional"`
	HadoopShred         *string `hcl:"hadoop_shred,optional"`
	HadoopElasticsearch *string `hcl:"hadoop_elasticsearch,optional"`
}

type storageBlock struct {
	Targets []*targetBlock `hcl:"target,block"`
}

type targetBlock struct {
	Name           string   `hcl:"name,label"`
	Type           string   `hcl:"type"`
	Host           *string  `hcl:"host,optional"`
	Port           *int     `hcl:"port,optional"`
	Database       *string  `hcl:"database,optional"`
	Table          *string  `hcl:"table,optional"`
	Sources        []string `hcl:"sources,optional"`
	ESNodesWANOnly bool     `hcl:"es_nodes_wan_only,optional"`
}

type monitoringBlock struct {
	Tags map[string]string `hcl:"tags,optional"`
}
