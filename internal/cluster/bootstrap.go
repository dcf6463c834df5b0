package cluster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/storage"
)

// BootstrapAction runs a script on every node before the cluster starts.
type BootstrapAction struct {
	Name                  string                `json:"name"`
	ScriptBootstrapAction ScriptBootstrapAction `json:"scriptBootstrapAction"`
}

// ScriptBootstrapAction is the script and its arguments.
type ScriptBootstrapAction struct {
	Path string   `json:"path"`
	Args []string `json:"args"`
}

const configureHadoop = "s3n://elasticmapreduce/bootstrap-actions/configure-hadoop"

// Bootstrap scripts of the hosted assets bucket.
const (
	legacyBootstrapScript = "common/emr/snowplow-ami3-bootstrap-0.1.0.sh"
	bootstrapScript       = "common/emr/snowplow-ami4-bootstrap-0.2.0.sh"
)

func newAction(name, path string, args ...string) BootstrapAction {
	if args == nil {
		args = []string{}
	}
	return BootstrapAction{
		Name:                  name,
		ScriptBootstrapAction: ScriptBootstrapAction{Path: path, Args: args},
	}
}

// bootstrapActions lists the user's actions followed by the ones the
// pipeline needs. Legacy clusters reading Thrift get the Hadoop buffer and
// classpath settings as actions; current clusters get them through
// configurations instead.
func bootstrapActions(cfg *config.Config, legacy bool) []BootstrapAction {
	emr := cfg.AWS.EMR
	actions := make([]BootstrapAction, 0, len(emr.Bootstrap)+5)
	for _, a := range emr.Bootstrap {
		actions = append(actions, newAction(a.Name, a.Path, a.Args...))
	}

	if cfg.Collectors.Thrift() && legacy {
		actions = append(actions,
			newAction("Hadoop bootstrap action (buffer size)", configureHadoop,
				"-c", "io.file.buffer.size=65536"),
			newAction("Hadoop bootstrap action (user cp first)", configureHadoop,
				"-m", "mapreduce.user.classpath.first=true"),
		)
	}

	actions = append(actions, amiAction(legacy, emr.Region, *cfg.Enrich.Versions.HadoopEnrich))
	if emr.Software.HBase != nil {
		actions = append(actions, newAction("Bootstrap action (installing HBase)",
			fmt.Sprintf("s3://%s.elasticmapreduce/bootstrap-actions/setup-hbase", emr.Region)))
	}
	if emr.Software.Lingual != nil {
		actions = append(actions, newAction("Bootstrap action (installing Lingual)",
			fmt.Sprintf("s3://files.concurrentinc.com/lingual/%s/lingual-client/install-lingual-client.sh", *emr.Software.Lingual)))
	}
	return actions
}

func amiAction(legacy bool, region, enrichVersion string) BootstrapAction {
	bucket := storage.HostedAssetsBucket(storage.StandardHostedAssets, storage.StandardHostedAssets, region)
	script := bootstrapScript
	if legacy {
		script = legacyBootstrapScript
	}
	return newAction("Bootstrap action (ami bootstrap script)", bucket+script, CommonEnrichVersion(enrichVersion))
}

// CommonEnrichVersion returns the Common Enrich compatibility line the
// bootstrap script prepares the cluster for: "1.5" from Hadoop Enrich 1.5.0
// onwards, "1.0" before that.
func CommonEnrichVersion(enrichVersion string) string {
	parts := strings.SplitN(enrichVersion, ".", 3)
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return "1.0"
	}
	minor := 0
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(strings.TrimFunc(parts[1], func(r rune) bool { return r < '0' || r > '9' }))
	}
	if major > 1 || (major == 1 && minor >= 5) {
		return "1.5"
	}
	return "1.0"
}
