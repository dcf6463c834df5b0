package generator

import "slices"

// Stage names accepted in a skip list.
const (
	SkipEnrich        = "enrich"
	SkipShred         = "shred"
	SkipS3DistCp      = "s3distcp"
	SkipElasticsearch = "elasticsearch"
)

// Toggles selects the pipeline stages a playbook contains.
type Toggles struct {
	Enrich          bool
	Shred           bool
	DistributedCopy bool
	Indexing        bool
}

// AllStages enables every stage.
func AllStages() Toggles {
	return Toggles{Enrich: true, Shred: true, DistributedCopy: true, Indexing: true}
}

// TogglesFromSkip enables every stage not named in skip. Names the playbook
// does not know about are ignored.
func TogglesFromSkip(skip []string) Toggles {
	return Toggles{
		Enrich:          !slices.Contains(skip, SkipEnrich),
		Shred:           !slices.Contains(skip, SkipShred),
		DistributedCopy: !slices.Contains(skip, SkipS3DistCp),
		Indexing:        !slices.Contains(skip, SkipElasticsearch),
	}
}

// Options carries everything beside the configuration that a datum may
// depend on.
type Options struct {
	Debug       bool
	Toggles     Toggles
	Resolver    string
	Enrichments []string
}
