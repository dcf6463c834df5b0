// Package playbook compiles the ordered list of EMR job steps that moves a
// run's data through enrichment, shredding and Elasticsearch indexing.
//
// The compiler reads the clock exactly once per playbook. The resulting Run
// scopes every output path and stamps the enrich job, and is passed
// explicitly to each stage assembler so that the assemblers themselves are
// pure functions of their inputs.
package playbook
