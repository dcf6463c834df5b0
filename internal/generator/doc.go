// Package generator owns the sequence shared by every artifact: fetch the
// Avro schema, build the datum, validate it, wrap it in a self-describing
// envelope and write it to disk.
//
// Concrete artifacts (the EMR cluster descriptor and the job playbook)
// implement Generator and only decide their schema name and datum.
package generator
