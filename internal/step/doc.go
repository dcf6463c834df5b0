// Package step builds the individual job steps of a playbook.
//
// Every builder returns a new Step value. Steps are never mutated after they
// are built; WithArgs returns a copy. The failure action is always to
// terminate the job flow, so a broken step can never leave later stages
// reading half-written data.
package step
