// Package testutil holds fixtures shared by the package tests: a complete
// sample configuration in both model and HCL form, the Avro schemas of the
// two artifacts, and helpers for laying out files on disk.
package testutil
