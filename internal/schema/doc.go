// Package schema fetches Avro schemas from an Iglu-style registry, parses
// them and validates generated datums against them.
//
// A datum is validated in its JSON form, the same shape that is finally
// written inside the artifact envelope. Unions are therefore matched
// structurally: a value is accepted when any branch accepts it.
package schema
