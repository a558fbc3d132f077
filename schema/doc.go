// Package schema is a language neutral representation of type alias
// declarations as tagged records.
//
// A schema is produced from annotation source by [FromTypes], stored as
// JSON or YAML with [Marshal], [MarshalYAML] and [Unmarshal], and turned
// into runtime types by [Build] or into Go source by package codegen.
//
//	[
//	  {
//	    "tag": "TypeAlias",
//	    "name": "A",
//	    "type": {
//	      "tag": "MaybeType",
//	      "type": {"tag": "IrreducibleType", "name": "string"}
//	    }
//	  }
//	]
package schema
