// Package loader holds the execution strategies that initialize a unit
// handle once the engine has registered it.
//
// HCL unit bodies are executed statement by statement in source order:
//
//	greeting = "hello"
//
//	import "pkg.util" {
//	  as = "util"
//	}
//
//	print {
//	  message = "${greeting} from ${self.name}"
//	}
//
// Data units (YAML, TOML, JSON) contribute their top-level keys as data
// attributes. Namespace containers run nothing.
package loader
