package testutil

// PackageTree is a container with an exports list, a submodule that imports
// from its parent and a utility leaf.
var PackageTree = map[string]string{
	"test_package/_init.hcl": `
print {
  message = "initializing test_package"
}

package_version  = "1.0.0"
package_function = "package level function"
exports          = ["package_version", "package_function"]
`,
	"test_package/submodule.hcl": `
print {
  message = "loading test_package.submodule"
}

submodule_data = "submodule data"

import "" {
  level  = 1
  select = ["package_function"]
}

print {
  message = "submodule sees: ${package_function}"
}
`,
	"test_package/utils.hcl": `
print {
  message = "loading test_package.utils"
}

utils_version = "1.0.0"
utils_data = {
  type    = "utility"
  package = "test_package"
}
`,
}

// NestedTree is the a.b.c chain: every level prints when it initializes and
// imports from the level above it.
var NestedTree = map[string]string{
	"test_a/_init.hcl": `
print {
  message = "initializing test_a"
}

package_a_version = "1.0.0"
function_in_a     = "function from test_a"
`,
	"test_a/b/_init.hcl": `
print {
  message = "initializing test_a.b"
}

package_b_version = "2.0.0"
function_in_b     = "function from test_a.b"

import "" {
  level  = 2
  select = ["function_in_a"]
}
`,
	"test_a/b/c.hcl": `
print {
  message = "loading test_a.b.c"
}

module_c_version = "3.0.0"

import "" {
  level  = 1
  select = ["function_in_b"]
}

calculation_result = 10 + 20 + 30
`,
}

// SimpleUnit is a standalone top-level leaf.
var SimpleUnit = map[string]string{
	"test_simple_module.hcl": `
print {
  message = "loading test_simple_module"
}

module_name    = "test_simple_module"
module_version = "1.0"
result         = 10 + 20
`,
}

// MergeTrees combines fixture trees into one map for WriteTree.
func MergeTrees(trees ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, tree := range trees {
		for k, v := range tree {
			out[k] = v
		}
	}
	return out
}
