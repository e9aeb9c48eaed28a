package app

import (
	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/modules/env_vars"
	"github.com/vk/hclimport/modules/runtime"
)

// coreModules is the definitive list of all platform modules that are
// compiled into the hclimport binary.
var coreModules = []platform.Module{
	&env_vars.Module{},
	&runtime.Module{},
}
