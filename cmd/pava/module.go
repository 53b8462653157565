package main

import (
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/pava/configs"
	"github.com/reusee/pava/debugs"
	"github.com/reusee/pava/logs"
	"github.com/reusee/pava/pavalang"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}

func (Module) Functions() pavalang.Functions {
	return pavalang.NewFunctions(
		pavalang.Print{Output: os.Stdout},
	)
}
