package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pava/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
