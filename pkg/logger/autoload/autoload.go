// Package autoload initializes the global zerolog logger from the
// environment as an import side effect. Import it blank from main.
package autoload

import (
	configx "github.com/pumpernickelhq/bakery-assistant/pkg/config"
	logx "github.com/pumpernickelhq/bakery-assistant/pkg/logger"
)

func init() {
	conf := configx.MustNew[logx.Config]("LOG")
	logx.Init(*conf)
}
