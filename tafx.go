// Package tafx exposes every TA-Lib function as a dataframe expression.
//
// The library is initialized the first time the default registry is used
// and stays ready until Close. Expressions are built with package ta and
// evaluated by package frame.
package tafx

import (
	"github.com/raykavin/tafx/pkg/logger"
	"github.com/raykavin/tafx/pkg/plugin"
	"github.com/raykavin/tafx/pkg/talib"
)

// DefaultLog is the logger of the default registry, configured from the
// TAFX_LOG_* environment variables
var DefaultLog logger.Logger

// Close shuts the default library down. Expressions evaluated afterwards
// fail with TA_LIB_NOT_INITIALIZE.
func Close() error {
	return plugin.Default().Library().Shutdown()
}

// TALibVersion returns the version of the wrapped TA-Lib port
func TALibVersion() string {
	return plugin.Default().Library().Version()
}

// Functions lists every supported function name in group order
func Functions() []string {
	return plugin.Default().Functions()
}

// FunctionGroups maps group names to the functions they hold
func FunctionGroups() map[string][]string {
	return plugin.Default().FunctionGroups()
}

// OutputStructs maps each multi-output function to its field names
func OutputStructs() map[string][]string {
	return plugin.Default().OutputStructs()
}

// Lookup returns the definition of a function
func Lookup(name string) (plugin.Function, error) {
	return plugin.Default().Lookup(name)
}

// Library returns the handle used by the default registry
func Library() *talib.Library {
	return plugin.Default().Library()
}
