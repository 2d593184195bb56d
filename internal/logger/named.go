package logger

import "fmt"

// Named tags every line with a logger name. Named loggers share the level and
// sinks of the package.
type Named struct {
	name string
}

var (
	appLogger    = &Named{name: AppName}
	pluginLogger = &Named{name: PluginName}
)

// App returns the application logger.
func App() *Named { return appLogger }

// Plugin returns the logger reserved for plug-ins. Its lines are tagged
// with PluginName.
func Plugin() *Named { return pluginLogger }

// Name returns the logger name.
func (n *Named) Name() string { return n.name }

func (n *Named) Debug(format string, args ...interface{}) {
	std.write(LevelDebug, n.name, fmt.Sprintf(format, args...), nil)
}

func (n *Named) Info(format string, args ...interface{}) {
	std.write(LevelInfo, n.name, fmt.Sprintf(format, args...), nil)
}

func (n *Named) Warn(format string, args ...interface{}) {
	std.write(LevelWarn, n.name, fmt.Sprintf(format, args...), nil)
}

func (n *Named) Error(format string, args ...interface{}) {
	std.write(LevelError, n.name, fmt.Sprintf(format, args...), nil)
}

func (n *Named) DebugFields(msg string, fields map[string]interface{}) {
	std.write(LevelDebug, n.name, msg, fields)
}

func (n *Named) InfoFields(msg string, fields map[string]interface{}) {
	std.write(LevelInfo, n.name, msg, fields)
}

func (n *Named) WarnFields(msg string, fields map[string]interface{}) {
	std.write(LevelWarn, n.name, msg, fields)
}

func (n *Named) ErrorFields(msg string, fields map[string]interface{}) {
	std.write(LevelError, n.name, msg, fields)
}

// LogError logs err after a context message. A nil err is ignored.
func (n *Named) LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.write(LevelError, n.name, fmt.Sprintf("%s: %v", msg, err), nil)
}
