package bootstrap

import "fmt"

// ConfigurationError reports a startup configuration that cannot produce a
// scene, such as a container with zero extent. It is not retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bootstrap: configuration: %s", e.Reason)
}
