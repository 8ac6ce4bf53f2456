package services

import "context"

type contextKey string

const (
	jobIDKey  contextKey = "job_id"
	pluginKey contextKey = "plugin"
)

// WithJobID annotates context with the flow job correlation identifier.
func WithJobID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, jobIDKey, id)
}

// JobIDFromContext extracts the job identifier if present.
func JobIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(jobIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithPlugin annotates context with the running plugin's identifier.
func WithPlugin(ctx context.Context, plugin string) context.Context {
	if plugin == "" {
		return ctx
	}
	return context.WithValue(ctx, pluginKey, plugin)
}

// PluginFromContext returns the plugin identifier if present.
func PluginFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(pluginKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
