package core

// InputObject is a read-only wrapper around the named fields supplied for a
// single run. It is constructed once per invocation; the backing map is
// copied so later caller mutations cannot leak into the run.
type InputObject struct {
	data map[string]any
}

// NewInputObject wraps the supplied fields in a read-only InputObject.
func NewInputObject(fields map[string]any) *InputObject {
	data := make(map[string]any, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	return &InputObject{data: data}
}

// GetData returns the value for key and whether it was present.
func (o *InputObject) GetData(key string) (any, bool) {
	v, ok := o.data[key]
	return v, ok
}

// GetString returns the string value for key, or "" when absent or not a string.
func (o *InputObject) GetString(key string) string {
	if s, ok := o.data[key].(string); ok {
		return s
	}
	return ""
}

// GetStringSlice returns the string slice value for key. Values decoded from
// JSON arrive as []any and are converted element-wise; non-string elements
// and absent keys yield an empty slice.
func (o *InputObject) GetStringSlice(key string) []string {
	switch v := o.data[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// Keys returns the field names present in the input.
func (o *InputObject) Keys() []string {
	keys := make([]string, 0, len(o.data))
	for k := range o.data {
		keys = append(keys, k)
	}
	return keys
}

// Data returns a defensive copy of the backing field map.
func (o *InputObject) Data() map[string]any {
	data := make(map[string]any, len(o.data))
	for k, v := range o.data {
		data[k] = v
	}
	return data
}
