package core

// OutputObject is a read-only wrapper around the parsed result of a run. By
// the time an OutputObject is constructed the backing map has passed the
// output check, so it contains at least the keys the agent declares.
type OutputObject struct {
	data map[string]any
}

// NewOutputObject wraps the result fields in a read-only OutputObject.
func NewOutputObject(fields map[string]any) *OutputObject {
	data := make(map[string]any, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	return &OutputObject{data: data}
}

// GetData returns the value for key and whether it was present.
func (o *OutputObject) GetData(key string) (any, bool) {
	v, ok := o.data[key]
	return v, ok
}

// GetString returns the string value for key, or "" when absent or not a string.
func (o *OutputObject) GetString(key string) string {
	if s, ok := o.data[key].(string); ok {
		return s
	}
	return ""
}

// Keys returns the field names present in the output.
func (o *OutputObject) Keys() []string {
	keys := make([]string, 0, len(o.data))
	for k := range o.data {
		keys = append(keys, k)
	}
	return keys
}

// Data returns a defensive copy of the backing field map.
func (o *OutputObject) Data() map[string]any {
	data := make(map[string]any, len(o.data))
	for k, v := range o.data {
		data[k] = v
	}
	return data
}
