package uniform

import "unsafe"

// Call is one recorded upload.
type Call struct {
	Kind     string // GLSL type of one element, e.g. "mat4"
	Location int32
	Count    int32
	Values   []float32
}

// Recorder is an Uploader that keeps a copy of every upload instead of
// talking to a GL context. The command line tool uses it to print what a
// renderer would receive.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) record(kind string, size int, location, count int32, value *float32) {
	src := unsafe.Slice(value, int(count)*size)
	r.Calls = append(r.Calls, Call{
		Kind:     kind,
		Location: location,
		Count:    count,
		Values:   append([]float32(nil), src...),
	})
}

func (r *Recorder) UniformMatrix4fv(location, count int32, value *float32) {
	r.record("mat4", 16, location, count, value)
}

func (r *Recorder) UniformMatrix3fv(location, count int32, value *float32) {
	r.record("mat3", 9, location, count, value)
}

func (r *Recorder) UniformMatrix2fv(location, count int32, value *float32) {
	r.record("mat2", 4, location, count, value)
}

func (r *Recorder) Uniform4fv(location, count int32, value *float32) {
	r.record("vec4", 4, location, count, value)
}

func (r *Recorder) Uniform3fv(location, count int32, value *float32) {
	r.record("vec3", 3, location, count, value)
}

func (r *Recorder) Uniform2fv(location, count int32, value *float32) {
	r.record("vec2", 2, location, count, value)
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
