package track

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/neo3d/internal/logger"
	"github.com/Faultbox/neo3d/pkg/math"
)

// Compiled is a track ready for sampling. Keys are stored in flat buffers:
// positions and scales as Vec3 runs, rotations and their squad intermediates
// as Quat runs.
type Compiled struct {
	Name string
	// Loop wraps sample times into the track range instead of clamping.
	Loop bool

	times     []float32
	positions []float32
	scales    []float32
	rotations []float32
	inner     []float32
}

// Compile converts the keys to unit rotations and precomputes the squad
// intermediates. Consecutive rotations are flipped into the same hemisphere
// so interpolation takes the short way around.
func (t *Track) Compile() (*Compiled, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	n := len(t.Keys)
	c := &Compiled{
		Name:      t.Name,
		times:     make([]float32, n),
		positions: math.NewVec3Buffer(n),
		scales:    math.NewVec3Buffer(n),
		rotations: math.NewQuatBuffer(n),
		inner:     math.NewQuatBuffer(n),
	}

	for i, k := range t.Keys {
		c.times[i] = k.Time
		copy(c.positions[i*3:], k.Position[:])
		copy(c.scales[i*3:], k.Scale[:])

		q := c.rotations[i*4:]
		math.QuatSetFromAxisAndAngle(q, k.Axis[:], k.Angle*math.Deg2Rad)
		if i > 0 && math.QuatDot(c.rotations[(i-1)*4:], q) < 0 {
			math.QuatNegate(q, q)
		}
	}

	for i := 0; i < n; i++ {
		prev, next := max(i-1, 0), min(i+1, n-1)
		math.QuatSquadIntermediate(c.inner[i*4:],
			c.rotations[prev*4:], c.rotations[i*4:], c.rotations[next*4:])
	}

	logger.Debug("track compiled",
		zap.String("name", c.Name),
		zap.Int("keys", n),
		zap.Float32("start", c.times[0]),
		zap.Float32("end", c.times[n-1]))
	return c, nil
}

// Len returns the number of keys.
func (c *Compiled) Len() int { return len(c.times) }

// Range returns the times of the first and last keys.
func (c *Compiled) Range() (start, end float32) {
	return c.times[0], c.times[len(c.times)-1]
}

// segment returns the key index starting the segment containing t and the
// local parameter in [0, 1].
func (c *Compiled) segment(t float32) (int, float32) {
	start, end := c.Range()
	if c.Loop && (t < start || t > end) {
		d := end - start
		t -= d * math.Floor((t-start)/d)
	}

	last := len(c.times) - 1
	switch {
	case t <= start:
		return 0, 0
	case t >= end:
		return last - 1, 1
	}
	i := sort.Search(len(c.times), func(i int) bool { return c.times[i] > t }) - 1
	t0, t1 := c.times[i], c.times[i+1]
	return i, (t - t0) / (t1 - t0)
}

// Sample writes the world matrix at time t to out. Outside the key range
// the first or last pose is held, or the time wraps when Loop is set.
func (c *Compiled) Sample(t float32, out *math.Mat4) *math.Mat4 {
	sampleInto(c, t, out[:])
	return out
}

func sampleInto(c *Compiled, t float32, out []float32) {
	i, u := c.segment(t)
	last := len(c.times) - 1
	prev, next := max(i-1, 0), min(i+2, last)

	var pos, scale [3]float32
	var rot [4]float32
	math.Vec3CatmullRom(pos[:],
		c.positions[prev*3:], c.positions[i*3:], u, c.positions[(i+1)*3:], c.positions[next*3:])
	math.Vec3Linear(scale[:], c.scales[i*3:], u, c.scales[(i+1)*3:])
	math.QuatSquad(rot[:],
		c.inner[i*4:], c.rotations[i*4:], u, c.rotations[(i+1)*4:], c.inner[(i+1)*4:])
	math.QuatNormalize(rot[:], rot[:])

	math.Mat4SetFromTRSTransfo(out, pos[:], rot[:], scale[:])
}

// SampleInto fills buf with n world matrices taken at evenly spaced times
// from the first to the last key. buf must hold at least 16*n floats.
func (c *Compiled) SampleInto(buf []float32, n int) error {
	if n < 1 {
		return fmt.Errorf("sample count %d: need at least 1", n)
	}
	if len(buf) < 16*n {
		return fmt.Errorf("buffer of %d floats too small for %d matrices", len(buf), n)
	}

	for k, t := range c.Times(n) {
		sampleInto(c, t, buf[k*16:])
	}
	return nil
}

// Times returns n evenly spaced sample times matching SampleInto, or nil
// when n < 1.
func (c *Compiled) Times(n int) []float32 {
	if n < 1 {
		return nil
	}
	start, end := c.Range()
	times := make([]float32, n)
	for k := range times {
		times[k] = start
		if n > 1 {
			times[k] += float32(k) * (end - start) / float32(n-1)
		}
	}
	if n > 1 {
		times[n-1] = end
	}
	return times
}
