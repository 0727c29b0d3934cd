package main

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/neo3d/internal/config"
	"github.com/Faultbox/neo3d/internal/engine/camera"
	"github.com/Faultbox/neo3d/internal/engine/picking"
	"github.com/Faultbox/neo3d/internal/engine/uniform"
	"github.com/Faultbox/neo3d/internal/logger"
	"github.com/Faultbox/neo3d/internal/track"
	"github.com/Faultbox/neo3d/pkg/math"
)

// command is a subcommand flag set carrying the common config flags.
type command struct {
	fs     *flag.FlagSet
	common *config.Flags
	args   []string // positional arguments
}

func newCommand(name string) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &command{fs: fs, common: config.RegisterFlags(fs)}
}

// parse parses args, loads the config and sets up logging. Flags may
// follow positional arguments; a "--" ends flag parsing.
func (c *command) parse(args []string) (*config.Config, error) {
	for {
		if err := c.fs.Parse(args); err != nil {
			return nil, err
		}
		rest := c.fs.Args()
		if len(rest) == 0 {
			break
		}
		if len(args)-len(rest) > 0 && args[len(args)-len(rest)-1] == "--" {
			c.args = append(c.args, rest...)
			break
		}
		c.args = append(c.args, rest[0])
		args = rest[1:]
	}
	cfg, err := config.Load(c.common)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

func cmdDecompose(args []string, w io.Writer) error {
	c := newCommand("decompose")
	values := c.fs.String("m", "", "Matrix values in column-major order (4, 9 or 16)")
	as2D := c.fs.Bool("2d", false, "Treat a 3x3 matrix as a 2D transform")
	cfg, err := c.parse(args)
	if err != nil {
		return err
	}

	m, err := parseMatrix(*values)
	if err != nil {
		return err
	}
	logger.Debug("decompose", zap.Int("size", len(m)), zap.Bool("2d", *as2D))
	return emit(w, cfg, decompose(m, *as2D))
}

func decompose(m []float32, as2D bool) report {
	r := report{{"matrix", newMatrix(m)}}

	switch len(m) {
	case 4:
		var m2 math.Mat2
		var scale math.Vec2
		m2.SetFromSlice(m)
		angle := m2.RSTransfo(&scale)
		r = r.add("determinant", m2.Determinant()).
			add("angle", angle*math.Rad2Deg).
			add("scale", scale[:])
	case 9:
		var m3 math.Mat3
		m3.SetFromSlice(m)
		r = r.add("determinant", m3.Determinant())
		if as2D {
			var trans, scale math.Vec2
			angle := m3.TRSTransfo2D(&trans, &scale)
			return r.add("translation", trans[:]).
				add("angle", angle*math.Rad2Deg).
				add("scale", scale[:])
		}
		var q math.Quat
		var scale math.Vec3
		m3.RSTransfo3D(&q, &scale)
		r = addRotation(r, &q).add("scale", scale[:])
	case 16:
		var m4 math.Mat4
		var trans, scale math.Vec3
		var q math.Quat
		m4.SetFromSlice(m)
		m4.TRSTransfo(&trans, &q, &scale)
		r = r.add("determinant", m4.Determinant()).add("translation", trans[:])
		r = addRotation(r, &q).add("scale", scale[:])
	}
	return r
}

func addRotation(r report, q *math.Quat) report {
	var axis math.Vec3
	angle := q.AxisAndAngle(&axis)
	return r.add("rotation", q[:]).
		add("axis", axis[:]).
		add("angle", angle*math.Rad2Deg)
}

func cmdInvert(args []string, w io.Writer) error {
	c := newCommand("invert")
	values := c.fs.String("m", "", "Matrix values in column-major order (4, 9 or 16)")
	cfg, err := c.parse(args)
	if err != nil {
		return err
	}

	m, err := parseMatrix(*values)
	if err != nil {
		return err
	}
	r := invert(m)
	if singular, _ := r.get("singular").(bool); singular {
		logger.Warn("matrix is singular", zap.Float32s("matrix", m))
	}
	return emit(w, cfg, r)
}

func invert(m []float32) report {
	inv := make([]float32, len(m))
	var det float32
	switch len(m) {
	case 4:
		det = math.Mat2Determinant(m)
		math.Mat2Invert(inv, m)
	case 9:
		det = math.Mat3Determinant(m)
		math.Mat3Invert(inv, m)
	case 16:
		det = math.Mat4Determinant(m)
		math.Mat4Invert(inv, m)
	}
	return report{
		{"matrix", newMatrix(m)},
		{"determinant", det},
		{"singular", math.Abs(det) < math.Epsilon},
		{"inverse", newMatrix(inv)},
	}
}

// Uniform locations used when recording the view matrices.
const (
	locView int32 = iota
	locProjection
	locViewProjection
)

func cmdView(args []string, w io.Writer) error {
	c := newCommand("view")
	width := c.fs.Int("width", 0, "Viewport width; sets the aspect ratio with -height")
	height := c.fs.Int("height", 0, "Viewport height")
	uniforms := c.fs.Bool("uniforms", false, "List the uniform uploads a renderer would make")
	pick := c.fs.String("pick", "", "Cast a ray through pixel x,y (needs -width and -height)")
	cfg, err := c.parse(args)
	if err != nil {
		return err
	}

	viewer, err := camera.FromConfig(cfg.Camera)
	if err != nil {
		return err
	}
	proj := camera.ProjectionFromConfig(cfg.Camera)
	if *width > 0 && *height > 0 {
		proj.SetViewport(*width, *height)
	}

	var view, projection, viewProj math.Mat4
	viewer.ViewMatrix(&view)
	proj.Matrix(&projection)
	viewProj.Multiply(&projection, &view)

	r := report{{"mode", cfg.Camera.Mode}}
	switch v := viewer.(type) {
	case *camera.OrbitCamera:
		eye := v.Position()
		r = r.add("eye", eye[:]).add("target", v.Center[:])
	case *camera.FPSCamera:
		forward := v.Forward()
		r = r.add("eye", v.Eye[:]).add("forward", forward[:])
	}
	r = r.add("view", newMatrix(view[:])).
		add("projection", newMatrix(projection[:])).
		add("view_projection", newMatrix(viewProj[:]))

	if *pick != "" {
		if *width <= 0 || *height <= 0 {
			return fmt.Errorf("-pick needs -width and -height")
		}
		x, y, err := parsePoint(*pick)
		if err != nil {
			return err
		}
		r = r.add("ray", pickReport(x, y, float32(*width), float32(*height), &viewProj))
	}

	if *uniforms {
		var rec uniform.Recorder
		uniform.SetMat4(&rec, locView, &view)
		uniform.SetMat4(&rec, locProjection, &projection)
		uniform.SetMat4(&rec, locViewProjection, &viewProj)
		r = r.add("uniforms", uploads(rec.Calls))
	}
	return emit(w, cfg, r)
}

func pickReport(x, y, width, height float32, viewProj *math.Mat4) report {
	var inv math.Mat4
	inv.Invert(viewProj)
	ray := picking.ScreenToRay(x, y, width, height, &inv)

	r := report{
		{"origin", ray.Origin[:]},
		{"direction", ray.Direction[:]},
	}
	if gx, gz, ok := ray.IntersectPlaneY(0); ok {
		r = r.add("ground", []float32{gx, 0, gz})
	}
	logger.Debug("pick", zap.Float32s("origin", ray.Origin[:]), zap.Float32s("direction", ray.Direction[:]))
	return r
}

func uploads(calls []uniform.Call) []report {
	out := make([]report, 0, len(calls))
	for _, c := range calls {
		out = append(out, report{
			{"location", int(c.Location)},
			{"type", c.Kind},
			{"count", int(c.Count)},
			{"floats", len(c.Values)},
		})
	}
	return out
}

func cmdTrack(args []string, w io.Writer) error {
	c := newCommand("track")
	file := c.fs.String("file", "", "Track file (.yaml, .yml or .toml)")
	samples := c.fs.Int("samples", 0, "Number of samples (0 = config track.samples)")
	loop := c.fs.Bool("loop", false, "Wrap sample times instead of clamping")
	matrices := c.fs.Bool("matrices", false, "Print the sampled world matrices")
	uniforms := c.fs.Bool("uniforms", false, "List the uniform upload of the sampled matrices")
	cfg, err := c.parse(args)
	if err != nil {
		return err
	}

	path := *file
	if path == "" && len(c.args) > 0 {
		path = c.args[0]
	}
	if path == "" {
		return fmt.Errorf("no track file given")
	}
	n := *samples
	if n == 0 {
		n = cfg.Track.Samples
	}
	if n < 1 {
		return fmt.Errorf("sample count %d: need at least 1", n)
	}

	t, err := track.Load(path)
	if err != nil {
		return err
	}
	compiled, err := t.Compile()
	if err != nil {
		return err
	}
	compiled.Loop = cfg.Track.Loop || *loop

	buf := math.NewMat4Buffer(n)
	if err := compiled.SampleInto(buf, n); err != nil {
		return err
	}

	start, end := compiled.Range()
	r := report{
		{"name", compiled.Name},
		{"keys", compiled.Len()},
		{"range", []float32{start, end}},
		{"samples", samplesReport(compiled.Times(n), buf, *matrices)},
	}

	if *uniforms {
		var rec uniform.Recorder
		if err := uniform.SetMat4Array(&rec, 0, buf); err != nil {
			return err
		}
		r = r.add("uniforms", uploads(rec.Calls))
	}
	return emit(w, cfg, r)
}

func samplesReport(times, buf []float32, withMatrix bool) []report {
	out := make([]report, len(times))
	for k, t := range times {
		m := buf[k*16 : k*16+16]
		var trans, scale, axis math.Vec3
		var q math.Quat
		math.Mat4TRSTransfo(trans[:], q[:], scale[:], m)
		angle := q.AxisAndAngle(&axis)

		s := report{
			{"time", t},
			{"translation", trans[:]},
			{"axis", axis[:]},
			{"angle", angle * math.Rad2Deg},
			{"scale", scale[:]},
		}
		if withMatrix {
			s = s.add("matrix", newMatrix(m))
		}
		out[k] = s
	}
	return out
}

func cmdConfig(args []string, w io.Writer) error {
	c := newCommand("config")
	asTOML := c.fs.Bool("toml", false, "Print as TOML instead of YAML")
	save := c.fs.String("save", "", "Write the config to this path (\"-\" for the user config dir)")
	cfg, err := c.parse(args)
	if err != nil {
		return err
	}

	switch *save {
	case "":
	case "-":
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return nil
	default:
		if err := cfg.SaveTo(*save); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", *save))
		return nil
	}

	data, err := cfg.Marshal(*asTOML)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
