package termart

// settings holds the configuration shared by all renderers. Each renderer
// reads only the fields that concern it.
type settings struct {
	palette     *Palette
	color       ColorTag
	connector   ColorTag
	colorMethod ColorDistanceMethod
	ramp        string
	corrected   bool
	colorized   bool
	leadIn      bool
}

// Option is a functional option for configuring a renderer.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		palette:     DefaultPalette(),
		color:       NoColor,
		connector:   DarkGrey,
		colorMethod: RGBMethod{},
		ramp:        DefaultRamp,
		leadIn:      true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithPalette replaces the default 16-color palette.
func WithPalette(p *Palette) Option {
	return func(s *settings) {
		if p != nil {
			s.palette = p
		}
	}
}

// WithColor sets the primary color of chart glyphs: axes, bars, points
// and labels.
func WithColor(tag ColorTag) Option {
	return func(s *settings) {
		s.color = tag
	}
}

// WithConnectorColor sets the color of the segments joining line graph
// points. Defaults to DarkGrey.
func WithConnectorColor(tag ColorTag) Option {
	return func(s *settings) {
		s.connector = tag
	}
}

// WithColorMethod sets the color distance used by the image rasterizer.
func WithColorMethod(method ColorDistanceMethod) Option {
	return func(s *settings) {
		if method != nil {
			s.colorMethod = method
		}
	}
}

// WithRamp replaces the luminance glyph ramp, ordered sparse to dense.
func WithRamp(ramp string) Option {
	return func(s *settings) {
		if ramp != "" {
			s.ramp = ramp
		}
	}
}

// WithCorrectedLuminance drops the one position luminance bias.
func WithCorrectedLuminance() Option {
	return func(s *settings) {
		s.corrected = true
	}
}

// WithColorized enables palette colors in image output.
func WithColorized(enabled bool) Option {
	return func(s *settings) {
		s.colorized = enabled
	}
}

// WithOriginLeadIn controls whether a line graph connects the axis origin
// to its first point. Enabled by default.
func WithOriginLeadIn(enabled bool) Option {
	return func(s *settings) {
		s.leadIn = enabled
	}
}

func (s settings) luminanceMapper() *LuminanceMapper {
	if s.corrected {
		return NewCorrectedLuminanceMapper(s.ramp)
	}
	return NewLuminanceMapper(s.ramp)
}
