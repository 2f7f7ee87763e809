package wavedraw

// FigurePadding is the empty space around the figure and around the schema
// area inside it, in pixels.
type FigurePadding struct {
	FigureTop    float64
	FigureBottom float64
	FigureLeft   float64
	FigureRight  float64

	SchemaTop    float64
	SchemaBottom float64
}

// FigureSpacing is the empty space between figure elements, in pixels.
type FigureSpacing struct {
	// TextboxToSchema separates the signal-name textbox from the schema.
	TextboxToSchema float64
	// LineToLine separates consecutive signal lines.
	LineToLine float64
}

// Options is the complete configuration surface of the core. It is threaded
// explicitly through every call; the package keeps no option state.
//
// The zero value is not useful. Start from [DefaultOptions] and adjust.
type Options struct {
	// FontSize scales text measurement and rendering, in pixels per em.
	FontSize float64

	Paddings FigurePadding
	Spacings FigureSpacing

	// WaveHeight is the vertical extent of one signal line's waveform.
	WaveHeight int
	// CycleWidth is the horizontal extent of one cycle.
	CycleWidth int
	// TransitionOffset is the horizontal inset reserved at every cycle
	// boundary for the connector glyph.
	TransitionOffset int

	// Period is the default sub-cycle count a clock edge state occupies,
	// for lines that do not set their own.
	Period uint16

	// Backgrounds is the fill palette data boxes select from by index.
	Backgrounds [8]string
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() *Options {
	return &Options{
		FontSize: 10,

		Paddings: FigurePadding{
			FigureTop:    8,
			FigureBottom: 8,
			FigureLeft:   8,
			FigureRight:  8,

			SchemaTop:    8,
			SchemaBottom: 8,
		},
		Spacings: FigureSpacing{
			TextboxToSchema: 16,
			LineToLine:      16,
		},

		WaveHeight:       24,
		CycleWidth:       48,
		TransitionOffset: 4,

		Period: 1,

		Backgrounds: [8]string{
			"#FFFFFF",
			"#F7F7A1",
			"#F9D49F",
			"#ADDEFF",
			"#ACD5B6",
			"#A4ABE1",
			"#E8A8F0",
			"#FBDADA",
		},
	}
}
