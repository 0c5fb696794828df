package config

// Default holds the presets of the interactive viewer.
func Default() Config {
	return Config{
		Render: Render{
			Width:   640,
			Height:  480,
			Workers: 0,
			Formats: []string{"png"},
		},
		Fractal: []Preset{
			{
				Name:    "mandelbrot",
				Rule:    "mandelbrot",
				View:    View{X: -0.75, Scale: 480},
				MaxIter: 150,
				Palette: "greens",
			},
			{
				Name:    "julia",
				Rule:    "julia",
				C:       "0.285+0.01i",
				MaxIter: 255,
				Palette: "blues",
			},
			{
				Name:      "mandel-escape",
				Rule:      "hybrid",
				Seed:      "zero",
				First:     "pixel",
				Second:    "-1.5",
				Switch:    "threshold",
				Threshold: 50,
				View:      View{X: -0.75, Scale: 480},
				MaxIter:   255,
				Palette:   "linear",
			},
			{
				Name:      "julia-escape",
				Rule:      "hybrid",
				Seed:      "pixel",
				First:     "-1.5",
				Second:    "1i",
				Switch:    "threshold",
				Threshold: 20,
				MaxIter:   255,
				Palette:   "linear",
			},
			{
				Name:    "julia-alternate",
				Rule:    "hybrid",
				Seed:    "pixel",
				First:   "1i",
				Second:  "0.285+0.01i",
				Switch:  "alternate",
				MaxIter: 255,
				Palette: "linear",
			},
			{
				Name:    "mandeljulia",
				Rule:    "mandeljulia",
				C:       "0",
				Angle:   45,
				MaxIter: 64,
				Palette: "linear",
			},
			{
				Name:    "mandelbrot-z4",
				Rule:    "mandelbrot-z4",
				MaxIter: 150,
				Palette: "greens",
			},
			{
				Name:    "julia-z4",
				Rule:    "julia-z4",
				C:       "0.6+0.55i",
				MaxIter: 255,
				Palette: "blues",
			},
			{
				Name:    "barnsley-m2",
				Rule:    "barnsley-m2",
				Rect:    [4]float64{-2, -2, 2, 2},
				MaxIter: 255,
				Palette: "fire",
			},
			{
				Name:    "barnsley-j3",
				Rule:    "barnsley-j3",
				C:       "0.5+1.2i",
				Rect:    [4]float64{-2, -2, 2, 2},
				MaxIter: 255,
				Palette: "fire",
			},
			{
				Name:    "lambda",
				Rule:    "lambda",
				C:       "1+0.25i",
				Rect:    [4]float64{-1, -1.5, 2, 1.5},
				MaxIter: 255,
				Palette: "linear",
			},
			{
				Name:    "lambda-mandelbrot",
				Rule:    "lambda-mandelbrot",
				C:       "0.5",
				Rect:    [4]float64{-2, -2.5, 4, 2.5},
				MaxIter: 255,
				Palette: "linear",
			},
			{
				Name:    "magnet-julia",
				Rule:    "magnet-julia",
				C:       "0.5-1.5i",
				Rect:    [4]float64{-2, -2, 2, 2},
				MaxIter: 255,
				Palette: "fire",
			},
			{
				Name:    "phoenix",
				Rule:    "phoenix",
				C:       "0.56667-0.5i",
				MaxIter: 255,
				Palette: "blues",
			},
			{
				Name:    "manowar",
				Rule:    "manowar",
				MaxIter: 255,
				Palette: "greens",
			},
			{
				Name:    "magnet",
				Rule:    "magnet",
				Rect:    [4]float64{-2, -2, 2, 2},
				MaxIter: 255,
				Palette: "linear",
			},
			{
				Name:    "newton",
				Rule:    "newton",
				Rect:    [4]float64{-2, -2, 2, 2},
				MaxIter: 64,
				Palette: "linear",
			},
		},
	}
}
