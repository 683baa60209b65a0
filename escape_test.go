package fractal

import (
	"math"
	"testing"
)

func mandelbrotParams(maxIter int) Params {
	p := DefaultParams()
	p.MaxIter = maxIter
	return p
}

func juliaParams(maxIter int, c complex128) Params {
	p := DefaultParams()
	p.MaxIter = maxIter
	p.Mode = Julia
	p.C = c
	return p
}

func TestEvaluateOriginIsBounded(t *testing.T) {
	for _, maxIter := range []int{1, 2, 10, 1000} {
		r := Evaluate(0, mandelbrotParams(maxIter))
		if r.Escaped {
			t.Errorf("max %d: 0 escaped at n=%d", maxIter, r.N)
		}
		if r.N != maxIter {
			t.Errorf("max %d: bounded N = %d", maxIter, r.N)
		}
	}
}

func TestEvaluateKnownEscapes(t *testing.T) {
	tests := []struct {
		name  string
		seed  complex128
		p     Params
		wantN int
	}{
		{"mandelbrot 3", 3, mandelbrotParams(100), 0},
		{"mandelbrot -2.1i", complex(0, -2.1), mandelbrotParams(100), 0},
		{"mandelbrot 1", 1, mandelbrotParams(100), 2},
		{"julia c=0 seed 3", 3, juliaParams(100, 0), 0},
		{"julia c=0 seed 1.5", 1.5, juliaParams(100, 0), 1},
		{"julia infinite seed", complex(math.Inf(1), 0), juliaParams(100, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(tt.seed, tt.p)
			if !r.Escaped {
				t.Fatalf("Evaluate(%v) bounded, want escape at %d", tt.seed, tt.wantN)
			}
			if r.N != tt.wantN {
				t.Errorf("Evaluate(%v) escaped at %d, want %d", tt.seed, r.N, tt.wantN)
			}
		})
	}
}

func TestEvaluateEscapeResidual(t *testing.T) {
	r := Evaluate(3, mandelbrotParams(10))
	if r.Z != 3 {
		t.Errorf("residual = %v, want 3", r.Z)
	}

	p := mandelbrotParams(10)
	r = Evaluate(1, p)
	if got := real(r.Z)*real(r.Z) + imag(r.Z)*imag(r.Z); got <= p.Threshold() {
		t.Errorf("residual %v does not exceed threshold", r.Z)
	}
}

func TestEvaluateOverflowCountsAsEscape(t *testing.T) {
	// threshold 1e300 is finite but z^2 of the first iterate overflows
	p := mandelbrotParams(50)
	p.EscapeRadius = 1e150
	r := Evaluate(complex(1e100, 1e100), p)
	if !r.Escaped {
		t.Fatalf("overflowing orbit reported bounded")
	}
	if r.N != 1 {
		t.Errorf("escaped at %d, want 1", r.N)
	}
}

func TestEvaluateJuliaBounded(t *testing.T) {
	// c = 0: |seed| < 1 converges to 0
	r := Evaluate(complex(0.5, 0.3), juliaParams(500, 0))
	if r.Escaped {
		t.Errorf("julia(0) seed 0.5+0.3i escaped at %d", r.N)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	seeds := []complex128{complex(-0.7453, 0.1127), complex(0.285, 0.01), complex(-1.25066, 0.02012), -2}
	modes := []Params{mandelbrotParams(500), juliaParams(500, complex(-0.8, 0.156))}

	for _, p := range modes {
		for _, s := range seeds {
			first := Evaluate(s, p)
			for range 5 {
				if got := Evaluate(s, p); got != first {
					t.Fatalf("%s Evaluate(%v) = %+v, then %+v", p.Mode, s, first, got)
				}
			}
		}
	}
}

func TestEvaluateMonotonicInMaxIter(t *testing.T) {
	vp := FullMandelbrot.Viewport(41, 31)
	budgets := []int{5, 20, 100, 400}

	for y := 0; y < vp.Height; y++ {
		for x := 0; x < vp.Width; x++ {
			seed := vp.Map(x, y)
			prev := Evaluate(seed, mandelbrotParams(budgets[0]))
			for _, b := range budgets[1:] {
				r := Evaluate(seed, mandelbrotParams(b))
				if prev.Escaped && (!r.Escaped || r.N != prev.N) {
					t.Fatalf("seed %v: escaped at %d with smaller budget, got %+v with %d", seed, prev.N, r, b)
				}
				prev = r
			}
		}
	}
}

func TestSkipInteriorAgreesWithIteration(t *testing.T) {
	interior := []complex128{0, -0.5, 0.2, complex(-0.1, 0.3), -1, -1.2, complex(-1, 0.2)}
	for _, c := range interior {
		if !inMainCardioid(real(c), imag(c)) && !inPeriod2Bulb(real(c), imag(c)) {
			t.Fatalf("%v should be in the cardioid or the period-2 bulb", c)
		}

		p := mandelbrotParams(300)
		slow := Evaluate(c, p)
		p.SkipInterior = true
		fast := Evaluate(c, p)
		if slow != fast {
			t.Errorf("%v: iterated %+v, skipped %+v", c, slow, fast)
		}
	}

	// outside both shortcuts: same answer either way
	for _, c := range []complex128{-1.76, complex(0.3, 0.5), complex(-0.75, 0.1), 2} {
		if inMainCardioid(real(c), imag(c)) || inPeriod2Bulb(real(c), imag(c)) {
			t.Fatalf("%v unexpectedly inside a shortcut region", c)
		}
		p := mandelbrotParams(300)
		slow := Evaluate(c, p)
		p.SkipInterior = true
		if fast := Evaluate(c, p); slow != fast {
			t.Errorf("%v: iterated %+v, skipped %+v", c, slow, fast)
		}
	}
}

func TestSkipInteriorIgnoredForJulia(t *testing.T) {
	p := juliaParams(100, complex(2, 0))
	p.SkipInterior = true
	// 0 is in the cardioid but its julia(2) orbit escapes
	if r := Evaluate(0, p); !r.Escaped {
		t.Errorf("julia orbit of 0 with c=2 reported bounded")
	}
}

func TestSmooth(t *testing.T) {
	p := mandelbrotParams(200)
	vp := SeahorseValley.Viewport(30, 30)
	for y := 0; y < vp.Height; y++ {
		for x := 0; x < vp.Width; x++ {
			r := Evaluate(vp.Map(x, y), p)
			mu := r.Smooth(p.EscapeRadius)
			if !r.Escaped {
				if mu != float64(r.N) {
					t.Fatalf("bounded smooth = %g, want %d", mu, r.N)
				}
				continue
			}
			if math.IsNaN(mu) || mu < 0 || mu > float64(r.N)+1 {
				t.Fatalf("smooth(%+v) = %g, outside [0, %d]", r, mu, r.N+1)
			}
		}
	}
}

func TestSmoothFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		r      Result
		radius float64
	}{
		{"radius below one", Result{N: 4, Z: 3, Escaped: true}, 0.5},
		{"radius one", Result{N: 4, Z: 3, Escaped: true}, 1},
		{"infinite residual", Result{N: 7, Z: complex(math.Inf(1), 0), Escaped: true}, 2},
		{"bounded", Result{N: 9}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Smooth(tt.radius); got != float64(tt.r.N) {
				t.Errorf("Smooth = %g, want %d", got, tt.r.N)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}

	tests := []struct {
		name string
		p    Params
	}{
		{"zero iterations", Params{MaxIter: 0, EscapeRadius: 2}},
		{"negative radius", Params{MaxIter: 10, EscapeRadius: -2}},
		{"nan radius", Params{MaxIter: 10, EscapeRadius: math.NaN()}},
		{"overflowing radius", Params{MaxIter: 10, EscapeRadius: 1e200}},
		{"unknown mode", Params{MaxIter: 10, EscapeRadius: 2, Mode: 7}},
		{"infinite julia constant", Params{MaxIter: 10, EscapeRadius: 2, Mode: Julia, C: complex(math.Inf(-1), 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); err == nil {
				t.Errorf("Validate(%+v) = nil", tt.p)
			}
		})
	}
}

func TestEvaluateLastStepEscape(t *testing.T) {
	// the orbit of 0 under c = 1 is 0, 1, 2, 5: |z|^2 first exceeds 4 at step 3
	if r := Evaluate(1, mandelbrotParams(3)); !r.Escaped || r.N != 2 {
		t.Errorf("max 3: got %+v, want escaped at N = MaxIter-1 = 2", r)
	}
	if r := Evaluate(1, mandelbrotParams(2)); r.Escaped || r.N != 2 {
		t.Errorf("max 2: got %+v, want bounded", r)
	}
}

func TestParamsBinary(t *testing.T) {
	for _, p := range []Params{
		DefaultParams(),
		{MaxIter: 1 << 20, EscapeRadius: 1e3, Mode: Julia, C: complex(-0.8, 0.156)},
		{MaxIter: 7, EscapeRadius: 0.5, SkipInterior: true, C: complex(math.Inf(1), -0)},
	} {
		data, err := p.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(%+v): %v", p, err)
		}
		var got Params
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary(%+v): %v", p, err)
		}
		if got != p {
			t.Errorf("round trip = %+v, want %+v", got, p)
		}
	}

	data, _ := DefaultParams().MarshalBinary()
	var p Params
	if err := p.UnmarshalBinary(data[:len(data)-1]); err == nil {
		t.Error("UnmarshalBinary accepted truncated data")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"mandelbrot", Mandelbrot, false},
		{"Julia", Julia, false},
		{" j ", Julia, false},
		{"", Mandelbrot, false},
		{"burning-ship", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	b.Run("interior", func(b *testing.B) {
		p := mandelbrotParams(1000)
		for b.Loop() {
			Evaluate(complex(-0.1, 0.1), p)
		}
	})
	b.Run("interior skipped", func(b *testing.B) {
		p := mandelbrotParams(1000)
		p.SkipInterior = true
		for b.Loop() {
			Evaluate(complex(-0.1, 0.1), p)
		}
	})
	b.Run("julia", func(b *testing.B) {
		p := juliaParams(1000, complex(-0.8, 0.156))
		for b.Loop() {
			Evaluate(complex(0.1, 0.2), p)
		}
	})
}
