package chart

import (
	"bytes"
	"errors"
	"testing"
)

func vals(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func sampleSpecs() []Spec {
	days := []string{"2026-10-17", "2026-10-18", "2026-10-19"}
	hours := []string{"2026-10-17T00:00", "2026-10-17T01:00", "2026-10-17T02:00"}

	return []Spec{
		Temperature(days, vals(30, 31, 29), vals(18, 19, 17), 25, 12),
		AirPollution(hours, vals(10, 20, 80), vals(20, 50, 300)),
		Exposure(days, vals(9, 6, 2), vals(0, 12, 1), vals(45, 20, 10), vals(40, 80, 20)),
		AQITrend(hours, []int{1, 2, 5}),
	}
}

func TestBuilders(t *testing.T) {
	specs := sampleSpecs()

	tests := []struct {
		spec     Spec
		slot     Slot
		typ      Type
		datasets int
	}{
		{spec: specs[0], slot: SlotTemperature, typ: TypeLine, datasets: 4},
		{spec: specs[1], slot: SlotAir, typ: TypeBar, datasets: 2},
		{spec: specs[2], slot: SlotExposure, typ: TypeLine, datasets: 4},
		{spec: specs[3], slot: SlotAQI, typ: TypeLine, datasets: 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			if tt.spec.Slot != tt.slot || tt.spec.Type != tt.typ {
				t.Errorf("unexpected slot/type %s/%s", tt.spec.Slot, tt.spec.Type)
			}
			if len(tt.spec.Datasets) != tt.datasets {
				t.Errorf("expected %d datasets, got %d", tt.datasets, len(tt.spec.Datasets))
			}
			if tt.spec.Title != tt.slot.Title() {
				t.Errorf("expected title %q, got %q", tt.slot.Title(), tt.spec.Title)
			}
		})
	}
}

func TestTemperatureBaselines(t *testing.T) {
	spec := sampleSpecs()[0]

	for _, ds := range spec.Datasets[2:] {
		if len(ds.Data) != len(spec.Labels) {
			t.Fatalf("%s: expected %d points, got %d", ds.Label, len(spec.Labels), len(ds.Data))
		}
		if len(ds.BorderDash) == 0 {
			t.Errorf("%s: expected a dashed baseline", ds.Label)
		}
	}
	if *spec.Datasets[2].Data[0] != 25 || *spec.Datasets[3].Data[0] != 12 {
		t.Error("baselines should be flat at the historical averages")
	}
}

func TestAirPollutionColors(t *testing.T) {
	spec := sampleSpecs()[1]

	if spec.Labels[1] != "1:00" {
		t.Errorf("expected hour label 1:00, got %q", spec.Labels[1])
	}

	pm25 := spec.Datasets[0].BarColors
	if pm25[0] != "rgba(0, 228, 0, 0.6)" || pm25[2] != "rgba(143, 63, 151, 0.6)" {
		t.Errorf("unexpected pm2.5 colors %v", pm25)
	}
	pm10 := spec.Datasets[1].BarColors
	if pm10[1] != "rgba(255, 255, 0, 0.4)" {
		t.Errorf("unexpected pm10 colors %v", pm10)
	}
}

func TestAQITrendAxis(t *testing.T) {
	spec := sampleSpecs()[3]

	ax, ok := spec.axis("y")
	if !ok {
		t.Fatal("expected a y axis")
	}
	if *ax.Min != 0 || *ax.Max != 6 {
		t.Errorf("expected range 0..6, got %v..%v", *ax.Min, *ax.Max)
	}
	if ax.TickLabels[1] != "Good" || ax.TickLabels[3] != "Unhealthy (Sensitive)" || ax.TickLabels[5] != "Very Unhealthy" {
		t.Errorf("unexpected tick labels %v", ax.TickLabels)
	}
}

func TestHourLabel(t *testing.T) {
	if got := HourLabel("2026-10-17T14:00"); got != "14:00" {
		t.Errorf("expected 14:00, got %q", got)
	}
	if got := HourLabel("2026-10-17T00:00"); got != "0:00" {
		t.Errorf("expected 0:00, got %q", got)
	}
	if got := HourLabel("garbage"); got != "garbage" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestParseSlotAndFormat(t *testing.T) {
	if _, err := ParseSlot("uv"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseSlot("wind"); err == nil {
		t.Error("expected error for unknown slot")
	}
	if f, _ := ParseFormat(""); f != FormatPNG {
		t.Errorf("expected png default, got %s", f)
	}
	if f, _ := ParseFormat("SVG"); f.ContentType() != "image/svg+xml" {
		t.Errorf("unexpected content type %s", f.ContentType())
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestParseColor(t *testing.T) {
	c := parseColor("rgba(255, 99, 132, 0.6)")
	if c.R != 255 || c.G != 99 || c.B != 132 || c.A != 153 {
		t.Errorf("unexpected color %+v", c)
	}
	c = parseColor("#36A2EB")
	if c.R != 0x36 || c.G != 0xA2 || c.B != 0xEB || c.A != 255 {
		t.Errorf("unexpected color %+v", c)
	}
}

func TestSteps(t *testing.T) {
	xs, ys := steps([]float64{0, 1, 2}, []float64{1, 3, 2})
	wantX := []float64{0, 1, 1, 2, 2}
	wantY := []float64{1, 1, 3, 3, 2}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Fatalf("unexpected staircase %v %v", xs, ys)
		}
	}
}

func TestRender(t *testing.T) {
	for _, spec := range sampleSpecs() {
		t.Run(string(spec.Slot), func(t *testing.T) {
			var png bytes.Buffer
			if err := Render(spec, DefaultSize, FormatPNG, &png); err != nil {
				t.Fatalf("png render failed: %v", err)
			}
			if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
				t.Error("expected PNG signature")
			}

			var svg bytes.Buffer
			if err := Render(spec, DefaultSize, FormatSVG, &svg); err != nil {
				t.Fatalf("svg render failed: %v", err)
			}
			if !bytes.Contains(svg.Bytes(), []byte("<svg")) {
				t.Error("expected SVG document")
			}
		})
	}
}

func TestRenderConstantSeries(t *testing.T) {
	spec := AQITrend([]string{"a", "b", "c"}, []int{1, 1, 1})

	var buf bytes.Buffer
	if err := Render(spec, DefaultSize, FormatPNG, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderEmpty(t *testing.T) {
	spec := Spec{Slot: SlotTemperature, Type: TypeLine, Datasets: []Dataset{{Label: "x", Data: []*float64{nil, nil}}}}

	err := Render(spec, DefaultSize, FormatPNG, &bytes.Buffer{})
	if !errors.Is(err, ErrEmptyChart) {
		t.Errorf("expected ErrEmptyChart, got %v", err)
	}
}

func TestBoardReplaceDisposes(t *testing.T) {
	b := NewBoard()
	specs := sampleSpecs()

	b.ReplaceAll(specs)
	if b.Len() != len(Slots) {
		t.Fatalf("expected %d slots, got %d", len(Slots), b.Len())
	}

	old, err := b.Get(SlotTemperature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := old.Render(FormatPNG); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	replaced := b.Replace(specs[0])
	if !old.Disposed() {
		t.Error("expected replaced handle to be disposed")
	}
	if replaced.Disposed() {
		t.Error("new handle should be live")
	}
	if _, err := old.Render(FormatPNG); !errors.Is(err, ErrDisposed) {
		t.Errorf("expected ErrDisposed, got %v", err)
	}
}

func TestBoardEnlarge(t *testing.T) {
	b := NewBoard()

	if _, err := b.Enlarge(SlotAir); !errors.Is(err, ErrNoChart) {
		t.Fatalf("expected ErrNoChart on empty board, got %v", err)
	}

	b.ReplaceAll(sampleSpecs())

	first, err := b.Enlarge(SlotAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Size() != EnlargedSize {
		t.Errorf("expected enlarged size, got %+v", first.Size())
	}

	second, err := b.Enlarge(SlotAQI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Disposed() {
		t.Error("expected previous enlarged view to be disposed")
	}

	got, err := b.Enlarged()
	if err != nil || got != second {
		t.Fatalf("expected current enlarged view, got %v %v", got, err)
	}

	b.CloseEnlarged()
	if !second.Disposed() {
		t.Error("expected closed view to be disposed")
	}
	if _, err := b.Enlarged(); !errors.Is(err, ErrNoChart) {
		t.Errorf("expected ErrNoChart after close, got %v", err)
	}
}

func TestBoardDispose(t *testing.T) {
	b := NewBoard()
	b.ReplaceAll(sampleSpecs())
	h, _ := b.Get(SlotExposure)
	enlarged, _ := b.Enlarge(SlotExposure)

	b.Dispose()

	if !h.Disposed() || !enlarged.Disposed() {
		t.Error("expected every handle to be disposed")
	}
	if b.Len() != 0 {
		t.Errorf("expected empty board, got %d", b.Len())
	}
}
