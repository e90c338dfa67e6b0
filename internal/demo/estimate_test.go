package demo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pablasso/siteplan/internal/plan"
)

func request(kv ...string) plan.Request {
	var fields []plan.Field
	for i := 0; i+1 < len(kv); i += 2 {
		fields = append(fields, plan.Field{Name: kv[i], Value: kv[i+1]})
	}
	return plan.NewRequest(fields...)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		req  plan.Request
		want *plan.Calculation
	}{
		{
			name: "ground plus one",
			req:  request("area", "150", "floors", "1"),
			want: &plan.Calculation{
				TimelineDays: 162,
				Materials: &plan.Materials{
					BuiltUpAreaSqft: 2700,
					CementBags:      1080,
					SteelKg:         10800,
					SandCft:         2203.2,
					AggregateCft:    1641.6,
					Bricks:          21600,
				},
			},
		},
		{
			name: "provided timeline wins",
			req:  request("area", "100", "floors", "0", "timeline", "90"),
			want: &plan.Calculation{
				TimelineDays: 90,
				Materials: &plan.Materials{
					BuiltUpAreaSqft: 900,
					CementBags:      360,
					SteelKg:         3600,
					SandCft:         734.4,
					AggregateCft:    547.2,
					Bricks:          7200,
				},
			},
		},
		{
			name: "empty timeline is estimated",
			req:  request("area", "100", "floors", "0", "timeline", ""),
			want: &plan.Calculation{
				TimelineDays: 54,
				Materials: &plan.Materials{
					BuiltUpAreaSqft: 900,
					CementBags:      360,
					SteelKg:         3600,
					SandCft:         734.4,
					AggregateCft:    547.2,
					Bricks:          7200,
				},
			},
		},
		{
			name: "zero timeline is kept",
			req:  request("area", "100", "floors", "0", "timeline", "0"),
			want: &plan.Calculation{
				TimelineDays: 0,
				Materials: &plan.Materials{
					BuiltUpAreaSqft: 900,
					CementBags:      360,
					SteelKg:         3600,
					SandCft:         734.4,
					AggregateCft:    547.2,
					Bricks:          7200,
				},
			},
		},
		{
			name: "missing fields count as zero",
			req:  request(),
			want: &plan.Calculation{Materials: &plan.Materials{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("calculation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  plan.Request
	}{
		{"empty area", request("area", "", "floors", "1")},
		{"text area", request("area", "big", "floors", "1")},
		{"fractional floors", request("area", "100", "floors", "1.5")},
		{"text timeline", request("area", "100", "floors", "1", "timeline", "soon")},
		{"infinite area", request("area", "Inf", "floors", "1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Calculate(tt.req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRound2_HalfEven(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.12},
		{0.375, 0.38},
		{2.5, 2.5},
		{979.2000000001, 979.2},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
