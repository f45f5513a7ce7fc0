// README: Brand validation and attention-window tests.
package fleet

import (
	"testing"
	"time"
)

func TestValidBrand(t *testing.T) {
	for _, b := range allBrands {
		if !ValidBrand(b) {
			t.Errorf("known brand %q rejected", b)
		}
	}
	if ValidBrand("Ford Transit") {
		t.Error("unknown brand accepted")
	}
	if ValidBrand("") {
		t.Error("empty brand accepted")
	}
}

func TestInspectionDueSoon(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name string
		stk  *time.Time
		want bool
	}{
		{"today", day(0), true},
		{"in a week", day(7), true},
		{"exactly 30 days out", day(30), true},
		{"31 days out", day(31), false},
		{"yesterday (overdue, not soon)", day(-1), false},
		{"unset", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vehicle{STKDate: tt.stk}
			if got := v.InspectionDueSoon(now); got != tt.want {
				t.Errorf("InspectionDueSoon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVignetteDueSoon(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	soon := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)
	far := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	if !(Vehicle{VignetteUntil: &soon}).VignetteDueSoon(now) {
		t.Error("vignette expiring in 15 days should warn")
	}
	if (Vehicle{VignetteUntil: &far}).VignetteDueSoon(now) {
		t.Error("vignette expiring in months should not warn")
	}
}
