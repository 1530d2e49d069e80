package booking

import "testing"

func TestLedger_Apply(t *testing.T) {
	l := Ledger{Threshold: DefaultLoyaltyThreshold}

	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{8, 9},
		{9, 10},
		{10, 0},
		{15, 0},
	}
	for _, c := range cases {
		if got := l.Apply(c.points); got != c.want {
			t.Errorf("Apply(%d): expected %d, got %d", c.points, c.want, got)
		}
	}
}

func TestLedger_Award(t *testing.T) {
	l := Ledger{Threshold: DefaultLoyaltyThreshold}
	u := userWithPoints(1, 10)

	l.Award(&u)
	if u.LoyaltyPoints != 0 {
		t.Errorf("expected wrap to 0, got %d", u.LoyaltyPoints)
	}

	l.Award(&u)
	if u.LoyaltyPoints != 1 {
		t.Errorf("expected 1, got %d", u.LoyaltyPoints)
	}
}
