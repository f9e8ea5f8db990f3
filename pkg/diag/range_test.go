package diag

import "testing"

type aRanger struct {
	Ranging
}

func TestEmbeddingRangingImplementsRanger(t *testing.T) {
	r := Ranging{1, 10}
	s := Ranger(aRanger{Ranging{1, 10}})
	if s.Range() != r {
		t.Errorf("s.Range() = %v, want %v", s.Range(), r)
	}
}

func TestMixedRanging(t *testing.T) {
	got := MixedRanging(Ranging{1, 3}, Ranging{5, 9})
	if want := (Ranging{1, 9}); got != want {
		t.Errorf("MixedRanging -> %v, want %v", got, want)
	}
}

func TestRangingContains(t *testing.T) {
	r := Ranging{2, 5}
	for p, want := range map[int]bool{1: false, 2: true, 4: true, 5: true, 6: false} {
		if got := r.Contains(p); got != want {
			t.Errorf("%v.Contains(%d) = %v, want %v", r, p, got, want)
		}
	}
}
