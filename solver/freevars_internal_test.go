package solver

import "testing"

func TestIdentifyFreeVariables_SplitsPivotAndFree(t *testing.T) {
	fv := identifyFreeVariables(5, []int{0, 2, 4})

	want := []int{1, 3}
	if len(fv.mivii) != len(want) {
		t.Fatalf("mivii = %v, want %v", fv.mivii, want)
	}
	for i, col := range want {
		if fv.mivii[i] != col {
			t.Errorf("mivii[%d] = %d, want %d", i, fv.mivii[i], col)
		}
		if fv.mivi[col] != i {
			t.Errorf("mivi[%d] = %d, want %d", col, fv.mivi[col], i)
		}
	}
}

func TestIdentifyFreeVariables_AllPivot(t *testing.T) {
	fv := identifyFreeVariables(3, []int{0, 1, 2})
	if len(fv.mivii) != 0 {
		t.Fatalf("mivii = %v, want empty", fv.mivii)
	}
}

func TestIdentifyFreeVariables_NoPivot(t *testing.T) {
	fv := identifyFreeVariables(3, nil)
	if len(fv.mivii) != 3 {
		t.Fatalf("mivii = %v, want [0 1 2]", fv.mivii)
	}
	for col := 0; col < 3; col++ {
		if fv.mivi[col] != col {
			t.Errorf("mivi[%d] = %d, want %d", col, fv.mivi[col], col)
		}
	}
}
