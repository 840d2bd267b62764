package tensor

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rank0", Scalar(2.5).String(), "2.5"},
		{"rank1", Must(Vector(1, 2, 3)).String(), "[1, 2, 3]"},
		{"rank2", Must(Matrix([][]int{{1, 2}, {3, 4}})).String(), "[[1, 2],\n [3, 4]]"},
		{"rank3", Must(FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}, Rank3{2, 2, 2})).String(),
			"[[[1, 2],\n  [3, 4]],\n [[5, 6],\n  [7, 8]]]"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
