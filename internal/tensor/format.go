package tensor

import (
	"fmt"
	"strings"
)

// String renders the elements as nested brackets.
//
//	rank 0: 1
//	rank 1: [1, 2, 3]
//	rank 2: [[1, 2],
//	         [3, 4]]
func (a *Array[T, I]) String() string {
	dims := toInts(a.shape.dims)
	if len(dims) == 0 {
		return fmt.Sprint(a.data[0])
	}
	var sb strings.Builder
	a.format(&sb, dims, 0, 0)
	return sb.String()
}

// format writes the sub-array starting at offset along axis.
func (a *Array[T, I]) format(sb *strings.Builder, dims []int, axis, offset int) {
	sb.WriteByte('[')
	stride := a.shape.strides[axis]
	for i := 0; i < dims[axis]; i++ {
		if i > 0 {
			if axis == len(dims)-1 {
				sb.WriteString(", ")
			} else {
				sb.WriteString(",\n")
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		if axis == len(dims)-1 {
			fmt.Fprint(sb, a.data[offset+i])
		} else {
			a.format(sb, dims, axis+1, offset+i*stride)
		}
	}
	sb.WriteByte(']')
}
