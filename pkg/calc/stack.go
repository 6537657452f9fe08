package calc

// stack is a LIFO used for the converter's working stack and the evaluator's
// operand stack.
type stack[T any] []T

func (s *stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *stack[T]) Pop() (T, bool) {
	var zero T
	if len(*s) == 0 {
		return zero, false
	}
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top, true
}

func (s *stack[T]) Peek() (T, bool) {
	var zero T
	if len(*s) == 0 {
		return zero, false
	}
	return (*s)[len(*s)-1], true
}

func (s *stack[T]) Len() int {
	return len(*s)
}
