package list

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List[int])(nil)

// Values 返回所有元素，用于实现 containers.Container
func (l *List[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("List[")
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteString("]")
	return b.String()
}
