package list

import (
	"github.com/zyedidia/generic"
	"golang.org/x/exp/constraints"
)

// EqualFunc 判断两个链表长度相同且对应位置的元素都满足 eq
func EqualFunc[T any](a, b *List[T], eq generic.EqualsFn[T]) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// LessFunc 按字典序比较两个链表，a 严格小于 b 时返回 true
// 较短的链表如果是较长链表的前缀，则排在前面
func LessFunc[T any](a, b *List[T], less generic.LessFn[T]) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if less(x.value, y.value) {
			return true
		}
		if less(y.value, x.value) {
			return false
		}
	}
	return x == nil && y != nil
}

func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, generic.Equals[T])
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

func Less[T constraints.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, generic.Less[T])
}

func LessEqual[T constraints.Ordered](a, b *List[T]) bool {
	return Less(a, b) || Equal(a, b)
}

func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterEqual[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a) || Equal(a, b)
}
