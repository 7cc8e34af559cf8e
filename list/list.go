package list

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrCopyElement 表示复制元素时拷贝函数返回了错误
var ErrCopyElement = errors.New("copy list element error")

// CopyFunc 用于复制一个元素，返回错误时相关操作不会修改链表
type CopyFunc[T any] func(T) (T, error)

func identity[T any](v T) (T, error) {
	return v, nil
}

// node 单链表的节点，next 为 nil 表示最后一个节点
type node[T any] struct {
	value T
	next  *node[T]
}

// List 单向链表
// head 是一个哨兵节点（before-begin），它不保存任何用户数据，head.next 才是第一个真实节点
// 零值即为空链表。List 不能按值复制（迭代器会指向内嵌的哨兵节点），复制请使用 Clone 或 Assign
type List[T any] struct {
	head node[T]
	size int
}

// New 创建一个空链表
func New[T any]() *List[T] {
	return &List[T]{}
}

// From 按参数顺序构造链表
func From[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice 按切片顺序构造链表，不会引用切片本身
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	_ = l.copyRange(slices.Values(values), identity[T])
	return l
}

// FromSliceFunc 与 FromSlice 相同，但每个元素都通过 copyFn 复制
// copyFn 失败时返回错误，已经创建的节点全部释放
func FromSliceFunc[T any](values []T, copyFn CopyFunc[T]) (*List[T], error) {
	l := New[T]()
	if err := l.copyRange(slices.Values(values), copyFn); err != nil {
		return nil, err
	}
	return l, nil
}

// copyRange 把 seq 中的元素依次追加到空链表尾部
// 只能在空链表上调用
func (l *List[T]) copyRange(seq iter.Seq[T], copyFn CopyFunc[T]) error {
	// tail 从哨兵节点开始，始终指向当前的最后一个节点
	tail := &l.head
	var err error
	for v := range seq {
		var c T
		if c, err = copyFn(v); err != nil {
			break
		}
		tail.next = &node[T]{value: c}
		tail = tail.next
		l.size++
	}

	if err != nil {
		l.Clear()
		return fmt.Errorf("%w: %w", ErrCopyElement, err)
	}
	return nil
}

// Clone 深拷贝整个链表，新链表与原链表不共享任何节点
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	_ = c.copyRange(l.All(), identity[T])
	return c
}

// CloneFunc 使用 copyFn 深拷贝整个链表
func (l *List[T]) CloneFunc(copyFn CopyFunc[T]) (*List[T], error) {
	c := New[T]()
	if err := c.copyRange(l.All(), copyFn); err != nil {
		return nil, err
	}
	return c, nil
}

// Swap 交换两个链表的内容，O(1)，不会复制或释放任何节点
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap 交换 a 和 b 的内容
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Assign 让 l 成为 src 的一个独立副本
// 先完整地复制出一个临时链表，再与 l 交换，最后释放旧的节点
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// AssignFunc 与 Assign 相同，但使用 copyFn 复制元素
// 复制失败时 l 保持不变
func (l *List[T]) AssignFunc(src *List[T], copyFn CopyFunc[T]) error {
	if l == src {
		return nil
	}
	tmp, err := src.CloneFunc(copyFn)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// Size 返回链表中元素的数量
func (l *List[T]) Size() int {
	return l.size
}

// Empty 判断链表是否为空
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// PushFront 在链表头部插入一个元素
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PushFrontFunc 通过 copyFn 复制 value 后插入到头部，失败时链表不变
func (l *List[T]) PushFrontFunc(value T, copyFn CopyFunc[T]) error {
	c, err := copyFn(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyElement, err)
	}
	l.PushFront(c)
	return nil
}

// Front 返回第一个元素，链表为空时第二个返回值为 false
func (l *List[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

// PopFront 删除第一个元素，链表为空时什么也不做
func (l *List[T]) PopFront() {
	if n := l.head.next; n != nil {
		l.head.next = n.next
		n.next = nil
		l.size--
	}
}

// Clear 清空链表，O(N)
// 从头到尾逐个断开节点，不使用递归
func (l *List[T]) Clear() {
	for l.head.next != nil {
		n := l.head.next
		l.head.next = n.next
		n.next = nil
	}
	l.size = 0
}

// InsertAfter 在 pos 之后插入 value，返回指向新节点的迭代器
// pos 必须是本链表的 BeforeBegin 或某个真实元素，否则行为未定义
func (l *List[T]) InsertAfter(pos ConstIterator[T], value T) Iterator[T] {
	prev := pos.pos.n
	n := &node[T]{value: value, next: prev.next}
	prev.next = n
	l.size++
	return Iterator[T]{pos: position[T]{n: n}}
}

// InsertAfterFunc 通过 copyFn 复制 value 后插入到 pos 之后
// 复制失败时链表不变
func (l *List[T]) InsertAfterFunc(pos ConstIterator[T], value T, copyFn CopyFunc[T]) (Iterator[T], error) {
	c, err := copyFn(value)
	if err != nil {
		return l.End(), fmt.Errorf("%w: %w", ErrCopyElement, err)
	}
	return l.InsertAfter(pos, c), nil
}

// EraseAfter 删除 pos 之后的元素，返回指向被删除元素的下一个元素的迭代器（可能是 End）
// pos 之后必须存在元素，否则行为未定义
func (l *List[T]) EraseAfter(pos ConstIterator[T]) Iterator[T] {
	prev := pos.pos.n
	n := prev.next
	prev.next = n.next
	n.next = nil
	l.size--
	return Iterator[T]{pos: position[T]{n: prev.next}}
}

// All 按顺序遍历所有元素
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Pointers 按顺序遍历所有元素的指针，可以用来原地修改元素
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Slice 把链表中的元素按顺序复制到一个新切片中
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}
