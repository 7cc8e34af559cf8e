package list

// position 是 Iterator 和 ConstIterator 共用的遍历逻辑
// n 为 nil 时表示 End
type position[T any] struct {
	n *node[T]
}

func (p position[T]) next() position[T] {
	if p.n == nil {
		return p
	}
	return position[T]{n: p.n.next}
}

func (p position[T]) ref() *T {
	return &p.n.value
}

// Iterator 可修改元素的前向迭代器
// 两个迭代器指向同一个节点（或都是 End）时 == 成立
// 对 End 或 BeforeBegin 取值的行为未定义
type Iterator[T any] struct {
	pos position[T]
}

// Next 返回指向下一个元素的迭代器
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{pos: it.pos.next()}
}

// Value 返回当前元素的值
func (it Iterator[T]) Value() T {
	return *it.pos.ref()
}

// Ptr 返回当前元素的指针
func (it Iterator[T]) Ptr() *T {
	return it.pos.ref()
}

// Set 修改当前元素的值
func (it Iterator[T]) Set(value T) {
	*it.pos.ref() = value
}

// Const 转换为只读迭代器
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{pos: it.pos}
}

// ConstIterator 只读的前向迭代器
type ConstIterator[T any] struct {
	pos position[T]
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{pos: it.pos.next()}
}

func (it ConstIterator[T]) Value() T {
	return *it.pos.ref()
}

// Begin 返回指向第一个元素的迭代器，链表为空时等于 End
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{pos: position[T]{n: l.head.next}}
}

// End 返回最后一个元素之后的位置，不能取值
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin 返回第一个元素之前的位置（哨兵节点），只能用于 InsertAfter 和 EraseAfter
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{pos: position[T]{n: &l.head}}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}
