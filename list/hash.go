package list

import (
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/zyedidia/generic"
)

// Hash 按顺序组合每个元素的哈希值，Equal 的两个链表哈希值一定相同
// 可以配合 generic.HashInt、generic.HashString 等函数使用
func Hash[T any](l *List[T], hashFn generic.HashFn[T]) uint64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(l.size))
	for n := l.head.next; n != nil; n = n.next {
		h = fnv1a.AddUint64(h, hashFn(n.value))
	}
	return h
}
