package redis_pool

import (
	"errors"
	"sync"

	"github.com/gomodule/redigo/redis"

	"MyForwardList/list"
)

var (
	RedisPoolCreateErr = errors.New("create RedisPool Error")
	ConnStatusErr      = errors.New("connection status error")
	RedisPoolCloseErr  = errors.New("redis pool has been closed")
)

// RedisPool Redis 连接池
// 空闲连接保存在一个单链表中，作为后进先出的栈使用：最近归还的连接最先被取出
// 链表本身不是并发安全的，所有访问都由 mu 保护
type RedisPool struct {
	idle         *list.List[redis.Conn]     // 空闲连接，长度不超过 maxIdle
	factory      func() (redis.Conn, error) // 连接创建工厂，用于创建新的连接
	testOnBorrow func(redis.Conn) error     // 取出空闲连接时的检查，可以为 nil
	maxActive    int                        // 连接池中能够容纳的最大连接数量
	maxIdle      int                        // 空闲连接的最大数量
	currentSize  int                        // 当前已经创建的连接的数量（包括正在使用的和空闲的）
	closed       bool                       // 连接池是否关闭
	mu           sync.Mutex
	cond         *sync.Cond // 等待连接被归还或者连接池被关闭
}

type Option func(p *RedisPool)

// WithTestOnBorrow 设置取出空闲连接时的检查函数，检查失败的连接会被关闭
func WithTestOnBorrow(fn func(redis.Conn) error) Option {
	return func(p *RedisPool) {
		p.testOnBorrow = fn
	}
}

// NewRedisPool 创建一个Redis连接池
// maxActive: 连接池的最大连接数量
// maxIdle: 连接池的最大空闲数量
func NewRedisPool(maxActive int, maxIdle int, factory func() (redis.Conn, error), opts ...Option) (*RedisPool, error) {
	if maxActive <= 0 || maxIdle <= 0 || maxActive < maxIdle || factory == nil {
		return nil, RedisPoolCreateErr
	}

	r := &RedisPool{
		idle:      list.New[redis.Conn](),
		factory:   factory,
		maxActive: maxActive,
		maxIdle:   maxIdle,
	}
	r.cond = sync.NewCond(&r.mu)
	for _, opt := range opts {
		opt(r)
	}

	// 提前创建maxIdle个连接放到空闲栈中
	for i := 0; i < maxIdle; i++ {
		conn, err := factory()
		if err != nil {
			// 发生错误，将之前已经创建的连接都关闭
			closeAll(r.idle)
			return nil, err
		}
		r.idle.PushFront(conn)
	}
	r.currentSize = maxIdle

	return r, nil
}

// closeAll 关闭链表中的所有连接并清空链表
func closeAll(conns *list.List[redis.Conn]) {
	for conn := range conns.All() {
		conn.Close()
	}
	conns.Clear()
}

// Get 从连接池中（阻塞）获取一个连接
func (p *RedisPool) Get() (redis.Conn, error) {
	p.mu.Lock()
	for {
		if p.closed {
			p.mu.Unlock()
			return nil, RedisPoolCloseErr
		}

		// 优先复用最近归还的连接
		if conn, ok := p.idle.Front(); ok {
			p.idle.PopFront()
			if p.testOnBorrow == nil {
				p.mu.Unlock()
				return conn, nil
			}

			// 检查可能涉及网络请求，不持有锁
			p.mu.Unlock()
			if err := p.testOnBorrow(conn); err == nil {
				return conn, nil
			}
			conn.Close()
			p.mu.Lock()
			p.currentSize--
			continue
		}

		// 没有空闲连接且未达到上限，则创建新的连接
		if p.currentSize < p.maxActive {
			p.currentSize++
			p.mu.Unlock() // 在调用factory之前解锁

			conn, err := p.factory()
			if err != nil {
				// 创建失败，需要把加上的currentSize减回去，并唤醒一个等待者
				p.mu.Lock()
				p.currentSize--
				p.cond.Signal()
				p.mu.Unlock()
				return nil, err
			}
			return conn, nil
		}

		// 到此说明连接已达上限，等待连接被归还或连接池被关闭
		p.cond.Wait()
	}
}

// Release 归还一个连接
func (p *RedisPool) Release(conn redis.Conn) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn == nil {
		return ConnStatusErr
	}

	if p.closed {
		conn.Close()
		return RedisPoolCloseErr
	}

	// 不管结果如何，总有一个等待者可以继续
	defer p.cond.Signal()

	// 如果连接已经损坏，则应该直接关闭它
	if err := conn.Err(); err != nil {
		conn.Close()
		p.currentSize--
		return err
	}

	if p.idle.Size() < p.maxIdle {
		p.idle.PushFront(conn)
		return nil
	}

	// 空闲栈已满，多余的连接直接关闭
	p.currentSize--
	return conn.Close()
}

// Prune 关闭并移除所有已经损坏的空闲连接，返回移除的数量
func (p *RedisPool) Prune() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	pruned := 0
	prev := p.idle.CBeforeBegin()
	for it := prev.Next(); it != p.idle.CEnd(); {
		if conn := it.Value(); conn.Err() != nil {
			conn.Close()
			it = p.idle.EraseAfter(prev).Const()
			pruned++
			continue
		}
		prev, it = it, it.Next()
	}

	if pruned > 0 {
		p.currentSize -= pruned
		p.cond.Broadcast()
	}
	return pruned
}

// Idle 返回当前空闲连接的数量
func (p *RedisPool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle.Size()
}

// Close 关闭连接池，唤醒所有阻塞在Get上的调用
func (p *RedisPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.currentSize -= p.idle.Size()
	closeAll(p.idle)
	p.cond.Broadcast()
}
