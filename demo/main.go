package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/infinivision/linear/errmsg"
	"github.com/infinivision/linear/list"
	"github.com/infinivision/linear/minstack"
	"github.com/infinivision/linear/queue"
	"github.com/infinivision/linear/stack"
	"github.com/nnsgmsone/damrey/logger"
)

type checker struct {
	fails int
	log   logger.Log
}

func (c *checker) expect(what string, got, want interface{}) {
	if fmt.Sprint(got) != fmt.Sprint(want) {
		c.fails++
		c.log.Errorf("%s: got %v, want %v\n", what, got, want)
		return
	}
	fmt.Printf("%s: %v\n", what, got)
}

func (c *checker) expectErr(what string, err, want error) {
	if !errors.Is(err, want) {
		c.fails++
		c.log.Errorf("%s: got error %v, want %v\n", what, err, want)
		return
	}
	fmt.Printf("%s: %v\n", what, err)
}

func runList(c *checker, _ Config) {
	l := list.New(0)
	c.expect("print", l, "0")
	nd, _ := l.InsertAfter(l.Head(), 1)
	c.expect("insertAfter(head, 1)", nd.Value(), 1)
	c.expect("print", l, "0, 1")
	l.InsertAfter(l.Head().Next(), 3)
	c.expect("print", l, "0, 1, 3")
	l.InsertAfter(l.Head().Next(), 2)
	c.expect("print", l, "0, 1, 2, 3")
	nd, _ = l.RemoveAfter(l.Head())
	c.expect("removeAfter(head)", nd.Value(), 1)
	c.expect("print", l, "0, 2, 3")
	c.expect("insertHead(-1)", l.InsertHead(-1).Value(), -1)
	c.expect("print", l, "-1, 0, 2, 3")
	nd, _ = l.RemoveHead()
	c.expect("removeHead()", nd.Value(), -1)
	c.expect("print", l, "0, 2, 3")
	c.expect("appendToTail(4)", l.AppendToTail(4).Value(), 4)
	c.expect("print", l, "0, 2, 3, 4")
	c.expect("findNode(0) is head", l.FindNode(0) == l.Head(), true)
	c.expect("findNode(3) is head.next.next", l.FindNode(3) == l.Head().Next().Next(), true)
	_, err := find(l, 5)
	c.expectErr("findNode(5)", err, errmsg.NotFound)
	l.InsertAfter(l.FindNode(2), 5)
	c.expect("print", l, "0, 2, 5, 3, 4")
	l.RemoveAfter(l.FindNode(2))
	c.expect("print", l, "0, 2, 3, 4")
	nd, _ = l.InsertBefore(l.Head().Next(), 1)
	c.expect("insertBefore(head.next, 1)", nd.Value(), 1)
	c.expect("print", l, "0, 1, 2, 3, 4")
	nd, _ = l.RemoveBefore(l.Head().Next().Next())
	c.expect("removeBefore(head.next.next)", nd.Value(), 1)
	c.expect("print", l, "0, 2, 3, 4")
	_, err = l.RemoveBefore(l.Head())
	c.expectErr("removeBefore(head)", err, errmsg.NoSuchElement)
	_, err = l.RemoveAfter(l.Tail())
	c.expectErr("removeAfter(tail)", err, errmsg.NoSuchElement)
}

func runStack(c *checker, cfg Config) {
	s := stack.New[string](cfg.Capacity)
	for i := 0; i < cfg.Capacity; i++ {
		n, _ := s.Push(letter(i))
		c.expect("push("+letter(i)+")", n, i+1)
	}
	_, err := s.Push(letter(cfg.Capacity))
	c.expectErr("push("+letter(cfg.Capacity)+")", err, errmsg.CapacityExceeded)
	v, _ := s.Pop()
	c.expect("pop()", v, letter(cfg.Capacity-1))
	v, _ = s.Peek()
	c.expect("peek()", v, letter(cfg.Capacity-2))
	c.expect("count()", s.Count(), cfg.Capacity-1)
	n, _ := s.Until(letter(0))
	c.expect("until(a)", n, cfg.Capacity-1)
}

func runQueue(c *checker, cfg Config) {
	q := queue.New[string](cfg.Capacity)
	for i := 0; i < cfg.Capacity; i++ {
		n, _ := q.Enqueue(letter(i))
		c.expect("enqueue("+letter(i)+")", n, i+1)
	}
	_, err := q.Enqueue(letter(cfg.Capacity))
	c.expectErr("enqueue("+letter(cfg.Capacity)+")", err, errmsg.CapacityExceeded)
	v, _ := q.Dequeue()
	c.expect("dequeue()", v, "a")
	c.expect("count()", q.Count(), cfg.Capacity-1)
	n, _ := q.Until(letter(cfg.Capacity - 1))
	c.expect("until("+letter(cfg.Capacity-1)+")", n, cfg.Capacity-1)
}

func runTwoStack(c *checker, cfg Config) {
	q := queue.NewTwoStack[string](cfg.Capacity)
	for i := 0; i < cfg.Capacity; i++ {
		q.Enqueue(letter(i))
	}
	_, err := q.Enqueue(letter(cfg.Capacity))
	c.expectErr("enqueue("+letter(cfg.Capacity)+")", err, errmsg.CapacityExceeded)
	v, _ := q.Dequeue()
	c.expect("dequeue()", v, "a")
	c.expect("count()", q.Count(), cfg.Capacity-1)
	v, _ = q.Peek()
	c.expect("peek()", v, "b")
	c.expect("count()", q.Count(), cfg.Capacity-1)
}

func runMinStack(c *checker, _ Config) {
	s := minstack.New[int](0)
	for _, v := range []int{5, 3, 7, 3, 1} {
		s.Push(v)
	}
	m, _ := s.Min()
	c.expect("min()", m, 1)
	s.Pop()
	m, _ = s.Min()
	c.expect("min() after pop", m, 3)
	s.Pop()
	m, _ = s.Min()
	c.expect("min() after second pop", m, 3)
}

func letter(i int) string {
	return string(rune('a' + i))
}

func find(l list.List[int], v int) (*list.Node[int], error) {
	if nd := l.FindNode(v); nd != nil {
		return nd, nil
	}
	return nil, errmsg.NotFound
}

var scenarios = map[string]func(*checker, Config){
	"list":     runList,
	"stack":    runStack,
	"queue":    runQueue,
	"twostack": runTwoStack,
	"minstack": runMinStack,
}

func main() {
	var run string

	cfg := DefaultConfig()
	flag.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "capacity of the bounded structures")
	flag.StringVar(&run, "run", "", "scenario to run: list, stack, queue, twostack or minstack")
	flag.Parse()

	if cfg.Capacity < 2 || cfg.Capacity > 25 {
		fmt.Fprintln(os.Stderr, "capacity must be between 2 and 25")
		os.Exit(2)
	}
	if _, ok := scenarios[run]; run != "" && !ok {
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", run)
		os.Exit(2)
	}

	c := &checker{log: logger.New(cfg.LogWriter, "linear")}
	for _, name := range []string{"list", "stack", "queue", "twostack", "minstack"} {
		if run != "" && run != name {
			continue
		}
		fmt.Printf("== %s\n", name)
		scenarios[name](c, cfg)
	}
	if c.fails > 0 {
		c.log.Fatalf("%d checks failed\n", c.fails)
	}
}
