package stream

import (
	"errors"
	"testing"
)

func TestStreamNext(t *testing.T) {
	c := make(chan int)
	errC := make(chan error)

	go func() {
		defer close(c)
		defer close(errC)
		for i := 1; i <= 3; i++ {
			c <- i
		}
	}()

	s := New(c, errC)

	var got []int
	for s.Next() {
		got = append(got, s.Current())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err returned %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("unexpected items: %v", got)
	}
}

func TestStreamError(t *testing.T) {
	c := make(chan string)
	errC := make(chan error, 1)

	go func() {
		defer close(c)
		defer close(errC)
		c <- "first"
		errC <- errors.New("stream broke")
	}()

	s := New(c, errC)

	if !s.Next() {
		t.Fatal("expected first item")
	}
	if s.Current() != "first" {
		t.Fatalf("current = %q", s.Current())
	}

	for s.Next() {
	}
	if err := s.Err(); err == nil || err.Error() != "stream broke" {
		t.Fatalf("expected stream error, got %v", err)
	}
}

func TestStreamCollect(t *testing.T) {
	c := make(chan int)
	errC := make(chan error)

	go func() {
		defer close(c)
		defer close(errC)
		c <- 10
		c <- 20
	}()

	items, err := New(c, errC).Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(items) != 2 || items[0] != 10 || items[1] != 20 {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestStreamCollectError(t *testing.T) {
	c := make(chan int)
	errC := make(chan error, 1)

	go func() {
		defer close(c)
		defer close(errC)
		errC <- errors.New("boom")
	}()

	if _, err := New(c, errC).Collect(); err == nil {
		t.Fatal("expected error from Collect")
	}
}

func TestStreamEmpty(t *testing.T) {
	c := make(chan int)
	errC := make(chan error)
	close(c)
	close(errC)

	s := New(c, errC)
	if s.Next() {
		t.Fatal("expected no items")
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err returned %v", err)
	}
}
