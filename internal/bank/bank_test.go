package bank

import (
	"errors"
	"testing"

	"persona-onboarding/internal/domain"
)

func TestBankShape(t *testing.T) {
	b := New()
	if b.Count() != FullSize {
		t.Fatalf("expected %d questions, got %d", FullSize, b.Count())
	}

	perTrait := make(map[string]int)
	for pos := 1; pos <= b.Count(); pos++ {
		q, err := b.Get(pos)
		if err != nil {
			t.Fatalf("unexpected error at position %d: %v", pos, err)
		}
		if q.Position != pos {
			t.Fatalf("position mismatch: want %d, got %d", pos, q.Position)
		}
		if q.Prompt == "" {
			t.Fatalf("empty prompt at position %d", pos)
		}
		perTrait[q.Trait]++
	}

	for _, trait := range domain.TraitOrder {
		if perTrait[trait] != 10 {
			t.Fatalf("expected 10 questions for trait %s, got %d", trait, perTrait[trait])
		}
	}
}

func TestBankReverseItems(t *testing.T) {
	b := New()
	reversePositions := map[int]bool{10: true, 20: true, 30: true, 40: true, 50: true}
	for pos := 1; pos <= b.Count(); pos++ {
		q, err := b.Get(pos)
		if err != nil {
			t.Fatalf("unexpected error at position %d: %v", pos, err)
		}
		if q.IsReverse != reversePositions[pos] {
			t.Fatalf("reverse flag mismatch at position %d: got %v", pos, q.IsReverse)
		}
	}
}

func TestBankOutOfRange(t *testing.T) {
	b := New()
	for _, pos := range []int{0, -1, 51, 1000} {
		if _, err := b.Get(pos); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange for position %d, got %v", pos, err)
		}
	}
}

func TestBankWithCount(t *testing.T) {
	b := NewWithCount(30)
	if b.Count() != 30 {
		t.Fatalf("expected 30 questions, got %d", b.Count())
	}
	if _, err := b.Get(31); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange beyond truncated bank, got %v", err)
	}

	// Valores inválidos caen al banco completo.
	if got := NewWithCount(0).Count(); got != FullSize {
		t.Fatalf("expected full bank for count 0, got %d", got)
	}
	if got := NewWithCount(99).Count(); got != FullSize {
		t.Fatalf("expected full bank for count 99, got %d", got)
	}
}
