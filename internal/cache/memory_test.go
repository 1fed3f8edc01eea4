package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok, err := s.Get(ctx, "nada"); err != nil || ok {
		t.Fatalf("Get de clave inexistente = (%v, %v), want miss sin error", ok, err)
	}

	if err := s.Set(ctx, "k", []byte("valor"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v), want hit", ok, err)
	}
	if string(val) != "valor" {
		t.Errorf("val = %q, want %q", val, "valor")
	}
}

func TestMemoryStoreExpiraPorTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "k", []byte("x"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("la clave debería haber expirado")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "k", []byte("x"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("la clave borrada sigue presente")
	}

	// borrar una clave inexistente no es error
	if err := s.Delete(ctx, "nada"); err != nil {
		t.Errorf("Delete de clave inexistente: %v", err)
	}
}

func TestMemoryStoreSobrescribe(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Set(ctx, "k", []byte("uno"), time.Minute)
	_ = s.Set(ctx, "k", []byte("dos"), time.Minute)

	val, ok, _ := s.Get(ctx, "k")
	if !ok || string(val) != "dos" {
		t.Errorf("val = %q, want %q", val, "dos")
	}
}
