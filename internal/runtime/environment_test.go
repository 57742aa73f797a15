package runtime

import "testing"

func TestEnvironmentDefineGetSet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", NewInteger(1))
	v, ok := env.Get("x")
	if !ok || v.Int != 1 {
		t.Fatalf("Get(x) = %v, %v", v, ok)
	}
	if ok := env.Set("x", NewInteger(2)); !ok {
		t.Fatal("Set(x) should succeed for a defined variable")
	}
	v, _ = env.Get("x")
	if v.Int != 2 {
		t.Errorf("after Set, x = %d, want 2", v.Int)
	}
	if ok := env.Set("y", NewInteger(9)); ok {
		t.Error("Set on an undefined variable should fail")
	}
}

func TestEnclosedEnvironmentLooksOutward(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", NewInteger(10))
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("x")
	if !ok || v.Int != 10 {
		t.Fatalf("inner.Get(x) = %v, %v, want 10, true", v, ok)
	}

	inner.Define("x", NewInteger(99))
	if _, ok := inner.GetLocal("x"); !ok {
		t.Fatal("inner shadow of x should be local")
	}
	outerVal, _ := outer.Get("x")
	if outerVal.Int != 10 {
		t.Errorf("outer x should be unaffected by inner shadow, got %d", outerVal.Int)
	}

	if ok := inner.Set("x", NewInteger(7)); !ok {
		t.Fatal("Set should find the local shadow")
	}
	if v, _ := outer.Get("x"); v.Int != 10 {
		t.Errorf("outer x mutated unexpectedly: %d", v.Int)
	}
}

func TestSetSearchesOuterWhenNotLocal(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("count", NewInteger(0))
	inner := NewEnclosedEnvironment(outer)

	if ok := inner.Set("count", NewInteger(5)); !ok {
		t.Fatal("Set should find count in the outer scope")
	}
	v, _ := outer.Get("count")
	if v.Int != 5 {
		t.Errorf("outer.count = %d, want 5", v.Int)
	}
}
