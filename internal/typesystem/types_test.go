package typesystem

import "testing"

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{IntType, "Int"},
		{BoolType, "Bool"},
		{StringType, "String"},
		{CharType, "Char"},
		{TVar{Name: "a"}, "a"},
		{TList{Elem: IntType}, "[Int]"},
		{TList{Elem: TList{Elem: CharType}}, "[[Char]]"},
		{TTuple{Elems: []Type{IntType, BoolType}}, "(Int, Bool)"},
		{TArrow{From: IntType, To: BoolType}, "Int -> Bool"},
		{
			// Arrows associate to the right; no parens needed.
			TArrow{From: IntType, To: TArrow{From: IntType, To: IntType}},
			"Int -> Int -> Int",
		},
		{
			TArrow{From: TArrow{From: IntType, To: IntType}, To: IntType},
			"(Int -> Int) -> Int",
		},
		{
			TArrow{From: TList{Elem: TVar{Name: "a"}}, To: TVar{Name: "a"}},
			"[a] -> a",
		},
	}
	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSchemeString(t *testing.T) {
	mono := Scheme{Body: IntType}
	if got := mono.String(); got != "Int" {
		t.Errorf("monomorphic scheme = %q, want %q", got, "Int")
	}

	a, b := TVar{Name: "a"}, TVar{Name: "b"}
	poly := Scheme{
		Vars: []TVar{a, b},
		Body: TArrow{From: a, To: b},
	}
	if got := poly.String(); got != "forall a b. a -> b" {
		t.Errorf("polymorphic scheme = %q, want %q", got, "forall a b. a -> b")
	}
}
