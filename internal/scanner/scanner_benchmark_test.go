package scanner

import (
	"testing"

	"github.com/abdolence/struct-path-go/internal/token"
)

func BenchmarkScan_QualifiedWithOptions(b *testing.B) {
	tokens, err := token.Lex(`crate::tests::TestStructParent::value_child.child_value_str; delim="/", case="camel"`)
	if err != nil {
		b.Fatal(err)
	}
	s := New(Scalar, DefaultConfig())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parsed, err := s.Scan(tokens)
		if err != nil {
			b.Fatal(err)
		}
		if len(parsed.Entries) != 1 {
			b.Fatal("unexpected entry count")
		}
	}
}

func BenchmarkScan_GroupForm(b *testing.B) {
	tokens, err := token.Lex("TestStructParent::{ value_str, value_num, value_child.child_value_str }")
	if err != nil {
		b.Fatal(err)
	}
	s := New(Collection, DefaultConfig())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Scan(tokens); err != nil {
			b.Fatal(err)
		}
	}
}
