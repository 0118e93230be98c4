package denseidx_test

import (
	"testing"

	"github.com/npillmayer/denseidx"
	"github.com/npillmayer/denseidx/backend"
)

func BenchmarkWrapperPush(b *testing.B) {
	d := denseidx.MustWrap[EmployeeIndex, int](backend.NewVector[int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		denseidx.Push(d, i)
	}
}

func BenchmarkRawAppend(b *testing.B) {
	s := make([]int, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = append(s, i)
	}
	_ = s
}

func BenchmarkWrapperAt(b *testing.B) {
	d := denseidx.MustWrap[EmployeeIndex, int](backend.VectorOf(make([]int, 1024)...))
	idx := denseidx.NewIndex[employee](512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.At(idx)
	}
}

func BenchmarkRawIndex(b *testing.B) {
	s := make([]int, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s[512]
	}
}
