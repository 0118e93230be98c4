package denseidx_test

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/denseidx"
	"github.com/npillmayer/denseidx/backend"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestWrapperRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzWrapperRandomizedProperty -fuzztime=10s

type tokenTag struct{}

type tokenIndex = denseidx.Index[tokenTag]

func randomWord(r *rand.Rand) string {
	n := r.Intn(4) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.Intn(26))
	}
	return string(b)
}

func assertWrapperMatchesModel(t *testing.T, d *denseidx.Dense[tokenIndex, string, *backend.Ring[string]], model []string) {
	t.Helper()
	if d.Len() != uint(len(model)) {
		t.Fatalf("length mismatch: got=%d want=%d", d.Len(), len(model))
	}
	got := slices.Collect(d.Values())
	if !slices.Equal(got, model) {
		t.Fatalf("model mismatch:\n got=%v\nwant=%v", got, model)
	}
	for i := range model {
		idx := denseidx.NewIndex[tokenTag](uint(i))
		if d.At(idx) != model[i] {
			t.Fatalf("At(%v) = %q, want %q", idx, d.At(idx), model[i])
		}
	}
}

func runRandomWrapperSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	teardown := redirectTracing(t)
	defer teardown()
	r := rand.New(rand.NewSource(int64(seed)))
	d := denseidx.MustWrap[tokenIndex, string](backend.NewRing[string]())
	model := make([]string, 0, 64)

	for i := 0; i < steps; i++ {
		switch r.Intn(7) {
		case 0:
			word := randomWord(r)
			idx := denseidx.Push(d, word)
			model = append(model, word)
			if idx.Value() != uint(len(model)-1) {
				t.Fatalf("Push minted %v, want %d", idx, len(model)-1)
			}
		case 1:
			word := randomWord(r)
			idx := denseidx.PushFront(d, word)
			model = append([]string{word}, model...)
			if idx.Value() != 0 {
				t.Fatalf("PushFront minted %v, want 0", idx)
			}
		case 2:
			word, ok := denseidx.PopBack(d)
			if ok != (len(model) > 0) {
				t.Fatalf("PopBack ok=%v with model len %d", ok, len(model))
			}
			if ok {
				if word != model[len(model)-1] {
					t.Fatalf("PopBack = %q, want %q", word, model[len(model)-1])
				}
				model = model[:len(model)-1]
			}
		case 3:
			word, ok := denseidx.PopFront(d)
			if ok != (len(model) > 0) {
				t.Fatalf("PopFront ok=%v with model len %d", ok, len(model))
			}
			if ok {
				if word != model[0] {
					t.Fatalf("PopFront = %q, want %q", word, model[0])
				}
				model = model[1:]
			}
		case 4:
			pos := 0
			if len(model) > 0 {
				pos = r.Intn(len(model) + 1)
			}
			word := randomWord(r)
			idx := denseidx.Insert(d, denseidx.NewIndex[tokenTag](uint(pos)), word)
			model = slices.Insert(model, pos, word)
			if idx.Value() != uint(pos) {
				t.Fatalf("Insert minted %v, want %d", idx, pos)
			}
		case 5:
			if len(model) == 0 {
				continue
			}
			pos := r.Intn(len(model))
			next := denseidx.Erase(d, denseidx.NewIndex[tokenTag](uint(pos)))
			model = slices.Delete(model, pos, pos+1)
			if next.Value() != uint(pos) {
				t.Fatalf("Erase returned %v, want %d", next, pos)
			}
		case 6:
			if len(model) == 0 {
				continue
			}
			pos := r.Intn(len(model))
			word := randomWord(r)
			d.Set(denseidx.NewIndex[tokenTag](uint(pos)), word)
			model[pos] = word
		}
		assertWrapperMatchesModel(t, d, model)
	}
}

func TestWrapperRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomWrapperSequence(t, seed, 100)
		})
	}
}

func FuzzWrapperRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomWrapperSequence(t, seed, int(steps%120)+1)
	})
}
