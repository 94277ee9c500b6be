package ostree

import (
	"math/rand"
	"testing"

	"github.com/ajwerner/orderstat"
	"github.com/google/btree"
)

var randGen *rand.Rand

func init() {
	randGen = rand.New(rand.NewSource(1337)) // fixed seed for deterministic benchmarks
}

type orderstatInt int

func (a orderstatInt) Less(b orderstat.Item) bool {
	return a < b.(orderstatInt)
}

type btreeInt int

func (b btreeInt) Less(c btree.Item) bool {
	return b < c.(btreeInt)
}

func generateRandomData(n int) []int {
	data := make([]int, n)
	for i := 0; i < n; i++ {
		data[i] = randGen.Intn(n * 10)
	}
	return data
}

var benchSizes = []struct {
	name string
	size int
}{
	{"100_elements", 100},
	{"1000_elements", 1000},
	{"10000_elements", 10000},
}

func BenchmarkInsert(b *testing.B) {
	for _, bm := range benchSizes {
		data := generateRandomData(bm.size)

		b.Run("ostree.Set/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := NewSet[int]()
				for _, v := range data {
					s.Insert(v)
				}
			}
		})

		b.Run("ajwerner/orderstat/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree := orderstat.NewTree()
				for _, v := range data {
					tree.ReplaceOrInsert(orderstatInt(v))
				}
			}
		})

		b.Run("google/btree/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree := btree.New(2)
				for _, v := range data {
					tree.ReplaceOrInsert(btreeInt(v))
				}
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	for _, bm := range benchSizes {
		data := generateRandomData(bm.size)

		s := NewSet[int]()
		for _, v := range data {
			s.Insert(v)
		}
		orderstatTree := orderstat.NewTree()
		for _, v := range data {
			orderstatTree.ReplaceOrInsert(orderstatInt(v))
		}

		b.Run("ostree.Set/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					s.Contains(data[randGen.Intn(len(data))])
				}
			}
		})

		b.Run("ajwerner/orderstat/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					orderstatTree.Get(orderstatInt(data[randGen.Intn(len(data))]))
				}
			}
		})

		b.Run("google/btree/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree := btree.New(2)
				for _, v := range data {
					tree.Get(btreeInt(v))
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, bm := range benchSizes {
		data := generateRandomData(bm.size)

		s := NewSet[int]()
		for _, v := range data {
			s.Insert(v)
		}
		orderstatTree := orderstat.NewTree()
		for _, v := range data {
			orderstatTree.ReplaceOrInsert(orderstatInt(v))
		}

		b.Run("ostree.Set/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					if s.Len() > 0 {
						s.Get(randGen.Intn(s.Len()))
					}
				}
			}
		})

		b.Run("ajwerner/orderstat/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					orderstatTree.Select(randGen.Intn(bm.size))
				}
			}
		})
	}
}

func BenchmarkRemove(b *testing.B) {
	for _, bm := range benchSizes {
		data := generateRandomData(bm.size)

		b.Run("ostree.Set/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				s := NewSet[int]()
				for _, v := range data {
					s.Insert(v)
				}
				b.StartTimer()

				for j := 0; j < 100; j++ {
					s.Remove(data[randGen.Intn(len(data))])
				}
			}
		})

		b.Run("ajwerner/orderstat/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tree := orderstat.NewTree()
				for _, v := range data {
					tree.ReplaceOrInsert(orderstatInt(v))
				}
				b.StartTimer()

				for j := 0; j < 100; j++ {
					tree.Delete(orderstatInt(data[randGen.Intn(len(data))]))
				}
			}
		})

		b.Run("google/btree/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree := btree.New(2)
				for _, v := range data {
					tree.Delete(btreeInt(v))
				}
			}
		})
	}
}

func BenchmarkIndexOf(b *testing.B) {
	for _, bm := range benchSizes {
		data := generateRandomData(bm.size)

		s := NewSet[int]()
		for _, v := range data {
			s.Insert(v)
		}
		orderstatTree := orderstat.NewTree()
		for _, v := range data {
			orderstatTree.ReplaceOrInsert(orderstatInt(v))
		}

		b.Run("ostree.Set/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					s.IndexOf(data[randGen.Intn(len(data))])
				}
			}
		})

		b.Run("ajwerner/orderstat/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					orderstatTree.Rank(orderstatInt(data[randGen.Intn(len(data))]))
				}
			}
		})
	}
}

func BenchmarkMixedOperations(b *testing.B) {
	for _, bm := range benchSizes {
		data := generateRandomData(bm.size)

		b.Run("ostree.Set/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				s := NewSet[int]()
				for _, v := range data[:bm.size/2] {
					s.Insert(v)
				}
				b.StartTimer()

				// 20% each of insert, contains, get, remove, indexOf.
				for j := 0; j < 100; j++ {
					switch j % 5 {
					case 0:
						s.Insert(data[randGen.Intn(len(data))])
					case 1:
						s.Contains(data[randGen.Intn(len(data))])
					case 2:
						if s.Len() > 0 {
							s.Get(randGen.Intn(s.Len()))
						}
					case 3:
						s.Remove(data[randGen.Intn(len(data))])
					case 4:
						s.IndexOf(data[randGen.Intn(len(data))])
					}
				}
			}
		})

		b.Run("ajwerner/orderstat/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tree := orderstat.NewTree()
				for _, v := range data[:bm.size/2] {
					tree.ReplaceOrInsert(orderstatInt(v))
				}
				b.StartTimer()

				for j := 0; j < 100; j++ {
					switch j % 5 {
					case 0:
						tree.ReplaceOrInsert(orderstatInt(data[randGen.Intn(len(data))]))
					case 1:
						tree.Get(orderstatInt(data[randGen.Intn(len(data))]))
					case 2:
						if tree.Len() > 0 {
							tree.Select(randGen.Intn(tree.Len()))
						}
					case 3:
						tree.Delete(orderstatInt(data[randGen.Intn(len(data))]))
					case 4:
						tree.Rank(orderstatInt(data[randGen.Intn(len(data))]))
					}
				}
			}
		})

		b.Run("google/btree/"+bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tree := btree.New(2)
				for _, v := range data[:bm.size/2] {
					tree.ReplaceOrInsert(btreeInt(v))
				}
				b.StartTimer()

				for j := 0; j < 100; j++ {
					switch j % 3 {
					case 0:
						tree.ReplaceOrInsert(btreeInt(data[randGen.Intn(len(data))]))
					case 1:
						tree.Get(btreeInt(data[randGen.Intn(len(data))]))
					case 2:
						tree.Delete(btreeInt(data[randGen.Intn(len(data))]))
					}
				}
			}
		})
	}
}
